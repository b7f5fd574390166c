package store

import "errors"

var (
	// ErrCapacityExceeded is returned when inserting into a full store.
	ErrCapacityExceeded = errors.New("maximum capacity reached")

	// ErrDuplicateRank is returned when the proposed rank is already held by
	// another record. The caller may retry with a different rank.
	ErrDuplicateRank = errors.New("ranking already exists")
)
