// Package store holds the in-memory superhero catalog.
package store

import (
	"fmt"
	"slices"

	"github.com/dshills/superheroes/internal/hero"
)

// MaxRecords is the fixed capacity of a Store.
const MaxRecords = 50

// Store is an ordered, append-only collection of records with unique ranks.
// It is not safe for concurrent use.
type Store struct {
	records []hero.Record
}

// New returns a store holding seed, inserted in order. It fails if the seed
// repeats a rank or exceeds MaxRecords.
func New(seed []hero.Record) (*Store, error) {
	s := &Store{records: make([]hero.Record, 0, min(len(seed), MaxRecords))}
	for i, r := range seed {
		if err := s.Insert(r.Details, r.Rank); err != nil {
			return nil, fmt.Errorf("seed record %d (%q): %w", i, r.Name, err)
		}
	}
	return s, nil
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.records) }

// Full reports whether another insert would exceed capacity.
func (s *Store) Full() bool { return len(s.records) >= MaxRecords }

// All returns a copy of the records in store order.
func (s *Store) All() []hero.Record {
	return slices.Clone(s.records)
}

// Names returns record names in store order.
func (s *Store) Names() []string {
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.Name
	}
	return names
}

// HasRank reports whether any stored record holds rank.
func (s *Store) HasRank(rank int) bool {
	return slices.ContainsFunc(s.records, func(r hero.Record) bool { return r.Rank == rank })
}

// Insert appends candidate with the given rank. Each call tries exactly one
// rank; on error the store is unchanged.
func (s *Store) Insert(candidate hero.Details, rank int) error {
	if s.Full() {
		return fmt.Errorf("inserting %q: %w (%d)", candidate.Name, ErrCapacityExceeded, MaxRecords)
	}
	if s.HasRank(rank) {
		return fmt.Errorf("inserting %q: %w: %d", candidate.Name, ErrDuplicateRank, rank)
	}
	s.records = append(s.records, hero.Record{Details: candidate, Rank: rank})
	return nil
}

// Search returns records whose selected field contains query, ignoring ASCII
// case, in store order. An empty query matches every record.
func (s *Store) Search(field hero.Field, query string) []hero.Record {
	var out []hero.Record
	for _, r := range s.records {
		if hero.ContainsFold(r.Value(field), query) {
			out = append(out, r)
		}
	}
	return out
}

// SortByName reorders the store by name, ignoring ASCII case. Equal names
// keep their relative order.
func (s *Store) SortByName() {
	slices.SortStableFunc(s.records, func(a, b hero.Record) int {
		return hero.CompareFold(a.Name, b.Name)
	})
}

// ByRank returns a copy of the records ordered by ascending rank. The store
// order is left untouched.
func (s *Store) ByRank() []hero.Record {
	out := slices.Clone(s.records)
	slices.SortStableFunc(out, func(a, b hero.Record) int {
		switch {
		case a.Rank < b.Rank:
			return -1
		case a.Rank > b.Rank:
			return 1
		}
		return 0
	})
	return out
}
