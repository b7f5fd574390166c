package hero

import "strings"

// Case folding here is ASCII only. Bytes outside A-Z and a-z pass through
// unchanged, so multi-byte UTF-8 sequences are never altered.

// ToUpper maps a-z to A-Z.
func ToUpper(s string) string {
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

// ToLower maps A-Z to a-z.
func ToLower(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	i := 0
	for ; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= lo && b[i] <= hi {
			b[i] = byte(int(b[i]) + delta)
		}
	}
	return string(b)
}

// ContainsFold reports whether substr is within s, ignoring ASCII case.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	return strings.Contains(ToLower(s), ToLower(substr))
}

// CompareFold compares a and b lexicographically by byte after ASCII
// lowercasing, returning -1, 0 or +1.
func CompareFold(a, b string) int {
	return strings.Compare(ToLower(a), ToLower(b))
}
