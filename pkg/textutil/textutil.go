package textutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitAt splits s at byte offset mid and returns s[:mid] and s[mid:].
func SplitAt(s string, mid int) (head, tail string, err error) {
	if mid < 0 || mid > len(s) {
		return "", "", fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, mid, len(s))
	}
	if mid < len(s) && !utf8.RuneStart(s[mid]) {
		return "", "", fmt.Errorf("%w: byte %d", ErrNotCharBoundary, mid)
	}
	return s[:mid], s[mid:], nil
}

// PartitionRunes returns the runes of s that satisfy pred and the runes that
// do not, each in original order.
func PartitionRunes(s string, pred func(rune) bool) (matched, rest string) {
	var m, r strings.Builder
	for _, c := range s {
		if pred(c) {
			m.WriteRune(c)
		} else {
			r.WriteRune(c)
		}
	}
	return m.String(), r.String()
}

// PartitionUpper separates upper-case runes from everything else.
func PartitionUpper(s string) (upper, rest string) {
	return PartitionRunes(s, unicode.IsUpper)
}
