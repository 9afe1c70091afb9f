package utils

import "strings"

func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// SplitPair splits "a:b" or "a->b" into its two halves; ok is false when no
// separator is present.
func SplitPair(s string) (first, second string, ok bool) {
	for _, sep := range []string{"->", ":"} {
		if strings.Contains(s, sep) {
			first, second = Unpack2(strings.SplitN(s, sep, 2))
			return strings.TrimSpace(first), strings.TrimSpace(second), true
		}
	}

	return s, "", false
}
