package common

// First returns the first element of s, or false if s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Single returns the only element of s. It reports false when s is empty or
// holds more than one element.
func Single[S ~[]E, E any](s S) (E, bool) {
	if len(s) != 1 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Rest returns s without its first element.
func Rest[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return s
	}

	return s[1:]
}
