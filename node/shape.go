package node

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"numcast/primitive"
)

// ParseShape parses a composite type spelled with numeric type names, e.g.
// *u8, []f64, [4]nonzero_i16 or map[string][]u32. Map keys may also be
// string.
func ParseShape(name string) (reflect.Type, error) {
	s := strings.TrimSpace(name)

	switch {
	case strings.HasPrefix(s, "*"):
		elem, err := ParseShape(s[1:])
		if err != nil {
			return nil, err
		}

		return reflect.PointerTo(elem), nil

	case strings.HasPrefix(s, "[]"):
		elem, err := ParseShape(s[2:])
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(elem), nil

	case strings.HasPrefix(s, "["):
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", primitive.ErrUnknownType, name)
		}

		n, err := strconv.Atoi(s[1:end])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid array length in %q", primitive.ErrUnknownType, name)
		}

		elem, err := ParseShape(s[end+1:])
		if err != nil {
			return nil, err
		}

		return reflect.ArrayOf(n, elem), nil

	case strings.HasPrefix(s, "map["):
		end := closingBracket(s, len("map"))
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", primitive.ErrUnknownType, name)
		}

		key, err := parseKey(s[len("map["):end])
		if err != nil {
			return nil, err
		}

		elem, err := ParseShape(s[end+1:])
		if err != nil {
			return nil, err
		}

		return reflect.MapOf(key, elem), nil
	}

	t, err := primitive.ParseType(s)
	if err != nil {
		return nil, err
	}

	return LeafType(t), nil
}

func parseKey(s string) (reflect.Type, error) {
	if strings.TrimSpace(s) == "string" {
		return reflect.TypeFor[string](), nil
	}

	t, err := primitive.ParseType(s)
	if err != nil {
		return nil, err
	}

	return LeafType(t), nil
}

// closingBracket returns the index of the bracket closing the one at open,
// or -1.
func closingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
