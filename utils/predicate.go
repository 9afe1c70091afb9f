package utils

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// IsInRange checks if a value is within the specified range, both inclusive.
// NaN is never in range.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Clamp returns value limited to the inclusive range [min, max].
func Clamp[T number](min T, value T, max T) T {
	switch {
	case value < min:
		return min
	case value > max:
		return max
	default:
		return value
	}
}
