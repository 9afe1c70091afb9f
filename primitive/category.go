package primitive

type CategoryEnum int

type ConversionPair struct {
	From, To Type
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // lossless for every source value on this build target
	CategoryUnsafeNumber                          // may lose information for some source values
	CategorySameWidth                             // source and target have the same bit width (bitwise reinterpretation)

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})
	conversionPairs[CategorySafeNumber] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryUnsafeNumber] = map[ConversionPair]struct{}{}
	conversionPairs[CategorySameWidth] = map[ConversionPair]struct{}{}

	types := Types()
	for _, from := range types {
		for _, to := range types {
			pair := ConversionPair{from, to}

			if staticLossless(from, to) {
				conversionPairs[CategorySafeNumber][pair] = struct{}{}
			} else {
				conversionPairs[CategoryUnsafeNumber][pair] = struct{}{}
			}

			if from.Bits() == to.Bits() {
				conversionPairs[CategorySameWidth][pair] = struct{}{}
			}
		}
	}
}

// staticLossless decides whether every value of from survives a cast to to.
func staticLossless(from, to Type) bool {
	// zero is a value of every primitive, but of no non-zero type
	if to.NonZero && !from.NonZero {
		return false
	}

	f, t := from.Kind, to.Kind
	switch {
	case f.IsUnsigned() && t.IsUnsigned():
		return t.Bits() >= f.Bits()
	case f.IsUnsigned() && t.IsSigned():
		return t.Bits() > f.Bits() // sign bit consumes a value bit
	case f.IsSigned() && t.IsSigned():
		return t.Bits() >= f.Bits()
	case f.IsSigned() && t.IsUnsigned():
		return false
	case f.IsInteger() && t.IsFloat():
		return f.Digits() <= t.Digits()
	case f.IsFloat() && t.IsFloat():
		return t.Bits() >= f.Bits()
	default: // float to integer
		return false
	}
}

// IsStaticLossless reports whether the cast from -> to preserves every value
// of from on this build target, so that no runtime check is required.
func IsStaticLossless(from, to Type) bool {
	_, ok := conversionPairs[CategorySafeNumber][ConversionPair{from, to}]
	return ok
}

// IsSameWidth reports whether from and to can be reinterpreted bit for bit.
func IsSameWidth(from, to Type) bool {
	_, ok := conversionPairs[CategorySameWidth][ConversionPair{from, to}]
	return ok
}

// Categorize returns every category the pair belongs to.
func Categorize(from, to Type) CategoryEnum {
	var res CategoryEnum
	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if _, ok := conversionPairs[category][ConversionPair{from, to}]; ok {
			res |= category
		}
	}

	return res
}

// Pairs returns the pairs belonging to any of the allowed categories.
func Pairs(allowed CategoryEnum) []ConversionPair {
	set := allowedSet(allowed)
	res := make([]ConversionPair, 0, len(set))
	for _, from := range Types() {
		for _, to := range Types() {
			pair := ConversionPair{from, to}
			if _, ok := set[pair]; ok {
				res = append(res, pair)
			}
		}
	}

	return res
}
