package cast

import (
	"fmt"
	"math"
	"reflect"

	"github.com/shabbyrobe/go-num"

	"numcast/internal/wide"
	"numcast/primitive"
)

// scalar is the engine's representation of any numeric value: an exact
// integer of up to 128 bits, or a float64 (every float32 is a float64).
type scalar struct {
	float bool
	i     wide.Int
	f     float64
}

func intScalar(i wide.Int) scalar {
	return scalar{i: i}
}

func floatScalar(f float64) scalar {
	return scalar{float: true, f: f}
}

// isZero treats -0.0 as zero.
func (s scalar) isZero() bool {
	if s.float {
		return s.f == 0
	}

	return s.i.IsZero()
}

// isNegative reports the sign of the source, including the sign bit of
// -0.0 and of NaN.
func (s scalar) isNegative() bool {
	if s.float {
		return math.Signbit(s.f)
	}

	return s.i.Neg
}

func (s scalar) String() string {
	if s.float {
		return fmt.Sprint(s.f)
	}

	return s.i.String()
}

// typeOf returns the descriptor of T. Named numeric types resolve to their
// underlying kind.
func typeOf[T Number]() primitive.Type {
	return primitive.FromReflectType(reflect.TypeFor[T]())
}

func load[F Number](v F) scalar {
	return loadAny(v)
}

func loadAny(v any) scalar {
	switch x := v.(type) {
	case int:
		return intScalar(wide.FromInt64(int64(x)))
	case int8:
		return intScalar(wide.FromInt64(int64(x)))
	case int16:
		return intScalar(wide.FromInt64(int64(x)))
	case int32:
		return intScalar(wide.FromInt64(int64(x)))
	case int64:
		return intScalar(wide.FromInt64(x))
	case num.I128:
		return intScalar(wide.FromI128(x))
	case uint:
		return intScalar(wide.FromUint64(uint64(x)))
	case uint8:
		return intScalar(wide.FromUint64(uint64(x)))
	case uint16:
		return intScalar(wide.FromUint64(uint64(x)))
	case uint32:
		return intScalar(wide.FromUint64(uint64(x)))
	case uint64:
		return intScalar(wide.FromUint64(x))
	case num.U128:
		return intScalar(wide.FromU128(x))
	case float32:
		return floatScalar(float64(x))
	case float64:
		return floatScalar(x)
	case nonZero:
		return x.load()
	default:
		return loadReflect(reflect.ValueOf(v))
	}
}

// loadReflect handles uintptr and named types such as time.Duration.
func loadReflect(rv reflect.Value) scalar {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intScalar(wide.FromInt64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return intScalar(wide.FromUint64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return floatScalar(rv.Float())
	default:
		panic(fmt.Sprintf("cast: %s is not a numeric type", rv.Type()))
	}
}

// store converts s, which must already be a value of T's kind, into T.
// Integers narrower than their scalar are truncated.
func store[T Number](s scalar) T {
	var out T
	storeInto(&out, s)
	return out
}

func storeInto(ptr any, s scalar) {
	switch p := ptr.(type) {
	case *int:
		*p = int(s.i.Uint64())
	case *int8:
		*p = int8(s.i.Uint64())
	case *int16:
		*p = int16(s.i.Uint64())
	case *int32:
		*p = int32(s.i.Uint64())
	case *int64:
		*p = int64(s.i.Uint64())
	case *num.I128:
		*p = s.i.I128()
	case *uint:
		*p = uint(s.i.Uint64())
	case *uint8:
		*p = uint8(s.i.Uint64())
	case *uint16:
		*p = uint16(s.i.Uint64())
	case *uint32:
		*p = uint32(s.i.Uint64())
	case *uint64:
		*p = s.i.Uint64()
	case *num.U128:
		*p = s.i.U128()
	case *float32:
		*p = float32(s.f)
	case *float64:
		*p = s.f
	case nonZeroPtr:
		p.store(s)
	default:
		storeReflect(reflect.ValueOf(ptr).Elem(), s)
	}
}

func storeReflect(rv reflect.Value, s scalar) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(s.i.Uint64()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(s.i.Uint64())
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(s.f)
	default:
		panic(fmt.Sprintf("cast: %s is not a numeric type", rv.Type()))
	}
}

// box returns s as a value of the canonical Go type of t.
func box(t primitive.Type, s scalar) any {
	if t.NonZero {
		return boxNonZero(t.Kind, s)
	}

	ptr := reflect.New(t.Kind.ReflectType())
	storeInto(ptr.Interface(), s)
	return ptr.Elem().Interface()
}

func boxNonZero(k primitive.KindEnum, s scalar) any {
	switch k {
	case primitive.KindInt:
		return store[NonZero[int]](s)
	case primitive.KindInt8:
		return store[NonZero[int8]](s)
	case primitive.KindInt16:
		return store[NonZero[int16]](s)
	case primitive.KindInt32:
		return store[NonZero[int32]](s)
	case primitive.KindInt64:
		return store[NonZero[int64]](s)
	case primitive.KindInt128:
		return store[NonZero[num.I128]](s)
	case primitive.KindUint:
		return store[NonZero[uint]](s)
	case primitive.KindUint8:
		return store[NonZero[uint8]](s)
	case primitive.KindUint16:
		return store[NonZero[uint16]](s)
	case primitive.KindUint32:
		return store[NonZero[uint32]](s)
	case primitive.KindUint64:
		return store[NonZero[uint64]](s)
	case primitive.KindUint128:
		return store[NonZero[num.U128]](s)
	default:
		panic("cast: no non-zero type for kind " + k.String())
	}
}
