package node

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-num"

	"numcast/cast"
	"numcast/internal/common"
	"numcast/primitive"
)

var nonZeroTypes = map[primitive.KindEnum]reflect.Type{
	primitive.KindInt:     reflect.TypeFor[cast.NonZero[int]](),
	primitive.KindInt8:    reflect.TypeFor[cast.NonZero[int8]](),
	primitive.KindInt16:   reflect.TypeFor[cast.NonZero[int16]](),
	primitive.KindInt32:   reflect.TypeFor[cast.NonZero[int32]](),
	primitive.KindInt64:   reflect.TypeFor[cast.NonZero[int64]](),
	primitive.KindInt128:  reflect.TypeFor[cast.NonZero[num.I128]](),
	primitive.KindUint:    reflect.TypeFor[cast.NonZero[uint]](),
	primitive.KindUint8:   reflect.TypeFor[cast.NonZero[uint8]](),
	primitive.KindUint16:  reflect.TypeFor[cast.NonZero[uint16]](),
	primitive.KindUint32:  reflect.TypeFor[cast.NonZero[uint32]](),
	primitive.KindUint64:  reflect.TypeFor[cast.NonZero[uint64]](),
	primitive.KindUint128: reflect.TypeFor[cast.NonZero[num.U128]](),
}

// LeafType returns the Go type the cast package uses for t.
func LeafType(t primitive.Type) reflect.Type {
	if !t.IsValid() {
		return nil
	}

	if t.NonZero {
		return nonZeroTypes[t.Kind]
	}

	return t.Kind.ReflectType()
}

// isLeaf reports whether t is the canonical Go type of a numeric type.
// Named numeric types are not leaves: generated code could not spell them
// without knowing their package.
func isLeaf(t reflect.Type) bool {
	p := primitive.FromReflectType(t)
	return p.IsValid() && LeafType(p) == t
}

// TypeString spells t the way generated code refers to it.
func TypeString(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeString(t.Elem())
	case reflect.Slice:
		return "[]" + TypeString(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeString(t.Elem())
	case reflect.Map:
		return "map[" + TypeString(t.Key()) + "]" + TypeString(t.Elem())
	}

	if isLeaf(t) {
		return primitive.FromReflectType(t).CodeName()
	}

	if t.PkgPath() == "" {
		return t.String()
	}

	return common.PkgAlias(t.PkgPath()) + "." + t.Name()
}

// deref returns the expression dereferencing the pointer expr, wrapped in
// parentheses when elem is indexed by the caller.
func deref(expr string, elem reflect.Type) string {
	if isLeaf(elem) {
		return "*" + expr
	}

	return "(*" + expr + ")"
}

func indentAll(lines []string, tabs int) []string {
	if len(lines) == 0 {
		return lines
	}

	prefix := strings.Repeat("\t", tabs)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			out = append(out, l)
		} else {
			out = append(out, prefix+l)
		}
	}

	return out
}
