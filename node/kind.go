package node

import "reflect"

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherPointer
	DispatcherSlice
	DispatcherArray
	DispatcherMap

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

// Dispatch selects how a value of type src is converted into dst. Both
// sides must have the same shape; only numeric leaves may differ.
func Dispatch(src, dst reflect.Type) DispatcherEnum {
	if isLeaf(src) && isLeaf(dst) {
		return DispatcherPrimitive
	}

	if src.Kind() != dst.Kind() {
		return DispatcherUnknown
	}

	switch src.Kind() {
	default:
		return DispatcherUnknown
	case reflect.Pointer:
		return DispatcherPointer
	case reflect.Slice:
		return DispatcherSlice
	case reflect.Array:
		if src.Len() != dst.Len() {
			return DispatcherUnknown
		}

		return DispatcherArray
	case reflect.Map:
		if src.Key() != dst.Key() {
			return DispatcherUnknown
		}

		return DispatcherMap
	}
}
