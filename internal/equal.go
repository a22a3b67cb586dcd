package internal

import "reflect"

// isEqual compares by value when both dynamic types are comparable.
// Maps and slices compare by identity (same backing storage), anything else
// that can't be compared is always considered changed.
// Non-nil slices without addressable storage (zero capacity, or zero-size
// elements) all share one base pointer, so they always count as changed.
func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		if va.Cap() == 0 || vb.Cap() == 0 || va.Type().Elem().Size() == 0 {
			return false
		}
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	}

	return false
}
