package hooks

import (
	"math"
	"reflect"
)

// Deps is a dependency list for UseMemo and UseEffect. A nil Deps always
// counts as changed.
type Deps []any

// DepsChanged reports whether next differs from prev. It is true when
// either list is nil, the lengths differ, or any pair of elements is not
// Same.
func DepsChanged(prev, next Deps) bool {
	if prev == nil || next == nil {
		return true
	}
	if len(prev) != len(next) {
		return true
	}
	for i := range prev {
		if !Same(prev[i], next[i]) {
			return true
		}
	}
	return false
}

// Same is the identity comparison used for state and dependencies.
//
// Comparable values compare with ==, except that NaN is the same as NaN.
// Maps, pointers and channels compare by address, slices by backing array
// and length. Zero-capacity slices share no backing array, so a non-nil
// one is never the same as another slice. Two non-nil funcs are never the
// same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() || va.Cap() == 0 || vb.Cap() == 0 {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	return equal(a, b)
}

// equal compares with ==, treating an uncomparable dynamic value (a struct
// holding a slice, say) as different.
func equal(a, b any) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
