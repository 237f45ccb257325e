// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"io"
	"reflect"
)

// release closes handle when it is a non-nil [io.Closer].
//
// Handles that do not implement [io.Closer] (e.g., [*Stdio]) are left alone.
func release(handle any) error {
	if isNil(handle) {
		return nil
	}
	closer, ok := handle.(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}

// releaseUnlessSame releases discarded unless it is the same handle as kept.
//
// Close errors are ignored: the discarded handle has no one left to report to.
func releaseUnlessSame(discarded, kept any) {
	if !sameHandle(discarded, kept) {
		_ = release(discarded)
	}
}

// isNil returns whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// sameHandle returns whether a and b refer to the same handle.
//
// Pointer handles are the same when they point to the same value. Value
// handles (e.g., structs) are the same when they compare equal, so two
// distinct value handles with equal fields count as one handle and neither
// is released. Non-comparable handles are never considered the same.
func sameHandle(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
