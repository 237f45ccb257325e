// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

// And pivots to other if w is good, discarding w's payload.
//
// If w is bad, other is discarded and w's handle and error are returned,
// retyped to other's payload type.
//
// The discarded wrapper's handle is released unless both wrappers hold
// the same handle.
func And[H, T, U any](w Wrapper[H, T], other Wrapper[H, U]) Wrapper[H, U] {
	if w.err != nil {
		releaseUnlessSame(other.handle, w.handle)
		return Wrapper[H, U]{handle: w.handle, err: w.err}
	}
	releaseUnlessSame(w.handle, other.handle)
	return other
}

// AndThen calls fn with the handle and the payload if w is good.
//
// This is the main chaining primitive: fn receives ownership of the handle
// and must return a [Wrapper], typically by performing another operation on
// the handle or by using [Good] or [Bad].
//
// If w is bad, fn is not called and w's handle and error are returned.
func AndThen[H, T, U any](w Wrapper[H, T], fn func(handle H, data T) Wrapper[H, U]) Wrapper[H, U] {
	if w.err != nil {
		return Wrapper[H, U]{handle: w.handle, err: w.err}
	}
	return fn(w.handle, w.data)
}

// Or substitutes other for w if w is bad.
//
// If w is good, other is discarded and w is returned unchanged.
//
// The discarded wrapper's handle is released unless both wrappers hold
// the same handle.
func (w Wrapper[H, T]) Or(other Wrapper[H, T]) Wrapper[H, T] {
	if w.err != nil {
		releaseUnlessSame(w.handle, other.handle)
		return other
	}
	releaseUnlessSame(other.handle, w.handle)
	return w
}

// OrElse calls fn with the handle and the error if w is bad.
//
// The fn callback receives ownership of the handle and must return a
// replacement [Wrapper], typically a recovery attempt.
//
// If w is good, fn is not called and w is returned unchanged.
func (w Wrapper[H, T]) OrElse(fn func(handle H, err error) Wrapper[H, T]) Wrapper[H, T] {
	if w.err != nil {
		return fn(w.handle, w.err)
	}
	return w
}

// Ignore replaces the payload with [Unit], keeping the state and handle.
func (w Wrapper[H, T]) Ignore() Wrapper[H, Unit] {
	return Wrapper[H, Unit]{handle: w.handle, err: w.err}
}

// Do performs op on the handle if w is good.
//
// On success the result is good with op's return value as the new payload.
// On failure the result is bad with op's error, and the old payload is gone.
// If w is bad, op is not called and w's handle and error are returned.
//
// Every delegated operation in this package is built on Do. Use it
// directly to chain operations that handle types provide beyond the
// ones covered here (e.g., [*os.File] Sync or [net.Conn] SetDeadline).
func Do[H, T, U any](w Wrapper[H, T], op func(handle H) (U, error)) Wrapper[H, U] {
	if w.err != nil {
		return Wrapper[H, U]{handle: w.handle, err: w.err}
	}
	data, err := op(w.handle)
	if err != nil {
		return Wrapper[H, U]{handle: w.handle, err: err}
	}
	return Wrapper[H, U]{handle: w.handle, data: data}
}
