// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import "github.com/bassosimone/runtimex"

// Wrapper owns a single I/O handle together with either the payload
// produced by the most recent successful operation or the error that made
// the chain fail.
//
// A Wrapper is in one of two states:
//
//   - good: holds the handle and a payload of type T, no pending error
//   - bad: holds the handle and a pending error, the payload is unreachable
//
// Every combinator and delegated operation takes a Wrapper by value and
// returns a new one. Once a Wrapper has been passed to a function, the
// caller MUST NOT use it again: the handle now belongs to the returned
// value. Nothing in the type system enforces this, so it is a contract.
//
// The zero value is a good Wrapper holding the zero handle and payload.
type Wrapper[H, T any] struct {
	// handle is the owned handle. It is present in both states.
	handle H

	// data is the most recent payload. Only meaningful when err is nil.
	data T

	// err is the pending error. A non-nil err means the bad state.
	err error
}

// Good returns a good [Wrapper] holding handle and data.
//
// Use this inside [AndThen] or [Wrapper.OrElse] callbacks to continue
// the chain with a value computed by the caller.
func Good[H, T any](handle H, data T) Wrapper[H, T] {
	return Wrapper[H, T]{handle: handle, data: data}
}

// Bad returns a bad [Wrapper] holding handle and the pending err.
//
// This function panics if err is nil.
func Bad[H, T any](handle H, err error) Wrapper[H, T] {
	runtimex.Assert(err != nil)
	return Wrapper[H, T]{handle: handle, err: err}
}

// Wrap converts the result of a handle constructor into a [Wrapper].
//
// Because Go lets a multi-valued call be passed as the whole argument
// list, the typical use is:
//
//	w := iochain.Wrap(os.Open("/etc/hosts"))
//
// When err is nil the result is good with a [Unit] payload. Otherwise the
// result is bad and keeps whatever handle the constructor returned along
// with the error (usually a nil placeholder).
func Wrap[H any](handle H, err error) Wrapper[H, Unit] {
	if err != nil {
		return Bad[H, Unit](handle, err)
	}
	return Good(handle, Unit{})
}

// WrapFunc calls fn exactly once and converts its result using [Wrap].
//
// Use this to defer the construction of the handle to the call site.
func WrapFunc[H any](fn func() (H, error)) Wrapper[H, Unit] {
	return Wrap(fn())
}

// IsGood returns true if the [Wrapper] has not failed.
func (w Wrapper[H, T]) IsGood() bool {
	return w.err == nil
}

// IsBad returns true if the [Wrapper] has failed.
func (w Wrapper[H, T]) IsBad() bool {
	return w.err != nil
}

// Err returns the pending error, or nil if the [Wrapper] is good.
func (w Wrapper[H, T]) Err() error {
	return w.err
}

// Ok ends the chain and returns the handle, the payload, and the error.
//
// When the [Wrapper] is good, the caller receives both the handle and the
// most recent payload and becomes responsible for the handle.
//
// When the [Wrapper] is bad, the handle is released (see [Wrapper.Close])
// and the zero handle and payload are returned along with the error.
func (w Wrapper[H, T]) Ok() (H, T, error) {
	if w.err != nil {
		release(w.handle)
		var (
			zeroH H
			zeroT T
		)
		return zeroH, zeroT, w.err
	}
	return w.handle, w.data, nil
}

// ToData ends the chain and returns the most recent payload.
//
// The handle is always released. When the [Wrapper] is bad the pending
// error is returned. When it is good and releasing the handle fails, the
// close error is returned together with the payload.
func (w Wrapper[H, T]) ToData() (T, error) {
	if w.err != nil {
		release(w.handle)
		var zero T
		return zero, w.err
	}
	return w.data, release(w.handle)
}

// ToHandle ends the chain and returns the handle, discarding the payload.
//
// When the [Wrapper] is bad, the handle is released and the zero handle is
// returned along with the error.
func (w Wrapper[H, T]) ToHandle() (H, error) {
	if w.err != nil {
		release(w.handle)
		var zero H
		return zero, w.err
	}
	return w.handle, nil
}

// Close ends the chain without projecting it.
//
// The handle is closed if it implements [io.Closer] and is not nil. The
// returned error is the close error, not the pending error.
func (w Wrapper[H, T]) Close() error {
	return release(w.handle)
}
