// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

// Step is an operation that continues a chain on a good [Wrapper].
//
// A Step receives the handle and the current payload and returns the next
// [Wrapper]. It has the shape of the [AndThen] callback, so every Step can
// be passed to [AndThen] or [Run], and Steps can be chained ahead of time
// using [Compose2], [Compose3], etc.
//
// A Step receives ownership of the handle and must return it inside the
// resulting [Wrapper], in either state.
type Step[H, A, B any] func(handle H, data A) Wrapper[H, B]

// Run applies step to w using [AndThen].
func Run[H, A, B any](w Wrapper[H, A], step Step[H, A, B]) Wrapper[H, B] {
	return AndThen[H, A, B](w, step)
}

// Lift returns a [Step] that feeds the handle to a delegated operation.
//
// For example, Lift(ReadLine[*Stdio, Unit]) is a Step reading a line.
func Lift[H, A, B any](op func(Wrapper[H, A]) Wrapper[H, B]) Step[H, A, B] {
	return func(handle H, data A) Wrapper[H, B] {
		return op(Good(handle, data))
	}
}

// Const returns a [Step] that always succeeds with value as the payload.
//
// This lifts a pure value into a chain without touching the handle.
func Const[H, A, B any](value B) Step[H, A, B] {
	return func(handle H, _ A) Wrapper[H, B] {
		return Good(handle, value)
	}
}
