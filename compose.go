//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.0/internal/x/dslx/fxcore.go
//

package iochain

// Compose2 chains two [Step] instances together.
//
// The payload produced by s1 becomes the payload consumed by s2. If s1
// returns a bad [Wrapper], s2 is not called and the error is propagated.
func Compose2[H, A, B, C any](s1 Step[H, A, B], s2 Step[H, B, C]) Step[H, A, C] {
	return func(handle H, data A) Wrapper[H, C] {
		return AndThen[H, B, C](s1(handle, data), s2)
	}
}

// Compose3 chains three [Step] instances together.
func Compose3[H, A, B, C, D any](s1 Step[H, A, B], s2 Step[H, B, C], s3 Step[H, C, D]) Step[H, A, D] {
	return Compose2(s1, Compose2(s2, s3))
}

// Compose4 chains four [Step] instances together.
func Compose4[H, A, B, C, D, E any](
	s1 Step[H, A, B], s2 Step[H, B, C], s3 Step[H, C, D], s4 Step[H, D, E]) Step[H, A, E] {
	return Compose2(s1, Compose3(s2, s3, s4))
}

// Compose5 chains five [Step] instances together.
func Compose5[H, A, B, C, D, E, F any](
	s1 Step[H, A, B], s2 Step[H, B, C], s3 Step[H, C, D], s4 Step[H, D, E], s5 Step[H, E, F]) Step[H, A, F] {
	return Compose2(s1, Compose4(s2, s3, s4, s5))
}

// Compose6 chains six [Step] instances together.
func Compose6[H, A, B, C, D, E, F, G any](s1 Step[H, A, B],
	s2 Step[H, B, C], s3 Step[H, C, D], s4 Step[H, D, E], s5 Step[H, E, F], s6 Step[H, F, G]) Step[H, A, G] {
	return Compose2(s1, Compose5(s2, s3, s4, s5, s6))
}
