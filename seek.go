// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import "io"

// Seek sets the handle offset for the next Read or Write.
//
// The offset and whence arguments follow [io.Seeker]. The payload is the
// new offset relative to the start of the handle.
func Seek[H io.Seeker, T any](w Wrapper[H, T], offset int64, whence int) Wrapper[H, int64] {
	return Do(w, func(handle H) (int64, error) {
		return handle.Seek(offset, whence)
	})
}
