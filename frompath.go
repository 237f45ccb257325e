// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"io"
	"os"
)

// PathOpener constructs a handle of type H from a filesystem path.
//
// Go cannot select a constructor from the desired result type, so
// [FromPath] takes the PathOpener explicitly and H follows from it.
type PathOpener[H any] interface {
	OpenPath(path string) (H, error)
}

// PathOpenerFunc adapts a function to the [PathOpener] interface.
//
// This allows using plain constructors as openers:
//
//	w := iochain.FromPath(iochain.PathOpenerFunc[*os.File](os.Open), "/etc/hosts")
type PathOpenerFunc[H any] func(path string) (H, error)

var _ PathOpener[*os.File] = PathOpenerFunc[*os.File](nil)

// OpenPath implements [PathOpener].
func (f PathOpenerFunc[H]) OpenPath(path string) (H, error) {
	return f(path)
}

// OSOpen is a [PathOpener] opening files read-only using [os.Open].
var OSOpen = PathOpenerFunc[*os.File](os.Open)

// OSCreate is a [PathOpener] creating or truncating files using [os.Create].
var OSCreate = PathOpenerFunc[*os.File](os.Create)

// FromPath opens path using opener and wraps the result using [Wrap].
func FromPath[H any](opener PathOpener[H], path string) Wrapper[H, Unit] {
	return Wrap(opener.OpenPath(path))
}

// Buffered returns a [PathOpener] adding a read buffer to the handles
// constructed by opener, so they can be used with buffered reads.
//
// Closing the returned [*BufHandle] closes the inner handle.
func Buffered[H io.Reader](opener PathOpener[H]) PathOpener[*BufHandle[H]] {
	return PathOpenerFunc[*BufHandle[H]](func(path string) (*BufHandle[H], error) {
		handle, err := opener.OpenPath(path)
		if err != nil {
			return nil, err
		}
		return NewBufHandle(handle), nil
	})
}
