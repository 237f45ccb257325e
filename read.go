// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"errors"
	"io"

	"github.com/bassosimone/runtimex"
)

// Read performs a single Read on the handle using a buffer of size bytes.
//
// The payload is the slice of bytes actually read, which may be shorter
// than size. Reaching the end of the stream is not a failure: the payload
// then holds whatever was read before [io.EOF], possibly nothing.
//
// This function panics if size is negative.
func Read[H io.Reader, T any](w Wrapper[H, T], size int) Wrapper[H, []byte] {
	runtimex.Assert(size >= 0)
	return Do(w, func(handle H) ([]byte, error) {
		buf := make([]byte, size)
		count, err := handle.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return buf[:count], nil
	})
}

// ReadToEnd reads from the handle until EOF and yields all the bytes.
func ReadToEnd[H io.Reader, T any](w Wrapper[H, T]) Wrapper[H, []byte] {
	return Do(w, func(handle H) ([]byte, error) {
		return io.ReadAll(handle)
	})
}

// ReadToString reads from the handle until EOF and yields a string.
func ReadToString[H io.Reader, T any](w Wrapper[H, T]) Wrapper[H, string] {
	return Do(w, func(handle H) (string, error) {
		data, err := io.ReadAll(handle)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}
