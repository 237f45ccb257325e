// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"errors"
	"fmt"
	"io"
)

// Write performs a single Write of buf on the handle.
//
// The payload is the number of bytes written.
func Write[H io.Writer, T any](w Wrapper[H, T], buf []byte) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		return handle.Write(buf)
	})
}

// WriteAll writes the whole buf to the handle, retrying partial writes.
//
// A write that makes no progress without returning an error fails
// with [io.ErrShortWrite], and a write claiming a negative count or more
// bytes than it was given fails as well. The payload is [Unit].
func WriteAll[H io.Writer, T any](w Wrapper[H, T], buf []byte) Wrapper[H, Unit] {
	return Do(w, func(handle H) (Unit, error) {
		return Unit{}, writeAll(handle, buf)
	})
}

// errInvalidWrite means that a write returned an impossible count.
var errInvalidWrite = errors.New("invalid write result")

func writeAll(writer io.Writer, buf []byte) error {
	for len(buf) > 0 {
		count, err := writer.Write(buf)
		if err != nil {
			return err
		}
		if count < 0 || count > len(buf) {
			return errInvalidWrite
		}
		if count == 0 {
			return io.ErrShortWrite
		}
		buf = buf[count:]
	}
	return nil
}

// WriteString writes s to the handle using [io.WriteString].
//
// The payload is the number of bytes written.
func WriteString[H io.Writer, T any](w Wrapper[H, T], s string) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		return io.WriteString(handle, s)
	})
}

// WriteFmt writes formatted text to the handle using [fmt.Fprintf].
//
// The payload is the number of bytes written.
func WriteFmt[H io.Writer, T any](w Wrapper[H, T], format string, args ...any) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		return fmt.Fprintf(handle, format, args...)
	})
}

// PrintLine writes s followed by a newline using [WriteAll].
//
// To print formatted text, pass the result of [fmt.Sprintf] as s.
func PrintLine[H io.Writer, T any](w Wrapper[H, T], s string) Wrapper[H, Unit] {
	return WriteAll(w, []byte(s+"\n"))
}
