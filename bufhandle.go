// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"bufio"
	"errors"
	"io"
)

// BufHandle adds a read buffer to an inner handle.
//
// BufHandle implements [BufferedReader] through the embedded
// [*bufio.Reader]. It also implements [io.Writer], [io.Closer], and
// [io.Seeker] by delegating to the inner handle when it supports them, so a
// buffered connection can still be written to.
//
// The inner handle is owned by the BufHandle: reading from it directly
// bypasses the buffer and loses data.
type BufHandle[H io.Reader] struct {
	*bufio.Reader
	inner H
}

var (
	_ BufferedReader    = &BufHandle[io.Reader]{}
	_ io.ReadSeekCloser = &BufHandle[io.Reader]{}
	_ io.Writer         = &BufHandle[io.Reader]{}
)

// NewBufHandle returns a new [*BufHandle] with the default buffer size.
func NewBufHandle[H io.Reader](inner H) *BufHandle[H] {
	return &BufHandle[H]{Reader: bufio.NewReader(inner), inner: inner}
}

// NewBufHandleSize returns a new [*BufHandle] whose buffer has at least size bytes.
func NewBufHandleSize[H io.Reader](inner H, size int) *BufHandle[H] {
	return &BufHandle[H]{Reader: bufio.NewReaderSize(inner, size), inner: inner}
}

// Inner returns the inner handle.
func (b *BufHandle[H]) Inner() H {
	return b.inner
}

// Close closes the inner handle if it implements [io.Closer].
func (b *BufHandle[H]) Close() error {
	return release(b.inner)
}

// Write implements [io.Writer] by writing to the inner handle. Writes
// are not buffered.
//
// Returns [errors.ErrUnsupported] if the inner handle is not an [io.Writer].
func (b *BufHandle[H]) Write(data []byte) (int, error) {
	writer, ok := any(b.inner).(io.Writer)
	if !ok {
		return 0, errors.ErrUnsupported
	}
	return writer.Write(data)
}

// Seek implements [io.Seeker] by seeking the inner handle and dropping the buffer.
//
// With [io.SeekCurrent], offset is relative to the logical position of the
// reader, which lags the inner handle by the number of buffered bytes.
//
// Returns [errors.ErrUnsupported] if the inner handle is not an [io.Seeker].
func (b *BufHandle[H]) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := any(b.inner).(io.Seeker)
	if !ok {
		return 0, errors.ErrUnsupported
	}
	if whence == io.SeekCurrent {
		offset -= int64(b.Buffered())
	}
	pos, err := seeker.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	b.Reset(b.inner)
	return pos, nil
}
