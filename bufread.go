// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"strings"
)

// BufferedReader abstracts the [*bufio.Reader] behavior.
//
// By depending on an abstraction we allow any buffered handle to take part
// in buffered reads: [*bufio.Reader], [*BufHandle], [*Stdio], and
// user-defined types.
type BufferedReader interface {
	io.Reader

	// Buffered returns the number of bytes that can be read from the buffer.
	Buffered() int

	// Peek returns the next n bytes without advancing the reader.
	Peek(n int) ([]byte, error)

	// Discard skips the next n bytes.
	Discard(n int) (int, error)

	// ReadBytes reads until the first occurrence of delim.
	ReadBytes(delim byte) ([]byte, error)

	// ReadString reads until the first occurrence of delim.
	ReadString(delim byte) (string, error)
}

// FillBuf fills the handle buffer when it is empty.
//
// The payload is the number of bytes available in the buffer, which is
// zero at end of stream. The buffered bytes themselves are not exposed:
// read them with the other operations.
func FillBuf[H BufferedReader, T any](w Wrapper[H, T]) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		if handle.Buffered() == 0 {
			if _, err := handle.Peek(1); err != nil && !errors.Is(err, io.EOF) {
				return 0, err
			}
		}
		return handle.Buffered(), nil
	})
}

// Consume marks up to amount buffered bytes as consumed.
//
// The amount is clamped to the number of buffered bytes, so Consume never
// reads from the underlying stream. The payload is [Unit].
func Consume[H BufferedReader, T any](w Wrapper[H, T], amount int) Wrapper[H, Unit] {
	return Do(w, func(handle H) (Unit, error) {
		amount = max(0, min(amount, handle.Buffered()))
		_, err := handle.Discard(amount)
		return Unit{}, err
	})
}

// ReadUntil reads until delim is found or the stream ends.
//
// The payload includes delim when it was found. Reaching the end of the
// stream is not a failure: the payload then holds the remaining bytes.
func ReadUntil[H BufferedReader, T any](w Wrapper[H, T], delim byte) Wrapper[H, []byte] {
	return Do(w, func(handle H) ([]byte, error) {
		data, err := handle.ReadBytes(delim)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return data, nil
	})
}

// ReadLine reads a line including the trailing newline, if any.
//
// An empty payload means the stream has ended.
func ReadLine[H BufferedReader, T any](w Wrapper[H, T]) Wrapper[H, string] {
	return Do(w, func(handle H) (string, error) {
		line, err := handle.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return line, nil
	})
}

// Split returns a sequence of the chunks of the handle separated by delim.
//
// The sequence is lazy, forward-only, and ends at end of stream. Each chunk
// excludes delim. A read error is yielded once and ends the sequence.
//
// When w is bad there is no handle to read from, so the pending error is
// returned instead of a sequence, and the handle is released. Otherwise
// the handle now belongs to the sequence, which releases it as soon as
// ranging over it stops, including when the caller breaks early. Ranging
// again yields nothing. A sequence that is never ranged over does not
// release the handle.
func Split[H BufferedReader, T any](w Wrapper[H, T], delim byte) (iter.Seq2[[]byte, error], error) {
	if w.err != nil {
		_ = release(w.handle)
		return nil, w.err
	}
	handle, released := w.handle, false
	return func(yield func([]byte, error) bool) {
		if released {
			return
		}
		defer func() {
			released = true
			_ = release(handle)
		}()
		for {
			chunk, err := handle.ReadBytes(delim)
			if err != nil && !errors.Is(err, io.EOF) {
				yield(nil, err)
				return
			}
			if len(chunk) == 0 {
				return
			}
			chunk = bytes.TrimSuffix(chunk, []byte{delim})
			if !yield(chunk, nil) || err != nil {
				return
			}
		}
	}, nil
}

// Lines returns a sequence of the lines of the handle.
//
// Lines behaves like [Split] with a newline delimiter and additionally
// strips a trailing carriage return, so "\r\n" line endings are accepted.
func Lines[H BufferedReader, T any](w Wrapper[H, T]) (iter.Seq2[string, error], error) {
	chunks, err := Split(w, '\n')
	if err != nil {
		return nil, err
	}
	return func(yield func(string, error) bool) {
		for chunk, err := range chunks {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(strings.TrimSuffix(string(chunk), "\r"), nil) {
				return
			}
		}
	}, nil
}
