// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Stderr is implemented by handles with a separate error stream.
//
// Handles implementing Stderr can be used with [WriteToErr],
// [WriteAllToErr], and [WriteFmtToErr].
type Stderr interface {
	Stderr() io.Writer
}

// Stdio is a handle pairing a buffered input stream with an output stream
// and an error stream.
//
// Reads come from the input stream, writes go to the output stream, and
// the *ToErr operations write to the error stream. Stdio implements
// [BufferedReader], [io.Writer], and [Stderr].
//
// Stdio does not implement [io.Closer]: a [Wrapper] never closes it.
//
// Construct using [NewStdio] or obtain the process one through [Default].
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

var (
	_ BufferedReader = &Stdio{}
	_ io.Writer      = &Stdio{}
	_ Stderr         = &Stdio{}
)

// NewStdio returns a new [*Stdio] reading from in and writing to out and errOut.
func NewStdio(in io.Reader, out, errOut io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// processStdio is shared so that input buffered by one chain is not lost
// when another chain starts reading.
var processStdio = sync.OnceValue(func() *Stdio {
	return NewStdio(os.Stdin, os.Stdout, os.Stderr)
})

// Default returns a good [Wrapper] around the process standard streams.
//
// All the wrappers returned by Default share the same [*Stdio].
func Default() Wrapper[*Stdio, Unit] {
	return Good(processStdio(), Unit{})
}

// Read implements [io.Reader].
func (s *Stdio) Read(buf []byte) (int, error) {
	return s.in.Read(buf)
}

// Buffered implements [BufferedReader].
func (s *Stdio) Buffered() int {
	return s.in.Buffered()
}

// Peek implements [BufferedReader].
func (s *Stdio) Peek(n int) ([]byte, error) {
	return s.in.Peek(n)
}

// Discard implements [BufferedReader].
func (s *Stdio) Discard(n int) (int, error) {
	return s.in.Discard(n)
}

// ReadBytes implements [BufferedReader].
func (s *Stdio) ReadBytes(delim byte) ([]byte, error) {
	return s.in.ReadBytes(delim)
}

// ReadString implements [BufferedReader].
func (s *Stdio) ReadString(delim byte) (string, error) {
	return s.in.ReadString(delim)
}

// Write implements [io.Writer].
func (s *Stdio) Write(data []byte) (int, error) {
	return s.out.Write(data)
}

// Stderr implements [Stderr].
func (s *Stdio) Stderr() io.Writer {
	return s.errOut
}

// WriteToErr performs a single Write of buf on the handle error stream.
//
// The payload is the number of bytes written.
func WriteToErr[H Stderr, T any](w Wrapper[H, T], buf []byte) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		return handle.Stderr().Write(buf)
	})
}

// WriteAllToErr writes the whole buf to the handle error stream.
//
// See [WriteAll] for the semantics. The payload is [Unit].
func WriteAllToErr[H Stderr, T any](w Wrapper[H, T], buf []byte) Wrapper[H, Unit] {
	return Do(w, func(handle H) (Unit, error) {
		return Unit{}, writeAll(handle.Stderr(), buf)
	})
}

// WriteFmtToErr writes formatted text to the handle error stream.
//
// The payload is the number of bytes written.
func WriteFmtToErr[H Stderr, T any](w Wrapper[H, T], format string, args ...any) Wrapper[H, int] {
	return Do(w, func(handle H) (int, error) {
		return fmt.Fprintf(handle.Stderr(), format, args...)
	})
}
