// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bassosimone/netstub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneByteWriter writes at most one byte per call.
type oneByteWriter struct {
	bytes.Buffer
}

func (w *oneByteWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	return w.Buffer.Write(data[:1])
}

// stuckWriter never makes progress and never fails.
type stuckWriter struct{}

func (stuckWriter) Write(data []byte) (int, error) {
	return 0, nil
}

// overcountingWriter claims to write more bytes than it was given.
type overcountingWriter struct{}

func (overcountingWriter) Write(data []byte) (int, error) {
	return len(data) + 5, nil
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer

	w := Write(Good(&buf, Unit{}), []byte("hello"))

	require.NoError(t, w.Err())
	assert.Equal(t, 5, w.data)
	assert.Equal(t, "hello", buf.String())
}

func TestWriteAll(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// writer is the handle to write to.
		writer io.Writer

		// wantErr is the expected error or nil.
		wantErr error
	}{
		{
			name:   "single write",
			writer: &bytes.Buffer{},
		},

		{
			name:   "partial writes are retried",
			writer: &oneByteWriter{},
		},

		{
			name:    "no progress",
			writer:  stuckWriter{},
			wantErr: io.ErrShortWrite,
		},

		{
			name:    "count larger than the buffer",
			writer:  overcountingWriter{},
			wantErr: errInvalidWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WriteAll(Good(tt.writer, 0), []byte("hello"))

			if tt.wantErr != nil {
				require.ErrorIs(t, w.Err(), tt.wantErr)
				return
			}
			require.NoError(t, w.Err())
			assert.Equal(t, Unit{}, w.data)
			assert.Equal(t, "hello", tt.writer.(interface{ String() string }).String())
		})
	}
}

// Consecutive WriteAll calls append in order.
func TestWriteAllSequenceScenario(t *testing.T) {
	var buf bytes.Buffer

	w := WriteAll(WriteAll(Good(&buf, 0), []byte("first ")), []byte("second"))

	require.NoError(t, w.Err())
	assert.Equal(t, Unit{}, w.data)
	assert.Equal(t, "first second", buf.String())
}

// The first failing write stops the chain and later writes are never attempted.
func TestWriteAllSequenceFailureScenario(t *testing.T) {
	writes := 0
	conn := newMinimalConn()
	conn.WriteFunc = func(b []byte) (int, error) {
		writes++
		return 0, errMockedOp
	}

	w := WriteAll(WriteAll(Good(conn, 0), []byte("first ")), []byte("second"))

	require.ErrorIs(t, w.Err(), errMockedOp)
	assert.Same(t, conn, w.handle)
	assert.Equal(t, 1, writes)
}

// Delegated writes on a bad wrapper never reach the handle.
func TestWriteFamilyShortCircuit(t *testing.T) {
	conn := newUntouchableConn(t)
	bad := Bad[*netstub.FuncConn, Unit](conn, errMockedInput)

	results := []error{
		Write(bad, []byte("x")).Err(),
		WriteAll(bad, []byte("x")).Err(),
		WriteString(bad, "x").Err(),
		WriteFmt(bad, "%d", 1).Err(),
		PrintLine(bad, "x").Err(),
	}

	for _, err := range results {
		assert.ErrorIs(t, err, errMockedInput)
	}
}

func TestWriteString(t *testing.T) {
	var buf bytes.Buffer

	w := WriteString(Good(&buf, Unit{}), "hello")

	require.NoError(t, w.Err())
	assert.Equal(t, 5, w.data)
	assert.Equal(t, "hello", buf.String())
}

func TestWriteFmt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer

		w := WriteFmt(Good(&buf, Unit{}), "%s=%d", "answer", 42)

		require.NoError(t, w.Err())
		assert.Equal(t, len("answer=42"), w.data)
		assert.Equal(t, "answer=42", buf.String())
	})

	t.Run("failure", func(t *testing.T) {
		conn := newMinimalConn()
		conn.WriteFunc = func(b []byte) (int, error) {
			return 0, errMockedOp
		}

		w := WriteFmt(Good(conn, Unit{}), "%d", 42)

		require.ErrorIs(t, w.Err(), errMockedOp)
	})
}

func TestPrintLine(t *testing.T) {
	var buf bytes.Buffer

	w := PrintLine(PrintLine(Good(&buf, Unit{}), "one"), "two")

	require.NoError(t, w.Err())
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestWriteError(t *testing.T) {
	wantErr := errors.New("broken pipe")
	conn := newMinimalConn()
	conn.WriteFunc = func(b []byte) (int, error) {
		return 0, wantErr
	}

	w := Write(Good(conn, 12), []byte("hello"))

	require.ErrorIs(t, w.Err(), wantErr)
	assert.Equal(t, 0, w.data)
}
