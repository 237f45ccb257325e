// SPDX-License-Identifier: GPL-3.0-or-later

// Package errclass classifies the errors returned by I/O handles.
//
// It recognizes the [io] and [io/fs] sentinel errors and common
// file-related errno values, and defers everything else (timeouts,
// connection errors, DNS errors) to [github.com/bassosimone/errclass].
package errclass

import (
	"errors"
	"io"
	"io/fs"
	"net"

	neterrclass "github.com/bassosimone/errclass"
)

const (
	// EOF is the class of [io.EOF].
	EOF = "EOF"

	// EUNEXPECTEDEOF is the class of [io.ErrUnexpectedEOF].
	EUNEXPECTEDEOF = "EUNEXPECTEDEOF"

	// ESHORTWRITE is the class of [io.ErrShortWrite].
	ESHORTWRITE = "ESHORTWRITE"

	// ECLOSED is the class of [fs.ErrClosed], [net.ErrClosed], and [io.ErrClosedPipe].
	ECLOSED = "ECLOSED"

	// ENOENT is the class of [fs.ErrNotExist].
	ENOENT = "ENOENT"

	// EEXIST is the class of [fs.ErrExist].
	EEXIST = "EEXIST"

	// EACCES is the class of [fs.ErrPermission].
	EACCES = "EACCES"

	// EBADF means the handle is not open for the requested operation.
	EBADF = "EBADF"

	// EISDIR means the path refers to a directory.
	EISDIR = "EISDIR"

	// ENOTDIR means a path component is not a directory.
	ENOTDIR = "ENOTDIR"

	// ENOSPC means there is no space left on the device.
	ENOSPC = "ENOSPC"

	// EPIPE means the reading end of a pipe or socket has gone away.
	EPIPE = "EPIPE"

	// EUNSUPPORTED is the class of [errors.ErrUnsupported].
	EUNSUPPORTED = "EUNSUPPORTED"

	// ETIMEDOUT is the timeout class of [github.com/bassosimone/errclass].
	ETIMEDOUT = neterrclass.ETIMEDOUT

	// EGENERIC is the class of errors no classifier recognizes.
	EGENERIC = neterrclass.EGENERIC
)

// sentinels maps sentinel errors to their class.
var sentinels = []struct {
	err   error
	class string
}{
	{io.EOF, EOF},
	{io.ErrUnexpectedEOF, EUNEXPECTEDEOF},
	{io.ErrShortWrite, ESHORTWRITE},
	{io.ErrClosedPipe, ECLOSED},
	{fs.ErrClosed, ECLOSED},
	{net.ErrClosed, ECLOSED},
	{fs.ErrNotExist, ENOENT},
	{fs.ErrExist, EEXIST},
	{fs.ErrPermission, EACCES},
	{errors.ErrUnsupported, EUNSUPPORTED},
}

// New returns the class of err, or an empty string if err is nil.
//
// Unknown errors are classified by [github.com/bassosimone/errclass],
// which returns its generic class for anything it does not recognize.
func New(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range sentinels {
		if errors.Is(err, entry.err) {
			return entry.class
		}
	}
	if class, found := classifyErrno(err); found {
		return class
	}
	return neterrclass.New(err)
}
