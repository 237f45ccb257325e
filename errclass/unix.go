//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package errclass

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errnos maps the file-related errno values to their class.
var errnos = map[syscall.Errno]string{
	unix.EBADF:   EBADF,
	unix.EISDIR:  EISDIR,
	unix.ENOTDIR: ENOTDIR,
	unix.ENOSPC:  ENOSPC,
	unix.EPIPE:   EPIPE,
}

func classifyErrno(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	class, found := errnos[errno]
	return class, found
}
