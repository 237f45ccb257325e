//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errclass

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// errnos maps the file-related error codes to their class.
var errnos = map[syscall.Errno]string{
	windows.ERROR_INVALID_HANDLE:   EBADF,
	windows.ERROR_DIRECTORY:        ENOTDIR,
	windows.ERROR_DISK_FULL:        ENOSPC,
	windows.ERROR_HANDLE_DISK_FULL: ENOSPC,
	windows.ERROR_BROKEN_PIPE:      EPIPE,
	windows.ERROR_NO_DATA:          EPIPE,
}

func classifyErrno(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	class, found := errnos[errno]
	return class, found
}
