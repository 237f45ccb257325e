// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"context"
	"net"
)

// watchCancel arranges for conn to be closed when ctx is done (cancelled or
// deadline exceeded), which makes blocking I/O on conn fail promptly.
//
// Closing the returned connection unregisters the watcher and closes conn,
// so no goroutine leaks even if ctx is never done. Closing twice is fine
// because [net.Conn] implementations return [net.ErrClosed].
func watchCancel(ctx context.Context, conn net.Conn) net.Conn {
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	return &cancelWatchedConn{Conn: conn, stop: stop}
}

// cancelWatchedConn wraps a [net.Conn] with a context cancellation watcher.
type cancelWatchedConn struct {
	net.Conn
	stop func() bool
}

// Close unregisters the context watcher and closes the underlying connection.
func (c *cancelWatchedConn) Close() error {
	c.stop()
	return c.Conn.Close()
}
