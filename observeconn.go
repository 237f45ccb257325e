//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/conn.go
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/conn.go
//

package iochain

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/bassosimone/safeconn"
)

// observeConn wraps conn so that its I/O operations are logged.
//
// Reads, writes, and deadline changes are logged at [slog.LevelDebug],
// close at [slog.LevelInfo]. With [DefaultSLogger] nothing is emitted.
func observeConn(conn net.Conn, errClass ErrClassifier, logger SLogger, timeNow func() time.Time) net.Conn {
	return &observedConn{
		closeOnce: sync.Once{},
		conn:      conn,
		errClass:  errClass,
		laddr:     safeconn.LocalAddr(conn),
		logger:    logger,
		protocol:  safeconn.Network(conn),
		raddr:     safeconn.RemoteAddr(conn),
		timeNow:   timeNow,
	}
}

// observedConn is the [net.Conn] returned by [observeConn].
type observedConn struct {
	// closeOnce ensures that Close has "once" semantics.
	closeOnce sync.Once

	// conn is the underlying connection.
	conn net.Conn

	// errClass is the err classifier in use.
	errClass ErrClassifier

	// laddr is the cached local address.
	laddr string

	// logger is the [SLogger] in use.
	logger SLogger

	// protocol is the cached network protocol.
	protocol string

	// raddr is the cached remote address.
	raddr string

	// timeNow mocks [time.Now].
	timeNow func() time.Time
}

// endpointAttrs returns the attributes shared by all the events.
func (c *observedConn) endpointAttrs(attrs ...any) []any {
	return append(attrs,
		slog.String("localAddr", c.laddr),
		slog.String("protocol", c.protocol),
		slog.String("remoteAddr", c.raddr),
	)
}

// doneAttrs returns the attributes shared by all the *Done events.
func (c *observedConn) doneAttrs(t0 time.Time, err error, attrs ...any) []any {
	attrs = append(attrs,
		slog.Any("err", err),
		slog.String("errClass", c.errClass.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", c.timeNow()),
	)
	return c.endpointAttrs(attrs...)
}

// Close implements [net.Conn].
//
// Subsequent calls return [net.ErrClosed], consistent with Go's standard
// library behavior for closed connections.
func (c *observedConn) Close() (err error) {
	err = net.ErrClosed
	c.closeOnce.Do(func() {
		t0 := c.timeNow()
		c.logger.Info("closeStart", c.endpointAttrs(slog.Time("t", t0))...)
		err = c.conn.Close()
		c.logger.Info("closeDone", c.doneAttrs(t0, err)...)
	})
	return
}

// LocalAddr implements [net.Conn].
func (c *observedConn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Read implements [net.Conn].
func (c *observedConn) Read(buf []byte) (int, error) {
	t0 := c.timeNow()
	c.logger.Debug("readStart", c.endpointAttrs(
		slog.Int("ioBufferSize", len(buf)), slog.Time("t", t0))...)
	count, err := c.conn.Read(buf)
	c.logger.Debug("readDone", c.doneAttrs(t0, err, slog.Int("ioBytesCount", count))...)
	return count, err
}

// RemoteAddr implements [net.Conn].
func (c *observedConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// SetDeadline implements [net.Conn].
func (c *observedConn) SetDeadline(t time.Time) error {
	c.logDeadline("setDeadline", t)
	return c.conn.SetDeadline(t)
}

// SetReadDeadline implements [net.Conn].
func (c *observedConn) SetReadDeadline(t time.Time) error {
	c.logDeadline("setReadDeadline", t)
	return c.conn.SetReadDeadline(t)
}

// SetWriteDeadline implements [net.Conn].
func (c *observedConn) SetWriteDeadline(t time.Time) error {
	c.logDeadline("setWriteDeadline", t)
	return c.conn.SetWriteDeadline(t)
}

func (c *observedConn) logDeadline(event string, deadline time.Time) {
	c.logger.Debug(event, c.endpointAttrs(
		slog.Time("deadline", deadline), slog.Time("t", c.timeNow()))...)
}

// Write implements [net.Conn].
func (c *observedConn) Write(data []byte) (int, error) {
	t0 := c.timeNow()
	c.logger.Debug("writeStart", c.endpointAttrs(
		slog.Int("ioBufferSize", len(data)), slog.Time("t", t0))...)
	count, err := c.conn.Write(data)
	c.logger.Debug("writeDone", c.doneAttrs(t0, err, slog.Int("ioBytesCount", count))...)
	return count, err
}
