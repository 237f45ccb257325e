//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/netxlite/dialer.go
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/dialer.go
//

package iochain

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/safeconn"
)

// Dialer abstracts the [*net.Dialer] behavior.
//
// By making [*ConnectDialer] depend on an abstract implementation we
// allow for unit testing and for using alternative dialers.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// NewConnectDialer returns a new [*ConnectDialer] with default dialer.
//
// The cfg argument contains the common configuration for iochain handles.
//
// The network argument must be either "tcp" or "udp" (or one of their
// address-family specific variants such as "tcp4").
//
// The logger argument is the [SLogger] to use for structured logging.
func NewConnectDialer(cfg *Config, network string, logger SLogger) *ConnectDialer {
	return &ConnectDialer{
		CloseOnCancel: false,
		Dialer:        cfg.Dialer,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Network:       network,
		TimeNow:       cfg.TimeNow,
	}
}

// ConnectDialer dials an address using a configured network.
//
// Returns either a valid [net.Conn] or an error, never both. The returned
// connection logs its I/O operations using the configured [SLogger].
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [DialAddr].
type ConnectDialer struct {
	// CloseOnCancel binds the connection lifetime to the dial context.
	//
	// When true, the connection is closed as soon as the context passed to
	// [DialAddr] is done, causing any in-progress I/O to fail. Use this when
	// the whole chain runs under that context (e.g., a CLI tool using
	// [signal.NotifyContext]). Do not use it when the connection may
	// outlive the context.
	//
	// Set by [NewConnectDialer] to false.
	CloseOnCancel bool

	// Dialer is the [Dialer] to use.
	//
	// Set by [NewConnectDialer] from [Config.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConnectDialer] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewConnectDialer] to the user-provided logger.
	Logger SLogger

	// Network is the network to use (e.g., "tcp" or "udp").
	//
	// Set by [NewConnectDialer] to the user-provided value.
	Network string

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewConnectDialer] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ AddrDialer[net.Conn] = &ConnectDialer{}

// DialAddr implements [AddrDialer].
func (op *ConnectDialer) DialAddr(ctx context.Context, address string) (net.Conn, error) {
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.logConnectStart(address, t0, deadline)
	conn, err := op.Dialer.DialContext(ctx, op.Network, address)
	op.logConnectDone(address, t0, deadline, conn, err)
	if err != nil {
		return nil, err
	}
	conn = observeConn(conn, op.ErrClassifier, op.Logger, op.TimeNow)
	if op.CloseOnCancel {
		conn = watchCancel(ctx, conn)
	}
	return conn, nil
}

func (op *ConnectDialer) logConnectStart(address string, t0 time.Time, deadline time.Time) {
	op.Logger.Info(
		"connectStart",
		slog.Time("deadline", deadline),
		slog.String("protocol", op.Network),
		slog.String("remoteAddr", address),
		slog.Time("t", t0),
	)
}

func (op *ConnectDialer) logConnectDone(
	address string, t0 time.Time, deadline time.Time, conn net.Conn, err error) {
	op.Logger.Info(
		"connectDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", op.Network),
		slog.String("remoteAddr", address),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
