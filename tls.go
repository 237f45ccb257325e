//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/tlsdialer.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/tls.go
//

package iochain

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/runtimex"
	"github.com/bassosimone/safeconn"
)

// TLSEngine is the engine to create a new [TLSConn].
//
// By using an abstraction we allow for alternative TLS implementations
// and for unit testing the handshake without a peer.
type TLSEngine interface {
	// Client builds a new client [TLSConn].
	Client(conn net.Conn, config *tls.Config) TLSConn

	// Name returns the engine name.
	Name() string
}

// TLSEngineStdlib implements [TLSEngine] for the standard library.
//
// The zero value is ready to use.
type TLSEngineStdlib struct{}

var _ TLSEngine = TLSEngineStdlib{}

// Client implements [TLSEngine].
//
// This function uses [tls.Client] to build a new [*tls.Conn].
func (TLSEngineStdlib) Client(conn net.Conn, config *tls.Config) TLSConn {
	return tls.Client(conn, config)
}

// Name implements [TLSEngine].
//
// This function returns "stdlib".
func (TLSEngineStdlib) Name() string {
	return "stdlib"
}

// TLSConn abstracts over [*tls.Conn].
//
// By using an abstraction we allow for alternative TLS implementations.
type TLSConn interface {
	// ConnectionState returns the connection state.
	ConnectionState() tls.ConnectionState

	// HandshakeContext performs the handshake unless interrupted by the context.
	HandshakeContext(ctx context.Context) error

	// Embedding Conn means we can use this type as a [net.Conn].
	net.Conn
}

// NewTLSDialer returns a new [*TLSDialer] using the given [*tls.Config].
//
// The cfg argument contains the common configuration for iochain handles.
//
// The network argument is passed to the underlying [*ConnectDialer] and
// should be "tcp" or one of its address-family specific variants.
//
// The tlsConfig argument is the TLS configuration to use. This function
// panics if tlsConfig is nil.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewTLSDialer(cfg *Config, network string, tlsConfig *tls.Config, logger SLogger) *TLSDialer {
	runtimex.Assert(tlsConfig != nil)
	return &TLSDialer{
		Config:        tlsConfig,
		Connect:       NewConnectDialer(cfg, network, logger),
		Engine:        TLSEngineStdlib{},
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// TLSDialer dials an address and performs a TLS handshake over the
// resulting connection.
//
// When [tls.Config.ServerName] is empty, the host part of the address
// is used as the server name.
//
// Returns either a valid [TLSConn] or an error, never both. On handshake
// failure the connection is closed before returning.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [DialAddr].
type TLSDialer struct {
	// Config contains the [*tls.Config] configuration to use.
	//
	// Set by [NewTLSDialer] to the user-provided [*tls.Config] pointer.
	Config *tls.Config

	// Connect is the [AddrDialer] creating the underlying connection.
	//
	// Set by [NewTLSDialer] to a [*ConnectDialer] using the same config.
	Connect AddrDialer[net.Conn]

	// Engine is the [TLSEngine] to use to handshake.
	//
	// Set by [NewTLSDialer] to [TLSEngineStdlib].
	Engine TLSEngine

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewTLSDialer] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewTLSDialer] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewTLSDialer] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ AddrDialer[TLSConn] = &TLSDialer{}

// DialAddr implements [AddrDialer].
func (op *TLSDialer) DialAddr(ctx context.Context, address string) (TLSConn, error) {
	conn, err := op.Connect.DialAddr(ctx, address)
	if err != nil {
		return nil, err
	}
	config := op.tlsConfig(address)
	tconn := op.Engine.Client(conn, config)
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.logHandshakeStart(conn, t0, deadline, config)
	err = tconn.HandshakeContext(ctx)
	state := tconn.ConnectionState()
	op.logHandshakeDone(conn, t0, deadline, config, err, state)
	if err != nil {
		tconn.Close()
		return nil, err
	}
	return tconn, nil
}

func (op *TLSDialer) tlsConfig(address string) *tls.Config {
	runtimex.Assert(op.Config != nil)
	config := op.Config.Clone()
	config.Time = op.TimeNow
	if config.ServerName == "" {
		if host, _, err := net.SplitHostPort(address); err == nil {
			config.ServerName = host
		}
	}
	return config
}

// handshakeAttrs returns the attributes shared by the handshake events.
func (op *TLSDialer) handshakeAttrs(
	conn net.Conn, deadline time.Time, config *tls.Config, attrs ...any) []any {
	return append(attrs,
		slog.Time("deadline", deadline),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.String("tlsEngineName", op.Engine.Name()),
		slog.Any("tlsOfferedProtocols", config.NextProtos),
		slog.String("tlsServerName", config.ServerName),
		slog.Bool("tlsSkipVerify", config.InsecureSkipVerify),
	)
}

func (op *TLSDialer) logHandshakeStart(conn net.Conn, t0 time.Time, deadline time.Time, config *tls.Config) {
	op.Logger.Info("tlsHandshakeStart", op.handshakeAttrs(conn, deadline, config, slog.Time("t", t0))...)
}

func (op *TLSDialer) logHandshakeDone(conn net.Conn,
	t0 time.Time, deadline time.Time, config *tls.Config, err error, state tls.ConnectionState) {
	op.Logger.Info("tlsHandshakeDone", op.handshakeAttrs(conn, deadline, config,
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
		slog.String("tlsCipherSuite", tls.CipherSuiteName(state.CipherSuite)),
		slog.String("tlsNegotiatedProtocol", state.NegotiatedProtocol),
		slog.Int("tlsPeerCertsCount", len(state.PeerCertificates)),
		slog.String("tlsVersion", tls.VersionName(state.Version)),
	)...)
}
