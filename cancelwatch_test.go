// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/bassosimone/netstub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSignallingConn returns a conn that signals on the returned channel when closed.
func newSignallingConn() (*netstub.FuncConn, chan bool) {
	done := make(chan bool, 4)
	conn := newMinimalConn()
	conn.CloseFunc = func() error {
		done <- true
		return nil
	}
	return conn, done
}

// Closing the watched conn delegates to the underlying conn.
func TestWatchCancelClose(t *testing.T) {
	conn, done := newSignallingConn()

	watched := watchCancel(context.Background(), conn)

	require.NoError(t, watched.Close())
	assert.Len(t, done, 1)
}

// Cancelling the context closes the underlying conn.
func TestWatchCancelClosesOnCancel(t *testing.T) {
	conn, done := newSignallingConn()
	ctx, cancel := context.WithCancel(context.Background())

	_ = watchCancel(ctx, conn)
	assert.Len(t, done, 0, "connection should not be closed yet")

	cancel()

	assert.Eventually(t, func() bool { return len(done) == 1 }, time.Second, 10*time.Millisecond)
}

// An already cancelled context closes the conn right away.
func TestWatchCancelAlreadyCancelled(t *testing.T) {
	conn, done := newSignallingConn()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = watchCancel(ctx, conn)

	assert.Eventually(t, func() bool { return len(done) == 1 }, time.Second, 10*time.Millisecond)
}

// Closing first unregisters the watcher, so a later cancel does not close again.
func TestWatchCancelCloseUnregistersWatcher(t *testing.T) {
	conn, done := newSignallingConn()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watched := watchCancel(ctx, conn)
	require.NoError(t, watched.Close())

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, done, 1)
}

// With CloseOnCancel, a cancelled chain fails instead of blocking forever.
func TestConnectDialerCloseOnCancelScenario(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	cfg := NewConfig()
	cfg.Dialer = &netstub.FuncDialer{
		DialContextFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			return client, nil
		},
	}
	dialer := NewConnectDialer(cfg, "tcp", DefaultSLogger())
	dialer.CloseOnCancel = true

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Nobody writes on server, so the read only returns once ctx is done.
	read := Read(FromAddr[net.Conn](ctx, dialer, "127.0.0.1:7"), 16)

	require.True(t, read.IsBad())
	assert.ErrorIs(t, read.Close(), net.ErrClosed, "the watcher already closed the conn")
}
