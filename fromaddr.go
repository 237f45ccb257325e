// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"context"
	"io"
	"net"
)

// AddrDialer constructs a handle of type H connected to a network address.
//
// Go cannot select a constructor from the desired result type, so
// [FromAddr] takes the AddrDialer explicitly and H follows from it.
type AddrDialer[H any] interface {
	DialAddr(ctx context.Context, address string) (H, error)
}

// AddrDialerFunc adapts a function to the [AddrDialer] interface.
type AddrDialerFunc[H any] func(ctx context.Context, address string) (H, error)

var _ AddrDialer[net.Conn] = AddrDialerFunc[net.Conn](nil)

// DialAddr implements [AddrDialer].
func (f AddrDialerFunc[H]) DialAddr(ctx context.Context, address string) (H, error) {
	return f(ctx, address)
}

// FromAddr dials address using dialer and wraps the result using [Wrap].
//
// The ctx argument bounds the dial only. Operations on the
// resulting handle block until the handle itself times out or fails.
func FromAddr[H any](ctx context.Context, dialer AddrDialer[H], address string) Wrapper[H, Unit] {
	return Wrap(dialer.DialAddr(ctx, address))
}

// BufferedDialer returns an [AddrDialer] adding a read buffer to the
// handles constructed by dialer, so they can be used with buffered reads.
//
// Closing the returned [*BufHandle] closes the inner handle.
func BufferedDialer[H io.Reader](dialer AddrDialer[H]) AddrDialer[*BufHandle[H]] {
	return AddrDialerFunc[*BufHandle[H]](func(ctx context.Context, address string) (*BufHandle[H], error) {
		handle, err := dialer.DialAddr(ctx, address)
		if err != nil {
			return nil, err
		}
		return NewBufHandle(handle), nil
	})
}
