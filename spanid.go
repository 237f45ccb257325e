// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying a span.
//
// Here a span is the lifetime of one handle: its construction, the chain
// of operations performed on it, and its release. Attach the span ID to
// the logger passed to the handle constructor using [*slog.Logger.With]
// so that all the events concerning the handle can be correlated.
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
