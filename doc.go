// SPDX-License-Identifier: GPL-3.0-or-later

// Package iochain chains fallible I/O operations on a single owned handle.
//
// # Core Abstraction
//
// The package is built around a single type:
//
//	type Wrapper[H, T any] struct { /* handle, payload or error */ }
//
// A [Wrapper] owns one handle H (a file, a network connection, the
// standard streams, or any user type) and is either good, holding the
// payload T produced by the most recent operation, or bad, holding the
// first error encountered along the chain. Operations on a bad Wrapper do
// not touch the handle: they propagate the same handle and error, so a
// chain needs a single error check at the end.
//
//	data, err := iochain.ReadToString(iochain.FromPath[*os.File](iochain.OSOpen, "/etc/hosts")).ToData()
//
// # Construction
//
//   - [Wrap] and [WrapFunc]: wrap the (handle, error) result of any constructor
//   - [Good] and [Bad]: build a Wrapper in a given state, e.g., inside callbacks
//   - [FromPath]: construct a handle from a path using a [PathOpener]
//     ([OSOpen], [OSCreate], [*FileOpener], [Buffered])
//   - [FromAddr]: construct a handle from a network address using an
//     [AddrDialer] ([*ConnectDialer], [*TLSDialer], [BufferedDialer])
//   - [Default]: the process standard streams as a [*Stdio] handle
//
// Go cannot select a constructor from the type a call should return, so the
// opener or dialer is passed explicitly and the handle type follows from it.
//
// # Combinators
//
//   - [And] and [Wrapper.Or]: pivot to another Wrapper on success or failure
//   - [AndThen] and [Wrapper.OrElse]: continue with a callback on success,
//     or recover with a callback on failure
//   - [Wrapper.Ignore]: drop the payload
//   - [Do]: delegate an arbitrary operation to the handle
//   - [Step], [Run], [Compose2] through [Compose6]: build chains ahead of time
//
// Go methods cannot introduce type parameters, so the operations changing
// the payload type are functions rather than methods.
//
// # Delegated Operations
//
// Each operation requires the capability it uses from the handle type:
//
//   - [io.Reader]: [Read], [ReadToEnd], [ReadToString]
//   - [io.Writer]: [Write], [WriteAll], [WriteString], [WriteFmt], [PrintLine]
//   - [io.Seeker]: [Seek]
//   - [BufferedReader]: [FillBuf], [Consume], [ReadUntil], [ReadLine],
//     [Split], [Lines]
//   - [Stderr]: [WriteToErr], [WriteAllToErr], [WriteFmtToErr]
//
// [Split] and [Lines] return a lazy sequence instead of a Wrapper. When the
// Wrapper is bad they return its error, since a sequence cannot carry it.
//
// # Ownership
//
// Every function taking a Wrapper consumes it: the handle now belongs to the
// returned value, and the consumed Wrapper MUST NOT be used again. Go does
// not enforce this, so it is a contract.
//
// A chain ends with a terminal projection: [Wrapper.Ok] (handle and payload),
// [Wrapper.ToData] (payload), [Wrapper.ToHandle] (handle), or [Wrapper.Close]
// (nothing). Handles implementing [io.Closer] are closed whenever a projection
// or combinator discards them, or when ranging over a [Split] or [Lines]
// sequence stops; [*Stdio] is never closed. Handles are compared to decide
// whether one is discarded, so a value handle with the same fields as the
// kept one is not closed: use pointer handles when identity matters.
//
// # Errors
//
// The error carried by a bad Wrapper is the error returned by the failing
// handle operation, neither wrapped nor translated, and it is the first one
// in the chain. Combinators never log, retry, or suppress errors: use
// [Wrapper.Or] and [Wrapper.OrElse] to implement such policies.
//
// # Observability
//
// A Wrapper does not log. Handle constructors ([*FileOpener], [*ConnectDialer],
// [*TLSDialer]) support structured logging via [SLogger] (compatible with
// [log/slog]) and dialed connections log their I/O. By default, logging is
// disabled. Errors in log events are classified by an [ErrClassifier]; see
// the errclass subpackage. Use [NewSpanID] to correlate the events of a handle.
//
// # Concurrency
//
// A Wrapper is owned by a single goroutine at a time and every operation
// blocks until the handle operation completes. Timeouts are the handle's
// business (e.g., [net.Conn] deadlines or [ConnectDialer.CloseOnCancel]).
package iochain
