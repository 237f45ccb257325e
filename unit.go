// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

// Unit is a type not containing any value (analogous to an
// explicit `void` type in C and C++).
//
// A [Wrapper] carries Unit as its payload when the most recent
// operation produced nothing worth keeping: right after construction,
// after [WriteAll], after [Consume], or after [Wrapper.Ignore].
type Unit struct{}
