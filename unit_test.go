// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	var u Unit
	assert.Equal(t, Unit{}, u)

	// Operations without a meaningful result carry Unit.
	w := WriteAll(Good(&bytes.Buffer{}, 0), []byte("x"))
	assert.Equal(t, Unit{}, w.data)
}
