// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeek(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reader := strings.NewReader("hello world")

		w := Seek(Good(reader, Unit{}), 6, io.SeekStart)

		require.NoError(t, w.Err())
		assert.Equal(t, int64(6), w.data)

		read := ReadToString(w)
		require.NoError(t, read.Err())
		assert.Equal(t, "world", read.data)
	})

	t.Run("invalid offset", func(t *testing.T) {
		w := Seek(Good(strings.NewReader("hello"), Unit{}), -1, io.SeekStart)

		require.Error(t, w.Err())
	})

	t.Run("bad", func(t *testing.T) {
		reader := strings.NewReader("hello")

		w := Seek(Bad[*strings.Reader, Unit](reader, errMockedInput), 3, io.SeekStart)

		require.ErrorIs(t, w.Err(), errMockedInput)
		pos, err := reader.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(0), pos, "handle should not have moved")
	})
}

// Writing, rewinding, and reading back a billy file in a single chain.
func TestSeekFileScenario(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "log.txt", []byte("old"), 0o644))

	opener := NewFileOpener(NewConfig(), fsys, DefaultSLogger())
	opener.Flag = os.O_RDWR

	written := WriteAll(Seek(FromPath[billy.File](opener, "log.txt"), 0, io.SeekEnd), []byte(" new"))
	data, err := ReadToString(Seek(written, 0, io.SeekStart)).ToData()

	require.NoError(t, err)
	assert.Equal(t, "old new", data)
}
