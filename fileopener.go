// SPDX-License-Identifier: GPL-3.0-or-later

package iochain

import (
	"log/slog"
	"os"
	"time"

	"github.com/bassosimone/runtimex"
	"github.com/go-git/go-billy/v5"
)

// NewFileOpener returns a new [*FileOpener] opening read-only files of fsys.
//
// The cfg argument contains the common configuration for iochain handles.
//
// The fsys argument is the [billy.Filesystem] to open files from (e.g.,
// memfs.New() or osfs.New(dir)). This function panics if fsys is nil.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewFileOpener(cfg *Config, fsys billy.Filesystem, logger SLogger) *FileOpener {
	runtimex.Assert(fsys != nil)
	return &FileOpener{
		ErrClassifier: cfg.ErrClassifier,
		Filesystem:    fsys,
		Flag:          os.O_RDONLY,
		Logger:        logger,
		Perm:          0o644,
		TimeNow:       cfg.TimeNow,
	}
}

// FileOpener opens [billy.File] handles from a [billy.Filesystem].
//
// Returns either a valid [billy.File] or an error, never both.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [OpenPath].
type FileOpener struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewFileOpener] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Filesystem is the [billy.Filesystem] to open files from.
	//
	// Set by [NewFileOpener] to the user-provided filesystem.
	Filesystem billy.Filesystem

	// Flag contains the [os.OpenFile] flags.
	//
	// Set by [NewFileOpener] to [os.O_RDONLY].
	Flag int

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewFileOpener] to the user-provided logger.
	Logger SLogger

	// Perm is the permission used when Flag causes a file to be created.
	//
	// Set by [NewFileOpener] to 0o644.
	Perm os.FileMode

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewFileOpener] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ PathOpener[billy.File] = &FileOpener{}

// OpenPath implements [PathOpener].
func (op *FileOpener) OpenPath(path string) (billy.File, error) {
	t0 := op.TimeNow()
	op.logOpenStart(path, t0)
	file, err := op.Filesystem.OpenFile(path, op.Flag, op.Perm)
	op.logOpenDone(path, t0, err)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (op *FileOpener) logOpenStart(path string, t0 time.Time) {
	op.Logger.Info(
		"openStart",
		slog.Int("flag", op.Flag),
		slog.String("path", path),
		slog.String("perm", op.Perm.String()),
		slog.Time("t", t0),
	)
}

func (op *FileOpener) logOpenDone(path string, t0 time.Time, err error) {
	op.Logger.Info(
		"openDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Int("flag", op.Flag),
		slog.String("path", path),
		slog.String("perm", op.Perm.String()),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
