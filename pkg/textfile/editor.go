package textfile

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/filesystem"
	"github.com/NovaOrdis/std.shlib/pkg/logging"
)

// Editor applies edits and lookups through an FS
type Editor struct {
	fs      filesystem.FS
	dryRun  bool
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithDryRun makes edits stage and diff their candidate without replacing
// the target
func WithDryRun(dryRun bool) Option {
	return func(e *Editor) { e.dryRun = dryRun }
}

// WithMatchTimeout bounds each regex evaluation; zero means no bound
func WithMatchTimeout(d time.Duration) Option {
	return func(e *Editor) { e.timeout = d }
}

// WithLogger sets the logger used for trace events. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// New creates an Editor operating on fsys
func New(fsys filesystem.FS, opts ...Option) *Editor {
	e := &Editor{
		fs:     fsys,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// readRegular reads a file that must exist and be a regular file
func (e *Editor) readRegular(path, role string) ([]byte, fs.FileInfo, error) {
	if path == "" {
		return nil, nil, errors.Newf(errors.ErrInvalidInput, "%s file not specified", role)
	}
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Newf(errors.ErrFileNotFound, "%s file %s does not exist", role, path).
				WithDetail("file", path)
		}
		return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s file %s", role, path).
			WithDetail("file", path)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, errors.Newf(errors.ErrFileNotFound, "%s file %s is not a regular file", role, path).
			WithDetail("file", path)
	}
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s file %s", role, path).
			WithDetail("file", path)
	}
	return content, info, nil
}

// apply runs transform over the lines of path and commits the candidate if
// it differs from the original
func (e *Editor) apply(operation, path string, transform func([]line) ([]line, error)) (Result, error) {
	done := logging.LogOperationStart(e.logger, operation)
	defer done()

	original, info, err := e.readRegular(path, "target")
	if err != nil {
		return Result{Path: path}, err
	}

	lines, err := transform(splitLines(original))
	if err != nil {
		return Result{Path: path}, err
	}

	return e.commit(operation, path, info.Mode().Perm(), original, joinLines(lines))
}

// commit stages candidate in a scratch file next to path, compares it with
// original and renames it over path when they differ. The scratch file is
// removed on every path that does not rename it.
func (e *Editor) commit(operation, path string, perm fs.FileMode, original, candidate []byte) (Result, error) {
	result := Result{Path: path, Outcome: Unchanged}
	logger := e.logger.With().Str("operation", operation).Str("file", path).Logger()

	if bytes.Equal(original, candidate) {
		logger.Trace().Msg("No change")
		return result, nil
	}

	result.Outcome = Changed
	result.Diff = unifiedDiff(path, path, original, candidate)

	if e.dryRun {
		logger.Trace().Msg("Dry run, candidate not committed")
		return result, nil
	}

	scratch, err := e.fs.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".shlib-*")
	if err != nil {
		return Result{Path: path}, errors.Wrapf(err, errors.ErrScratchCreate,
			"cannot create scratch file for %s", path).WithDetail("file", path)
	}
	scratchPath := scratch.Name()
	renamed := false
	defer func() {
		if !renamed {
			if err := e.fs.Remove(scratchPath); err != nil && !os.IsNotExist(err) {
				logger.Warn().Err(err).Str("scratch", scratchPath).Msg("Failed to remove scratch file")
			}
		}
	}()

	_, writeErr := scratch.Write(candidate)
	closeErr := scratch.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return Result{Path: path}, errors.Wrapf(writeErr, errors.ErrTransform,
			"cannot write candidate for %s", path).WithDetail("file", path)
	}
	logger.Trace().Str("scratch", scratchPath).Msg("Candidate staged")

	if err := e.fs.Chmod(scratchPath, perm); err != nil {
		return Result{Path: path}, errors.Wrapf(err, errors.ErrCommit,
			"cannot set permissions on scratch file for %s", path).WithDetail("file", path)
	}
	if err := e.fs.Rename(scratchPath, path); err != nil {
		return Result{Path: path}, errors.Wrapf(err, errors.ErrCommit,
			"cannot replace %s", path).WithDetail("file", path)
	}
	renamed = true
	result.Committed = true

	logger.Trace().Msg("Committed")
	return result, nil
}
