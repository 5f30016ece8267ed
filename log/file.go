package log

import (
	"os"
	"path/filepath"

	"github.com/ardnew/shlog/pkg"
)

// logFileMode restricts the log file to its owner.
const logFileMode os.FileMode = 0o600

// logDirMode restricts created parent directories to their owner.
const logDirMode os.FileMode = 0o700

// EnsureLogFile guarantees that the log file at path exists, is owned by
// the current user, and is readable and writable by the owner only.
// Parent directories are created as needed. An existing file has its
// permissions tightened to match.
//
// Any failure here is a fatal setup error for callers configuring the
// file sink: the returned error wraps [pkg.ErrLogFile] with the
// underlying cause.
func EnsureLogFile(path string) error {
	if path == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("log file path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, logDirMode); err != nil {
			return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
	}

	if err := f.Close(); err != nil {
		return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
	}

	if err := os.Chmod(path, logFileMode); err != nil {
		return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
	}

	// Chown is a no-op for the common case of the file being created by
	// its eventual owner, but it repairs files left behind by a previous
	// privileged invocation. Skipped where UIDs are not meaningful.
	if uid := os.Getuid(); uid >= 0 {
		if err := os.Chown(path, uid, os.Getgid()); err != nil {
			return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
		}
	}

	return nil
}
