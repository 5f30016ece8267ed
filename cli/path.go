package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/shlog/pkg"
)

// stateFileName is the base name of the persisted configuration file.
const stateFileName = "config.yaml"

// defaultDirMode is the permission mode for created runtime directories.
var defaultDirMode os.FileMode = 0o700

// configDir returns the configuration directory path. The SHLOG_CONFIG_DIR
// environment variable overrides the platform default, which also makes
// the location controllable under test.
func configDir() string {
	if dir := os.Getenv("SHLOG_CONFIG_DIR"); dir != "" {
		return dir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, ".config")
		} else {
			dir, err = os.Getwd()
			if err != nil {
				dir = "."
			}
		}
	}

	return filepath.Join(dir, pkg.Name)
}

// cacheDir returns the cache directory path used for transient files
// such as pprof output.
func cacheDir() string {
	if dir := os.Getenv("SHLOG_CACHE_DIR"); dir != "" {
		return dir
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, ".cache")
		} else {
			dir, err = os.Getwd()
			if err != nil {
				dir = "."
			}
		}
	}

	return filepath.Join(dir, pkg.Name)
}

// statePath returns the absolute path to the persisted configuration file.
func statePath() string {
	return filepath.Join(configDir(), stateFileName)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	err := os.MkdirAll(configDir(), defaultDirMode)
	if err != nil {
		return err
	}

	return os.MkdirAll(cacheDir(), defaultDirMode)
}
