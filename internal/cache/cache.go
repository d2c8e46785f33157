// Package cache resolves the per-user orsh cache directory and guards
// destructive maintenance with an exclusive file lock. The directory is
// picked per call from an ordered candidate chain, so a location that
// becomes unwritable mid-session degrades to the next one instead of
// failing hard.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sys/unix"

	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/pathutil"
	"github.com/oriel-cms/orsh/internal/platform"
)

// EnvCacheDir overrides the cache location when set. A leading ~ is
// expanded to the invoking user's home directory.
const EnvCacheDir = "ORSH_CACHE_DIR"

const lockFileName = ".lock"

var (
	getenv       = os.Getenv
	userCacheDir = os.UserCacheDir
	homeDir      = homedir.Dir
	tempDir      = os.TempDir
	unixAccess   = unix.Access
)

// Root returns the first writable cache base, creating it on demand.
// When every candidate is unusable the error lists all of them.
func Root() (string, error) {
	bases := candidates()
	for _, base := range bases {
		if !writable(base) {
			continue
		}
		if err := os.MkdirAll(base, 0o755); err != nil {
			continue
		}
		return base, nil
	}
	return "", fmt.Errorf(messages.CacheNoWritableDirFmt, strings.Join(bases, ", "))
}

// Dir returns the named subdirectory of the cache root, creating it on
// demand.
func Dir(subdir string) (string, error) {
	if subdir == "" {
		return "", errors.New(messages.CacheSubdirRequired)
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf(messages.CacheCreateDirFmt, dir, err)
	}
	return dir, nil
}

// Clear empties the cache root. The teardown runs under the cache lock
// so a concurrent orsh cannot repopulate entries mid-removal.
func Clear() error {
	root, err := Root()
	if err != nil {
		return err
	}
	return withFileLock(filepath.Join(root, lockFileName), func() error {
		return clearContents(root)
	})
}

// candidates returns cache bases in preference order: the environment
// override, the OS user cache, the orsh home directory, and finally a
// per-user location under the system temp directory.
func candidates() []string {
	var out []string
	if override := strings.TrimSpace(getenv(EnvCacheDir)); override != "" {
		out = append(out, pathutil.ExpandHome(override))
	}
	if base, err := userCacheDir(); err == nil && base != "" {
		out = append(out, filepath.Join(base, "orsh"))
	}
	if home, err := homeDir(); err == nil && home != "" {
		out = append(out, filepath.Join(home, ".orsh", "cache"))
	}
	out = append(out, filepath.Join(tempDir(), "orsh-"+platform.Username(), "cache"))
	return out
}

// writable reports whether base either grants write access or could be
// created under its nearest existing ancestor.
func writable(base string) bool {
	probe := base
	for {
		if _, err := os.Stat(probe); err == nil {
			break
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return false
		}
		probe = parent
	}
	return unixAccess(probe, unix.W_OK) == nil
}

// clearContents removes everything under root except the lock file the
// caller is holding.
func clearContents(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf(messages.CacheClearFmt, root, err)
	}
	for _, entry := range entries {
		if entry.Name() == lockFileName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return fmt.Errorf(messages.CacheClearFmt, root, err)
		}
	}
	return nil
}
