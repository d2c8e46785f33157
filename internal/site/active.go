package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oriel-cms/orsh/internal/fsutil"
	"github.com/oriel-cms/orsh/internal/messages"
)

// activeFile holds the site name persisted by orsh site set.
const activeFile = "active-site"

// Active returns the recorded active site. ok is false when none is set.
func Active(dir string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, activeFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.CacheActiveSiteReadFmt, err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}

// SetActive records site as the active site under dir. The write is atomic
// so a concurrent orsh process never observes a partially written name.
func SetActive(dir string, site string) error {
	if err := fsutil.WriteFileAtomic(filepath.Join(dir, activeFile), []byte(site+"\n"), 0o644); err != nil {
		return fmt.Errorf(messages.CacheActiveSiteWriteFmt, err)
	}
	return nil
}

// ClearActive removes the recorded active site. Clearing when nothing is
// recorded is not an error.
func ClearActive(dir string) error {
	err := os.Remove(filepath.Join(dir, activeFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.CacheActiveSiteWriteFmt, err)
	}
	return nil
}
