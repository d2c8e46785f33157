// Package site resolves the configuration directory governing a path or
// URI inside an Oriel codebase.
//
// A site is a directory under sites/ carrying settings.toml. Resolution
// runs two ways: Find walks upward from a filesystem location, and
// ConfPath replays the front controller's host/path candidate scan for a
// URI. Both consult the sites/sites.toml alias map.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oriel-cms/orsh/internal/alias"
	"github.com/oriel-cms/orsh/internal/bootstrap"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/pathutil"
)

const (
	sitesDir       = "sites"
	defaultDir     = "default"
	settingsMarker = "settings.toml"
)

// Find locates the site directory governing start inside an Oriel root.
// Every level from start upward is tested for settings.toml; the walk
// stops once a directory validates as an application root, because site
// directories live below a root. A hit is normalized through the alias
// map. When nothing matches, sites/default is returned if it carries a
// settings file; ok is false when no site governs start. A start that
// cannot be resolved on disk skips the walk but not the fallback.
func Find(root string, start string, v bootstrap.Validator) (string, bool, error) {
	if root == "" {
		return "", false, errors.New(messages.SiteRootRequired)
	}
	if start == "" {
		return "", false, errors.New(messages.SiteStartPathRequired)
	}
	if v == nil {
		v = bootstrap.Default()
	}

	found := ""
	if resolved, err := filepath.EvalSymlinks(start); err == nil {
		path := pathutil.Canonicalize(resolved, "")
		if hasSettings(path) {
			found = path
		} else {
			for {
				path = pathutil.ShiftUp(path)
				if path == "" {
					break
				}
				if _, ok := v.DescriptorForRoot(path); ok {
					break
				}
				if hasSettings(path) {
					found = path
					break
				}
			}
		}
	}

	if found != "" {
		normalized, err := normalizeThroughAliases(root, found)
		if err != nil {
			return "", false, err
		}
		return normalized, true, nil
	}

	fallback := filepath.Join(root, sitesDir, defaultDir)
	if hasSettings(fallback) {
		return fallback, true, nil
	}
	return "", false, nil
}

// normalizeThroughAliases maps a discovered site path to its canonical
// alias form: when the directory's name appears among the alias map's
// values, the matching key (smallest first) replaces it. The canonical
// path is returned even when no directory of that name exists on disk.
func normalizeThroughAliases(root string, sitePath string) (string, error) {
	m, ok, err := alias.LoadIn(root)
	if err != nil {
		return "", err
	}
	if !ok {
		return sitePath, nil
	}
	key, ok := m.KeyFor(filepath.Base(sitePath))
	if !ok {
		return sitePath, nil
	}
	return filepath.Join(root, sitesDir, key), nil
}

// List returns the names of site directories under root that carry a
// settings file, in sorted order. A missing sites/ directory yields an
// empty list.
func List(root string) ([]string, error) {
	if root == "" {
		return nil, errors.New(messages.SiteRootRequired)
	}
	entries, err := os.ReadDir(filepath.Join(root, sitesDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.SiteListFailedFmt, root, err)
	}
	var names []string
	for _, entry := range entries {
		if hasSettings(filepath.Join(root, sitesDir, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func hasSettings(dir string) bool {
	return pathExists(filepath.Join(dir, settingsMarker))
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
