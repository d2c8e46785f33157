// Package pathutil holds the string-level path transformations shared by the
// root locator, the site resolver, and the command builder. Paths are kept in
// forward-slash form for comparison regardless of the host separator.
package pathutil

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/oriel-cms/orsh/internal/platform"
)

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
	homedirExpand        = homedir.Expand
)

// cygdriveForm matches the Cygwin drive-emulation prefix (/cygdrive/c/...).
var cygdriveForm = regexp.MustCompile(`^/cygdrive/([A-Za-z])(/.*)?$`)

// Canonicalize returns path with every backslash replaced by a forward
// slash. When the resolved OS identifier is Windows-like but not
// Cygwin-family, a leading Cygwin drive-emulation prefix is rewritten to the
// drive-letter form (/cygdrive/c/work -> c:/work): the emulation form only
// needs translating for native Windows shells. Pure string transformation,
// no filesystem access.
func Canonicalize(path, osToken string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if platform.IsWindows(osToken) && !platform.IsCygwin(osToken) {
		if m := cygdriveForm.FindStringSubmatch(p); m != nil {
			p = m[1] + ":" + m[2]
		}
	}
	return p
}

// ShiftUp strips the final segment from a forward-slash path, returning ""
// once the path cannot shrink further. "/var/www" shifts to "/var", "/var"
// to "", and a bare relative segment to "".
func ShiftUp(path string) string {
	if path == "" {
		return ""
	}
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// ExpandHome expands a leading ~ in user-supplied paths (root and cache
// overrides). Expansion failures leave the path untouched.
func ExpandHome(path string) string {
	expanded, err := homedirExpand(path)
	if err != nil {
		return path
	}
	return expanded
}

// SamePath reports whether two paths resolve to the same filesystem
// location, accounting for symlinks and relative paths.
func SamePath(a, b string) bool {
	return ResolvePath(a) == ResolvePath(b)
}

// ResolvePath returns the absolute, symlink-resolved form of a path.
// If resolution fails at any step, it returns the best result available.
func ResolvePath(path string) string {
	abs, err := filepathAbs(path)
	if err != nil {
		abs = path
	}
	eval, err := filepathEvalSymlinks(abs)
	if err == nil {
		return eval
	}
	return abs
}
