// Package root locates the Oriel application root governing a path by
// walking ancestor directories and asking the bootstrap validator about
// each candidate.
package root

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/oriel-cms/orsh/internal/bootstrap"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/pathutil"
)

var (
	osLstat              = os.Lstat
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// Find walks from start toward the filesystem root until v reports a valid
// application root. Two passes run in order: the first resolves symlinked
// candidates before testing them, the second tests literal paths; the first
// hit wins. found is false when no ancestor validates, which is an expected
// outcome rather than an error. A nil validator means bootstrap.Default().
func Find(start string, v bootstrap.Validator) (*bootstrap.Descriptor, bool, error) {
	if start == "" {
		return nil, false, errors.New(messages.RootStartPathRequired)
	}
	if v == nil {
		v = bootstrap.Default()
	}
	for _, followLinks := range []bool{true, false} {
		path := pathutil.Canonicalize(start, "")
		if followLinks {
			path = resolveIfLink(path)
		}
		if desc, ok := v.DescriptorForRoot(path); ok {
			return desc, true, nil
		}
		for {
			path = pathutil.ShiftUp(path)
			if path == "" {
				break
			}
			if followLinks {
				path = resolveIfLink(path)
			}
			if desc, ok := v.DescriptorForRoot(path); ok {
				return desc, true, nil
			}
		}
	}
	return nil, false, nil
}

// resolveIfLink replaces a symlink candidate with its resolved target so the
// walk continues from the real location. Resolution failures keep the
// original candidate.
func resolveIfLink(path string) string {
	info, err := osLstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path
	}
	resolved, err := filepathEvalSymlinks(path)
	if err != nil {
		return path
	}
	return pathutil.Canonicalize(resolved, "")
}
