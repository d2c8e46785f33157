// Package fsutil holds the shared atomic file-write primitive.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oriel-cms/orsh/internal/messages"
)

// WriteFileAtomic writes data to path through a same-directory temp file
// and a rename, so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFmt, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFmt, err)
	}
	committed = true
	return nil
}
