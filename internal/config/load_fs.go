package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"

	"github.com/oriel-cms/orsh/internal/envfile"
	"github.com/oriel-cms/orsh/internal/messages"
)

// ProjectConfig bundles everything read from a root's .orsh directory.
// Both files are optional, so a bare root yields a zero Config and a nil
// Env without error.
type ProjectConfig struct {
	Config Config
	Env    map[string]string
	Root   string
}

// LoadProjectConfig reads the root's config.toml and .env overlay from
// disk.
func LoadProjectConfig(root string) (*ProjectConfig, error) {
	return LoadProjectConfigFS(os.DirFS(root), root)
}

// LoadProjectConfigFS reads the root's config files from an fs.FS rooted
// at root. fsys is the filesystem to read from; root is used for error
// messages and absolute-path resolution.
func LoadProjectConfigFS(fsys fs.FS, root string) (*ProjectConfig, error) {
	if fsys == nil {
		return nil, errors.New(messages.ConfigFSRequired)
	}
	if root == "" {
		return nil, errors.New(messages.ConfigRootRequired)
	}
	paths := DefaultPaths(root)
	out := &ProjectConfig{Root: root}

	cfg, err := LoadConfigFS(fsys, root, paths.ConfigPath)
	switch {
	case err == nil:
		out.Config = *cfg
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	env, err := LoadEnvFS(fsys, root, paths.EnvPath)
	switch {
	case err == nil:
		out.Env = env
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	return out, nil
}

// LoadConfigFS reads .orsh/config.toml from fsys and validates it.
// root is used for path resolution when path is absolute; path is used
// for error messages.
func LoadConfigFS(fsys fs.FS, root string, path string) (*Config, error) {
	data, err := readFileFS(fsys, root, path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadEnvFS reads .orsh/.env from fsys into a key-value map restricted
// to the ORSH_ namespace.
func LoadEnvFS(fsys fs.FS, root string, path string) (map[string]string, error) {
	data, err := readFileFS(fsys, root, path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	}

	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return filterOrshEnv(env), nil
}

// readFileFS reads a file from fsys using a path relative to root.
func readFileFS(fsys fs.FS, root string, path string) ([]byte, error) {
	fsPath, err := fsPathFromRoot(root, path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, fsPath)
}

// fsPathFromRoot returns an fs.FS-compatible path for a full or relative
// path under root. Absolute paths are made relative to root; escaping the
// root is an error.
func fsPathFromRoot(root string, targetPath string) (string, error) {
	if filepath.IsAbs(targetPath) {
		if root == "" {
			return "", fmt.Errorf(messages.ConfigPathOutsideRootFmt, targetPath, root)
		}
		rel, err := filepath.Rel(root, targetPath)
		if err != nil {
			return "", fmt.Errorf(messages.ConfigPathOutsideRootFmt, targetPath, root)
		}
		rel = filepath.Clean(rel)
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf(messages.ConfigPathOutsideRootFmt, targetPath, root)
		}
		return pathpkg.Clean(filepath.ToSlash(rel)), nil
	}
	return pathpkg.Clean(filepath.ToSlash(targetPath)), nil
}
