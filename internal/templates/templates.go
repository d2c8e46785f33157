// Package templates holds the embedded files orsh init scaffolds into a
// project: the .orsh/ configuration pair and the sites/ skeleton.
package templates

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed files
var content embed.FS

// Read returns the named template. Names are relative to the template
// root, for example "config.toml" or "sites/default/settings.toml".
func Read(name string) ([]byte, error) {
	return content.ReadFile(path.Join("files", name))
}

// Walk visits the templates under dir. Paths handed to fn are relative to
// the template root, so they can be passed back to Read.
func Walk(dir string, fn fs.WalkDirFunc) error {
	sub, err := fs.Sub(content, "files")
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, dir, fn)
}
