package config

import "path/filepath"

// Paths holds resolved paths for the per-root orsh files.
type Paths struct {
	Root       string
	ConfigPath string
	EnvPath    string
	SitesDir   string
	AliasPath  string
}

// DefaultPaths returns the standard layout under a core root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, ".orsh", "config.toml"),
		EnvPath:    filepath.Join(root, ".orsh", ".env"),
		SitesDir:   filepath.Join(root, "sites"),
		AliasPath:  filepath.Join(root, "sites", "sites.toml"),
	}
}
