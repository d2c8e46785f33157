// Package bootstrap decides whether a directory is a valid Oriel
// application root. The locator and site resolver delegate every validity
// question here; they never look at marker contents themselves.
package bootstrap

import (
	"os"
	"path/filepath"
)

// CoreMarker is the file whose existence marks an Oriel root.
const CoreMarker = "core/oriel.toml"

var osStat = os.Stat

// Descriptor confirms root validity for a candidate directory. Callers
// outside this package treat it as opaque apart from display.
type Descriptor struct {
	// Name identifies the codebase layout that validated the root.
	Name string
	// Root is the directory the descriptor was produced for.
	Root string
}

// Validator maps a candidate directory to a bootstrap descriptor when the
// directory is a valid application root.
type Validator interface {
	DescriptorForRoot(path string) (*Descriptor, bool)
}

// MarkerValidator validates candidate roots by the existence of a single
// marker file. The marker path is relative to the candidate, in slash form.
type MarkerValidator struct {
	Name   string
	Marker string
}

// DescriptorForRoot reports a descriptor when the marker file exists under
// path. Existence is the sole signal; stat failures of any kind mean
// invalid.
func (v MarkerValidator) DescriptorForRoot(path string) (*Descriptor, bool) {
	if path == "" {
		return nil, false
	}
	marker := filepath.Join(path, filepath.FromSlash(v.Marker))
	if _, err := osStat(marker); err != nil {
		return nil, false
	}
	return &Descriptor{Name: v.Name, Root: path}, true
}

// Default returns the validator for the supported Oriel layout.
func Default() Validator {
	return MarkerValidator{Name: "oriel", Marker: CoreMarker}
}
