// Package alias reads and edits the host alias map in sites/sites.toml.
//
// The [sites] table maps host candidates (for example "8080.www.example.com")
// to site directory names under sites/. Multisite resolution consults the map
// before testing directories on disk; orsh alias set rewrites the file in
// place while preserving comments.
package alias

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/oriel-cms/orsh/internal/messages"
)

// fileSchema mirrors the on-disk layout of sites/sites.toml.
type fileSchema struct {
	Sites map[string]string `toml:"sites"`
}

// Map holds host-to-directory aliases keyed by host candidate.
type Map map[string]string

// PathIn returns the alias map location under an Oriel root.
func PathIn(root string) string {
	return filepath.Join(root, "sites", "sites.toml")
}

// Load reads the alias map at path. A missing file is not an error;
// ok reports whether the file was present.
func Load(path string) (Map, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf(messages.AliasReadFailedFmt, path, err)
	}
	m, err := Parse(data, path)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// LoadIn reads the alias map under an Oriel root.
func LoadIn(root string) (Map, bool, error) {
	return Load(PathIn(root))
}

// Parse decodes alias TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (Map, error) {
	var schema fileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf(messages.AliasParseFailedFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.AliasParseFailedFmt, source, err)
	}
	return Map(schema.Sites), nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches tables and keys outside [sites] that toml.Unmarshal silently
// ignores.
func decodeStrict(data []byte) error {
	var schema fileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&schema)
}

// Dir returns the directory mapped to the host candidate key.
func (m Map) Dir(key string) (string, bool) {
	dir, ok := m[key]
	return dir, ok
}

// KeyFor returns the alias key whose directory equals dir. When several
// keys map to the same directory the lexically smallest wins, keeping
// repeated lookups deterministic.
func (m Map) KeyFor(dir string) (string, bool) {
	for _, key := range m.Keys() {
		if m[key] == dir {
			return key, true
		}
	}
	return "", false
}

// Keys returns the alias keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
