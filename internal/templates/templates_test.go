package templates

import (
	"io/fs"
	"strings"
	"testing"
)

func TestReadTemplate(t *testing.T) {
	data, err := Read("config.toml")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !strings.Contains(string(data), "[core]") {
		t.Fatalf("expected core section in config template")
	}
}

func TestReadTemplateMissing(t *testing.T) {
	_, err := Read("missing.txt")
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestReadSiteSettingsTemplate(t *testing.T) {
	data, err := Read("sites/default/settings.toml")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected settings content")
	}
}

func TestWalkTemplates(t *testing.T) {
	var seen []string
	err := Walk("sites", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		seen = append(seen, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	for _, path := range []string{"sites/sites.toml", "sites/default/settings.toml"} {
		if !contains(seen, path) {
			t.Fatalf("expected Walk to visit %s, saw %v", path, seen)
		}
	}
}

func TestWalkPathsFeedRead(t *testing.T) {
	err := Walk(".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if _, err := Read(path); err != nil {
			t.Fatalf("Read %s after Walk: %v", path, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
}

func contains(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}
