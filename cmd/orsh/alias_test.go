package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oriel-cms/orsh/internal/alias"
	"github.com/oriel-cms/orsh/internal/messages"
)

func writeAliasFile(t *testing.T, root string, content string) string {
	t.Helper()

	dir := filepath.Join(root, "sites")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir sites: %v", err)
	}
	path := filepath.Join(dir, "sites.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sites.toml: %v", err)
	}
	return path
}

func TestAliasListEmpty(t *testing.T) {
	root := scaffoldRoot(t)
	stubWorkingDir(t, root)

	out, err := runCommand(t, "alias", "list")
	if err != nil {
		t.Fatalf("alias list error: %v", err)
	}
	if !strings.Contains(out, messages.AliasListNone) {
		t.Fatalf("expected empty notice, got %q", out)
	}
}

func TestAliasListSortedEntries(t *testing.T) {
	root := scaffoldRoot(t)
	writeAliasFile(t, root, "[sites]\n\"www.example.test\" = \"example\"\n\"8080.www.example.test\" = \"staging\"\n")
	stubWorkingDir(t, root)

	out, err := runCommand(t, "alias", "list")
	if err != nil {
		t.Fatalf("alias list error: %v", err)
	}
	want := "8080.www.example.test -> staging\nwww.example.test -> example\n"
	if out != want {
		t.Fatalf("unexpected listing: %q", out)
	}
}

func TestAliasSetCreatesFile(t *testing.T) {
	root := scaffoldRoot(t)
	stubWorkingDir(t, root)

	out, err := runCommand(t, "alias", "set", "example.com", "main")
	if err != nil {
		t.Fatalf("alias set error: %v", err)
	}
	if !strings.Contains(out, "Mapped example.com -> main in ") {
		t.Fatalf("unexpected output: %q", out)
	}

	m, found, err := alias.LoadIn(root)
	if err != nil || !found {
		t.Fatalf("expected alias file, found=%v err=%v", found, err)
	}
	if dir, ok := m.Dir("example.com"); !ok || dir != "main" {
		t.Fatalf("expected mapping, got %q ok=%v", dir, ok)
	}
}

func TestAliasSetPreservesComments(t *testing.T) {
	root := scaffoldRoot(t)
	path := writeAliasFile(t, root, "# host aliases\n\n[sites]\n# \"www.example.test\" = \"example\"\n")
	stubWorkingDir(t, root)

	if _, err := runCommand(t, "alias", "set", "example.com", "main"); err != nil {
		t.Fatalf("alias set error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sites.toml: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# host aliases") {
		t.Fatalf("expected preamble comment preserved, got %q", content)
	}
	if !strings.Contains(content, "# \"www.example.test\" = \"example\"") {
		t.Fatalf("expected commented example preserved, got %q", content)
	}
	if !strings.Contains(content, "\"example.com\" = \"main\"") {
		t.Fatalf("expected new assignment, got %q", content)
	}
}

func TestAliasSetDryRunLeavesFileAlone(t *testing.T) {
	root := scaffoldRoot(t)
	stubWorkingDir(t, root)

	out, err := runCommand(t, "alias", "set", "example.com", "main", "--dry-run")
	if err != nil {
		t.Fatalf("alias set --dry-run error: %v", err)
	}
	if !strings.Contains(out, "+\"example.com\" = \"main\"") {
		t.Fatalf("expected diff line, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "sites", "sites.toml")); !os.IsNotExist(err) {
		t.Fatalf("expected no file written, stat err=%v", err)
	}
}

func TestAliasSetNoChange(t *testing.T) {
	root := scaffoldRoot(t)
	path := writeAliasFile(t, root, "[sites]\n\"example.com\" = \"main\"\n")
	stubWorkingDir(t, root)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sites.toml: %v", err)
	}

	out, err := runCommand(t, "alias", "set", "example.com", "main")
	if err != nil {
		t.Fatalf("alias set error: %v", err)
	}
	if !strings.Contains(out, strings.TrimSpace(messages.AliasSetNoChange)) {
		t.Fatalf("expected no-change notice, got %q", out)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sites.toml: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("expected untouched file, got %q", string(after))
	}
}

func TestAliasSetRejectsBadFile(t *testing.T) {
	root := scaffoldRoot(t)
	writeAliasFile(t, root, "= not toml")
	stubWorkingDir(t, root)

	_, err := runCommand(t, "alias", "set", "example.com", "main")
	if err == nil {
		t.Fatalf("expected error")
	}
}
