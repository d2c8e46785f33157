package alias

import (
	"strings"
	"testing"
)

const patchSource = "sites.toml"

func TestSetInsertsIntoExistingTable(t *testing.T) {
	content := `# Host aliases for this codebase.
[sites]
"www.example.com" = "example"

# Local development hosts go below.
`
	updated, changed, err := Set(content, patchSource, "dev.example.com", "dev")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}
	m, err := Parse([]byte(updated), patchSource)
	if err != nil {
		t.Fatalf("Parse updated: %v", err)
	}
	if dir, ok := m.Dir("dev.example.com"); !ok || dir != "dev" {
		t.Fatalf("unexpected mapping: %q, %v", dir, ok)
	}
	if dir, ok := m.Dir("www.example.com"); !ok || dir != "example" {
		t.Fatalf("existing mapping lost: %q, %v", dir, ok)
	}
	if !strings.Contains(updated, "# Host aliases for this codebase.") {
		t.Fatalf("leading comment lost:\n%s", updated)
	}
	if !strings.Contains(updated, "# Local development hosts go below.") {
		t.Fatalf("trailing comment lost:\n%s", updated)
	}
}

func TestSetReplacesExistingAssignment(t *testing.T) {
	content := `[sites]
"www.example.com" = "old" # keep this comment
`
	updated, changed, err := Set(content, patchSource, "www.example.com", "example")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}
	if !strings.Contains(updated, `"www.example.com" = "example" # keep this comment`) {
		t.Fatalf("inline comment lost:\n%s", updated)
	}
}

func TestSetNoChangeWhenAlreadyMapped(t *testing.T) {
	content := "[sites]\n\"www.example.com\" = \"example\"\n"
	updated, changed, err := Set(content, patchSource, "www.example.com", "example")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if changed {
		t.Fatalf("expected changed=false")
	}
	if updated != content {
		t.Fatalf("content modified:\n%s", updated)
	}
}

func TestSetCreatesTableWhenMissing(t *testing.T) {
	updated, changed, err := Set("", patchSource, "www.example.com", "example")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}
	want := "[sites]\n\"www.example.com\" = \"example\"\n"
	if updated != want {
		t.Fatalf("unexpected content:\n%s", updated)
	}
}

func TestSetCreatesTableAfterPreamble(t *testing.T) {
	content := "# Aliases used by resolution.\n"
	updated, _, err := Set(content, patchSource, "www.example.com", "example")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := "# Aliases used by resolution.\n\n[sites]\n\"www.example.com\" = \"example\"\n"
	if updated != want {
		t.Fatalf("unexpected content:\n%s", updated)
	}
}

func TestSetKeepsCommentedExamples(t *testing.T) {
	content := `[sites]
# "dev.example.com" = "dev"
`
	updated, _, err := Set(content, patchSource, "dev.example.com", "dev")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !strings.Contains(updated, `# "dev.example.com" = "dev"`) {
		t.Fatalf("commented example modified:\n%s", updated)
	}
	m, err := Parse([]byte(updated), patchSource)
	if err != nil {
		t.Fatalf("Parse updated: %v", err)
	}
	if dir, ok := m.Dir("dev.example.com"); !ok || dir != "dev" {
		t.Fatalf("unexpected mapping: %q, %v", dir, ok)
	}
}

func TestSetMatchesBareKeys(t *testing.T) {
	content := "[sites]\nlocalhost = \"dev\"\n"
	updated, changed, err := Set(content, patchSource, "localhost", "local")
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}
	if !strings.Contains(updated, `"localhost" = "local"`) {
		t.Fatalf("bare key not replaced:\n%s", updated)
	}
}

func TestSetRejectsBlankArguments(t *testing.T) {
	if _, _, err := Set("", patchSource, " ", "dir"); err == nil {
		t.Fatalf("expected error for blank key")
	}
	if _, _, err := Set("", patchSource, "key.example.com", ""); err == nil {
		t.Fatalf("expected error for blank dir")
	}
}

func TestSetRejectsBadSyntax(t *testing.T) {
	_, _, err := Set("not = = toml", patchSource, "a.example.com", "a")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "parse alias map") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetRejectsForeignTables(t *testing.T) {
	content := "[sites]\n\"a.example.com\" = \"a\"\n\n[server]\nport = 1\n"
	if _, _, err := Set(content, patchSource, "b.example.com", "b"); err == nil {
		t.Fatalf("expected error for foreign table")
	}
}
