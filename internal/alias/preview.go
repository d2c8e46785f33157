package alias

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// Preview renders a unified diff between the current and patched alias map
// for dry-run output. Returns the empty string when nothing changes.
func Preview(path string, before string, after string) string {
	diff := udiff.Unified(path, path+" (updated)", before, after)
	return ensureTrailingNewline(diff)
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
