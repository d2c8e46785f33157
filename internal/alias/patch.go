package alias

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	// toml is used for syntax validation only; the patch itself edits lines
	// to preserve comments and formatting.
	toml "github.com/pelletier/go-toml"

	"github.com/oriel-cms/orsh/internal/messages"
)

// Set returns content with key mapped to dir inside the [sites] table,
// replacing an existing assignment or appending a new one. Comments and
// unrelated lines are preserved. The patched document is re-read strictly
// before being returned, so callers never write a file Load cannot read
// back. changed reports whether the result differs from content.
func Set(content string, source string, key string, dir string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, errors.New(messages.AliasKeyRequired)
	}
	if strings.TrimSpace(dir) == "" {
		return "", false, errors.New(messages.AliasDirRequired)
	}
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", false, fmt.Errorf(messages.AliasParseFailedFmt, source, err)
	}

	lines := strings.Split(content, "\n")
	start, end := sitesBlock(lines)
	if start < 0 {
		lines = appendSitesLines(lines, key, dir)
	} else if existing, ok := findAliasLine(lines, start+1, end, key); ok {
		if existing.dir == dir {
			return content, false, nil
		}
		lines[existing.index] = buildAliasLine(existing.indent, key, dir, existing.inlineComment)
	} else {
		at := insertIndex(lines, start+1, end)
		lines = append(lines[:at], append([]string{buildAliasLine("", key, dir, "")}, lines[at:]...)...)
	}

	updated := joinLines(lines)
	if _, err := Parse([]byte(updated), source); err != nil {
		return "", false, err
	}
	return updated, true, nil
}

// sitesBlock returns the line span of the [sites] table: start is the header
// line index and end is the exclusive index of the next table header.
// start is -1 when the table is absent.
func sitesBlock(lines []string) (start int, end int) {
	start = -1
	for i, line := range lines {
		name, ok := parseTableHeader(line)
		if !ok {
			continue
		}
		if start >= 0 {
			return start, i
		}
		if name == "sites" {
			start = i
		}
	}
	return start, len(lines)
}

// parseTableHeader detects a TOML table header line and extracts its name.
// Array-of-table headers count as headers so they terminate the [sites] span.
func parseTableHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	if idx := strings.Index(trimmed, "#"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "[["), "]]"))
		return name, name != ""
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]"))
		return name, name != ""
	}
	return "", false
}

// aliasLine holds a parsed assignment with its position and comment metadata.
type aliasLine struct {
	index         int
	indent        string
	dir           string
	inlineComment string
}

// findAliasLine scans the [sites] block body for an uncommented assignment
// to key. Commented examples are never matched, so they survive edits.
func findAliasLine(lines []string, from int, to int, key string) (aliasLine, bool) {
	for i := from; i < to; i++ {
		parsed, ok := parseAliasLine(lines[i], key)
		if !ok {
			continue
		}
		parsed.index = i
		return parsed, true
	}
	return aliasLine{}, false
}

// parseAliasLine parses a `key = "dir"` assignment. Returns false when the
// line is blank, commented, or assigns a different key.
func parseAliasLine(line string, key string) (aliasLine, bool) {
	indentLen := len(line) - len(strings.TrimLeft(line, " \t"))
	indent := line[:indentLen]
	rest := line[indentLen:]
	if rest == "" || strings.HasPrefix(rest, "#") {
		return aliasLine{}, false
	}
	token, rest, ok := splitKeyToken(rest)
	if !ok || token != key {
		return aliasLine{}, false
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "=") {
		return aliasLine{}, false
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	dir, comment := splitValueToken(rest)
	return aliasLine{indent: indent, dir: dir, inlineComment: comment}, true
}

// splitKeyToken decodes the leading key token, which may be bare or a basic
// or literal quoted string. Escapes inside quoted keys are not handled; host
// candidates never contain quotes.
func splitKeyToken(s string) (string, string, bool) {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 {
			return "", "", false
		}
		return s[1 : 1+end], s[2+end:], true
	}
	stop := strings.IndexAny(s, " \t=")
	if stop < 0 {
		return "", "", false
	}
	return s[:stop], s[stop:], true
}

// splitValueToken decodes a quoted string value and returns any inline
// comment that follows it.
func splitValueToken(s string) (string, string) {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		if end := strings.IndexByte(s[1:], s[0]); end >= 0 {
			value := s[1 : 1+end]
			comment := strings.TrimSpace(s[2+end:])
			if !strings.HasPrefix(comment, "#") {
				comment = ""
			}
			return value, comment
		}
	}
	value := s
	comment := ""
	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		value = s[:idx]
		comment = strings.TrimSpace(s[idx:])
	}
	return strings.TrimSpace(value), comment
}

// buildAliasLine renders a quoted assignment, keeping indentation and any
// inline comment from a replaced line. Keys are always written quoted; host
// candidates contain dots, which bare TOML keys treat as path separators.
func buildAliasLine(indent string, key string, dir string, inlineComment string) string {
	line := fmt.Sprintf("%s%s = %s", indent, strconv.Quote(key), strconv.Quote(dir))
	if inlineComment != "" {
		line += " " + inlineComment
	}
	return line
}

// insertIndex returns the insertion point for a new assignment: after the
// last non-blank line of the block, so trailing separators stay put.
func insertIndex(lines []string, from int, to int) int {
	at := from
	for i := from; i < to; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			at = i + 1
		}
	}
	return at
}

// appendSitesLines appends a fresh [sites] table holding the assignment.
func appendSitesLines(lines []string, key string, dir string) []string {
	out := trimTrailingBlank(lines)
	if len(out) > 0 {
		out = append(out, "")
	}
	return append(out, "[sites]", buildAliasLine("", key, dir, ""))
}

// trimTrailingBlank removes trailing blank lines.
func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// joinLines renders lines with a trailing newline.
func joinLines(lines []string) string {
	out := strings.Join(lines, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
