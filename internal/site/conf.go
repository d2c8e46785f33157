package site

import (
	"errors"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/oriel-cms/orsh/internal/alias"
	"github.com/oriel-cms/orsh/internal/messages"
)

const scriptName = "/index.php"

// ConfPath resolves the configuration directory for uri the same way the
// CMS front controller does, returning the root-relative sites/<dir>
// form. Candidates run from most to least specific; each is substituted
// through the alias map when the mapped directory exists, then accepted
// if it carries settings.toml (or, with requireSettings false, if the
// directory simply exists). sites/default is the unconditional fallback.
func ConfPath(root string, uri string, requireSettings bool) (string, error) {
	if root == "" {
		return "", errors.New(messages.SiteRootRequired)
	}
	m, _, err := alias.LoadIn(root)
	if err != nil {
		return "", err
	}

	host, script := splitURI(uri)
	for _, dir := range confCandidates(host, script) {
		if mapped, ok := m.Dir(dir); ok && pathExists(filepath.Join(root, sitesDir, mapped)) {
			dir = mapped
		}
		candidate := filepath.Join(root, sitesDir, dir)
		if hasSettings(candidate) || (!requireSettings && pathExists(candidate)) {
			return sitesDir + "/" + dir, nil
		}
	}
	return sitesDir + "/" + defaultDir, nil
}

// confCandidates returns candidate directory names, most specific first.
// The outer index walks path segments from deepest to shallowest; the
// inner index walks host labels the same way, so every host depth is
// retried at each path depth. The nesting decides priority when several
// candidate directories exist on disk.
func confCandidates(host string, script string) []string {
	uriSegs := strings.Split(script, "/")
	labels := hostLabels(host)
	var out []string
	for i := len(uriSegs) - 1; i > 0; i-- {
		for j := len(labels); j > 0; j-- {
			out = append(out, strings.Join(labels[len(labels)-j:], ".")+strings.Join(uriSegs[:i], "."))
		}
	}
	return out
}

// hostLabels turns host material into ordered labels: trailing dots are
// trimmed, colons split the host from its port, the pieces are reversed
// and rejoined, so "www.example.com:8080" yields [8080 www example com]
// and the port label drops away first.
func hostLabels(host string) []string {
	parts := strings.Split(strings.TrimRight(host, "."), ":")
	slices.Reverse(parts)
	return strings.Split(strings.Join(parts, "."), ".")
}

// splitURI normalizes a site URI into host material and a script path.
// A missing scheme is tolerated; empty or host-less URIs resolve as host
// "default" with a bare script path.
func splitURI(uri string) (string, string) {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return defaultDir, scriptName
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return defaultDir, scriptName
	}
	if parsed.Path == "" {
		return parsed.Host, scriptName
	}
	return parsed.Host, parsed.Path + scriptName
}
