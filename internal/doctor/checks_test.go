package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oriel-cms/orsh/internal/config"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/warnings"
)

// scaffoldRoot creates a marked codebase root and returns its
// symlink-resolved path, matching what discovery reports.
func scaffoldRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "core"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "core", "oriel.toml"), []byte("name = \"oriel\"\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return resolved
}

func writeSite(t *testing.T, root string, name string) {
	t.Helper()
	dir := filepath.Join(root, "sites", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("# site\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
}

func writeConfig(t *testing.T, root string, content string) {
	t.Helper()
	dir := filepath.Join(root, ".orsh")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestCheckRootFindsRoot(t *testing.T) {
	root := scaffoldRoot(t)
	sub := filepath.Join(root, "sites", "default")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	results, got := CheckRoot(sub)
	if got != root {
		t.Fatalf("expected root %q, got %q", root, got)
	}
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	if results[0].CheckName != messages.StatusCheckRoot {
		t.Fatalf("unexpected check name %q", results[0].CheckName)
	}
	want := fmt.Sprintf(messages.StatusRootFoundFmt, root, "oriel")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckRootNotFound(t *testing.T) {
	start := t.TempDir()
	results, got := CheckRoot(start)
	if got != "" {
		t.Fatalf("expected empty root, got %q", got)
	}
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected one FAIL result, got %v", results)
	}
	if results[0].Recommendation != messages.StatusRootNotFoundHint {
		t.Fatalf("expected recommendation, got %q", results[0].Recommendation)
	}
}

func TestCheckConfigMissingFileIsOK(t *testing.T) {
	root := scaffoldRoot(t)
	results, cfg := CheckConfig(root)
	if cfg != nil {
		t.Fatalf("expected nil config, got %+v", cfg)
	}
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result for a bare root, got %v", results)
	}
	if !strings.Contains(results[0].Message, "defaults in effect") {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
}

func TestCheckConfigValid(t *testing.T) {
	root := scaffoldRoot(t)
	writeConfig(t, root, "[core]\nuri = \"https://example.test\"\n")

	results, cfg := CheckConfig(root)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	if cfg == nil || cfg.Core.URI != "https://example.test" {
		t.Fatalf("expected loaded config, got %+v", cfg)
	}
	want := fmt.Sprintf(messages.StatusConfigLoadedFmt, ".orsh/config.toml")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckConfigValidationErrorFallsBackLenient(t *testing.T) {
	root := scaffoldRoot(t)
	writeConfig(t, root, "[interpreter]\nbin = \"php8.3\"\n\n[nonsense]\nkey = 1\n")

	results, cfg := CheckConfig(root)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected one FAIL result, got %v", results)
	}
	if results[0].Recommendation != messages.StatusConfigInvalidHint {
		t.Fatalf("expected recommendation, got %q", results[0].Recommendation)
	}
	if cfg == nil {
		t.Fatal("expected a lenient config alongside the failure")
	}
	if cfg.Interpreter.Bin == nil || *cfg.Interpreter.Bin != "php8.3" {
		t.Fatalf("expected lenient config to keep interpreter settings, got %+v", cfg)
	}
}

func TestCheckConfigSyntaxError(t *testing.T) {
	root := scaffoldRoot(t)
	writeConfig(t, root, "= not toml")

	results, cfg := CheckConfig(root)
	if cfg != nil {
		t.Fatalf("expected nil config for unparseable file, got %+v", cfg)
	}
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected one FAIL result, got %v", results)
	}
}

func TestCheckSiteResolvesDefaultFallback(t *testing.T) {
	root := scaffoldRoot(t)
	writeSite(t, root, "default")

	results := CheckSite(root, root)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	want := fmt.Sprintf(messages.StatusSiteFoundFmt, "sites/default")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckSiteInsideSiteDir(t *testing.T) {
	root := scaffoldRoot(t)
	writeSite(t, root, "main")

	results := CheckSite(root, filepath.Join(root, "sites", "main"))
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	if !strings.Contains(results[0].Message, "sites/main") {
		t.Fatalf("expected sites/main in %q", results[0].Message)
	}
}

func TestCheckSiteNone(t *testing.T) {
	root := scaffoldRoot(t)
	results := CheckSite(root, root)
	if len(results) != 1 || results[0].Status != StatusWarn {
		t.Fatalf("expected one WARN result, got %v", results)
	}
	if results[0].Message != messages.StatusSiteNotFound {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
	if results[0].Recommendation != messages.StatusSiteNotFoundHint {
		t.Fatalf("expected recommendation, got %q", results[0].Recommendation)
	}
}

func TestCheckOSAlwaysReports(t *testing.T) {
	results := CheckOS()
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	if results[0].CheckName != messages.StatusCheckOS || results[0].Message == "" {
		t.Fatalf("unexpected result %+v", results[0])
	}
}

func TestCheckCacheReportsDir(t *testing.T) {
	orig := cacheRootFunc
	t.Cleanup(func() { cacheRootFunc = orig })
	cacheRootFunc = func() (string, error) { return "/var/cache/orsh", nil }

	results := CheckCache()
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	want := fmt.Sprintf(messages.StatusCacheFmt, "/var/cache/orsh")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckCacheFailure(t *testing.T) {
	orig := cacheRootFunc
	t.Cleanup(func() { cacheRootFunc = orig })
	cacheRootFunc = func() (string, error) { return "", errors.New("all candidates unwritable") }

	results := CheckCache()
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected one FAIL result, got %v", results)
	}
	if results[0].Recommendation != messages.StatusCacheFailedHint {
		t.Fatalf("expected recommendation, got %q", results[0].Recommendation)
	}
}

func TestCheckInterpreterDefault(t *testing.T) {
	t.Setenv("ORSH_INTERP", "")
	t.Setenv("ORSH_INTERP_OPTIONS", "")
	orig := checkInterpreterFunc
	t.Cleanup(func() { checkInterpreterFunc = orig })
	checkInterpreterFunc = func(bin string, options string) []warnings.Warning {
		if bin != "" || options != "" {
			t.Fatalf("expected empty settings, got %q %q", bin, options)
		}
		return nil
	}

	results := CheckInterpreter(nil)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	want := fmt.Sprintf(messages.StatusInterpOKFmt, "php")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckInterpreterUsesConfigSettings(t *testing.T) {
	t.Setenv("ORSH_INTERP", "")
	t.Setenv("ORSH_INTERP_OPTIONS", "")
	orig := checkInterpreterFunc
	t.Cleanup(func() { checkInterpreterFunc = orig })

	var gotBin, gotOptions string
	checkInterpreterFunc = func(bin string, options string) []warnings.Warning {
		gotBin, gotOptions = bin, options
		return nil
	}

	bin := "php8.3"
	cfg := &config.Config{}
	cfg.Interpreter.Bin = &bin
	cfg.Interpreter.Options = "-d memory_limit=-1"

	results := CheckInterpreter(cfg)
	if gotBin != "php8.3" || gotOptions != "-d memory_limit=-1" {
		t.Fatalf("expected config settings passed through, got %q %q", gotBin, gotOptions)
	}
	want := fmt.Sprintf(messages.StatusInterpOKFmt, "php8.3")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckInterpreterEnvironmentWinsOverConfig(t *testing.T) {
	t.Setenv("ORSH_INTERP", "php-env")
	t.Setenv("ORSH_INTERP_OPTIONS", "")
	orig := checkInterpreterFunc
	t.Cleanup(func() { checkInterpreterFunc = orig })

	var gotBin, gotOptions string
	checkInterpreterFunc = func(bin string, options string) []warnings.Warning {
		gotBin, gotOptions = bin, options
		return nil
	}

	bin := "php-config"
	cfg := &config.Config{}
	cfg.Interpreter.Bin = &bin
	cfg.Interpreter.Options = "-d error_reporting=0"

	CheckInterpreter(cfg)
	if gotBin != "php-env" {
		t.Fatalf("expected environment interpreter to win, got %q", gotBin)
	}
	if gotOptions != "-d error_reporting=0" {
		t.Fatalf("expected config options to fill the gap, got %q", gotOptions)
	}
}

func TestCheckInterpreterMapsSeverities(t *testing.T) {
	t.Setenv("ORSH_INTERP", "")
	t.Setenv("ORSH_INTERP_OPTIONS", "")
	orig := checkInterpreterFunc
	t.Cleanup(func() { checkInterpreterFunc = orig })
	checkInterpreterFunc = func(string, string) []warnings.Warning {
		return []warnings.Warning{
			{Code: warnings.CodeInterpNotFound, Message: "missing binary", Fix: "install it", Severity: warnings.SeverityCritical},
			{Code: warnings.CodeInterpOpenBasedir, Message: "open_basedir set", Fix: "unset it"},
		}
	}

	results := CheckInterpreter(nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %v", results)
	}
	if results[0].Status != StatusFail || results[0].Message != "missing binary" || results[0].Recommendation != "install it" {
		t.Fatalf("unexpected critical mapping %+v", results[0])
	}
	if results[1].Status != StatusWarn || results[1].Recommendation != "unset it" {
		t.Fatalf("unexpected warning mapping %+v", results[1])
	}
}

func TestCheckHandoffFindsLocalTool(t *testing.T) {
	root := scaffoldRoot(t)
	binDir := filepath.Join(root, "vendor", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "orsh"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := CheckHandoff(root)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	want := fmt.Sprintf(messages.StatusHandoffFmt, "vendor/bin/orsh")
	if results[0].Message != want {
		t.Fatalf("expected %q, got %q", want, results[0].Message)
	}
}

func TestCheckHandoffNone(t *testing.T) {
	results := CheckHandoff(scaffoldRoot(t))
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected one OK result, got %v", results)
	}
	if results[0].Message != messages.StatusHandoffNone {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
}
