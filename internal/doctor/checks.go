// Package doctor runs the environment checks behind orsh status: root
// and site discovery, configuration health, platform classification,
// cache writability, and site-local tool detection.
package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oriel-cms/orsh/internal/cache"
	"github.com/oriel-cms/orsh/internal/command"
	"github.com/oriel-cms/orsh/internal/config"
	"github.com/oriel-cms/orsh/internal/dispatch"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/platform"
	"github.com/oriel-cms/orsh/internal/root"
	"github.com/oriel-cms/orsh/internal/site"
	"github.com/oriel-cms/orsh/internal/warnings"
)

var (
	loadConfigLenientFunc = config.LoadConfigLenient
	cacheRootFunc         = cache.Root
	checkInterpreterFunc  = warnings.CheckInterpreter
)

// CheckRoot locates the codebase root governing start. The returned
// root is empty when discovery fails; callers skip root-bound checks.
func CheckRoot(start string) ([]Result, string) {
	desc, found, err := root.Find(start, nil)
	if err != nil || !found {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.StatusCheckRoot,
			Message:        fmt.Sprintf(messages.StatusRootNotFoundFmt, start),
			Recommendation: messages.StatusRootNotFoundHint,
		}}, ""
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.StatusCheckRoot,
		Message:   fmt.Sprintf(messages.StatusRootFoundFmt, desc.Root, desc.Name),
	}}, desc.Root
}

// CheckConfig loads the root's configuration. A missing file is fine
// (defaults apply). When strict loading fails validation, the lenient
// reader supplies a partial config so the interpreter check still sees
// the configured settings.
func CheckConfig(rootDir string) ([]Result, *config.Config) {
	path := config.DefaultPaths(rootDir).ConfigPath
	rel := relPath(rootDir, path)
	cfg, err := config.LoadConfig(path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.StatusCheckConfig,
			Message:   fmt.Sprintf(messages.StatusConfigLoadedFmt, rel),
		}}, cfg
	}
	if errors.Is(err, fs.ErrNotExist) {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.StatusCheckConfig,
			Message:   fmt.Sprintf(messages.StatusConfigMissingFmt, rel),
		}}, nil
	}

	result := Result{
		Status:         StatusFail,
		CheckName:      messages.StatusCheckConfig,
		Message:        fmt.Sprintf(messages.StatusConfigInvalidFmt, err),
		Recommendation: messages.StatusConfigInvalidHint,
	}
	if !errors.Is(err, config.ErrConfigValidation) {
		// TOML syntax error or unreadable file; the lenient reader
		// cannot recover anything either.
		return []Result{result}, nil
	}
	lenient, lenientErr := loadConfigLenientFunc(path)
	if lenientErr != nil {
		return []Result{result}, nil
	}
	return []Result{result}, lenient
}

// CheckSite resolves the site directory governing start under rootDir.
// No site is a degraded setup, not a broken one: site-bound commands
// fail until one exists, but path resolution still works.
func CheckSite(rootDir string, start string) []Result {
	path, found, err := site.Find(rootDir, start, nil)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.StatusCheckSite,
			Message:   fmt.Sprintf(messages.StatusSiteFailedFmt, err),
		}}
	}
	if !found {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.StatusCheckSite,
			Message:        messages.StatusSiteNotFound,
			Recommendation: messages.StatusSiteNotFoundHint,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.StatusCheckSite,
		Message:   fmt.Sprintf(messages.StatusSiteFoundFmt, relPath(rootDir, path)),
	}}
}

// CheckOS reports the live platform classification.
func CheckOS() []Result {
	token := platform.Live()
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.StatusCheckOS,
		Message:   fmt.Sprintf(messages.StatusOSFmt, token, platform.IsWindows(token), platform.HasPosixShell(token)),
	}}
}

// CheckCache resolves the cache directory, creating it on demand.
func CheckCache() []Result {
	dir, err := cacheRootFunc()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.StatusCheckCache,
			Message:        fmt.Sprintf(messages.StatusCacheFailedFmt, err),
			Recommendation: messages.StatusCacheFailedHint,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.StatusCheckCache,
		Message:   fmt.Sprintf(messages.StatusCacheFmt, dir),
	}}
}

// CheckInterpreter resolves the effective interpreter settings and runs
// the restrictive-configuration scan over them. Explicit environment
// entries win over the config file. cfg may be nil when the root
// carries no readable configuration. A missing configured binary fails
// the check; restrictive directives only warn, since they may not
// affect every command.
func CheckInterpreter(cfg *config.Config) []Result {
	bin := strings.TrimSpace(os.Getenv(command.EnvInterp))
	options := strings.TrimSpace(os.Getenv(command.EnvInterpOptions))
	if cfg != nil {
		if bin == "" && cfg.Interpreter.Bin != nil {
			bin = strings.TrimSpace(*cfg.Interpreter.Bin)
		}
		if options == "" {
			options = strings.TrimSpace(cfg.Interpreter.Options)
		}
	}

	found := checkInterpreterFunc(bin, options)
	if len(found) == 0 {
		shown := bin
		if shown == "" {
			shown = command.DefaultInterp
		}
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.StatusCheckInterp,
			Message:   fmt.Sprintf(messages.StatusInterpOKFmt, shown),
		}}
	}

	results := make([]Result, 0, len(found))
	for _, w := range found {
		status := StatusWarn
		if w.Severity == warnings.SeverityCritical {
			status = StatusFail
		}
		results = append(results, Result{
			Status:         status,
			CheckName:      messages.StatusCheckInterp,
			Message:        w.Message,
			Recommendation: w.Fix,
		})
	}
	return results
}

// CheckHandoff reports whether the root carries a site-local orsh that
// dispatch would hand invocations to.
func CheckHandoff(rootDir string) []Result {
	local, ok := dispatch.LocalTool(rootDir)
	if !ok {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.StatusCheckHandoff,
			Message:   messages.StatusHandoffNone,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.StatusCheckHandoff,
		Message:   fmt.Sprintf(messages.StatusHandoffFmt, relPath(rootDir, local)),
	}}
}

// relPath renders path relative to root with forward slashes for
// compact report lines.
func relPath(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
