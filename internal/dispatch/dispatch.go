// Package dispatch hands an invocation off to a site-local orsh when the
// project carries one under vendor/bin. The project-pinned tool knows its
// own codebase best, so it wins over whatever binary the user happened to
// run, unless the invocation manages orsh itself or explicitly opts out.
package dispatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oriel-cms/orsh/internal/command"
	"github.com/oriel-cms/orsh/internal/config"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/pathutil"
)

// EnvLocalActive guards against a site-local orsh handing off to itself.
const EnvLocalActive = "ORSH_LOCAL_ACTIVE"

// NoLocalFlag disables the handoff for one invocation.
const NoLocalFlag = "--no-local"

// localCandidates are root-relative paths probed for a site-local orsh,
// in preference order.
var localCandidates = []string{
	"vendor/bin/orsh",
	"vendor/bin/orsh.php",
}

// bypassCommands stay in the invoking binary even when a site-local orsh
// exists: they manage orsh itself rather than the site.
var bypassCommands = map[string]struct{}{
	"init":    {},
	"version": {},
	"help":    {},
	"cache":   {},
}

// valueFlags take a separate argument, which must not be mistaken for a
// command name when scanning the invocation.
var valueFlags = map[string]struct{}{
	"--root": {},
	"--uri":  {},
}

// ErrHandedOff signals that the run was taken over by a site-local orsh.
var ErrHandedOff = errors.New(messages.HandoffErrHandedOff)

// MaybeHandoff checks the root governing cwd for a site-local orsh and
// re-invokes it with the original arguments when one applies. It returns
// ErrHandedOff after a handoff; exit receives the child's exit code.
func MaybeHandoff(args []string, cwd string, exit func(int)) error {
	return MaybeHandoffWithSystem(RealSystem{}, args, cwd, exit)
}

// MaybeHandoffWithSystem is MaybeHandoff with an injectable System.
func MaybeHandoffWithSystem(sys System, args []string, cwd string, exit func(int)) error {
	if sys == nil {
		return errors.New(messages.HandoffSystemRequired)
	}
	if len(args) == 0 {
		return errors.New(messages.HandoffArgv0Required)
	}
	if cwd == "" {
		return errors.New(messages.HandoffCwdRequired)
	}
	if exit == nil {
		return errors.New(messages.HandoffExitRequired)
	}

	if bypassesHandoff(args[1:]) {
		return nil
	}
	if sys.Getenv(EnvLocalActive) != "" {
		return nil
	}

	rootDir, found, err := sys.FindRoot(cwd)
	if err != nil || !found {
		return err
	}
	local, ok := localTool(sys, rootDir)
	if !ok {
		return nil
	}
	if running, err := sys.Executable(); err == nil && pathutil.SamePath(running, local) {
		return nil
	}

	interp, interpOptions := interpSettings(sys, rootDir)
	line := command.Build(command.Options{
		Script:        local,
		Interp:        interp,
		InterpOptions: interpOptions,
	})
	for _, arg := range args[1:] {
		line += " " + command.Escape(arg, "")
	}

	_, _ = fmt.Fprintf(sys.Stderr(), messages.HandoffStderrNoticeFmt, local)
	env := BuildEnv(sys.Environ(), projectEnvOverlay(sys, rootDir))
	code, err := sys.RunShell(line, env)
	if err != nil {
		return fmt.Errorf(messages.HandoffRunFailedFmt, local, err)
	}
	exit(code)
	return ErrHandedOff
}

// bypassesHandoff reports whether the invocation should stay in the
// running binary: an explicit opt-out, a help or version flag, a command
// from the bypass list, or a bare invocation (which prints help locally).
func bypassesHandoff(args []string) bool {
	for _, arg := range args {
		switch arg {
		case NoLocalFlag, "--help", "-h", "--version":
			return true
		}
	}
	cmd, ok := firstCommand(args)
	if !ok {
		return true
	}
	_, bypass := bypassCommands[cmd]
	return bypass
}

// firstCommand returns the first argument that is neither a flag nor the
// value of a value-taking flag.
func firstCommand(args []string) (string, bool) {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			if _, takesValue := valueFlags[arg]; takesValue {
				skipNext = true
			}
			continue
		}
		return arg, true
	}
	return "", false
}

// LocalTool returns the path of a project-pinned orsh under rootDir, if
// one exists. It probes the same candidates the handoff does.
func LocalTool(rootDir string) (string, bool) {
	return localTool(RealSystem{}, rootDir)
}

// localTool returns the path of a project-pinned orsh under rootDir.
func localTool(sys System, rootDir string) (string, bool) {
	for _, rel := range localCandidates {
		path := filepath.Join(rootDir, filepath.FromSlash(rel))
		if sys.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// interpSettings resolves the interpreter override and its options for
// the .php handoff form: explicit environment entries win, then the
// project config. Config problems are ignored here; the handed-off tool
// reports them with full context.
func interpSettings(sys System, rootDir string) (string, string) {
	interp := strings.TrimSpace(sys.Getenv(command.EnvInterp))
	options := strings.TrimSpace(sys.Getenv(command.EnvInterpOptions))
	if interp != "" && options != "" {
		return interp, options
	}
	path := config.DefaultPaths(rootDir).ConfigPath
	data, err := sys.ReadFile(path)
	if err != nil {
		return interp, options
	}
	cfg, err := config.ParseConfigLenient(data, path)
	if err != nil {
		return interp, options
	}
	if interp == "" && cfg.Interpreter.Bin != nil {
		interp = strings.TrimSpace(*cfg.Interpreter.Bin)
	}
	if options == "" {
		options = strings.TrimSpace(cfg.Interpreter.Options)
	}
	return interp, options
}

// projectEnvOverlay reads the root's .orsh/.env for propagation into the
// handoff environment. A missing or unparseable file contributes nothing.
func projectEnvOverlay(sys System, rootDir string) map[string]string {
	path := config.DefaultPaths(rootDir).EnvPath
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil
	}
	env, err := config.ParseEnv(string(data), path)
	if err != nil {
		return nil
	}
	return env
}
