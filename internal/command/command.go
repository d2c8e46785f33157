// Package command assembles escaped self-invocation command lines for
// local and remote execution.
package command

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/oriel-cms/orsh/internal/platform"
)

const (
	// InterpExt marks scripts that need an interpreter prefix.
	InterpExt = ".php"
	// DefaultInterp runs interpreter scripts when no override is configured.
	DefaultInterp = "php"
	// RemoteScript is the bare tool name, resolved by the remote PATH.
	RemoteScript = "orsh"

	// EnvInterp and EnvInterpOptions propagate interpreter settings to
	// nested invocations.
	EnvInterp        = "ORSH_INTERP"
	EnvInterpOptions = "ORSH_INTERP_OPTIONS"
	// EnvColumns forwards the terminal width.
	EnvColumns = "COLUMNS"

	// DefaultColumns is the width treated as not worth forwarding.
	DefaultColumns = 80
)

// executablePath returns the running binary, falling back to argv[0].
var executablePath = func() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return os.Args[0]
}

// Options configures a self-invocation command line.
type Options struct {
	// Script is the invocation target; empty selects the running
	// executable locally or the bare tool name remotely.
	Script string
	// Interp overrides the interpreter used for interpreter scripts.
	Interp string
	// InterpOptions are passed to the interpreter verbatim.
	InterpOptions string
	// OS is the target platform token; empty means the live platform.
	OS string
	// Remote marks command lines embedded in a remote shell invocation.
	Remote bool
	// Env holds extra variables to propagate ahead of the command.
	Env map[string]string
	// Columns is the terminal width, forwarded when it differs from the
	// default.
	Columns int
}

// Build renders the command line for opts. Interpreter scripts get an
// interpreter prefix and record non-default interpreter settings into the
// propagated environment; direct invocations on a POSIX shell fold the
// interpreter override, its options, and a non-default terminal width
// into the environment instead, since direct execution cannot forward
// them as flags. The environment is emitted as a sorted `env K=V` prefix,
// and only where the target shell supports it. Every dynamic token passes
// through Escape.
func Build(opts Options) string {
	script := opts.Script
	if script == "" {
		if opts.Remote {
			script = RemoteScript
		} else {
			script = executablePath()
		}
	}

	env := make(map[string]string, len(opts.Env)+3)
	for key, value := range opts.Env {
		env[key] = value
	}

	interpPrefix := ""
	if strings.HasSuffix(script, InterpExt) {
		interp := opts.Interp
		if interp == "" {
			interp = DefaultInterp
		}
		if interp != DefaultInterp {
			env[EnvInterp] = interp
		}
		interpPrefix = Escape(interp, opts.OS)
		if opts.InterpOptions != "" {
			interpPrefix += " " + opts.InterpOptions
			env[EnvInterpOptions] = opts.InterpOptions
		}
	} else if platform.HasPosixShell(opts.OS) {
		if opts.Interp != "" {
			env[EnvInterp] = opts.Interp
		}
		if opts.InterpOptions != "" {
			env[EnvInterpOptions] = opts.InterpOptions
		}
		if opts.Columns != 0 && opts.Columns != DefaultColumns {
			env[EnvColumns] = strconv.Itoa(opts.Columns)
		}
	}

	var parts []string
	if len(env) > 0 && platform.HasPosixShell(opts.OS) {
		keys := make([]string, 0, len(env))
		for key := range env {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys)+1)
		pairs = append(pairs, "env")
		for _, key := range keys {
			pairs = append(pairs, Escape(key, opts.OS)+"="+Escape(env[key], opts.OS))
		}
		parts = append(parts, strings.Join(pairs, " "))
	}
	if interpPrefix != "" {
		parts = append(parts, interpPrefix)
	}
	parts = append(parts, Escape(script, opts.OS))
	return strings.Join(parts, " ")
}
