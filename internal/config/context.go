package config

import (
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/oriel-cms/orsh/internal/pathutil"
)

// Context carries one invocation's resolved settings from the CLI layer
// down to the resolvers. It is assembled from flags, the environment, the
// active-site store, and the root config file; there is no package-level
// mutable state.
type Context struct {
	// Root is the resolved core root, empty when none was found.
	Root string
	// URI selects the site, as a full address or a bare hostname.
	URI string
	// OS is the target operating-system identifier; empty means local.
	OS string
	// Interp overrides the interpreter binary for .php scripts.
	Interp string
	// InterpOptions are extra interpreter arguments, passed verbatim.
	InterpOptions string
	// Columns is the detected or forced terminal width.
	Columns int
	Verbose bool
	Debug   bool
}

var (
	getenv    = os.Getenv
	getwd     = os.Getwd
	homeDirFn = homedir.Dir
)

// Cwd returns the logical working directory. PWD wins while it still
// names the directory the process is in, keeping symlinked checkouts
// addressed by the path the user typed; otherwise os.Getwd decides.
func Cwd() string {
	wd, err := getwd()
	if err != nil {
		wd = ""
	}
	pwd := getenv("PWD")
	if pwd != "" && (wd == "" || pathutil.SamePath(pwd, wd)) {
		return pathutil.Canonicalize(pwd, "")
	}
	return pathutil.Canonicalize(wd, "")
}

// Home returns the invoking user's home directory.
func Home() (string, error) {
	return homeDirFn()
}
