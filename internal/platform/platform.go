// Package platform classifies operating-system identifiers into the closed
// set of families orsh cares about and answers capability questions about
// them. Identifiers are short uppercase tokens ("WINNT", "CYGWIN", "MINGW32",
// "DARWIN", "LINUX", ...) derived fresh per query; nothing is persisted.
package platform

import (
	"os"
	"os/user"
	"runtime"
	"strings"
)

const (
	// TokenLocal resolves to the live environment's identifier. Callers use
	// it to say "my own OS" even while formatting paths for a remote one.
	TokenLocal = "LOCAL"
	// TokenRsync resolves to a cwRsync-compatible identifier on Windows
	// hosts, so path syntax matches what the transfer tool expects.
	TokenRsync = "RSYNC"
	// TokenCwRsync is the identifier resolved from TokenRsync on Windows.
	// It matches no Windows family on purpose: cwRsync consumes POSIX-style
	// paths even though it runs on Windows.
	TokenCwRsync = "CWRSYNC"

	// EnvOS overrides the detected operating-system identifier.
	EnvOS = "ORSH_OS"
)

var goosTokens = map[string]string{
	"windows": "WINNT",
	"darwin":  "DARWIN",
	"linux":   "LINUX",
}

var getenv = os.Getenv

var (
	familyWindows = []string{"WIN", "CYGWIN", "MINGW"}
	familyCygwin  = []string{"CYGWIN", "MINGW"}
	familyMingw   = []string{"MINGW"}
	familyDarwin  = []string{"DARWIN"}
)

// Live returns the canonical identifier for the running platform, honoring
// the ORSH_OS override.
func Live() string {
	if tok := strings.TrimSpace(getenv(EnvOS)); tok != "" {
		return tok
	}
	if tok, ok := goosTokens[runtime.GOOS]; ok {
		return tok
	}
	return strings.ToUpper(runtime.GOOS)
}

// Resolve normalizes an operating-system identifier. An empty identifier or
// TokenLocal resolves to the live platform; TokenRsync resolves to
// TokenCwRsync when the live platform is Windows-like, else the live
// platform. Any other identifier passes through unmodified.
func Resolve(token string) string {
	if strings.EqualFold(token, TokenRsync) {
		live := Live()
		if matchFamily(live, familyWindows) {
			return TokenCwRsync
		}
		return live
	}
	if token == "" || strings.EqualFold(token, TokenLocal) {
		return Live()
	}
	return token
}

// IsWindows reports whether the identifier belongs to a Windows family.
func IsWindows(token string) bool {
	return matchFamily(Resolve(token), familyWindows)
}

// IsCygwin reports whether the identifier belongs to the Cygwin family.
// MinGW identifiers count: MinGW is a Cygwin-family variant.
func IsCygwin(token string) bool {
	return matchFamily(Resolve(token), familyCygwin)
}

// IsMingw reports whether the identifier is a MinGW variant.
func IsMingw(token string) bool {
	return matchFamily(Resolve(token), familyMingw)
}

// IsOSX reports whether the identifier is a Darwin variant.
func IsOSX(token string) bool {
	return matchFamily(Resolve(token), familyDarwin)
}

// HasPosixShell reports whether commands targeting the identifier run under
// a POSIX shell. Cygwin ships one, MinGW does not, and every non-Windows
// family is treated as POSIX-like, including identifiers from outside the
// known set.
func HasPosixShell(token string) bool {
	tok := Resolve(token)
	if matchFamily(tok, familyCygwin) && !matchFamily(tok, familyMingw) {
		return true
	}
	return !matchFamily(tok, familyWindows)
}

var currentUser = user.Current

// Username returns the invoking user's login name. The conventional
// environment variables win over the account database so that sudo and
// su sessions report the effective identity the caller arranged.
func Username() string {
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if name := getenv(key); name != "" {
			return name
		}
	}
	if u, err := currentUser(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}

// matchFamily prefix-matches an already-resolved identifier against family
// tokens, case-insensitively.
func matchFamily(token string, families []string) bool {
	for _, fam := range families {
		if len(token) >= len(fam) && strings.EqualFold(token[:len(fam)], fam) {
			return true
		}
	}
	return false
}
