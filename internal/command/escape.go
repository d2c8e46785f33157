package command

import (
	"errors"
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/oriel-cms/orsh/internal/platform"
)

// plainArg matches arguments that are safe unquoted on every supported
// shell.
var plainArg = regexp.MustCompile(`^[a-zA-Z0-9.:/_-]*$`)

// Escape renders arg safe for the shell of the target platform. Plain
// arguments pass through untouched to keep command lines readable;
// Windows-family platforms get cmd.exe double-quote rules, everything
// else POSIX quoting.
func Escape(arg string, osToken string) string {
	if plainArg.MatchString(arg) {
		return arg
	}
	if platform.IsWindows(osToken) {
		return escapeWindows(arg)
	}
	return escapePosix(arg)
}

// escapeWindows applies cmd.exe quoting: backslashes, embedded double
// quotes, and percents are doubled, then the argument is wrapped in
// double quotes.
func escapeWindows(arg string) string {
	arg = strings.ReplaceAll(arg, `\`, `\\`)
	arg = strings.ReplaceAll(arg, `"`, `""`)
	arg = strings.ReplaceAll(arg, "%", "%%")
	return `"` + arg + `"`
}

// escapePosix quotes arg for POSIX shells. Bytes the shell cannot carry
// (NUL, invalid UTF-8) are dropped one at a time until the rest quotes
// cleanly.
func escapePosix(arg string) string {
	for {
		quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err == nil {
			return quoted
		}
		var quoteErr *syntax.QuoteError
		if !errors.As(err, &quoteErr) || quoteErr.ByteOffset >= len(arg) {
			return "''"
		}
		arg = arg[:quoteErr.ByteOffset] + arg[quoteErr.ByteOffset+1:]
	}
}
