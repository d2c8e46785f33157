package warnings

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/oriel-cms/orsh/internal/messages"
)

// blockedFunctions are the calls orsh depends on when shelling out.
var blockedFunctions = []string{"exec", "system"}

var (
	lookPath = exec.LookPath
	osStat   = os.Stat
)

// CheckInterpreter inspects the configured interpreter for settings that
// break script execution. bin is the interpreter binary, empty when the
// built-in default applies; options carries its extra command-line
// arguments verbatim. Findings never abort a run.
func CheckInterpreter(bin string, options string) []Warning {
	var out []Warning
	if w, ok := checkBinary(bin); ok {
		out = append(out, w)
	}
	for _, d := range parseDefines(options) {
		if w, ok := checkDirective(d); ok {
			out = append(out, w)
		}
	}
	return out
}

type define struct {
	name  string
	value string
}

// parseDefines extracts -d name=value assignments from the options
// string. Both the spaced and the attached forms are recognized; a
// define without a value enables the directive.
func parseDefines(options string) []define {
	fields := splitOptions(options)
	var out []define
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		var assignment string
		switch {
		case field == "-d" || field == "--define":
			if i+1 >= len(fields) {
				continue
			}
			i++
			assignment = fields[i]
		case strings.HasPrefix(field, "-d"):
			assignment = field[len("-d"):]
		default:
			continue
		}
		name, value, found := strings.Cut(assignment, "=")
		if !found {
			value = "1"
		}
		out = append(out, define{name: strings.TrimSpace(name), value: strings.TrimSpace(value)})
	}
	return out
}

// splitOptions tokenizes the options string the way a shell would, so
// quoted values holding spaces stay a single argument. Unparseable input
// degrades to whitespace splitting.
func splitOptions(options string) []string {
	fields, err := shell.Fields(options, nil)
	if err != nil {
		return strings.Fields(options)
	}
	return fields
}

// checkDirective maps a define onto the restrictive-directive warnings.
func checkDirective(d define) (Warning, bool) {
	switch strings.ToLower(d.name) {
	case "safe_mode":
		return restrictiveDirective(CodeInterpSafeMode, d)
	case "open_basedir":
		return restrictiveDirective(CodeInterpOpenBasedir, d)
	case "disable_classes":
		return restrictiveDirective(CodeInterpDisableClasses, d)
	case "disable_functions":
		return disabledFunctions(d)
	}
	return Warning{}, false
}

// restrictiveDirective warns when a directive is assigned a real value.
// Empty, "off", and "0" assignments disable the restriction and pass.
func restrictiveDirective(code string, d define) (Warning, bool) {
	if d.value == "" || d.value == "0" || strings.EqualFold(d.value, "off") {
		return Warning{}, false
	}
	return Warning{
		Code:    code,
		Subject: d.name,
		Message: fmt.Sprintf(messages.WarningsInterpDirectiveFmt, d.name, d.value),
		Fix:     fmt.Sprintf(messages.WarningsInterpDirectiveFixFmt, d.name),
		Source:  SourceExternalDependency,
	}, true
}

// disabledFunctions warns when the disable_functions list names a call
// orsh depends on.
func disabledFunctions(d define) (Warning, bool) {
	var hits []string
	for _, item := range strings.Split(d.value, ",") {
		name := strings.ToLower(strings.TrimSpace(item))
		for _, blocked := range blockedFunctions {
			if name == blocked {
				hits = append(hits, name)
			}
		}
	}
	if len(hits) == 0 {
		return Warning{}, false
	}
	return Warning{
		Code:    CodeInterpDisableFunctions,
		Subject: d.name,
		Message: fmt.Sprintf(messages.WarningsInterpDisabledFnsFmt, strings.Join(hits, " and ")),
		Fix:     messages.WarningsInterpDisabledFnsFix,
		Source:  SourceExternalDependency,
		Details: []string{"full list: " + d.value},
	}, true
}

// checkBinary reports a critical warning when the configured interpreter
// cannot be found. The built-in default is resolved at run time and is
// not probed here.
func checkBinary(bin string) (Warning, bool) {
	if bin == "" {
		return Warning{}, false
	}
	var err error
	if strings.ContainsRune(bin, '/') || strings.ContainsRune(bin, os.PathSeparator) {
		_, err = osStat(bin)
	} else {
		_, err = lookPath(bin)
	}
	if err == nil {
		return Warning{}, false
	}
	return Warning{
		Code:     CodeInterpNotFound,
		Subject:  bin,
		Message:  fmt.Sprintf(messages.WarningsInterpNotFoundFmt, bin),
		Fix:      messages.WarningsInterpNotFoundFix,
		Source:   SourceExternalDependency,
		Severity: SeverityCritical,
	}, true
}
