// Package warnings models the non-fatal findings orsh surfaces before a
// run: restrictive interpreter settings and similar environment faults
// that degrade a site without blocking path resolution.
package warnings

import "fmt"

// Warning codes.
const (
	CodeInterpSafeMode         = "INTERP_SAFE_MODE"
	CodeInterpOpenBasedir      = "INTERP_OPEN_BASEDIR"
	CodeInterpDisableFunctions = "INTERP_DISABLE_FUNCTIONS"
	CodeInterpDisableClasses   = "INTERP_DISABLE_CLASSES"
	CodeInterpNotFound         = "INTERP_NOT_FOUND"
)

// Source labels where a warning originates.
const (
	SourceInternal           = "internal"
	SourceExternalDependency = "external dependency"
)

// Severity labels whether a warning should be considered critical.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning represents a warning message.
type Warning struct {
	Code     string
	Subject  string
	Message  string
	Fix      string
	Details  []string
	Source   string
	Severity string
}

func (w Warning) String() string {
	s := "WARNING " + w.Code + ": " + w.Message + "\n"
	s += fmt.Sprintf("  source: %s\n", w.sourceOrDefault())
	s += fmt.Sprintf("  severity: %s\n", w.severityOrDefault())
	s += "  subject: " + w.Subject + "\n"
	s += "  fix: " + w.Fix
	for _, d := range w.Details {
		s += "\n  details: " + d
	}
	return s
}

func (w Warning) sourceOrDefault() string {
	if w.Source == "" {
		return SourceInternal
	}
	return w.Source
}

func (w Warning) severityOrDefault() string {
	if w.Severity == "" {
		return SeverityWarning
	}
	return w.Severity
}
