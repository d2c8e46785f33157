package doctor

import "fmt"

// Status classifies a check outcome.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// String returns the bare status name used in logs and test output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is one line of the status report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
