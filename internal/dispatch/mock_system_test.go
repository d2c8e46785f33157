package dispatch

import (
	"errors"
	"fmt"
	"io"
)

// errNotMocked is returned when a testSystem method is called without a
// mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// RunShell fails fast when unmocked because a test should never spawn a
// real child process by accident. The remaining methods fall back to
// RealSystem so tests can lean on t.TempDir and t.Setenv fixtures.
type testSystem struct {
	RealSystem

	GetenvFunc     func(key string) string
	EnvironFunc    func() []string
	ExecutableFunc func() (string, error)
	ReadFileFunc   func(name string) ([]byte, error)
	FileExistsFunc func(path string) bool
	FindRootFunc   func(start string) (string, bool, error)
	RunShellFunc   func(line string, env []string) (int, error)
	StderrFunc     func() io.Writer
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return s.RealSystem.Getenv(key)
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return s.RealSystem.Environ()
}

func (s *testSystem) Executable() (string, error) {
	if s.ExecutableFunc != nil {
		return s.ExecutableFunc()
	}
	return s.RealSystem.Executable()
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func (s *testSystem) FileExists(path string) bool {
	if s.FileExistsFunc != nil {
		return s.FileExistsFunc(path)
	}
	return s.RealSystem.FileExists(path)
}

func (s *testSystem) FindRoot(start string) (string, bool, error) {
	if s.FindRootFunc != nil {
		return s.FindRootFunc(start)
	}
	return s.RealSystem.FindRoot(start)
}

func (s *testSystem) RunShell(line string, env []string) (int, error) {
	if s.RunShellFunc != nil {
		return s.RunShellFunc(line, env)
	}
	return 0, fmt.Errorf("%w: RunShell", errNotMocked)
}

func (s *testSystem) Stderr() io.Writer {
	if s.StderrFunc != nil {
		return s.StderrFunc()
	}
	return io.Discard
}
