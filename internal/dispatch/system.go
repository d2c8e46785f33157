package dispatch

import (
	"io"
	"os"

	"github.com/oriel-cms/orsh/internal/root"
)

// System abstracts the OS operations the handoff needs. The interface is
// package-local so unit tests can run in parallel without shared global
// state; other packages define their own seams.
type System interface {
	Getenv(key string) string
	Environ() []string
	Executable() (string, error)
	ReadFile(name string) ([]byte, error)
	FileExists(path string) bool
	FindRoot(start string) (string, bool, error)
	RunShell(line string, env []string) (int, error)
	Stderr() io.Writer
}

// RealSystem implements System using the OS and the root locator.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Executable returns the path of the running binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// FileExists reports whether path names an existing regular file.
func (RealSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// FindRoot locates the application root governing start.
func (RealSystem) FindRoot(start string) (string, bool, error) {
	desc, ok, err := root.Find(start, nil)
	if err != nil || !ok {
		return "", false, err
	}
	return desc.Root, true, nil
}

// RunShell executes line through the shell and returns its exit code.
func (RealSystem) RunShell(line string, env []string) (int, error) {
	return runShell(line, env)
}

// Stderr returns the standard error writer.
func (RealSystem) Stderr() io.Writer {
	return os.Stderr
}
