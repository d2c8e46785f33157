package dispatch

import (
	"errors"
	"os"
	"os/exec"
)

// runShell executes line through /bin/sh -c with env as the complete
// child environment, wired to the caller's standard streams. A non-zero
// child exit is reported through the returned code, not the error.
func runShell(line string, env []string) (int, error) {
	cmd := exec.Command("/bin/sh", "-c", line)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
