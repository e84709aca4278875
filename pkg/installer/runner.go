// Package installer builds and executes the package installation plan:
// enable the COPR repository, install the runtime set, then any selected
// optional category sets, stopping at the first failure.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands. The interface exists so tests
// can substitute a mock for the real package manager.
type CommandRunner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands on the real system, streaming stdout so the
// package manager's progress output stays visible.
type ExecRunner struct{}

// LookPath finds the path to an executable.
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command. Stderr is captured and folded into the returned
// error so failures carry the package manager's own diagnostic.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %s", name, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
