package commandmanager

import (
	"context"
	"fmt"
	"time"
)

// CommandConfig describes a single local command invocation.
type CommandConfig struct {
	Command string
	Args    []string
	Env     []string // extra KEY=VALUE pairs appended to the inherited environment
	Dir     string
	Sudo    bool
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager runs commands on the local system.
type CommandManager interface {
	// Run executes a pre-tokenized command. No shell is involved.
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)

	// RunShell hands command to the platform shell verbatim. The string is
	// not sanitized; callers must not pass untrusted input.
	RunShell(ctx context.Context, command string) (CommandResult, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	STDERR   string
}

func (e *ExitError) Error() string {
	if e.STDERR == "" {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q exited with status %d: %s", e.Command, e.ExitCode, e.STDERR)
}
