package commandmanager

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/steelcutops/systoolkit/common"
	"github.com/steelcutops/systoolkit/logger"
)

type LocalCommandManager struct {
	// Shell overrides the interpreter used by RunShell. Empty selects
	// /bin/sh on Unix and cmd on Windows.
	Shell        string
	SudoPassword string
	Logger       logger.Logger
}

func (l *LocalCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	log := logger.OrDiscard(l.Logger)
	start := time.Now()

	name, args := config.Command, config.Args
	if config.Sudo {
		args = append([]string{"-S", name}, args...)
		name = "sudo"
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if config.Sudo {
		cmd.Stdin = strings.NewReader(l.SudoPassword + "\n")
	}
	if len(config.Env) > 0 {
		cmd.Env = append(os.Environ(), config.Env...)
	}
	cmd.Dir = config.Dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("Running local command", "command", config.Command, "args", config.Args, "sudo", config.Sudo)
	err := cmd.Run()

	result := CommandResult{
		Command:   commandLine(config),
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	// Check for sudo-related errors
	if config.Sudo {
		if strings.Contains(result.STDERR, "incorrect password") {
			return result, common.NewOpError("run", result.Command, common.ErrPermission, errors.New("sudo: incorrect password provided"))
		}
		if strings.Contains(result.STDERR, "is not in the sudoers file") {
			return result, common.NewOpError("run", result.Command, common.ErrPermission, errors.New("sudo: user is not in the sudoers file"))
		}
	}

	if err != nil {
		log.Debug("Local command failed", "command", result.Command, "exit_code", result.ExitCode, "error", err)
		return result, wrapRunError(result, err)
	}
	return result, nil
}

func (l *LocalCommandManager) RunShell(ctx context.Context, command string) (CommandResult, error) {
	shell, flag := l.shell()
	result, err := l.Run(ctx, CommandConfig{
		Command: shell,
		Args:    []string{flag, command},
	})
	result.Command = command

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		exitErr.Command = command
	}
	return result, err
}

func (l *LocalCommandManager) shell() (string, string) {
	if l.Shell != "" {
		if strings.HasSuffix(strings.ToLower(l.Shell), "cmd.exe") || strings.EqualFold(l.Shell, "cmd") {
			return l.Shell, "/C"
		}
		return l.Shell, "-c"
	}
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "/bin/sh", "-c"
}

func wrapRunError(result CommandResult, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Command:  result.Command,
			ExitCode: result.ExitCode,
			STDERR:   strings.TrimSpace(result.STDERR),
		}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return common.NewOpError("run", result.Command, common.ErrNotFound, err)
	}
	return common.Classify("run", result.Command, err)
}

func commandLine(config CommandConfig) string {
	if len(config.Args) == 0 {
		return config.Command
	}
	return config.Command + " " + strings.Join(config.Args, " ")
}

func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	// The command never started.
	return -1
}
