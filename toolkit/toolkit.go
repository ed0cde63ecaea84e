// Package toolkit exposes stateless operating-system utilities: command
// execution, filesystem helpers, host and process queries, and MAC lookup.
// Each call queries the platform afresh; nothing is cached.
package toolkit

import (
	"context"
	"strings"

	"github.com/steelcutops/systoolkit/logger"
	"github.com/steelcutops/systoolkit/toolkit/commandmanager"
	"github.com/steelcutops/systoolkit/toolkit/filemanager"
	"github.com/steelcutops/systoolkit/toolkit/hostmanager"
	"github.com/steelcutops/systoolkit/toolkit/networkmanager"
)

type Toolkit struct {
	CommandManager commandmanager.CommandManager
	FileManager    filemanager.FileManager
	HostManager    hostmanager.HostManager
	NetworkManager networkmanager.NetworkManager

	logger       logger.Logger
	shell        string
	sudoPassword string
}

// New wires the local managers. Options may replace any of them.
func New(options ...Option) *Toolkit {
	tk := &Toolkit{}
	for _, option := range options {
		option(tk)
	}

	log := logger.OrDiscard(tk.logger)
	if tk.CommandManager == nil {
		tk.CommandManager = &commandmanager.LocalCommandManager{Shell: tk.shell, SudoPassword: tk.sudoPassword, Logger: log}
	}
	if tk.FileManager == nil {
		tk.FileManager = filemanager.NewFileManager(log)
	}
	if tk.HostManager == nil {
		tk.HostManager = hostmanager.NewHostManager(log)
	}
	if tk.NetworkManager == nil {
		tk.NetworkManager = networkmanager.NewNetworkManager(log)
	}
	return tk
}

// RunShellCommand passes command to the platform shell and returns its
// trimmed standard output. The command is executed verbatim: never build
// it from untrusted input, use RunCommand instead. On a non-zero exit the
// output is still returned alongside a *commandmanager.ExitError.
func (tk *Toolkit) RunShellCommand(ctx context.Context, command string) (string, error) {
	result, err := tk.CommandManager.RunShell(ctx, command)
	return strings.TrimSpace(result.STDOUT), err
}

// RunCommand executes name with args directly, without a shell, and
// returns its trimmed standard output.
func (tk *Toolkit) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	result, err := tk.CommandManager.Run(ctx, commandmanager.CommandConfig{Command: name, Args: args})
	return strings.TrimSpace(result.STDOUT), err
}

// RunPrivilegedCommand is RunCommand under "sudo -S". A rejected password
// or a user missing from sudoers yields common.ErrPermission.
func (tk *Toolkit) RunPrivilegedCommand(ctx context.Context, name string, args ...string) (string, error) {
	result, err := tk.CommandManager.Run(ctx, commandmanager.CommandConfig{Command: name, Args: args, Sudo: true})
	return strings.TrimSpace(result.STDOUT), err
}

func (tk *Toolkit) ListFilesInDirectory(ctx context.Context, path string) ([]string, error) {
	return tk.FileManager.ListDirectory(ctx, path)
}

func (tk *Toolkit) GetSystemInfo(ctx context.Context) (hostmanager.SystemInfo, error) {
	return tk.HostManager.Info(ctx)
}

// CheckDiskUsage reports the volume holding path; "" means "/".
func (tk *Toolkit) CheckDiskUsage(ctx context.Context, path string) (filemanager.DiskUsage, error) {
	return tk.FileManager.DiskUsage(ctx, path)
}

func (tk *Toolkit) GetRunningProcesses(ctx context.Context) ([]hostmanager.ProcessInfo, error) {
	return tk.HostManager.Processes(ctx)
}

// GetUptime returns the boot timestamp as "YYYY-MM-DD HH:MM:SS" local time.
func (tk *Toolkit) GetUptime(ctx context.Context) (string, error) {
	boot, err := tk.HostManager.BootTime(ctx)
	if err != nil {
		return "", err
	}
	return boot.Local().Format(hostmanager.BootTimeLayout), nil
}

func (tk *Toolkit) CreateDirectory(ctx context.Context, path string) error {
	return tk.FileManager.CreateDirectory(ctx, path)
}

func (tk *Toolkit) CheckIfFileExists(ctx context.Context, path string) bool {
	return tk.FileManager.Exists(ctx, path)
}

func (tk *Toolkit) CopyFile(ctx context.Context, source, destination string) error {
	return tk.FileManager.CopyFile(ctx, source, destination)
}

// GetFileAttributes reports size, mode, modification time and kind of path.
func (tk *Toolkit) GetFileAttributes(ctx context.Context, path string) (filemanager.File, error) {
	return tk.FileManager.GetFileAttributes(ctx, path)
}

// DeleteFile removes a single file.
func (tk *Toolkit) DeleteFile(ctx context.Context, path string) error {
	return tk.FileManager.DeleteFile(ctx, path)
}

// DeleteDirectory removes path and everything below it.
func (tk *Toolkit) DeleteDirectory(ctx context.Context, path string) error {
	return tk.FileManager.DeleteDirectory(ctx, path)
}

func (tk *Toolkit) KillProcess(ctx context.Context, pid int32) error {
	return tk.HostManager.KillProcess(ctx, pid)
}

func (tk *Toolkit) GetMACAddress(ctx context.Context) (string, error) {
	return tk.NetworkManager.MACAddress(ctx)
}
