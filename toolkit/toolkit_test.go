package toolkit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/steelcutops/systoolkit/common"
	"github.com/steelcutops/systoolkit/toolkit/commandmanager"
	"github.com/steelcutops/systoolkit/toolkit/hostmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const unusedPID int32 = 1<<22 + 1

type MockCommandManager struct {
	mock.Mock
}

func (m *MockCommandManager) Run(ctx context.Context, config commandmanager.CommandConfig) (commandmanager.CommandResult, error) {
	args := m.Called(config)
	return args.Get(0).(commandmanager.CommandResult), args.Error(1)
}

func (m *MockCommandManager) RunShell(ctx context.Context, command string) (commandmanager.CommandResult, error) {
	args := m.Called(command)
	return args.Get(0).(commandmanager.CommandResult), args.Error(1)
}

type MockHostManager struct {
	mock.Mock
}

func (m *MockHostManager) Info(ctx context.Context) (hostmanager.SystemInfo, error) {
	args := m.Called()
	return args.Get(0).(hostmanager.SystemInfo), args.Error(1)
}

func (m *MockHostManager) BootTime(ctx context.Context) (time.Time, error) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockHostManager) Uptime(ctx context.Context) (time.Duration, error) {
	args := m.Called()
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockHostManager) Processes(ctx context.Context) ([]hostmanager.ProcessInfo, error) {
	args := m.Called()
	return args.Get(0).([]hostmanager.ProcessInfo), args.Error(1)
}

func (m *MockHostManager) KillProcess(ctx context.Context, pid int32) error {
	return m.Called(pid).Error(0)
}

func TestRunShellCommandTrimsOutput(t *testing.T) {
	cm := &MockCommandManager{}
	cm.On("RunShell", "uptime").Return(commandmanager.CommandResult{STDOUT: "  up 3 days\n"}, nil)
	tk := New(WithCommandManager(cm))

	out, err := tk.RunShellCommand(context.Background(), "uptime")
	require.NoError(t, err)
	assert.Equal(t, "up 3 days", out)
	cm.AssertExpectations(t)
}

func TestRunShellCommandKeepsOutputOnFailure(t *testing.T) {
	cm := &MockCommandManager{}
	exitErr := &commandmanager.ExitError{Command: "false", ExitCode: 1}
	cm.On("RunShell", "false").Return(commandmanager.CommandResult{STDOUT: "partial\n", ExitCode: 1}, exitErr)
	tk := New(WithCommandManager(cm))

	out, err := tk.RunShellCommand(context.Background(), "false")
	assert.Equal(t, "partial", out)
	assert.ErrorIs(t, err, exitErr)
}

func TestRunCommandPassesTokens(t *testing.T) {
	cm := &MockCommandManager{}
	cm.On("Run", commandmanager.CommandConfig{Command: "ls", Args: []string{"-l", "a b"}}).
		Return(commandmanager.CommandResult{STDOUT: "total 0\n"}, nil)
	tk := New(WithCommandManager(cm))

	out, err := tk.RunCommand(context.Background(), "ls", "-l", "a b")
	require.NoError(t, err)
	assert.Equal(t, "total 0", out)
}

func TestRunPrivilegedCommandUsesSudo(t *testing.T) {
	cm := &MockCommandManager{}
	cm.On("Run", commandmanager.CommandConfig{Command: "id", Args: []string{"-u"}, Sudo: true}).
		Return(commandmanager.CommandResult{STDOUT: "0\n"}, nil)
	tk := New(WithCommandManager(cm))

	out, err := tk.RunPrivilegedCommand(context.Background(), "id", "-u")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
	cm.AssertExpectations(t)
}

func TestSudoPasswordReachesCommandManager(t *testing.T) {
	tk := New(WithSudoPassword("hunter2"), WithShell("/bin/bash"))

	cm, ok := tk.CommandManager.(*commandmanager.LocalCommandManager)
	require.True(t, ok)
	assert.Equal(t, "hunter2", cm.SudoPassword)
	assert.Equal(t, "/bin/bash", cm.Shell)
}

func TestRunShellCommandLocal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}
	tk := New()

	out, err := tk.RunShellCommand(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestGetUptimeFormatsBootTime(t *testing.T) {
	boot := time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local)
	hm := &MockHostManager{}
	hm.On("BootTime").Return(boot, nil)
	tk := New(WithHostManager(hm))

	out, err := tk.GetUptime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09 07:05:03", out)
}

func TestGetUptimeIsInThePast(t *testing.T) {
	tk := New()

	out, err := tk.GetUptime(context.Background())
	require.NoError(t, err)

	boot, err := time.ParseInLocation(hostmanager.BootTimeLayout, out, time.Local)
	require.NoError(t, err)
	assert.True(t, boot.Before(time.Now()), "boot time %s is not in the past", out)
}

func TestCreateDirectoryAndExists(t *testing.T) {
	tk := New()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "new_folder")

	assert.False(t, tk.CheckIfFileExists(ctx, path))
	require.NoError(t, tk.CreateDirectory(ctx, path))
	require.NoError(t, tk.CreateDirectory(ctx, path))
	assert.True(t, tk.CheckIfFileExists(ctx, path))

	files, err := tk.ListFilesInDirectory(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCopyFileMakesDestinationExist(t *testing.T) {
	tk := New()
	ctx := context.Background()
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	dest := filepath.Join(dir, "dest")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0o644))

	assert.False(t, tk.CheckIfFileExists(ctx, dest))
	require.NoError(t, tk.CopyFile(ctx, source, dest))
	assert.True(t, tk.CheckIfFileExists(ctx, dest))
}

func TestCopyFileMissingSource(t *testing.T) {
	tk := New()
	dir := t.TempDir()
	source, dest := filepath.Join(dir, "missing"), filepath.Join(dir, "dest")

	err := tk.CopyFile(context.Background(), source, dest)
	assert.Equal(t, "Source file not found.", DescribeCopyFile(source, dest, err))
}

func TestFileAttributesAndDeletion(t *testing.T) {
	tk := New()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tree")
	file := filepath.Join(dir, "note.txt")
	require.NoError(t, tk.CreateDirectory(ctx, dir))
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))

	attrs, err := tk.GetFileAttributes(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, int64(5), attrs.Size)
	assert.False(t, attrs.IsDir)

	require.NoError(t, tk.DeleteFile(ctx, file))
	assert.False(t, tk.CheckIfFileExists(ctx, file))
	assert.ErrorIs(t, tk.DeleteFile(ctx, file), common.ErrNotFound)

	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, tk.DeleteDirectory(ctx, dir))
	assert.False(t, tk.CheckIfFileExists(ctx, dir))

	_, err = tk.GetFileAttributes(ctx, dir)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestKillProcessNotRunning(t *testing.T) {
	tk := New()

	err := tk.KillProcess(context.Background(), unusedPID)
	assert.ErrorIs(t, err, common.ErrProcessNotFound)
	assert.Equal(t, "Process with PID 4194305 not found.", DescribeKillProcess(unusedPID, err))
}

func TestListFilesInDirectoryMissing(t *testing.T) {
	tk := New()

	_, err := tk.ListFilesInDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetRunningProcessesDelegates(t *testing.T) {
	hm := &MockHostManager{}
	hm.On("Processes").Return([]hostmanager.ProcessInfo{{PID: 1, Name: "init"}}, nil)
	tk := New(WithHostManager(hm))

	procs, err := tk.GetRunningProcesses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []hostmanager.ProcessInfo{{PID: 1, Name: "init"}}, procs)
}

func TestGetSystemInfoError(t *testing.T) {
	hm := &MockHostManager{}
	hm.On("Info").Return(hostmanager.SystemInfo{}, errors.New("unsupported"))
	tk := New(WithHostManager(hm))

	_, err := tk.GetSystemInfo(context.Background())
	assert.EqualError(t, err, "unsupported")
}
