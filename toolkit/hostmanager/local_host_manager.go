package hostmanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/steelcutops/systoolkit/common"
	"github.com/steelcutops/systoolkit/logger"
)

// processHandle is the slice of *process.Process the manager needs.
type processHandle interface {
	NameWithContext(ctx context.Context) (string, error)
	TerminateWithContext(ctx context.Context) error
}

// platform groups the gopsutil entry points so tests can replace them.
type platform struct {
	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	cpuInfo  func(ctx context.Context) ([]cpu.InfoStat, error)
	bootTime func(ctx context.Context) (uint64, error)
	pids     func(ctx context.Context) ([]int32, error)
	open     func(ctx context.Context, pid int32) (processHandle, error)
	now      func() time.Time
}

func gopsutilPlatform() platform {
	return platform{
		hostInfo: host.InfoWithContext,
		cpuInfo:  cpu.InfoWithContext,
		bootTime: host.BootTimeWithContext,
		pids:     process.PidsWithContext,
		open: func(ctx context.Context, pid int32) (processHandle, error) {
			return process.NewProcessWithContext(ctx, pid)
		},
		now: time.Now,
	}
}

// LocalHostManager answers host queries for the machine it runs on.
type LocalHostManager struct {
	Logger logger.Logger
	sys    platform
}

func NewHostManager(l logger.Logger) *LocalHostManager {
	return &LocalHostManager{Logger: l, sys: gopsutilPlatform()}
}

func (h *LocalHostManager) log() logger.Logger {
	return logger.OrDiscard(h.Logger)
}

// Info gathers OS, version, processor and architecture details.
func (h *LocalHostManager) Info(ctx context.Context) (SystemInfo, error) {
	stat, err := h.sys.hostInfo(ctx)
	if err != nil {
		return SystemInfo{}, common.Classify("system info", "host", err)
	}

	info := SystemInfo{
		OS:            displayOS(stat.OS),
		OSVersion:     stat.PlatformVersion,
		Processor:     stat.KernelArch,
		Architecture:  strconv.Itoa(strconv.IntSize) + "bit",
		Hostname:      stat.Hostname,
		Platform:      stat.Platform,
		KernelVersion: stat.KernelVersion,
	}

	// The CPU model is optional; some virtualised hosts do not expose it.
	if cpus, err := h.sys.cpuInfo(ctx); err == nil && len(cpus) > 0 && cpus[0].ModelName != "" {
		info.Processor = cpus[0].ModelName
	} else if err != nil {
		h.log().Debug("CPU model unavailable", "error", err)
	}

	return info, nil
}

// BootTime returns the moment the host booted, in local time.
func (h *LocalHostManager) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := h.sys.bootTime(ctx)
	if err != nil {
		return time.Time{}, common.Classify("boot time", "host", err)
	}
	return time.Unix(int64(secs), 0).Local(), nil
}

// Uptime returns how long the host has been running.
func (h *LocalHostManager) Uptime(ctx context.Context) (time.Duration, error) {
	boot, err := h.BootTime(ctx)
	if err != nil {
		return 0, err
	}
	return h.sys.now().Sub(boot), nil
}

// Processes takes a snapshot of the process table. Processes that exit
// while the snapshot is being taken are left out.
func (h *LocalHostManager) Processes(ctx context.Context) ([]ProcessInfo, error) {
	pids, err := h.sys.pids(ctx)
	if err != nil {
		return nil, common.Classify("processes", "host", err)
	}

	procs := make([]ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		p, err := h.sys.open(ctx, pid)
		if err != nil {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			if errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, fs.ErrNotExist) || isNoSuchProcess(err) {
				continue
			}
			h.log().Debug("Process name unavailable", "pid", pid, "error", err)
		}
		procs = append(procs, ProcessInfo{PID: pid, Name: name})
	}

	h.log().Debug("Enumerated processes", "count", len(procs))
	return procs, nil
}

func (h *LocalHostManager) KillProcess(ctx context.Context, pid int32) error {
	target := strconv.Itoa(int(pid))
	// Non-positive pids address process groups and are never signalled.
	if pid < 0 {
		return common.NewOpError("kill", target, common.ErrUnexpected, fmt.Errorf("invalid pid %d", pid))
	}
	if pid == 0 {
		return common.NewOpError("kill", target, common.ErrProcessNotFound, fmt.Errorf("no process has pid %d", pid))
	}

	p, err := h.sys.open(ctx, pid)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return common.NewOpError("kill", target, common.ErrProcessNotFound, nil)
		}
		return common.Classify("kill", target, err)
	}

	h.log().Debug("Terminating process", "pid", pid)
	if err := p.TerminateWithContext(ctx); err != nil {
		if isNoSuchProcess(err) {
			return common.NewOpError("kill", target, common.ErrProcessNotFound, err)
		}
		return common.Classify("kill", target, err)
	}
	return nil
}

// displayOS capitalises the runtime OS name: "darwin" becomes "Darwin".
func displayOS(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
