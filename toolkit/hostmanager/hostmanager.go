package hostmanager

import (
	"context"
	"time"
)

// SystemInfo describes the operating system and processor of the host.
type SystemInfo struct {
	OS            string `json:"os"`
	OSVersion     string `json:"os_version"`
	Processor     string `json:"processor"`
	Architecture  string `json:"architecture"`
	Hostname      string `json:"hostname,omitempty"`
	Platform      string `json:"platform,omitempty"`
	KernelVersion string `json:"kernel_version,omitempty"`
}

// ProcessInfo is one entry of a process table snapshot.
type ProcessInfo struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
}

// BootTimeLayout renders boot timestamps as "YYYY-MM-DD HH:MM:SS".
const BootTimeLayout = "2006-01-02 15:04:05"

// HostManager encompasses operations related to host management.
type HostManager interface {
	SystemInfoOperations
	ControlOperations
	Processes(ctx context.Context) ([]ProcessInfo, error)
}

// SystemInfoOperations represents operations that retrieve system information.
type SystemInfoOperations interface {
	Info(ctx context.Context) (SystemInfo, error)
	BootTime(ctx context.Context) (time.Time, error)
	Uptime(ctx context.Context) (time.Duration, error)
}
