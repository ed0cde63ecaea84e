package hostmanager

import "context"

// ControlOperations represents control operations for the host.
type ControlOperations interface {
	// KillProcess asks pid to terminate (SIGTERM on Unix) and returns
	// without waiting for it to exit.
	KillProcess(ctx context.Context, pid int32) error
}
