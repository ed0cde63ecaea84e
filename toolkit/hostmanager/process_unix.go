//go:build unix

package hostmanager

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func isNoSuchProcess(err error) bool {
	return errors.Is(err, unix.ESRCH) || errors.Is(err, os.ErrProcessDone)
}
