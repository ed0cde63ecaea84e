//go:build !unix

package hostmanager

import (
	"errors"
	"os"
)

func isNoSuchProcess(err error) bool {
	return errors.Is(err, os.ErrProcessDone)
}
