package toolkit

import (
	"errors"
	"fmt"

	"github.com/steelcutops/systoolkit/common"
	"github.com/steelcutops/systoolkit/toolkit/filemanager"
	"github.com/steelcutops/systoolkit/toolkit/networkmanager"
)

// The Describe helpers turn operation results into one-line status messages
// for printing. Callers that need to branch should inspect the error instead.

func DescribeCreateDirectory(path string, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Directory %s created successfully.", path)
}

func DescribeCopyFile(source, destination string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("File copied from %s to %s.", source, destination)
	case errors.Is(err, filemanager.ErrSourceNotFound):
		return "Source file not found."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func DescribeKillProcess(pid int32, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Process %d terminated.", pid)
	case errors.Is(err, common.ErrProcessNotFound):
		return fmt.Sprintf("Process with PID %d not found.", pid)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func DescribeMACAddress(mac string, err error) string {
	switch {
	case err == nil:
		return mac
	case errors.Is(err, networkmanager.ErrNoMACAddress):
		return "No MAC address found."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
