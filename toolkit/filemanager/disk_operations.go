package filemanager

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/steelcutops/systoolkit/common"
)

type usageFunc func(ctx context.Context, path string) (*disk.UsageStat, error)

// DiskUsage queries the volume containing path. An empty path means "/".
func (f *LocalFileManager) DiskUsage(ctx context.Context, path string) (DiskUsage, error) {
	if path == "" {
		path = "/"
	}
	usage := f.usage
	if usage == nil {
		usage = disk.UsageWithContext
	}

	stat, err := usage(ctx, path)
	if err != nil {
		return DiskUsage{}, common.Classify("disk usage", path, err)
	}

	du := DiskUsage{
		Path:       path,
		Filesystem: stat.Fstype,
		Total:      stat.Total,
		Used:       stat.Used,
		Free:       stat.Free,
	}
	f.log().Debug("Disk usage", "path", path, "total", du.Total, "used", du.Used, "free", du.Free)
	return du, nil
}
