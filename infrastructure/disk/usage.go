package disk

import (
	"fmt"

	"github.com/shirou/gopsutil/disk"
)

// UsageProbe reads free space from the filesystem holding a path.
type UsageProbe struct{}

func NewUsageProbe() UsageProbe {
	return UsageProbe{}
}

func (UsageProbe) Free(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return usage.Free, nil
}
