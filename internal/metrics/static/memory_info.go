package static

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// MemoryInfo contains the collector process's own memory usage,
// recorded so a benchmark result can be checked against memory
// pressure at collection time.
type MemoryInfo struct {
	RSS uint64
}

// CollectMemoryInfo reads the resident set size of the current process.
func CollectMemoryInfo(ctx context.Context) (*MemoryInfo, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return nil, err
	}

	mem, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return &MemoryInfo{RSS: mem.RSS}, nil
}
