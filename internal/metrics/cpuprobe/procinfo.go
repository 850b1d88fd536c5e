package cpuprobe

import (
	"context"
	"errors"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/benchmeta/agent/internal/sysfs"
)

// gopsutilProcessInfo is the default ProcessInfo backend: logical CPU
// count through gopsutil and affinity through the process status file.
type gopsutilProcessInfo struct {
	proc *sysfs.Tree
}

func (g *gopsutilProcessInfo) CPUAffinity(ctx context.Context) ([]int, error) {
	for _, line := range g.proc.Lines("self/status") {
		if value, ok := strings.CutPrefix(line, "Cpus_allowed_list:"); ok {
			return ParseCPUList(value)
		}
	}
	return nil, errors.New("Cpus_allowed_list not found in process status")
}

func (g *gopsutilProcessInfo) LogicalCPUCount(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}
