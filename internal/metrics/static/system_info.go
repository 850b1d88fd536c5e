package static

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"

	"github.com/benchmeta/agent/internal/sysfs"
)

// SystemInfo contains OS, kernel, and host information relevant to
// interpreting benchmark results.
type SystemInfo struct {
	Platform   string
	Hostname   string
	LoadAvg1m  float64
	HasLoadAvg bool
	ASLR       string
}

// CollectSystemInfo gathers platform, hostname, load average, and ASLR
// state. Individual lookups are best-effort; a failed one leaves its
// field empty.
func CollectSystemInfo(ctx context.Context, proc *sysfs.Tree) *SystemInfo {
	info := &SystemInfo{}

	if h, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = fmt.Sprintf("%s-%s-%s-%s",
			h.OS, h.Platform, h.PlatformVersion, h.KernelArch)
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		info.LoadAvg1m = avg.Load1
		info.HasLoadAvg = true
	}

	info.ASLR = readASLR(proc)

	return info
}

// readASLR decodes /proc/sys/kernel/randomize_va_space.
func readASLR(proc *sysfs.Tree) string {
	switch proc.FirstLineDefault("sys/kernel/randomize_va_space", "") {
	case "0":
		return "No randomization"
	case "1":
		return "Conservative randomization"
	case "2":
		return "Full randomization"
	}
	return ""
}
