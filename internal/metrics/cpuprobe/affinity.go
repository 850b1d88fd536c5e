package cpuprobe

import (
	"context"
	"sort"
)

// ProcessInfo is an optional process/system introspection capability
// used when no native OS equivalent exists. A nil ProcessInfo is
// treated uniformly with every other unavailable source.
type ProcessInfo interface {
	// CPUAffinity returns the cores the current process may run on.
	CPUAffinity(ctx context.Context) ([]int, error)
	// LogicalCPUCount returns the number of logical CPUs.
	LogicalCPUCount(ctx context.Context) (int, error)
}

// Affinity returns the cores the current process is restricted to,
// preferring the native OS query and falling back to the injected
// ProcessInfo capability. It returns nil when neither source works.
func (p *Prober) Affinity(ctx context.Context) []int {
	if cpus, err := p.nativeAffinityFn(); err == nil && len(cpus) > 0 {
		return cpus
	}
	if p.procInfo != nil {
		if cpus, err := p.procInfo.CPUAffinity(ctx); err == nil && len(cpus) > 0 {
			sort.Ints(cpus)
			return cpus
		}
	}
	return nil
}

// LogicalCPUCount returns the number of logical CPUs, preferring the
// injected ProcessInfo capability and falling back to the runtime. A
// non-positive result from a backend is treated as unknown.
func (p *Prober) LogicalCPUCount(ctx context.Context) int {
	if p.procInfo != nil {
		if count, err := p.procInfo.LogicalCPUCount(ctx); err == nil && count > 0 {
			return count
		}
	}
	if count := p.numCPUFn(); count > 0 {
		return count
	}
	return 0
}

// IsolatedCPUs returns the kernel-reported isolated core list, or nil
// when the source is absent or malformed.
func (p *Prober) IsolatedCPUs() []int {
	line := p.sys.FirstLineDefault(isolatedPath, "")
	cpus, err := ParseCPUList(line)
	if err != nil {
		return nil
	}
	return cpus
}

// DescribeAffinity renders an affinity set as a compact range-list
// string, suffixed " (isolated)" when the set is contained in the
// non-empty isolated core list. Full affinity over [0,total) is not
// worth reporting and yields "", as does an unknown affinity or total.
func DescribeAffinity(affinity []int, total int, isolated []int) string {
	if len(affinity) == 0 || total <= 0 {
		return ""
	}

	set := make(map[int]bool, len(affinity))
	for _, cpu := range affinity {
		set[cpu] = true
	}
	if len(set) == total {
		full := true
		for cpu := 0; cpu < total; cpu++ {
			if !set[cpu] {
				full = false
				break
			}
		}
		if full {
			return ""
		}
	}

	text := FormatCPUList(affinity)
	if len(isolated) > 0 && subsetOf(affinity, isolated) {
		text += " (isolated)"
	}
	return text
}

func subsetOf(cpus, of []int) bool {
	set := make(map[int]bool, len(of))
	for _, cpu := range of {
		set[cpu] = true
	}
	for _, cpu := range cpus {
		if !set[cpu] {
			return false
		}
	}
	return true
}
