package cpuprobe

import (
	"fmt"
	"strings"
)

// formatPerCore renders a per-core value mapping as one string. When
// every core in cpus has a value and all values are identical, the
// result collapses to "<range>=<value>". Otherwise each present core is
// listed as "<core>=<value>" in cpus order; cores without a value are
// omitted. A partial mapping never merges, even when the present values
// agree, so that missing per-core data stays visible.
func formatPerCore(values map[int]string, cpus []int) string {
	merge := false
	if len(cpus) > 0 && len(values) == len(cpus) {
		merge = true
		var common string
		for i, cpu := range cpus {
			v, ok := values[cpu]
			if !ok {
				merge = false
				break
			}
			if i == 0 {
				common = v
			} else if v != common {
				merge = false
				break
			}
		}
	}

	if merge {
		return fmt.Sprintf("%s=%s", FormatCPUList(cpus), values[cpus[0]])
	}

	var parts []string
	for _, cpu := range cpus {
		if v, ok := values[cpu]; ok {
			parts = append(parts, fmt.Sprintf("%d=%s", cpu, v))
		}
	}
	return strings.Join(parts, ", ")
}
