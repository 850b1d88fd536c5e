package cpuprobe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FormatCPUList renders a set of logical CPU ids as a compact range-list
// string, e.g. [0 1 2 5] -> "0-2,5". The input does not need to be sorted.
func FormatCPUList(cpus []int) string {
	if len(cpus) == 0 {
		return ""
	}

	sorted := make([]int, len(cpus))
	copy(sorted, cpus)
	sort.Ints(sorted)

	var parts []string
	first := sorted[0]
	last := sorted[0]
	flush := func() {
		if first == last {
			parts = append(parts, strconv.Itoa(first))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", first, last))
		}
	}
	for _, cpu := range sorted[1:] {
		if cpu == last || cpu == last+1 {
			last = cpu
			continue
		}
		flush()
		first, last = cpu, cpu
	}
	flush()
	return strings.Join(parts, ",")
}

// ParseCPUList parses a kernel range-list string such as "2-3,6" into a
// sorted slice of CPU ids. An empty string yields nil.
func ParseCPUList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var cpus []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("invalid cpu range %q: %w", part, err)
			}
			end, err := strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("invalid cpu range %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("invalid cpu range %q", part)
			}
			for cpu := start; cpu <= end; cpu++ {
				cpus = append(cpus, cpu)
			}
		} else {
			cpu, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid cpu id %q: %w", part, err)
			}
			cpus = append(cpus, cpu)
		}
	}
	sort.Ints(cpus)
	return cpus, nil
}
