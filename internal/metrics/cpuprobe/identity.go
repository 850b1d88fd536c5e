package cpuprobe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// noCore marks the scanner state before any in-scope "processor" line
// has been seen.
const noCore = -1

// ModelName returns the CPU model string from the first "model name"
// line of /proc/cpuinfo, or "" when unavailable.
func (p *Prober) ModelName() string {
	for _, line := range p.proc.Lines("cpuinfo") {
		if strings.HasPrefix(line, "model name") {
			return valueAfterColon(line)
		}
	}
	return ""
}

// Frequencies scans /proc/cpuinfo and returns the clock frequency per
// core, formatted as "<n> MHz", for the cores in cpus. The scan tracks
// the current processor block: a "processor" line switches the tracked
// core, resetting to none when the id is out of scope or unparsable,
// and a "cpu MHz" line under a tracked core records its frequency. A
// later "cpu MHz" line for the same core overwrites an earlier one.
func (p *Prober) Frequencies(cpus []int) map[int]string {
	scope := make(map[int]bool, len(cpus))
	for _, cpu := range cpus {
		scope[cpu] = true
	}

	freqs := make(map[int]string)
	current := noCore
	for _, line := range p.proc.Lines("cpuinfo") {
		switch {
		case strings.HasPrefix(line, "processor"):
			cpu, err := strconv.Atoi(valueAfterColon(line))
			if err != nil || !scope[cpu] {
				current = noCore
			} else {
				current = cpu
			}
		case strings.HasPrefix(line, "cpu MHz") && current != noCore:
			mhz, err := strconv.ParseFloat(valueAfterColon(line), 64)
			if err == nil {
				freqs[current] = fmt.Sprintf("%d MHz", int(math.Round(mhz)))
			}
		}
	}
	return freqs
}

// valueAfterColon returns the trimmed text after the first colon of a
// "key : value" cpuinfo line.
func valueAfterColon(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}
