// Package cpuprobe collects CPU hardware-state facts for a benchmark
// environment snapshot: model, per-core frequency, frequency-scaling
// configuration, boost/turbo state, thermal readings, and scheduler
// affinity. Every source is best-effort; a missing or unreadable source
// contributes no fact rather than an error.
package cpuprobe

import (
	"context"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/benchmeta/agent/internal/sysfs"
	"github.com/benchmeta/agent/pkg/models"
)

// Config carries the probe roots and tool path. Zero values select the
// live host defaults.
type Config struct {
	ProcRoot     string // default /proc
	SysRoot      string // default /sys
	CPUPowerPath string // default "cpupower" resolved via PATH
}

// Prober collects all CPU facts for one snapshot.
type Prober struct {
	proc     *sysfs.Tree
	sys      *sysfs.Tree
	boost    *BoostTool
	procInfo ProcessInfo
	log      *logrus.Entry

	// Native OS queries, replaceable by tests.
	nativeAffinityFn func() ([]int, error)
	numCPUFn         func() int
}

// NewProber creates a prober for the configured roots.
func NewProber(cfg Config, log *logrus.Entry) *Prober {
	if cfg.ProcRoot == "" {
		cfg.ProcRoot = "/proc"
	}
	if cfg.SysRoot == "" {
		cfg.SysRoot = "/sys"
	}
	if cfg.CPUPowerPath == "" {
		cfg.CPUPowerPath = "cpupower"
	}

	proc := sysfs.NewTree(cfg.ProcRoot)
	return &Prober{
		proc:             proc,
		sys:              sysfs.NewTree(cfg.SysRoot),
		boost:            NewBoostTool(cfg.CPUPowerPath, log),
		procInfo:         &gopsutilProcessInfo{proc: proc},
		log:              log,
		nativeAffinityFn: nativeAffinity,
		numCPUFn:         runtime.NumCPU,
	}
}

// Collect gathers the CPU fact set. The returned facts are owned by the
// caller. The only propagated failure is a *ParseError from the boost
// tool; every other unavailable source simply omits its fact.
func (p *Prober) Collect(ctx context.Context) (*models.FactSet, error) {
	facts := models.NewFactSet()

	facts.Set("cpu_model_name", p.ModelName())

	count := p.LogicalCPUCount(ctx)
	if count > 0 {
		facts.Set("cpu_count", strconv.Itoa(count))
	}

	affinity := p.Affinity(ctx)
	facts.Set("cpu_affinity", DescribeAffinity(affinity, count, p.IsolatedCPUs()))

	// Probe the cores the process may run on; when affinity is unknown
	// fall back to every enumerable core.
	scope := affinity
	if len(scope) == 0 && count > 0 {
		scope = make([]int, count)
		for cpu := range scope {
			scope[cpu] = cpu
		}
	}

	p.log.WithField("cores", len(scope)).Debug("probing cpu state")

	if len(scope) > 0 {
		if freqs := p.Frequencies(scope); len(freqs) > 0 {
			facts.Set("cpu_freq", formatPerCore(freqs, scope))
		}

		configs := make(map[int]string)
		for _, cpu := range scope {
			config, err := p.CPUConfig(ctx, cpu)
			if err != nil {
				return nil, err
			}
			if config != "" {
				configs[cpu] = config
			}
		}
		if len(configs) > 0 {
			facts.Set("cpu_config", formatPerCore(configs, scope))
		}
	}

	facts.Set("cpu_temp", p.Temperatures())

	return facts, nil
}
