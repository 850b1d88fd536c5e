// Package agent assembles the full environment metadata snapshot for a
// benchmark run: tool and runtime facts, system facts, memory usage,
// and the CPU hardware-state facts from the prober.
package agent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/benchmeta/agent/internal/config"
	"github.com/benchmeta/agent/internal/metrics/cpuprobe"
	"github.com/benchmeta/agent/internal/metrics/static"
	"github.com/benchmeta/agent/internal/sysfs"
	"github.com/benchmeta/agent/pkg/models"
)

// Collector gathers one complete metadata snapshot.
type Collector struct {
	proc   *sysfs.Tree
	prober *cpuprobe.Prober
	log    *logrus.Logger

	// now is replaceable by tests.
	now func() time.Time
}

// NewCollector creates the metadata collector from the process
// configuration.
func NewCollector(log *logrus.Logger) *Collector {
	probeCfg := cpuprobe.Config{
		ProcRoot:     config.ProcRoot(),
		SysRoot:      config.SysRoot(),
		CPUPowerPath: config.CPUPowerPath(),
	}

	return &Collector{
		proc:   sysfs.NewTree(probeCfg.ProcRoot),
		prober: cpuprobe.NewProber(probeCfg, log.WithField("component", "cpuprobe")),
		log:    log,
		now:    time.Now,
	}
}

// Collect gathers a one-shot snapshot. Every fact is independently
// optional; the only failure that aborts collection is a cpupower
// *ParseError, which signals an environment worth surfacing rather
// than silently under-reporting.
func (c *Collector) Collect(ctx context.Context) (*models.Metadata, error) {
	facts := models.NewFactSet()

	facts.Set("benchmeta_version", config.Version)
	// Sub-second precision is noise for a snapshot timestamp.
	facts.Set("date", c.now().Format("2006-01-02T15:04:05"))

	rt := static.CollectRuntimeInfo()
	facts.Set("runtime_version", rt.Version)
	facts.Set("runtime_implementation", rt.Implementation)

	sys := static.CollectSystemInfo(ctx, c.proc)
	facts.Set("platform", sys.Platform)
	facts.Set("hostname", sys.Hostname)
	if sys.HasLoadAvg {
		facts.Set("load_avg_1min", strconv.FormatFloat(sys.LoadAvg1m, 'f', -1, 64))
	}
	facts.Set("aslr", sys.ASLR)

	if mem, err := static.CollectMemoryInfo(ctx); err == nil {
		facts.Set("mem_rss", strconv.FormatUint(mem.RSS, 10))
	} else {
		c.log.WithError(err).Debug("memory info unavailable")
	}

	cpuFacts, err := c.prober.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("cpu metadata: %w", err)
	}
	facts.Merge(cpuFacts)

	return &models.Metadata{
		Hostname:    sys.Hostname,
		CollectedAt: c.now(),
		Facts:       facts,
	}, nil
}
