package cpuprobe

import (
	"context"
	"fmt"
	"strings"
)

const (
	cpuSysPath   = "devices/system/cpu"
	intelPstate  = "intel_pstate"
	isolatedPath = "devices/system/cpu/isolated"
	noTurboPath  = "devices/system/cpu/intel_pstate/no_turbo"
)

// CPUConfig describes the frequency-scaling configuration of one core
// as "driver:<x>[, <turbo/boost fragment>][, governor:<y>]". It returns
// "" when no fragment is available and an error only when the boost
// tool produced unparsable output.
func (p *Prober) CPUConfig(ctx context.Context, cpu int) (string, error) {
	var info []string

	driver := p.sys.FirstLineDefault(fmt.Sprintf("%s/cpu%d/cpufreq/scaling_driver", cpuSysPath, cpu), "")
	if driver != "" {
		info = append(info, "driver:"+driver)
	}

	if driver == intelPstate {
		// intel_pstate exposes a single global turbo switch; reading it
		// is much cheaper than spawning cpupower per core.
		switch p.sys.FirstLineDefault(noTurboPath, "") {
		case "1":
			info = append(info, "intel_pstate:no turbo")
		case "0":
			info = append(info, "intel_pstate:turbo")
		}
	} else {
		supported, ok, err := p.boost.Probe(ctx, cpu)
		if err != nil {
			return "", err
		}
		if ok {
			if supported {
				info = append(info, "boost:supported")
			} else {
				info = append(info, "boost:not supported")
			}
		}
	}

	governor := p.sys.FirstLineDefault(fmt.Sprintf("%s/cpu%d/cpufreq/scaling_governor", cpuSysPath, cpu), "")
	if governor != "" {
		info = append(info, "governor:"+governor)
	}

	return strings.Join(info, ", "), nil
}
