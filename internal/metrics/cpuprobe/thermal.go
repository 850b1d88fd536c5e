package cpuprobe

import (
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"
)

const (
	hwmonPath    = "class/hwmon"
	coretempName = "coretemp"
)

// Temperatures scans the hardware-monitor tree for coretemp devices and
// returns all per-sensor readings joined as
// "<device>:<label>=<n> C, ...", or "" when the tree is inaccessible or
// no coretemp sensor exists.
func (p *Prober) Temperatures() string {
	var items []string
	for _, dir := range p.sys.SubDirs(hwmonPath) {
		items = append(items, p.deviceTemperatures(path.Join(hwmonPath, dir))...)
	}
	return strings.Join(items, ", ")
}

// deviceTemperatures reads the sensors of one hwmon device. Sensor
// indices start at 1 and the first missing temp<i>_label terminates the
// scan for the device.
func (p *Prober) deviceTemperatures(dir string) []string {
	name := p.sys.FirstLineDefault(path.Join(dir, "name"), "")
	if !strings.HasPrefix(name, coretempName) {
		return nil
	}

	var items []string
	for index := 1; ; index++ {
		label, err := p.sys.FirstLine(path.Join(dir, fmt.Sprintf("temp%d_label", index)))
		if err != nil {
			break
		}
		input, err := p.sys.FirstLine(path.Join(dir, fmt.Sprintf("temp%d_input", index)))
		if err != nil {
			break
		}
		milli, err := strconv.ParseFloat(input, 64)
		if err != nil {
			continue
		}
		items = append(items, fmt.Sprintf("%s:%s=%.0f C", name, label, math.Round(milli/1000)))
	}
	return items
}
