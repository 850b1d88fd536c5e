package cpuprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPerCoreMergesUniformFullCoverage(t *testing.T) {
	values := map[int]string{0: "2400 MHz", 1: "2400 MHz", 2: "2400 MHz"}

	assert.Equal(t, "0-2=2400 MHz", formatPerCore(values, []int{0, 1, 2}))
}

func TestFormatPerCoreDistinctValues(t *testing.T) {
	values := map[int]string{0: "2400 MHz", 1: "2500 MHz"}

	assert.Equal(t, "0=2400 MHz, 1=2500 MHz", formatPerCore(values, []int{0, 1}))
}

func TestFormatPerCorePartialCoverageNeverMerges(t *testing.T) {
	// Both present cores agree, but core 2 has no data: the per-core
	// form keeps the gap visible.
	values := map[int]string{0: "powersave", 1: "powersave"}

	assert.Equal(t, "0=powersave, 1=powersave", formatPerCore(values, []int{0, 1, 2}))
}

func TestFormatPerCoreSingleCore(t *testing.T) {
	values := map[int]string{5: "driver:acpi-cpufreq"}

	assert.Equal(t, "5=driver:acpi-cpufreq", formatPerCore(values, []int{5}))
}

func TestFormatPerCoreScopeOrder(t *testing.T) {
	values := map[int]string{1: "b", 3: "a"}

	assert.Equal(t, "3=a, 1=b", formatPerCore(values, []int{3, 1}))
}

func TestFormatPerCoreValueOutsideScope(t *testing.T) {
	// A stray value for a core outside the scope must not enable the
	// merged form.
	values := map[int]string{0: "x", 9: "x"}

	assert.Equal(t, "0=x", formatPerCore(values, []int{0, 1}))
}

func TestFormatPerCoreEmpty(t *testing.T) {
	assert.Equal(t, "", formatPerCore(map[int]string{}, nil))
}
