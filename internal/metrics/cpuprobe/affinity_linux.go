//go:build linux

package cpuprobe

import "golang.org/x/sys/unix"

// nativeAffinity queries the scheduler affinity mask of the current
// process via sched_getaffinity(2).
func nativeAffinity() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}
	var cpus []int
	for cpu := 0; cpu < len(set)*64; cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}
