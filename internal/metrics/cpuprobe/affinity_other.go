//go:build !linux

package cpuprobe

import "errors"

// nativeAffinity has no equivalent outside Linux; callers fall back to
// the injected ProcessInfo capability.
func nativeAffinity() ([]int, error) {
	return nil, errors.New("cpu affinity not available on this platform")
}
