package static

import (
	"fmt"
	"runtime"
	"strconv"
)

// RuntimeInfo describes the Go runtime the collector itself runs under.
type RuntimeInfo struct {
	Version        string
	Implementation string
}

// CollectRuntimeInfo reports the runtime version with its pointer width
// (e.g. "go1.23.4 (64-bit)") and the compiler name.
func CollectRuntimeInfo() *RuntimeInfo {
	version := runtime.Version()
	bits := strconv.IntSize
	if bits > 0 {
		version = fmt.Sprintf("%s (%d-bit)", version, bits)
	}

	return &RuntimeInfo{
		Version:        version,
		Implementation: runtime.Compiler,
	}
}
