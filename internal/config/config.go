package config

import (
	"os"
	"strings"
)

const (
	// Agent info (injected at build time via ldflags)
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"

	// Environment file path
	EnvFilePath = "/etc/benchmeta/env"

	// Probe defaults
	DefaultProcRoot     = "/proc"
	DefaultSysRoot      = "/sys"
	DefaultCPUPowerPath = "cpupower"
	DefaultOutputFormat = "text"
)

// LoadEnvFile loads environment variables from /etc/benchmeta/env
func LoadEnvFile() error {
	data, err := os.ReadFile(EnvFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist is not an error
		}
		return err
	}

	// Parse each line as KEY=VALUE
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			// Only set if not already set in environment
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	return nil
}

// ProcRoot returns the /proc tree root, overridable for containers and
// tests via BENCHMETA_PROC_ROOT
func ProcRoot() string {
	if root := os.Getenv("BENCHMETA_PROC_ROOT"); root != "" {
		return root
	}
	return DefaultProcRoot
}

// SysRoot returns the /sys tree root, overridable via BENCHMETA_SYS_ROOT
func SysRoot() string {
	if root := os.Getenv("BENCHMETA_SYS_ROOT"); root != "" {
		return root
	}
	return DefaultSysRoot
}

// CPUPowerPath returns the cpupower binary path from env or default
func CPUPowerPath() string {
	if path := os.Getenv("BENCHMETA_CPUPOWER"); path != "" {
		return path
	}
	return DefaultCPUPowerPath
}

// OutputFormat returns the configured output format (text, json, yaml)
func OutputFormat() string {
	if format := os.Getenv("BENCHMETA_OUTPUT"); format != "" {
		return format
	}
	return DefaultOutputFormat
}

// IsDebugMode checks if debug mode is enabled
func IsDebugMode() bool {
	debug := os.Getenv("BENCHMETA_DEBUG")
	return debug == "true" || debug == "1"
}
