package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/benchmeta/agent/internal/agent"
	"github.com/benchmeta/agent/internal/config"
	"github.com/benchmeta/agent/internal/output"
)

func main() {
	// Load environment file
	if err := config.LoadEnvFile(); err != nil {
		fmt.Printf("Warning: Failed to load env file: %v\n", err)
	}

	command := "collect"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	switch command {
	case "collect":
		runCollect()
	case "version":
		showVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`benchmeta - Benchmark Environment Metadata Collector

Usage:
  benchmeta [command]

Commands:
  collect   Collect a one-shot environment snapshot (default)
  version   Show version information
  help      Show this help message

Environment Variables:
  BENCHMETA_OUTPUT     Output format: text, json, yaml (default: text)
  BENCHMETA_PROC_ROOT  Root of the proc tree (default: /proc)
  BENCHMETA_SYS_ROOT   Root of the sys tree (default: /sys)
  BENCHMETA_CPUPOWER   Path of the cpupower binary (default: cpupower)
  BENCHMETA_DEBUG      Enable debug logging (true/1)

Configuration File:
  /etc/benchmeta/env   Environment variables file

Examples:
  benchmeta collect
  BENCHMETA_OUTPUT=json benchmeta collect`)
}

func runCollect() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if config.IsDebugMode() {
		log.SetLevel(logrus.DebugLevel)
	}

	format := config.OutputFormat()
	if len(os.Args) >= 3 {
		format = os.Args[2]
	}

	writer, err := output.New(format, os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	collector := agent.NewCollector(log)

	ctx := context.Background()
	meta, err := collector.Collect(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to collect metadata")
		os.Exit(1)
	}

	if err := writer.Write(ctx, meta); err != nil {
		log.WithError(err).Error("Failed to write metadata")
		os.Exit(1)
	}
}

func showVersion() {
	fmt.Printf("benchmeta v%s\n", config.Version)
	fmt.Printf("Commit: %s\n", config.Commit)
	fmt.Printf("Build Date: %s\n", config.BuildDate)
}
