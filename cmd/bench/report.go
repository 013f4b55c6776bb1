package main

import (
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"gopkg.in/yaml.v3"
)

// SystemInfo holds host information recorded alongside the results.
type SystemInfo struct {
	NumCPU      int     `yaml:"num_cpu"`
	CPUModel    string  `yaml:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `yaml:"cpu_speed_mhz,omitempty"`
	GoArch      string  `yaml:"go_arch"`
	GoVersion   string  `yaml:"go_version"`
	TotalMemory uint64  `yaml:"total_memory_bytes,omitempty"`
}

// Result holds the outcome of one scenario run.
type Result struct {
	Name      string  `yaml:"name"`
	Pattern   string  `yaml:"pattern"`
	Ops       int     `yaml:"ops"`
	Elapsed   string  `yaml:"elapsed"`
	OpsPerSec float64 `yaml:"ops_per_sec"`
	Verified  bool    `yaml:"fifo_verified"`
}

// Report represents a complete benchmark session.
type Report struct {
	SessionTime string     `yaml:"session_time"`
	System      SystemInfo `yaml:"system_info"`
	Results     []Result   `yaml:"results"`
}

// collectSystemInfo gathers host details; failures leave fields empty
// rather than aborting the run.
func collectSystemInfo() SystemInfo {
	info := SystemInfo{
		NumCPU:    runtime.NumCPU(),
		GoArch:    runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
		info.CPUSpeedMHz = cpus[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// writeReport marshals the report to YAML at path, or to stdout if path
// is empty.
func writeReport(report Report, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// sessionTime formats the current time for the report header.
func sessionTime() string {
	return time.Now().Format(time.RFC3339)
}
