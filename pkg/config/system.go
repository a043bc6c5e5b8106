package config

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DetectWorkers returns the logical CPU count, or runtime.NumCPU when it
// cannot be read.
func DetectWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// SystemInfo describes the host for the render summary
type SystemInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64 // Bytes
}

// DetectSystem gathers host information. Fields that cannot be read are
// left zero; the error reports the first failure.
func DetectSystem() (SystemInfo, error) {
	info := SystemInfo{LogicalCores: DetectWorkers()}

	cpus, err := cpu.Info()
	if err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	memInfo, memErr := mem.VirtualMemory()
	if memErr == nil {
		info.TotalMemory = memInfo.Total
	} else if err == nil {
		err = memErr
	}

	return info, err
}
