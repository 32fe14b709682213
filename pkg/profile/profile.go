// Package profile measures memory: deep dataset footprints for the
// before/after comparison, and process-level usage for diagnostics.
package profile

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

const bytesPerMB = 1024 * 1024

// MemorySnapshot is a deep measurement of a dataset's footprint at one
// instant.
type MemorySnapshot struct {
	Bytes int64
	MB    float64
}

// Snapshot measures the dataset's deep memory usage. Each call is an
// independent walk over the columns; nothing is cached between calls.
func Snapshot(ds *dataset.Dataset) MemorySnapshot {
	bytes := ds.MemoryUsage()
	return MemorySnapshot{
		Bytes: bytes,
		MB:    float64(bytes) / bytesPerMB,
	}
}

// Savings returns the difference between two snapshots in MB. Negative when
// narrowing grew the footprint, which is valid and not an error.
func Savings(before, after MemorySnapshot) float64 {
	return before.MB - after.MB
}

// ProcessMemory reports the current process's resident and virtual memory
// in bytes. Used for debug logging only; the reported figures come from
// dataset snapshots.
func ProcessMemory() (rss, vms uint64, err error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.ErrorTypeInternal, "failed to inspect process")
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.ErrorTypeInternal, "failed to read process memory")
	}
	return info.RSS, info.VMS, nil
}
