package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns the optimal concurrency for a given task type.
// It respects container CPU limits via GOMAXPROCS (Go 1.19+).
//
// The multiplier adjusts for task characteristics:
//   - 1.0 for CPU-bound tasks (preview decoding)
//   - 2.0 for I/O-bound tasks (object store transfers)
//
// The limit parameter caps the result to prevent resource exhaustion.
// Use 0 for no limit.
//
// Can be overridden with the UPLOAD_CONCURRENCY environment variable.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("UPLOAD_CONCURRENCY"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	available := runtime.GOMAXPROCS(0)

	count := int(float64(available) * multiplier)
	if count < 1 {
		count = 1
	}
	if limit > 0 && count > limit {
		count = limit
	}
	return count
}

// ForCPU returns concurrency for CPU-bound tasks (1 per CPU).
func ForCPU(limit int) int {
	return Count(1.0, limit)
}

// ForIO returns concurrency for I/O-bound tasks (2 per CPU).
func ForIO(limit int) int {
	return Count(2.0, limit)
}
