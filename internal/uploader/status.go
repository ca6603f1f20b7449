package uploader

import "sync"

// Status is the lifecycle state of one file in a submitted batch.
type Status string

const (
	// StatusIdle means the file is selected but its turn has not come.
	StatusIdle Status = "idle"
	// StatusUploading means the file is being processed.
	StatusUploading Status = "uploading"
	// StatusDone means both objects were written and resolved.
	StatusDone Status = "done"
	// StatusError means an upload step failed; siblings are unaffected.
	StatusError Status = "error"
)

// statusUpdate is one message into the map's owning goroutine.
type statusUpdate struct {
	index  int
	status Status
}

// StatusMap tracks per-file status, keyed by the file's position in the
// submitted selection. Each item owns a disjoint key and all writes flow
// through a single collector goroutine, so concurrent items never race on
// shared state. The map is the sole source of truth for batch outcome;
// completion order within a batch is unspecified.
type StatusMap struct {
	mu sync.RWMutex
	m  map[int]Status
}

func newStatusMap(n int) *StatusMap {
	m := make(map[int]Status, n)
	for i := 0; i < n; i++ {
		m[i] = StatusIdle
	}
	return &StatusMap{m: m}
}

// set is called only from the collector goroutine.
func (s *StatusMap) set(index int, status Status) {
	s.mu.Lock()
	s.m[index] = status
	s.mu.Unlock()
}

// Get returns the status for the file at index.
func (s *StatusMap) Get(index int) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.m[index]; ok {
		return st
	}
	return StatusIdle
}

// Snapshot returns a copy of the full status map.
func (s *StatusMap) Snapshot() map[int]Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]Status, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// Len returns the number of tracked files.
func (s *StatusMap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Clear resets every entry to idle. Called when the user explicitly clears
// the selection, never by the scheduler itself.
func (s *StatusMap) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.m {
		s.m[k] = StatusIdle
	}
}
