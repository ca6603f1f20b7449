package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

var processStart = time.Now()

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	StoreBackend string `json:"storeBackend"`
	StoreError   string `json:"storeError,omitempty"`

	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. The store is
// probed with a one-item listing; a failing store degrades the service
// rather than taking it down.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:       statusHealthy,
		Ready:        true,
		Version:      startup.Version,
		Uptime:       time.Since(processStart).Round(time.Second).String(),
		StoreBackend: h.config.StoreBackend,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if err := h.probeStore(r.Context()); err != nil {
		logging.Warn("Store probe failed: %v", err)
		response.Status = statusDegraded
		response.Ready = false
		response.StoreError = err.Error()
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if the
// server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "alive"})
}

// ReadinessCheck reports whether the service can reach its store.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.probeStore(r.Context()); err != nil {
		writeJSONError(w, "store unreachable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ready"})
}

// GetVersion returns build information
func (h *Handlers) GetVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, startup.GetBuildInfo())
}

func (h *Handlers) probeStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := h.store.List(ctx, "uploads/", 1, "")
	return err
}
