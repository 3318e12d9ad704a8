package driver

import (
	"net/http"
	"runtime"
	"time"
)

// HealthHTTPHandler reports liveness, uptime and memory usage.
type HealthHTTPHandler struct {
	started time.Time
}

// NewHealthHTTPHandler creates a new health handler anchored at the
// current time.
func NewHealthHTTPHandler() *HealthHTTPHandler {
	return &HealthHTTPHandler{started: time.Now()}
}

// healthResponse represents the health check payload.
type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	AllocMB       uint64  `json:"allocMb"`
	SysMB         uint64  `json:"sysMb"`
	Goroutines    int     `json:"goroutines"`
}

// HandleHealth handles GET /health
func (h *HealthHTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(h.started).Seconds(),
		AllocMB:       mem.Alloc / 1024 / 1024,
		SysMB:         mem.Sys / 1024 / 1024,
		Goroutines:    runtime.NumGoroutine(),
	})
}
