package rest

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler that pings db.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 when the database responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health reports the database status with latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: "database unreachable"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
