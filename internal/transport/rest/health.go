package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusOutdated = "outdated"

	probeTimeout = 3 * time.Second
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaVersioner interface {
	SchemaVersion(ctx context.Context) (applied, expected int64, err error)
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaVersioner
	version string
}

// NewHealthHandler creates a HealthHandler reporting version.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// WithSchema makes /health report whether every embedded migration has been
// applied. An outdated or unreadable schema reports the service down.
func (h *HealthHandler) WithSchema(s schemaVersioner) *HealthHandler {
	h.schema = s
	return h
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200: the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 200 when the database is reachable and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status := h.database(ctx).Status
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every component with the build version. Any component
// that is not ok makes the whole response 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": h.database(ctx)}
	if h.schema != nil {
		components["schema"] = h.schemaStatus(ctx)
	}

	overall := statusOK
	for _, c := range components {
		if c.Status != statusOK {
			overall = statusDown
		}
	}

	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) database(ctx context.Context) CompStatus {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) schemaStatus(ctx context.Context) CompStatus {
	applied, expected, err := h.schema.SchemaVersion(ctx)
	switch {
	case err != nil:
		return CompStatus{Status: statusDown}
	case applied < expected:
		return CompStatus{Status: statusOutdated, Detail: fmt.Sprintf("applied %d of %d", applied, expected)}
	default:
		return CompStatus{Status: statusOK, Detail: fmt.Sprintf("version %d", applied)}
	}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
