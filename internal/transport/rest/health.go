package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type liveSessionCounter interface {
	LiveSessions() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db       dbPinger
	sessions liveSessionCounter
	clock    clockwork.Clock
	version  string
}

func NewHealthHandler(db dbPinger, sessions liveSessionCounter, clock clockwork.Clock, version string) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions, clock: clock, version: version}
}

// HealthResponse is the body of all three probes.
type HealthResponse struct {
	Status       string                     `json:"status"`
	Version      string                     `json:"version,omitempty"`
	LiveSessions *int                       `json:"liveSessions,omitempty"`
	Components   map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp    time.Time                  `json:"timestamp"`
}

type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready answers 503 while the session store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: h.clock.Now()})
}

// Health reports component latency, the build version and how many practice
// sessions are held in memory.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	resp := HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  h.clock.Now(),
	}
	if h.sessions != nil {
		n := h.sessions.LiveSessions()
		resp.LiveSessions = &n
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := h.clock.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}
	}
	return ComponentStatus{Status: "ok", Latency: h.clock.Since(start).String()}
}
