package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/internal/service/dashboard"
)

type dashboardService interface {
	GetDashboard(ctx context.Context, input dashboard.GetDashboardInput) (*domain.Dashboard, error)
	GetSessionDetails(ctx context.Context, sessionID uuid.UUID) (*domain.SessionDetails, error)
}

// DashboardHandler serves practice statistics and session history.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Dashboard handles GET /api/dashboard?tz=Europe/Berlin.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context(), dashboard.GetDashboardInput{
		Timezone: r.URL.Query().Get("tz"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}

// SessionDetails handles GET /api/sessions/{id}.
func (h *DashboardHandler) SessionDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.GetSessionDetails(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDetailsResponse(d))
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
