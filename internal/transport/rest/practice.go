package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/internal/service/practice"
)

type practiceService interface {
	StartSession(ctx context.Context, input practice.StartSessionInput) (practice.Snapshot, error)
	GetActiveSession(ctx context.Context) (practice.Snapshot, error)
	SubmitAnswer(ctx context.Context, input practice.SubmitAnswerInput) (practice.SubmitOutcome, error)
	SyncActiveSession(ctx context.Context) (practice.Snapshot, error)
	AbandonSession(ctx context.Context) error
}

// PracticeHandler serves the live practice session endpoints.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

// Start handles POST /api/practice/sessions. An empty body starts a session
// with default settings.
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	snap, err := h.svc.StartSession(r.Context(), practice.StartSessionInput{
		QuestionCount:      req.QuestionCount,
		SecondsPerQuestion: req.SecondsPerQuestion,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(snap))
}

// Active handles GET /api/practice/sessions/active.
func (h *PracticeHandler) Active(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetActiveSession(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// Answer handles POST /api/practice/sessions/active/answers.
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Position == nil {
		handleError(w, r, h.log, domain.NewValidationError("position", "is required"))
		return
	}

	out, err := h.svc.SubmitAnswer(r.Context(), practice.SubmitAnswerInput{
		Position: *req.Position,
		Article:  req.Article,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmitAnswerResponse(out))
}

// Sync handles POST /api/practice/sessions/active/sync. When some writes
// still fail the session is returned with 503 so the client can keep showing
// its progress and retry.
func (h *PracticeHandler) Sync(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.SyncActiveSession(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toSessionResponse(snap))
	case snap.SessionID != uuid.Nil && errors.Is(err, domain.ErrPersistence):
		h.log.WarnContext(r.Context(), "sync incomplete", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, toSessionResponse(snap))
	default:
		handleError(w, r, h.log, err)
	}
}

// Abandon handles DELETE /api/practice/sessions/active.
func (h *PracticeHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AbandonSession(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
