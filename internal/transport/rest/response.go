package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 16

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// decodeJSON reads a JSON request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleError maps domain errors to HTTP statuses and stable error codes.
// Anything unrecognised is logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrPersistence):
		log.WarnContext(r.Context(), "session store unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "PERSISTENCE", "progress could not be saved, retry sync")

	case errors.Is(err, domain.ErrValidation):
		resp := errorResponse{Error: err.Error(), Code: "VALIDATION"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")

	case errors.Is(err, domain.ErrNoItemsAvailable):
		writeError(w, http.StatusUnprocessableEntity, "NO_ITEMS", err.Error())

	case errors.Is(err, domain.ErrQuestionClosed):
		writeError(w, http.StatusConflict, "QUESTION_CLOSED", err.Error())

	case errors.Is(err, domain.ErrSessionNotActive):
		writeError(w, http.StatusConflict, "SESSION_NOT_ACTIVE", err.Error())

	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())

	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
