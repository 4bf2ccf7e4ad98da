package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/internal/service/noun"
)

type nounService interface {
	List(ctx context.Context, input noun.ListInput) (*noun.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Noun, error)
	Categories(ctx context.Context) ([]string, error)
}

// NounHandler serves the read-only vocabulary catalogue.
type NounHandler struct {
	svc nounService
	log *slog.Logger
}

func NewNounHandler(svc nounService, logger *slog.Logger) *NounHandler {
	return &NounHandler{svc: svc, log: logger.With("handler", "noun")}
}

type nounListResponse struct {
	Nouns []nounResponse `json:"nouns"`
	Total int            `json:"total"`
}

// List handles GET /api/nouns?article=&search=&category=&limit=&offset=.
func (h *NounHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fieldErrs []domain.FieldError
	limit := queryInt(q, "limit", &fieldErrs)
	offset := queryInt(q, "offset", &fieldErrs)
	if len(fieldErrs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(fieldErrs))
		return
	}

	res, err := h.svc.List(r.Context(), noun.ListInput{
		Article:  q.Get("article"),
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := nounListResponse{Nouns: make([]nounResponse, 0, len(res.Nouns)), Total: res.Total}
	for _, n := range res.Nouns {
		resp.Nouns = append(resp.Nouns, toNounResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/nouns/{id}.
func (h *NounHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNounResponse(*n))
}

// Categories handles GET /api/nouns/categories.
func (h *NounHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": cats})
}

func queryInt(q url.Values, key string, errs *[]domain.FieldError) int {
	v := q.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return 0
	}
	return n
}
