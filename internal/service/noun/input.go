package noun

import (
	"strings"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ListInput holds the parameters for listing nouns. Empty strings mean no filter.
type ListInput struct {
	Article  string
	Search   string
	Category string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Article != "" {
		if _, ok := domain.ParseArticle(i.Article); !ok {
			errs = append(errs, domain.FieldError{Field: "article", Message: "must be der, die, or das"})
		}
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(i.Search) > 100 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *ListInput) filter() domain.NounFilter {
	f := domain.NounFilter{Limit: i.Limit, Offset: i.Offset}
	if f.Limit == 0 {
		f.Limit = defaultLimit
	}
	if a, ok := domain.ParseArticle(i.Article); ok {
		f.Article = &a
	}
	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	if c := strings.TrimSpace(i.Category); c != "" {
		f.Category = &c
	}
	return f
}
