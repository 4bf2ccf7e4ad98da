package noun

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

type nounRepo interface {
	List(ctx context.Context, filter domain.NounFilter) ([]domain.Noun, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Noun, error)
	Categories(ctx context.Context) ([]string, error)
}

// Service exposes the read-only noun catalog.
type Service struct {
	nouns nounRepo
	log   *slog.Logger
}

// NewService creates a noun catalog service.
func NewService(log *slog.Logger, nouns nounRepo) *Service {
	return &Service{nouns: nouns, log: log.With("service", "noun")}
}

// ListResult is one page of nouns ordered by word.
type ListResult struct {
	Nouns []domain.Noun
	Total int
}

// List returns nouns matching the input filters.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	nouns, total, err := s.nouns.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list nouns: %w", err)
	}
	return &ListResult{Nouns: nouns, Total: total}, nil
}

// Get returns a single noun.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Noun, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	n, err := s.nouns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get noun: %w", err)
	}
	return n, nil
}

// Categories returns the distinct categories in alphabetical order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.nouns.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
