package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/pkg/ctxutil"
)

type sessionRepo interface {
	ListCompleted(ctx context.Context, userID string) ([]domain.SessionSummary, error)
	GetByID(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.PracticeSession, error)
	ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionAnswer, error)
}

// Service serves read-only statistics over persisted sessions.
type Service struct {
	sessions sessionRepo
	clock    clockwork.Clock
	log      *slog.Logger
	loc      *time.Location
	opts     Options
}

// NewService creates a dashboard service. loc is the timezone used when a
// request names none.
func NewService(log *slog.Logger, sessions sessionRepo, clock clockwork.Clock, loc *time.Location, opts Options) *Service {
	return &Service{
		sessions: sessions,
		clock:    clock,
		log:      log.With("service", "dashboard"),
		loc:      loc,
		opts:     opts,
	}
}

// GetDashboardInput selects the timezone that defines calendar days.
type GetDashboardInput struct {
	Timezone string
}

// GetDashboard aggregates all completed sessions of the current user.
func (s *Service) GetDashboard(ctx context.Context, input GetDashboardInput) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	loc, err := ParseTimezone(input.Timezone, s.loc)
	if err != nil {
		return nil, domain.NewValidationError("tz", "unknown timezone")
	}

	sessions, err := s.sessions.ListCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	d := Aggregate(sessions, s.clock.Now(), loc, s.opts)

	s.log.DebugContext(ctx, "dashboard built",
		slog.String("user_id", userID),
		slog.Int("sessions", d.TotalSessions),
		slog.Int("streak", d.Streak),
	)
	return &d, nil
}

// GetSessionDetails returns one of the user's sessions with its answers in
// position order.
func (s *Service) GetSessionDetails(ctx context.Context, sessionID uuid.UUID) (*domain.SessionDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	answers, err := s.sessions.ListAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return &domain.SessionDetails{Session: *session, Answers: answers}, nil
}
