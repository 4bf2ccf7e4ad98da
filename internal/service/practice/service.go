package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type nounRepo interface {
	FetchPool(ctx context.Context) ([]domain.Noun, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error)
	AppendAnswer(ctx context.Context, sessionID uuid.UUID, rec domain.AnswerRecord) error
	Finalize(ctx context.Context, sessionID uuid.UUID, result domain.SessionResult) error
	Abandon(ctx context.Context, sessionID uuid.UUID) error
	MarkFailed(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Limits bounds and defaults the session configuration.
type Limits struct {
	DefaultQuestionCount      int
	DefaultSecondsPerQuestion int
	MaxQuestionCount          int
	MaxSecondsPerQuestion     int
}

// Service runs practice sessions. Each user has at most one live session held
// in memory; its answers and result are written through to the session store.
type Service struct {
	nouns    nounRepo
	sessions sessionRepo
	clock    clockwork.Clock
	log      *slog.Logger
	limits   Limits

	rngMu sync.Mutex
	rng   *rand.Rand

	mu   sync.Mutex
	live map[string]*liveSession
}

// NewService creates a new practice service. rng may be nil, in which case
// the global source is used.
func NewService(
	log *slog.Logger,
	nouns nounRepo,
	sessions sessionRepo,
	clock clockwork.Clock,
	rng *rand.Rand,
	limits Limits,
) *Service {
	return &Service{
		nouns:    nouns,
		sessions: sessions,
		clock:    clock,
		rng:      rng,
		log:      log.With("service", "practice"),
		limits:   limits,
		live:     make(map[string]*liveSession),
	}
}

// StartSession starts a new session, or returns the user's session that is
// still in progress (idempotent).
//
// A finished session with answers or a result not yet in the store is synced
// first. If that fails the start is refused with domain.ErrConflict, so the
// unsaved progress stays reachable until the user syncs or abandons it.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	input.applyDefaults(s.limits)
	if err := input.Validate(s.limits); err != nil {
		return Snapshot{}, err
	}

	if existing := s.lookup(userID); existing != nil {
		if existing.active() {
			s.log.InfoContext(ctx, "returning existing session",
				slog.String("user_id", userID),
				slog.String("session_id", existing.id.String()),
			)
			return existing.snapshot(), nil
		}
		if err := s.flushFinished(ctx, existing); err != nil {
			return Snapshot{}, err
		}
	}

	pool, err := s.nouns.FetchPool(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch noun pool: %w", err)
	}

	s.rngMu.Lock()
	questions, err := SelectQuestions(pool, input.QuestionCount, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return Snapshot{}, err
	}

	header, err := s.sessions.Create(ctx, &domain.PracticeSession{
		ID:     uuid.New(),
		UserID: userID,
		Config: domain.SessionConfig{
			QuestionCount:      len(questions),
			SecondsPerQuestion: input.SecondsPerQuestion,
		},
		Status:    domain.SessionStatusInProgress,
		StartedAt: s.clock.Now(),
	})
	if err != nil {
		return Snapshot{}, domain.NewPersistenceError("create session", err)
	}

	sess := newLiveSession(ctx, header, questions, s.clock, s.sessions, s.log)

	s.mu.Lock()
	if existing := s.live[userID]; existing != nil && existing.active() {
		s.mu.Unlock()
		// Another request started a session concurrently; keep that one.
		s.log.InfoContext(ctx, "race condition detected, returning existing session",
			slog.String("user_id", userID),
			slog.String("session_id", existing.id.String()),
		)
		s.persistAbandon(ctx, header.ID)
		return existing.snapshot(), nil
	}
	s.live[userID] = sess
	sess.begin()
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID),
		slog.String("session_id", header.ID.String()),
		slog.Int("questions", len(questions)),
		slog.Int("seconds_per_question", input.SecondsPerQuestion),
	)

	return sess.snapshot(), nil
}

// GetActiveSession returns the user's current session. A completed or failed
// session stays readable until the next start or abandon.
func (s *Service) GetActiveSession(ctx context.Context) (Snapshot, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

// SubmitAnswer records the user's answer to the current question.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (SubmitOutcome, error) {
	article, err := input.Validate()
	if err != nil {
		return SubmitOutcome{}, err
	}

	sess, err := s.current(ctx)
	if err != nil {
		return SubmitOutcome{}, err
	}

	out, err := sess.submit(ctx, input.Position, article)
	if err != nil {
		return SubmitOutcome{}, err
	}
	return out, nil
}

// SyncActiveSession resends answers and the result that failed to save.
func (s *Service) SyncActiveSession(ctx context.Context) (Snapshot, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if err := sess.sync(ctx); err != nil {
		return sess.snapshot(), err
	}
	return sess.snapshot(), nil
}

// AbandonSession stops and forgets the user's session. Idempotent.
func (s *Service) AbandonSession(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	sess := s.live[userID]
	delete(s.live, userID)
	s.mu.Unlock()

	if sess == nil || !sess.abandon() {
		return nil
	}

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("user_id", userID),
		slog.String("session_id", sess.id.String()),
	)
	return s.persistAbandon(ctx, sess.id)
}

// Shutdown abandons every live session so that no timer fires afterwards.
func (s *Service) Shutdown(ctx context.Context) {
	s.mu.Lock()
	live := s.live
	s.live = make(map[string]*liveSession)
	s.mu.Unlock()

	for _, sess := range live {
		if sess.abandon() {
			s.persistAbandon(ctx, sess.id)
		}
	}
}

// LiveSessions returns the number of sessions held in memory.
func (s *Service) LiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// flushFinished syncs a finished session before it is replaced.
func (s *Service) flushFinished(ctx context.Context, sess *liveSession) error {
	if !sess.unsynced() {
		return nil
	}
	if err := sess.sync(ctx); err != nil {
		s.log.WarnContext(ctx, "previous session still unsynced",
			slog.String("session_id", sess.id.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("session %s has unsaved progress, sync or abandon it first: %w",
			sess.id, domain.ErrConflict)
	}
	return nil
}

func (s *Service) persistAbandon(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Abandon(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.ErrorContext(ctx, "abandon session",
			slog.String("session_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.NewPersistenceError("abandon session", err)
	}
	return nil
}

func (s *Service) current(ctx context.Context) (*liveSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	sess := s.lookup(userID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

func (s *Service) lookup(userID string) *liveSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[userID]
}
