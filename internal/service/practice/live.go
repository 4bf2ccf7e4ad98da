package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// answerStore is the subset of the session store a running session writes to.
type answerStore interface {
	AppendAnswer(ctx context.Context, sessionID uuid.UUID, rec domain.AnswerRecord) error
	Finalize(ctx context.Context, sessionID uuid.UUID, result domain.SessionResult) error
	MarkFailed(ctx context.Context, sessionID uuid.UUID) error
}

// liveSession drives one session through its questions. Answers arrive from
// request goroutines and expiries from timer goroutines; mu serializes both,
// and an expiry carrying a stale position is ignored.
type liveSession struct {
	id        uuid.UUID
	userID    string
	cfg       domain.SessionConfig
	startedAt time.Time
	questions []domain.Question

	clock clockwork.Clock
	store answerStore
	log   *slog.Logger
	// bg is used for writes triggered by timer expiry, which have no request.
	bg context.Context

	mu           sync.Mutex
	status       domain.SessionStatus
	current      int
	timer        *QuestionTimer
	recorder     *Recorder
	pending      map[int]bool
	result       *domain.SessionResult
	resultSynced bool
	failure      error
}

func newLiveSession(
	bg context.Context,
	header *domain.PracticeSession,
	questions []domain.Question,
	clock clockwork.Clock,
	store answerStore,
	log *slog.Logger,
) *liveSession {
	return &liveSession{
		id:        header.ID,
		userID:    header.UserID,
		cfg:       header.Config,
		startedAt: header.StartedAt,
		questions: questions,
		clock:     clock,
		store:     store,
		log:       log.With(slog.String("session_id", header.ID.String())),
		bg:        context.WithoutCancel(bg),
		status:    domain.SessionStatusInProgress,
		recorder:  NewRecorder(clock, len(questions)),
		pending:   make(map[int]bool),
	}
}

// begin presents the first question.
func (s *liveSession) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present()
}

// present starts a fresh timer for the current question. Caller holds mu.
func (s *liveSession) present() {
	pos := s.current
	s.timer = NewQuestionTimer(s.clock, s.cfg.TimeLimit())
	// A fresh timer is always idle.
	_ = s.timer.Start(func() { s.expire(pos) })
}

// submit records the user's answer to the question at pos, which must be the
// open one. An answer that lost the race against the timer fails with
// domain.ErrQuestionClosed whether the timeout record is already written or
// still pending.
func (s *liveSession) submit(ctx context.Context, pos int, article domain.Article) (SubmitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsTerminal() {
		return SubmitOutcome{}, domain.ErrSessionNotActive
	}
	if pos != s.current {
		return SubmitOutcome{}, fmt.Errorf("question %d: %w", pos, domain.ErrQuestionClosed)
	}

	elapsed, ok := s.timer.Cancel()
	if !ok {
		// The timer won: the timeout record for this question is being written.
		return SubmitOutcome{}, domain.ErrQuestionClosed
	}

	return s.record(ctx, &article, elapsed)
}

// expire is the timer callback for the question at pos.
func (s *liveSession) expire(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsTerminal() || s.current != pos {
		return
	}

	s.log.Debug("question timed out", slog.Int("position", pos))
	if _, err := s.record(s.bg, nil, s.cfg.TimeLimit()); err != nil {
		s.log.Error("record timeout", slog.Int("position", pos), slog.String("error", err.Error()))
	}
}

// record appends one answer, persists it and advances. Caller holds mu.
func (s *liveSession) record(ctx context.Context, submitted *domain.Article, latency time.Duration) (SubmitOutcome, error) {
	q := s.questions[s.current]

	rec, err := s.recorder.Record(q, submitted, latency)
	if err != nil {
		s.fail(err)
		return SubmitOutcome{}, err
	}

	if err := s.store.AppendAnswer(ctx, s.id, rec); err != nil {
		s.pending[rec.Position] = true
		rec.Sync = domain.SyncStatePending
		s.log.WarnContext(ctx, "answer not saved, kept for retry",
			slog.Int("position", rec.Position),
			slog.String("error", err.Error()),
		)
	}

	out := SubmitOutcome{Record: rec, Article: q.Noun.Article}

	s.current++
	if s.current < len(s.questions) {
		s.present()
		next := s.questions[s.current]
		out.Next = &next
		return out, nil
	}

	if err := s.complete(ctx); err != nil {
		return SubmitOutcome{}, err
	}
	out.Completed = true
	out.Result = s.result
	out.ResultSynced = s.resultSynced
	return out, nil
}

// complete scores the session and writes the summary. A failed write keeps
// the result visible and marks it unsynced. Caller holds mu.
func (s *liveSession) complete(ctx context.Context) error {
	res, err := Score(s.recorder.Records())
	if err != nil {
		s.fail(err)
		return err
	}

	s.status = domain.SessionStatusCompleted
	s.result = &res

	if err := s.store.Finalize(ctx, s.id, res); err != nil {
		s.log.ErrorContext(ctx, "session result not saved", slog.String("error", err.Error()))
		return nil
	}
	s.resultSynced = true

	s.log.InfoContext(ctx, "session completed",
		slog.Int("total", res.Total),
		slog.Int("correct", res.Correct),
		slog.Int("accuracy", res.Accuracy),
	)
	return nil
}

// fail aborts the session on an internal invariant violation and closes its
// row as FAILED. If that write fails the row stays IN_PROGRESS until
// artikelctl cleanup abandons it. Caller holds mu.
func (s *liveSession) fail(err error) {
	if s.timer != nil {
		s.timer.Cancel()
	}
	s.status = domain.SessionStatusFailed
	s.failure = err
	s.log.Error("session failed", slog.String("error", err.Error()))

	if werr := s.store.MarkFailed(s.bg, s.id); werr != nil {
		s.log.Error("mark session failed", slog.String("error", werr.Error()))
	}
}

// abandon stops the session. Returns false if it had already ended.
func (s *liveSession) abandon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsTerminal() {
		return false
	}
	s.timer.Cancel()
	s.status = domain.SessionStatusAbandoned
	return true
}

// sync resends pending answers in position order and, if needed, the result.
// Each successful write is cleared; failures stay pending.
func (s *liveSession) sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	records := s.recorder.Records()
	for _, pos := range s.pendingPositions() {
		if err := s.store.AppendAnswer(ctx, s.id, records[pos]); err != nil {
			errs = append(errs, fmt.Errorf("answer %d: %w", pos, err))
			continue
		}
		delete(s.pending, pos)
	}

	if s.status == domain.SessionStatusCompleted && !s.resultSynced {
		if err := s.store.Finalize(ctx, s.id, *s.result); err != nil {
			errs = append(errs, fmt.Errorf("result: %w", err))
		} else {
			s.resultSynced = true
		}
	}

	if len(errs) > 0 {
		return domain.NewPersistenceError("sync session", errors.Join(errs...))
	}
	return nil
}

// pendingPositions returns unsynced positions in ascending order. Caller holds mu.
func (s *liveSession) pendingPositions() []int {
	out := make([]int, 0, len(s.pending))
	for pos := range s.pending {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// unsynced reports whether any answer or the result is missing from the store.
func (s *liveSession) unsynced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0 || (s.result != nil && !s.resultSynced)
}

func (s *liveSession) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.status.IsTerminal()
}

// snapshot returns a consistent copy of the session state.
func (s *liveSession) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.recorder.Records()
	for i := range records {
		if s.pending[records[i].Position] {
			records[i].Sync = domain.SyncStatePending
		}
	}

	snap := Snapshot{
		SessionID:    s.id,
		Status:       s.status,
		Config:       s.cfg,
		StartedAt:    s.startedAt,
		Position:     s.current,
		Total:        len(s.questions),
		Answers:      records,
		Result:       s.result,
		ResultSynced: s.resultSynced,
		PendingSync:  len(s.pending),
	}
	if s.failure != nil {
		snap.Failure = s.failure.Error()
	}
	if s.status == domain.SessionStatusInProgress {
		q := s.questions[s.current]
		snap.Current = &q
		snap.Remaining = s.timer.Remaining()
	}
	return snap
}
