// Package session implements the practice session store using PostgreSQL.
// A session row is created when practice starts, receives one answer row per
// question and is finalized with its summary once all questions are answered.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/artikel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// Repo provides practice session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, status, total_questions, seconds_per_question,
correct_answers, accuracy, timeouts, fastest_ms, average_ms,
started_at, completed_at`

const createSQL = `
INSERT INTO practice_sessions (id, user_id, status, total_questions, seconds_per_question, started_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM practice_sessions
WHERE id = $1 AND user_id = $2`

const appendAnswerSQL = `
INSERT INTO session_answers
    (session_id, position, noun_id, submitted_article, is_correct, response_time_ms, answered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (session_id, position) DO NOTHING`

const finalizeSQL = `
UPDATE practice_sessions
SET status          = 'COMPLETED',
    completed_at    = COALESCE(completed_at, now()),
    total_questions = $2,
    correct_answers = $3,
    accuracy        = $4,
    timeouts        = $5,
    fastest_ms      = $6,
    average_ms      = $7
WHERE id = $1 AND status IN ('IN_PROGRESS', 'COMPLETED')`

const abandonSQL = `
UPDATE practice_sessions
SET status = 'ABANDONED', completed_at = now()
WHERE id = $1 AND status = 'IN_PROGRESS'`

const markFailedSQL = `
UPDATE practice_sessions
SET status = 'FAILED', completed_at = now()
WHERE id = $1 AND status = 'IN_PROGRESS'`

const abandonStaleSQL = `
UPDATE practice_sessions
SET status = 'ABANDONED', completed_at = now()
WHERE status = 'IN_PROGRESS' AND started_at < $1`

const listCompletedSQL = `
SELECT id, created_at, total_questions, seconds_per_question,
       COALESCE(correct_answers, 0), COALESCE(accuracy, 0), COALESCE(timeouts, 0),
       fastest_ms, average_ms
FROM practice_sessions
WHERE user_id = $1 AND status = 'COMPLETED'
ORDER BY created_at DESC`

const listAnswersSQL = `
SELECT a.id, a.session_id, a.position, a.noun_id, a.submitted_article, a.is_correct,
       a.response_time_ms, a.answered_at,
       n.id, n.word, n.article, n.translation, n.rule, n.examples, n.category, n.created_at
FROM session_answers a
LEFT JOIN nouns n ON n.id = a.noun_id
WHERE a.session_id = $1
ORDER BY a.position`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the session header and returns it as stored.
func (r *Repo) Create(ctx context.Context, s *domain.PracticeSession) (*domain.PracticeSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		string(s.Status),
		s.Config.QuestionCount,
		s.Config.SecondsPerQuestion,
		s.StartedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "practice_session", s.ID)
	}
	return created, nil
}

// AppendAnswer stores one answer record. Writing the same position twice is
// a no-op, so a retried write is safe.
func (r *Repo) AppendAnswer(ctx context.Context, sessionID uuid.UUID, rec domain.AnswerRecord) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var submitted *string
	if rec.Submitted != nil {
		s := string(*rec.Submitted)
		submitted = &s
	}

	_, err := querier.Exec(ctx, appendAnswerSQL,
		sessionID,
		rec.Position,
		rec.NounID,
		submitted,
		rec.Correct,
		rec.Latency.Milliseconds(),
		rec.AnsweredAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "practice_session", sessionID)
	}
	return nil
}

// Finalize marks the session completed and stores its summary. Repeating it
// overwrites the summary with the same values.
// Returns domain.ErrNotFound if the session does not exist or was abandoned.
func (r *Repo) Finalize(ctx context.Context, sessionID uuid.UUID, res domain.SessionResult) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, finalizeSQL,
		sessionID,
		res.Total,
		res.Correct,
		res.Accuracy,
		res.Timeouts,
		durationToMs(res.Fastest),
		durationToMs(res.Average),
	)
	if err != nil {
		return postgres.MapError(err, "practice_session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("practice_session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// Abandon marks an in-progress session as abandoned.
// Returns domain.ErrNotFound if it does not exist or already ended.
func (r *Repo) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, abandonSQL, sessionID)
	if err != nil {
		return postgres.MapError(err, "practice_session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("practice_session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// MarkFailed closes an in-progress session that was aborted by an internal
// error. Returns domain.ErrNotFound if it does not exist or already ended.
func (r *Repo) MarkFailed(ctx context.Context, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markFailedSQL, sessionID)
	if err != nil {
		return postgres.MapError(err, "practice_session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("practice_session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// AbandonStale abandons in-progress sessions started before cutoff, left
// behind by a restart. Returns the number of sessions changed.
func (r *Repo) AbandonStale(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, abandonStaleSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.PracticeSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "practice_session", sessionID)
	}
	return s, nil
}

// ListCompleted returns the user's completed sessions, newest first.
func (r *Repo) ListCompleted(ctx context.Context, userID string) ([]domain.SessionSummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCompletedSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	out := []domain.SessionSummary{}
	for rows.Next() {
		var (
			s                    domain.SessionSummary
			fastestMs, averageMs *int64
		)
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.TotalQuestions, &s.SecondsPerQuestion,
			&s.Correct, &s.Accuracy, &s.Timeouts, &fastestMs, &averageMs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		s.Fastest = msToDuration(fastestMs)
		s.Average = msToDuration(averageMs)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	return out, nil
}

// ListAnswers returns the answers of a session in position order, each with
// its noun when the noun still exists.
func (r *Repo) ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionAnswer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAnswersSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session answers: %w", err)
	}
	defer rows.Close()

	out := []domain.SessionAnswer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session answer: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list session answers: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.PracticeSession, error) {
	var (
		s                           domain.PracticeSession
		status                      string
		correct, accuracy, timeouts *int
		fastestMs, averageMs        *int64
	)

	if err := row.Scan(&s.ID, &s.UserID, &status, &s.Config.QuestionCount, &s.Config.SecondsPerQuestion,
		&correct, &accuracy, &timeouts, &fastestMs, &averageMs,
		&s.StartedAt, &s.CompletedAt); err != nil {
		return nil, err
	}
	s.Status = domain.SessionStatus(status)

	if accuracy != nil {
		s.Result = &domain.SessionResult{
			Total:    s.Config.QuestionCount,
			Correct:  deref(correct),
			Accuracy: *accuracy,
			Timeouts: deref(timeouts),
			Fastest:  msToDuration(fastestMs),
			Average:  msToDuration(averageMs),
		}
	}
	return &s, nil
}

func scanAnswer(rows pgx.Rows) (domain.SessionAnswer, error) {
	var (
		a           domain.SessionAnswer
		nounID      *uuid.UUID
		submitted   *string
		latencyMs   int64
		joinedID    *uuid.UUID
		word        *string
		article     *string
		translation *string
		rule        *string
		examples    []string
		category    *string
		createdAt   *time.Time
	)

	if err := rows.Scan(&a.ID, &a.SessionID, &a.Position, &nounID, &submitted, &a.Correct,
		&latencyMs, &a.AnsweredAt,
		&joinedID, &word, &article, &translation, &rule, &examples, &category, &createdAt); err != nil {
		return a, err
	}

	if nounID != nil {
		a.NounID = *nounID
	}
	if submitted != nil {
		art := domain.Article(*submitted)
		a.Submitted = &art
	}
	a.Latency = time.Duration(latencyMs) * time.Millisecond
	a.Sync = domain.SyncStateSynced

	if joinedID != nil {
		a.Noun = &domain.Noun{
			ID:          *joinedID,
			Word:        deref(word),
			Article:     domain.Article(deref(article)),
			Translation: deref(translation),
			Rule:        rule,
			Examples:    examples,
			Category:    category,
			CreatedAt:   deref(createdAt),
		}
	}
	return a, nil
}

func durationToMs(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	ms := d.Milliseconds()
	return &ms
}

func msToDuration(ms *int64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
