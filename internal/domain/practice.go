package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionConfig is chosen by the user before a session starts and never
// changes afterwards.
type SessionConfig struct {
	QuestionCount      int
	SecondsPerQuestion int
}

// TimeLimit returns the per-question budget as a duration.
func (c SessionConfig) TimeLimit() time.Duration {
	return time.Duration(c.SecondsPerQuestion) * time.Second
}

// Question binds a noun to its position in the session's fixed sequence.
type Question struct {
	Position int
	Noun     Noun
}

// AnswerRecord is the single outcome of one question. Submitted is nil when
// the question timed out.
type AnswerRecord struct {
	Position   int
	NounID     uuid.UUID
	Submitted  *Article
	Correct    bool
	Latency    time.Duration
	AnsweredAt time.Time
	Sync       SyncState
}

// TimedOut reports whether the record was produced by the timer.
func (r AnswerRecord) TimedOut() bool { return r.Submitted == nil }

// SessionResult is the summary derived once from the full record set.
// Fastest and Average are nil when every question timed out.
type SessionResult struct {
	Total    int
	Correct  int
	Accuracy int
	Fastest  *time.Duration
	Average  *time.Duration
	Timeouts int
}

// PracticeSession is the persisted header of a practice session.
type PracticeSession struct {
	ID          uuid.UUID
	UserID      string
	Config      SessionConfig
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Result      *SessionResult
}

// SessionAnswer is a persisted answer record joined with its noun, used for
// session detail views.
type SessionAnswer struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	AnswerRecord
	Noun *Noun
}
