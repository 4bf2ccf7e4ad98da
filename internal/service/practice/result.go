package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// Snapshot is a point-in-time view of a live session.
type Snapshot struct {
	SessionID uuid.UUID
	Status    domain.SessionStatus
	Config    domain.SessionConfig
	StartedAt time.Time
	// Position is the index of the current question; equals Total once done.
	Position int
	Total    int
	// Current is set only while the session is in progress.
	Current      *domain.Question
	Remaining    time.Duration
	Answers      []domain.AnswerRecord
	Result       *domain.SessionResult
	ResultSynced bool
	PendingSync  int
	Failure      string
}

// SubmitOutcome is the feedback for one submitted answer.
type SubmitOutcome struct {
	Record domain.AnswerRecord
	// Article is the correct article of the answered noun.
	Article      domain.Article
	Next         *domain.Question
	Completed    bool
	Result       *domain.SessionResult
	ResultSynced bool
}
