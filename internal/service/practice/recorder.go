package practice

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// Recorder is the append-only answer log of one session. Records are stored
// in position order and never modified after creation.
type Recorder struct {
	clock   clockwork.Clock
	records []domain.AnswerRecord
}

// NewRecorder creates an empty recorder sized for n questions.
func NewRecorder(clock clockwork.Clock, n int) *Recorder {
	return &Recorder{clock: clock, records: make([]domain.AnswerRecord, 0, n)}
}

// Record stores the outcome of q. submitted is nil for a timeout. Correctness
// is decided here by exact comparison with the noun's article; a timeout is
// always incorrect.
//
// A second record for an already answered position fails with
// domain.ErrDuplicateAnswer. Skipping ahead is an invariant violation.
func (r *Recorder) Record(q domain.Question, submitted *domain.Article, latency time.Duration) (domain.AnswerRecord, error) {
	next := len(r.records)
	switch {
	case q.Position < next:
		return domain.AnswerRecord{}, fmt.Errorf("position %d: %w", q.Position, domain.ErrDuplicateAnswer)
	case q.Position > next:
		return domain.AnswerRecord{}, fmt.Errorf("position %d recorded before position %d", q.Position, next)
	}

	rec := domain.AnswerRecord{
		Position:   q.Position,
		NounID:     q.Noun.ID,
		Submitted:  submitted,
		Correct:    submitted != nil && *submitted == q.Noun.Article,
		Latency:    latency,
		AnsweredAt: r.clock.Now(),
		Sync:       domain.SyncStateSynced,
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// Len returns the number of recorded answers.
func (r *Recorder) Len() int { return len(r.records) }

// Records returns a copy of all records in position order.
func (r *Recorder) Records() []domain.AnswerRecord {
	out := make([]domain.AnswerRecord, len(r.records))
	copy(out, r.records)
	return out
}
