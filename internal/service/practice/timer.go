package practice

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TimerState is the lifecycle state of a QuestionTimer.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
	TimerCancelled
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "IDLE"
	case TimerRunning:
		return "RUNNING"
	case TimerExpired:
		return "EXPIRED"
	case TimerCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

var errTimerNotIdle = errors.New("timer already started")

// QuestionTimer is a one-shot countdown bound to a single question.
//
// Running moves to exactly one of Expired or Cancelled. The transition is
// decided under mu, so an answer racing with expiry either cancels the timer
// or finds it expired; onExpire never runs after a successful Cancel and never
// runs twice. A timer is not reusable: each question gets a fresh one.
type QuestionTimer struct {
	clock clockwork.Clock
	limit time.Duration

	mu        sync.Mutex
	state     TimerState
	startedAt time.Time
	timer     clockwork.Timer
}

// NewQuestionTimer creates an idle timer with the given budget.
func NewQuestionTimer(clock clockwork.Clock, limit time.Duration) *QuestionTimer {
	return &QuestionTimer{clock: clock, limit: limit}
}

// Start arms the timer (Idle -> Running). onExpire is called from the clock's
// goroutine once the full budget has elapsed, unless Cancel wins first.
func (t *QuestionTimer) Start(onExpire func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerIdle {
		return errTimerNotIdle
	}

	t.state = TimerRunning
	t.startedAt = t.clock.Now()
	t.timer = t.clock.AfterFunc(t.limit, func() { t.expire(onExpire) })
	return nil
}

// Cancel stops a running timer (Running -> Cancelled) and returns the elapsed
// time, capped at the budget. ok is false when the timer was not running,
// in particular when it already expired.
func (t *QuestionTimer) Cancel() (elapsed time.Duration, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerRunning {
		return 0, false
	}

	t.state = TimerCancelled
	t.timer.Stop()
	return min(t.clock.Since(t.startedAt), t.limit), true
}

func (t *QuestionTimer) expire(onExpire func()) {
	t.mu.Lock()
	if t.state != TimerRunning {
		t.mu.Unlock()
		return
	}
	t.state = TimerExpired
	t.mu.Unlock()

	onExpire()
}

// State returns the current state.
func (t *QuestionTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Limit returns the configured budget.
func (t *QuestionTimer) Limit() time.Duration { return t.limit }

// Remaining returns the time left while running, the full budget while idle,
// and zero otherwise.
func (t *QuestionTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case TimerIdle:
		return t.limit
	case TimerRunning:
		return max(t.limit-t.clock.Since(t.startedAt), 0)
	}
	return 0
}
