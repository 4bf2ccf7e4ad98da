package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc       func(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error)
	AppendAnswerFunc func(ctx context.Context, sessionID uuid.UUID, rec domain.AnswerRecord) error
	FinalizeFunc     func(ctx context.Context, sessionID uuid.UUID, result domain.SessionResult) error
	AbandonFunc      func(ctx context.Context, sessionID uuid.UUID) error
	MarkFailedFunc   func(ctx context.Context, sessionID uuid.UUID) error

	calls struct {
		Create []struct {
			Session *domain.PracticeSession
		}
		AppendAnswer []struct {
			SessionID uuid.UUID
			Rec       domain.AnswerRecord
		}
		Finalize []struct {
			SessionID uuid.UUID
			Result    domain.SessionResult
		}
		Abandon []struct {
			SessionID uuid.UUID
		}
		MarkFailed []struct {
			SessionID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockAppendAnswer sync.RWMutex
	lockFinalize     sync.RWMutex
	lockAbandon      sync.RWMutex
	lockMarkFailed   sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct{ Session *domain.PracticeSession }{Session: session}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ Session *domain.PracticeSession } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AppendAnswer(ctx context.Context, sessionID uuid.UUID, rec domain.AnswerRecord) error {
	if mock.AppendAnswerFunc == nil {
		panic("sessionRepoMock.AppendAnswerFunc: method is nil but sessionRepo.AppendAnswer was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Rec       domain.AnswerRecord
	}{SessionID: sessionID, Rec: rec}
	mock.lockAppendAnswer.Lock()
	mock.calls.AppendAnswer = append(mock.calls.AppendAnswer, callInfo)
	mock.lockAppendAnswer.Unlock()
	return mock.AppendAnswerFunc(ctx, sessionID, rec)
}

func (mock *sessionRepoMock) AppendAnswerCalls() []struct {
	SessionID uuid.UUID
	Rec       domain.AnswerRecord
} {
	mock.lockAppendAnswer.RLock()
	calls := mock.calls.AppendAnswer
	mock.lockAppendAnswer.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Finalize(ctx context.Context, sessionID uuid.UUID, result domain.SessionResult) error {
	if mock.FinalizeFunc == nil {
		panic("sessionRepoMock.FinalizeFunc: method is nil but sessionRepo.Finalize was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Result    domain.SessionResult
	}{SessionID: sessionID, Result: result}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, sessionID, result)
}

func (mock *sessionRepoMock) FinalizeCalls() []struct {
	SessionID uuid.UUID
	Result    domain.SessionResult
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	if mock.AbandonFunc == nil {
		panic("sessionRepoMock.AbandonFunc: method is nil but sessionRepo.Abandon was just called")
	}
	callInfo := struct{ SessionID uuid.UUID }{SessionID: sessionID}
	mock.lockAbandon.Lock()
	mock.calls.Abandon = append(mock.calls.Abandon, callInfo)
	mock.lockAbandon.Unlock()
	return mock.AbandonFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) AbandonCalls() []struct{ SessionID uuid.UUID } {
	mock.lockAbandon.RLock()
	calls := mock.calls.Abandon
	mock.lockAbandon.RUnlock()
	return calls
}

func (mock *sessionRepoMock) MarkFailed(ctx context.Context, sessionID uuid.UUID) error {
	if mock.MarkFailedFunc == nil {
		panic("sessionRepoMock.MarkFailedFunc: method is nil but sessionRepo.MarkFailed was just called")
	}
	callInfo := struct{ SessionID uuid.UUID }{SessionID: sessionID}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) MarkFailedCalls() []struct{ SessionID uuid.UUID } {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}
