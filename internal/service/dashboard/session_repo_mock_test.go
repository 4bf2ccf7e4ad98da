package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	ListCompletedFunc func(ctx context.Context, userID string) ([]domain.SessionSummary, error)
	GetByIDFunc       func(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.PracticeSession, error)
	ListAnswersFunc   func(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionAnswer, error)

	calls struct {
		ListCompleted []struct {
			UserID string
		}
		GetByID []struct {
			UserID    string
			SessionID uuid.UUID
		}
		ListAnswers []struct {
			SessionID uuid.UUID
		}
	}
	lockListCompleted sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListAnswers   sync.RWMutex
}

func (mock *sessionRepoMock) ListCompleted(ctx context.Context, userID string) ([]domain.SessionSummary, error) {
	if mock.ListCompletedFunc == nil {
		panic("sessionRepoMock.ListCompletedFunc: method is nil but sessionRepo.ListCompleted was just called")
	}
	callInfo := struct{ UserID string }{UserID: userID}
	mock.lockListCompleted.Lock()
	mock.calls.ListCompleted = append(mock.calls.ListCompleted, callInfo)
	mock.lockListCompleted.Unlock()
	return mock.ListCompletedFunc(ctx, userID)
}

func (mock *sessionRepoMock) ListCompletedCalls() []struct{ UserID string } {
	mock.lockListCompleted.RLock()
	calls := mock.calls.ListCompleted
	mock.lockListCompleted.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.PracticeSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID    string
		SessionID uuid.UUID
	}{UserID: userID, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	UserID    string
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionAnswer, error) {
	if mock.ListAnswersFunc == nil {
		panic("sessionRepoMock.ListAnswersFunc: method is nil but sessionRepo.ListAnswers was just called")
	}
	callInfo := struct{ SessionID uuid.UUID }{SessionID: sessionID}
	mock.lockListAnswers.Lock()
	mock.calls.ListAnswers = append(mock.calls.ListAnswers, callInfo)
	mock.lockListAnswers.Unlock()
	return mock.ListAnswersFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) ListAnswersCalls() []struct{ SessionID uuid.UUID } {
	mock.lockListAnswers.RLock()
	calls := mock.calls.ListAnswers
	mock.lockListAnswers.RUnlock()
	return calls
}
