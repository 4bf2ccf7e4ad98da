package practice

import (
	"context"
	"sync"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

var _ nounRepo = &nounRepoMock{}

type nounRepoMock struct {
	FetchPoolFunc func(ctx context.Context) ([]domain.Noun, error)

	calls struct {
		FetchPool []struct {
			Ctx context.Context
		}
	}
	lockFetchPool sync.RWMutex
}

func (mock *nounRepoMock) FetchPool(ctx context.Context) ([]domain.Noun, error) {
	if mock.FetchPoolFunc == nil {
		panic("nounRepoMock.FetchPoolFunc: method is nil but nounRepo.FetchPool was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockFetchPool.Lock()
	mock.calls.FetchPool = append(mock.calls.FetchPool, callInfo)
	mock.lockFetchPool.Unlock()
	return mock.FetchPoolFunc(ctx)
}

func (mock *nounRepoMock) FetchPoolCalls() []struct{ Ctx context.Context } {
	mock.lockFetchPool.RLock()
	calls := mock.calls.FetchPool
	mock.lockFetchPool.RUnlock()
	return calls
}
