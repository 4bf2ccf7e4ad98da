package noun

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

var _ nounRepo = &nounRepoMock{}

type nounRepoMock struct {
	ListFunc       func(ctx context.Context, filter domain.NounFilter) ([]domain.Noun, int, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Noun, error)
	CategoriesFunc func(ctx context.Context) ([]string, error)

	calls struct {
		List []struct {
			Filter domain.NounFilter
		}
		GetByID []struct {
			ID uuid.UUID
		}
		Categories []struct{}
	}
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCategories sync.RWMutex
}

func (mock *nounRepoMock) List(ctx context.Context, filter domain.NounFilter) ([]domain.Noun, int, error) {
	if mock.ListFunc == nil {
		panic("nounRepoMock.ListFunc: method is nil but nounRepo.List was just called")
	}
	callInfo := struct{ Filter domain.NounFilter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *nounRepoMock) ListCalls() []struct{ Filter domain.NounFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *nounRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Noun, error) {
	if mock.GetByIDFunc == nil {
		panic("nounRepoMock.GetByIDFunc: method is nil but nounRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *nounRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *nounRepoMock) Categories(ctx context.Context) ([]string, error) {
	if mock.CategoriesFunc == nil {
		panic("nounRepoMock.CategoriesFunc: method is nil but nounRepo.Categories was just called")
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, struct{}{})
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx)
}

func (mock *nounRepoMock) CategoriesCalls() []struct{} {
	mock.lockCategories.RLock()
	calls := mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}
