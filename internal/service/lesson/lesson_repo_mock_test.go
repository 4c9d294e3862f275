package lesson

import (
	"context"
	"sync"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.GrammarLesson, error)
	ListFunc    func(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error)
	CreateFunc  func(ctx context.Context, l *domain.GrammarLesson) (*domain.GrammarLesson, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.Filter
		}
		Create []struct {
			Ctx context.Context
			L   *domain.GrammarLesson
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *lessonRepoMock) GetByID(ctx context.Context, id int64) (*domain.GrammarLesson, error) {
	if mock.GetByIDFunc == nil {
		panic("lessonRepoMock.GetByIDFunc: method is nil but lessonRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *lessonRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *lessonRepoMock) List(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error) {
	if mock.ListFunc == nil {
		panic("lessonRepoMock.ListFunc: method is nil but lessonRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Filter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *lessonRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Create(ctx context.Context, l *domain.GrammarLesson) (*domain.GrammarLesson, error) {
	if mock.CreateFunc == nil {
		panic("lessonRepoMock.CreateFunc: method is nil but lessonRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.GrammarLesson
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *lessonRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.GrammarLesson
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("lessonRepoMock.DeleteFunc: method is nil but lessonRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *lessonRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
