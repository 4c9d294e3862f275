package practice

import (
	"context"
	"sync"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

var _ ItemSource = &ItemSourceMock{}

type ItemSourceMock struct {
	GetItemFunc   func(ctx context.Context, id int64) (domain.Item, error)
	ListItemsFunc func(ctx context.Context, filter domain.Filter) ([]domain.Item, error)

	calls struct {
		GetItem []struct {
			Ctx context.Context
			ID  int64
		}
		ListItems []struct {
			Ctx    context.Context
			Filter domain.Filter
		}
	}
	lockGetItem   sync.RWMutex
	lockListItems sync.RWMutex
}

func (mock *ItemSourceMock) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	if mock.GetItemFunc == nil {
		panic("ItemSourceMock.GetItemFunc: method is nil but ItemSource.GetItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, id)
}

func (mock *ItemSourceMock) GetItemCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *ItemSourceMock) ListItems(ctx context.Context, filter domain.Filter) ([]domain.Item, error) {
	if mock.ListItemsFunc == nil {
		panic("ItemSourceMock.ListItemsFunc: method is nil but ItemSource.ListItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.Filter
	}{Ctx: ctx, Filter: filter}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, filter)
}

func (mock *ItemSourceMock) ListItemsCalls() []struct {
	Ctx    context.Context
	Filter domain.Filter
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}
