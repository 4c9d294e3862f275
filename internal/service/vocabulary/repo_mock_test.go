package vocabulary

import (
	"context"
	"sync"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

var _ nounRepo = &nounRepoMock{}

type nounRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Noun, error)
	FindByNaturalKeyFunc func(ctx context.Context, article string, word string) (*domain.Noun, error)
	ListFunc             func(ctx context.Context, f domain.Filter) ([]*domain.Noun, error)
	CreateFunc           func(ctx context.Context, n *domain.Noun) (*domain.Noun, error)
	UpdateFunc           func(ctx context.Context, id int64, p domain.NounUpdateParams) (*domain.Noun, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		FindByNaturalKey []struct {
			Ctx     context.Context
			Article string
			Word    string
		}
		List []struct {
			Ctx context.Context
			F   domain.Filter
		}
		Create []struct {
			Ctx context.Context
			N   *domain.Noun
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.NounUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID          sync.RWMutex
	lockFindByNaturalKey sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockCount            sync.RWMutex
}

func (mock *nounRepoMock) GetByID(ctx context.Context, id int64) (*domain.Noun, error) {
	if mock.GetByIDFunc == nil {
		panic("nounRepoMock.GetByIDFunc: method is nil but nounRepo.GetByID was just called")
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

func (mock *nounRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *nounRepoMock) FindByNaturalKey(ctx context.Context, article string, word string) (*domain.Noun, error) {
	if mock.FindByNaturalKeyFunc == nil {
		panic("nounRepoMock.FindByNaturalKeyFunc: method is nil but nounRepo.FindByNaturalKey was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Article string
		Word    string
	}{Ctx: ctx, Article: article, Word: word}
	mock.lockFindByNaturalKey.Lock()
	mock.calls.FindByNaturalKey = append(mock.calls.FindByNaturalKey, callInfo)
	mock.lockFindByNaturalKey.Unlock()
	return mock.FindByNaturalKeyFunc(ctx, article, word)
}

func (mock *nounRepoMock) FindByNaturalKeyCalls() []struct {
	Ctx     context.Context
	Article string
	Word    string
} {
	mock.lockFindByNaturalKey.RLock()
	calls := mock.calls.FindByNaturalKey
	mock.lockFindByNaturalKey.RUnlock()
	return calls
}

func (mock *nounRepoMock) List(ctx context.Context, f domain.Filter) ([]*domain.Noun, error) {
	if mock.ListFunc == nil {
		panic("nounRepoMock.ListFunc: method is nil but nounRepo.List was just called")
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

func (mock *nounRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *nounRepoMock) Create(ctx context.Context, n *domain.Noun) (*domain.Noun, error) {
	if mock.CreateFunc == nil {
		panic("nounRepoMock.CreateFunc: method is nil but nounRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Noun
	}{Ctx: ctx, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *nounRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Noun
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *nounRepoMock) Update(ctx context.Context, id int64, p domain.NounUpdateParams) (*domain.Noun, error) {
	if mock.UpdateFunc == nil {
		panic("nounRepoMock.UpdateFunc: method is nil but nounRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.NounUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *nounRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.NounUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *nounRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("nounRepoMock.DeleteFunc: method is nil but nounRepo.Delete was just called")
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

func (mock *nounRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *nounRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("nounRepoMock.CountFunc: method is nil but nounRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *nounRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ verbRepo = &verbRepoMock{}

type verbRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Verb, error)
	FindByNaturalKeyFunc func(ctx context.Context, infinitive string) (*domain.Verb, error)
	ListFunc             func(ctx context.Context, f domain.Filter) ([]*domain.Verb, error)
	CreateFunc           func(ctx context.Context, v *domain.Verb) (*domain.Verb, error)
	UpdateFunc           func(ctx context.Context, id int64, p domain.VerbUpdateParams) (*domain.Verb, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		FindByNaturalKey []struct {
			Ctx        context.Context
			Infinitive string
		}
		List []struct {
			Ctx context.Context
			F   domain.Filter
		}
		Create []struct {
			Ctx context.Context
			V   *domain.Verb
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.VerbUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID          sync.RWMutex
	lockFindByNaturalKey sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockCount            sync.RWMutex
}

func (mock *verbRepoMock) GetByID(ctx context.Context, id int64) (*domain.Verb, error) {
	if mock.GetByIDFunc == nil {
		panic("verbRepoMock.GetByIDFunc: method is nil but verbRepo.GetByID was just called")
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

func (mock *verbRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *verbRepoMock) FindByNaturalKey(ctx context.Context, infinitive string) (*domain.Verb, error) {
	if mock.FindByNaturalKeyFunc == nil {
		panic("verbRepoMock.FindByNaturalKeyFunc: method is nil but verbRepo.FindByNaturalKey was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Infinitive string
	}{Ctx: ctx, Infinitive: infinitive}
	mock.lockFindByNaturalKey.Lock()
	mock.calls.FindByNaturalKey = append(mock.calls.FindByNaturalKey, callInfo)
	mock.lockFindByNaturalKey.Unlock()
	return mock.FindByNaturalKeyFunc(ctx, infinitive)
}

func (mock *verbRepoMock) FindByNaturalKeyCalls() []struct {
	Ctx        context.Context
	Infinitive string
} {
	mock.lockFindByNaturalKey.RLock()
	calls := mock.calls.FindByNaturalKey
	mock.lockFindByNaturalKey.RUnlock()
	return calls
}

func (mock *verbRepoMock) List(ctx context.Context, f domain.Filter) ([]*domain.Verb, error) {
	if mock.ListFunc == nil {
		panic("verbRepoMock.ListFunc: method is nil but verbRepo.List was just called")
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

func (mock *verbRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *verbRepoMock) Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error) {
	if mock.CreateFunc == nil {
		panic("verbRepoMock.CreateFunc: method is nil but verbRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Verb
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *verbRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Verb
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *verbRepoMock) Update(ctx context.Context, id int64, p domain.VerbUpdateParams) (*domain.Verb, error) {
	if mock.UpdateFunc == nil {
		panic("verbRepoMock.UpdateFunc: method is nil but verbRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.VerbUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *verbRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.VerbUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *verbRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("verbRepoMock.DeleteFunc: method is nil but verbRepo.Delete was just called")
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

func (mock *verbRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *verbRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("verbRepoMock.CountFunc: method is nil but verbRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *verbRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ adjectiveRepo = &adjectiveRepoMock{}

type adjectiveRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Adjective, error)
	FindByNaturalKeyFunc func(ctx context.Context, base string) (*domain.Adjective, error)
	ListFunc             func(ctx context.Context, f domain.Filter) ([]*domain.Adjective, error)
	CreateFunc           func(ctx context.Context, a *domain.Adjective) (*domain.Adjective, error)
	UpdateFunc           func(ctx context.Context, id int64, p domain.AdjectiveUpdateParams) (*domain.Adjective, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		FindByNaturalKey []struct {
			Ctx  context.Context
			Base string
		}
		List []struct {
			Ctx context.Context
			F   domain.Filter
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Adjective
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.AdjectiveUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID          sync.RWMutex
	lockFindByNaturalKey sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockCount            sync.RWMutex
}

func (mock *adjectiveRepoMock) GetByID(ctx context.Context, id int64) (*domain.Adjective, error) {
	if mock.GetByIDFunc == nil {
		panic("adjectiveRepoMock.GetByIDFunc: method is nil but adjectiveRepo.GetByID was just called")
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

func (mock *adjectiveRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) FindByNaturalKey(ctx context.Context, base string) (*domain.Adjective, error) {
	if mock.FindByNaturalKeyFunc == nil {
		panic("adjectiveRepoMock.FindByNaturalKeyFunc: method is nil but adjectiveRepo.FindByNaturalKey was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Base string
	}{Ctx: ctx, Base: base}
	mock.lockFindByNaturalKey.Lock()
	mock.calls.FindByNaturalKey = append(mock.calls.FindByNaturalKey, callInfo)
	mock.lockFindByNaturalKey.Unlock()
	return mock.FindByNaturalKeyFunc(ctx, base)
}

func (mock *adjectiveRepoMock) FindByNaturalKeyCalls() []struct {
	Ctx  context.Context
	Base string
} {
	mock.lockFindByNaturalKey.RLock()
	calls := mock.calls.FindByNaturalKey
	mock.lockFindByNaturalKey.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) List(ctx context.Context, f domain.Filter) ([]*domain.Adjective, error) {
	if mock.ListFunc == nil {
		panic("adjectiveRepoMock.ListFunc: method is nil but adjectiveRepo.List was just called")
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

func (mock *adjectiveRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) Create(ctx context.Context, a *domain.Adjective) (*domain.Adjective, error) {
	if mock.CreateFunc == nil {
		panic("adjectiveRepoMock.CreateFunc: method is nil but adjectiveRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Adjective
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *adjectiveRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Adjective
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) Update(ctx context.Context, id int64, p domain.AdjectiveUpdateParams) (*domain.Adjective, error) {
	if mock.UpdateFunc == nil {
		panic("adjectiveRepoMock.UpdateFunc: method is nil but adjectiveRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.AdjectiveUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *adjectiveRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.AdjectiveUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("adjectiveRepoMock.DeleteFunc: method is nil but adjectiveRepo.Delete was just called")
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

func (mock *adjectiveRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *adjectiveRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("adjectiveRepoMock.CountFunc: method is nil but adjectiveRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *adjectiveRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Phrase, error)
	FindByNaturalKeyFunc func(ctx context.Context, norwegian string) (*domain.Phrase, error)
	ListFunc             func(ctx context.Context, f domain.Filter) ([]*domain.Phrase, error)
	CategoriesFunc       func(ctx context.Context) ([]string, error)
	CreateFunc           func(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error)
	UpdateFunc           func(ctx context.Context, id int64, p domain.PhraseUpdateParams) (*domain.Phrase, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		FindByNaturalKey []struct {
			Ctx       context.Context
			Norwegian string
		}
		List []struct {
			Ctx context.Context
			F   domain.Filter
		}
		Categories []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Phrase
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.PhraseUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID          sync.RWMutex
	lockFindByNaturalKey sync.RWMutex
	lockList             sync.RWMutex
	lockCategories       sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockCount            sync.RWMutex
}

func (mock *phraseRepoMock) GetByID(ctx context.Context, id int64) (*domain.Phrase, error) {
	if mock.GetByIDFunc == nil {
		panic("phraseRepoMock.GetByIDFunc: method is nil but phraseRepo.GetByID was just called")
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

func (mock *phraseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *phraseRepoMock) FindByNaturalKey(ctx context.Context, norwegian string) (*domain.Phrase, error) {
	if mock.FindByNaturalKeyFunc == nil {
		panic("phraseRepoMock.FindByNaturalKeyFunc: method is nil but phraseRepo.FindByNaturalKey was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Norwegian string
	}{Ctx: ctx, Norwegian: norwegian}
	mock.lockFindByNaturalKey.Lock()
	mock.calls.FindByNaturalKey = append(mock.calls.FindByNaturalKey, callInfo)
	mock.lockFindByNaturalKey.Unlock()
	return mock.FindByNaturalKeyFunc(ctx, norwegian)
}

func (mock *phraseRepoMock) FindByNaturalKeyCalls() []struct {
	Ctx       context.Context
	Norwegian string
} {
	mock.lockFindByNaturalKey.RLock()
	calls := mock.calls.FindByNaturalKey
	mock.lockFindByNaturalKey.RUnlock()
	return calls
}

func (mock *phraseRepoMock) List(ctx context.Context, f domain.Filter) ([]*domain.Phrase, error) {
	if mock.ListFunc == nil {
		panic("phraseRepoMock.ListFunc: method is nil but phraseRepo.List was just called")
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

func (mock *phraseRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Categories(ctx context.Context) ([]string, error) {
	if mock.CategoriesFunc == nil {
		panic("phraseRepoMock.CategoriesFunc: method is nil but phraseRepo.Categories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx)
}

func (mock *phraseRepoMock) CategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockCategories.RLock()
	calls := mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error) {
	if mock.CreateFunc == nil {
		panic("phraseRepoMock.CreateFunc: method is nil but phraseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Phrase
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *phraseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Phrase
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Update(ctx context.Context, id int64, p domain.PhraseUpdateParams) (*domain.Phrase, error) {
	if mock.UpdateFunc == nil {
		panic("phraseRepoMock.UpdateFunc: method is nil but phraseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.PhraseUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *phraseRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.PhraseUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("phraseRepoMock.DeleteFunc: method is nil but phraseRepo.Delete was just called")
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

func (mock *phraseRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("phraseRepoMock.CountFunc: method is nil but phraseRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *phraseRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ counter = &counterMock{}

type counterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *counterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("counterMock.CountFunc: method is nil but counter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *counterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
