package importer

import (
	"context"
	"sync"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

var _ writer = &writerMock{}

type writerMock struct {
	CreateNounFunc      func(ctx context.Context, input vocabulary.NounInput) (*domain.Noun, domain.CreateOutcome, error)
	CreateVerbFunc      func(ctx context.Context, input vocabulary.VerbInput) (*domain.Verb, domain.CreateOutcome, error)
	CreateAdjectiveFunc func(ctx context.Context, input vocabulary.AdjectiveInput) (*domain.Adjective, domain.CreateOutcome, error)
	CreatePhraseFunc    func(ctx context.Context, input vocabulary.PhraseInput) (*domain.Phrase, domain.CreateOutcome, error)

	calls struct {
		CreateNoun []struct {
			Ctx   context.Context
			Input vocabulary.NounInput
		}
		CreateVerb []struct {
			Ctx   context.Context
			Input vocabulary.VerbInput
		}
		CreateAdjective []struct {
			Ctx   context.Context
			Input vocabulary.AdjectiveInput
		}
		CreatePhrase []struct {
			Ctx   context.Context
			Input vocabulary.PhraseInput
		}
	}
	lockCreateNoun      sync.RWMutex
	lockCreateVerb      sync.RWMutex
	lockCreateAdjective sync.RWMutex
	lockCreatePhrase    sync.RWMutex
}

func (mock *writerMock) CreateNoun(ctx context.Context, input vocabulary.NounInput) (*domain.Noun, domain.CreateOutcome, error) {
	if mock.CreateNounFunc == nil {
		panic("writerMock.CreateNounFunc: method is nil but writer.CreateNoun was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.NounInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateNoun.Lock()
	mock.calls.CreateNoun = append(mock.calls.CreateNoun, callInfo)
	mock.lockCreateNoun.Unlock()
	return mock.CreateNounFunc(ctx, input)
}

func (mock *writerMock) CreateNounCalls() []struct {
	Ctx   context.Context
	Input vocabulary.NounInput
} {
	mock.lockCreateNoun.RLock()
	calls := mock.calls.CreateNoun
	mock.lockCreateNoun.RUnlock()
	return calls
}

func (mock *writerMock) CreateVerb(ctx context.Context, input vocabulary.VerbInput) (*domain.Verb, domain.CreateOutcome, error) {
	if mock.CreateVerbFunc == nil {
		panic("writerMock.CreateVerbFunc: method is nil but writer.CreateVerb was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.VerbInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateVerb.Lock()
	mock.calls.CreateVerb = append(mock.calls.CreateVerb, callInfo)
	mock.lockCreateVerb.Unlock()
	return mock.CreateVerbFunc(ctx, input)
}

func (mock *writerMock) CreateVerbCalls() []struct {
	Ctx   context.Context
	Input vocabulary.VerbInput
} {
	mock.lockCreateVerb.RLock()
	calls := mock.calls.CreateVerb
	mock.lockCreateVerb.RUnlock()
	return calls
}

func (mock *writerMock) CreateAdjective(ctx context.Context, input vocabulary.AdjectiveInput) (*domain.Adjective, domain.CreateOutcome, error) {
	if mock.CreateAdjectiveFunc == nil {
		panic("writerMock.CreateAdjectiveFunc: method is nil but writer.CreateAdjective was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.AdjectiveInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateAdjective.Lock()
	mock.calls.CreateAdjective = append(mock.calls.CreateAdjective, callInfo)
	mock.lockCreateAdjective.Unlock()
	return mock.CreateAdjectiveFunc(ctx, input)
}

func (mock *writerMock) CreateAdjectiveCalls() []struct {
	Ctx   context.Context
	Input vocabulary.AdjectiveInput
} {
	mock.lockCreateAdjective.RLock()
	calls := mock.calls.CreateAdjective
	mock.lockCreateAdjective.RUnlock()
	return calls
}

func (mock *writerMock) CreatePhrase(ctx context.Context, input vocabulary.PhraseInput) (*domain.Phrase, domain.CreateOutcome, error) {
	if mock.CreatePhraseFunc == nil {
		panic("writerMock.CreatePhraseFunc: method is nil but writer.CreatePhrase was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.PhraseInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePhrase.Lock()
	mock.calls.CreatePhrase = append(mock.calls.CreatePhrase, callInfo)
	mock.lockCreatePhrase.Unlock()
	return mock.CreatePhraseFunc(ctx, input)
}

func (mock *writerMock) CreatePhraseCalls() []struct {
	Ctx   context.Context
	Input vocabulary.PhraseInput
} {
	mock.lockCreatePhrase.RLock()
	calls := mock.calls.CreatePhrase
	mock.lockCreatePhrase.RUnlock()
	return calls
}
