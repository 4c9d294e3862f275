// Package vocabulary manages the stored word classes: create with
// duplicate detection by natural key, lookup, partial update and delete.
package vocabulary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

//go:generate moq -out repo_mock_test.go -pkg vocabulary . nounRepo verbRepo adjectiveRepo phraseRepo counter txManager

type nounRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Noun, error)
	FindByNaturalKey(ctx context.Context, article, word string) (*domain.Noun, error)
	List(ctx context.Context, f domain.Filter) ([]*domain.Noun, error)
	Create(ctx context.Context, n *domain.Noun) (*domain.Noun, error)
	Update(ctx context.Context, id int64, p domain.NounUpdateParams) (*domain.Noun, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type verbRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Verb, error)
	FindByNaturalKey(ctx context.Context, infinitive string) (*domain.Verb, error)
	List(ctx context.Context, f domain.Filter) ([]*domain.Verb, error)
	Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error)
	Update(ctx context.Context, id int64, p domain.VerbUpdateParams) (*domain.Verb, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type adjectiveRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Adjective, error)
	FindByNaturalKey(ctx context.Context, base string) (*domain.Adjective, error)
	List(ctx context.Context, f domain.Filter) ([]*domain.Adjective, error)
	Create(ctx context.Context, a *domain.Adjective) (*domain.Adjective, error)
	Update(ctx context.Context, id int64, p domain.AdjectiveUpdateParams) (*domain.Adjective, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type phraseRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Phrase, error)
	FindByNaturalKey(ctx context.Context, norwegian string) (*domain.Phrase, error)
	List(ctx context.Context, f domain.Filter) ([]*domain.Phrase, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error)
	Update(ctx context.Context, id int64, p domain.PhraseUpdateParams) (*domain.Phrase, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type counter interface {
	Count(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vocabulary management operations.
type Service struct {
	log        *slog.Logger
	tx         txManager
	nouns      nounRepo
	verbs      verbRepo
	adjectives adjectiveRepo
	phrases    phraseRepo
	lessons    counter
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	tx txManager,
	nouns nounRepo,
	verbs verbRepo,
	adjectives adjectiveRepo,
	phrases phraseRepo,
	lessons counter,
) *Service {
	return &Service{
		log:        log.With("service", "vocabulary"),
		tx:         tx,
		nouns:      nouns,
		verbs:      verbs,
		adjectives: adjectives,
		phrases:    phrases,
		lessons:    lessons,
	}
}

// createOnce inserts a record unless find already returns one for the same
// natural key. The lookup and insert share a transaction. When the insert
// loses a race on the unique index the aborted transaction is discarded and
// the winner is looked up again outside of it.
func createOnce[T any](
	ctx context.Context,
	tx txManager,
	find func(ctx context.Context) (T, error),
	create func(ctx context.Context) (T, error),
) (T, domain.CreateOutcome, error) {
	var (
		zero    T
		out     T
		outcome domain.CreateOutcome
	)

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := find(ctx)
		if err == nil {
			out, outcome = existing, domain.OutcomeDuplicate
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		created, err := create(ctx)
		if err != nil {
			return err
		}
		out, outcome = created, domain.OutcomeCreated
		return nil
	})

	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, findErr := find(ctx)
		if findErr != nil {
			return zero, "", findErr
		}
		return existing, domain.OutcomeDuplicate, nil
	}
	if err != nil {
		return zero, "", err
	}
	return out, outcome, nil
}
