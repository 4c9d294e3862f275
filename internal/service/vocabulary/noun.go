package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// CreateNoun stores a new noun. When a noun with the same natural key already
// exists nothing is written and the stored record is returned with
// domain.OutcomeDuplicate.
func (s *Service) CreateNoun(ctx context.Context, input NounInput) (*domain.Noun, domain.CreateOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}
	n := input.toDomain()

	out, outcome, err := createOnce(ctx, s.tx,
		func(ctx context.Context) (*domain.Noun, error) { return s.nouns.FindByNaturalKey(ctx, n.Article, n.Word) },
		func(ctx context.Context) (*domain.Noun, error) { return s.nouns.Create(ctx, n) },
	)
	if err != nil {
		return nil, "", fmt.Errorf("create noun: %w", err)
	}

	s.log.InfoContext(ctx, "noun saved",
		slog.Int64("noun_id", out.ID),
		slog.String("word", out.Word),
		slog.String("outcome", string(outcome)),
	)
	return out, outcome, nil
}

// GetNoun returns a noun by ID.
func (s *Service) GetNoun(ctx context.Context, id int64) (*domain.Noun, error) {
	return s.nouns.GetByID(ctx, id)
}

// ListNouns returns nouns matching the tag and level filter.
func (s *Service) ListNouns(ctx context.Context, f domain.Filter) ([]*domain.Noun, error) {
	f = f.Normalized()
	f.Category = ""
	return s.nouns.List(ctx, f)
}

// UpdateNoun applies a partial change. Changing the natural key to one that
// is already taken returns domain.ErrAlreadyExists.
func (s *Service) UpdateNoun(ctx context.Context, id int64, params domain.NounUpdateParams) (*domain.Noun, error) {
	params, err := prepareNounUpdate(params)
	if err != nil {
		return nil, err
	}

	out, err := s.nouns.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "noun updated", slog.Int64("noun_id", id))
	return out, nil
}

// DeleteNoun removes a noun.
func (s *Service) DeleteNoun(ctx context.Context, id int64) error {
	if err := s.nouns.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "noun deleted", slog.Int64("noun_id", id))
	return nil
}
