package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// CreatePhrase stores a new phrase. When a phrase with the same natural key already
// exists nothing is written and the stored record is returned with
// domain.OutcomeDuplicate.
func (s *Service) CreatePhrase(ctx context.Context, input PhraseInput) (*domain.Phrase, domain.CreateOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}
	p := input.toDomain()

	out, outcome, err := createOnce(ctx, s.tx,
		func(ctx context.Context) (*domain.Phrase, error) { return s.phrases.FindByNaturalKey(ctx, p.Norwegian) },
		func(ctx context.Context) (*domain.Phrase, error) { return s.phrases.Create(ctx, p) },
	)
	if err != nil {
		return nil, "", fmt.Errorf("create phrase: %w", err)
	}

	s.log.InfoContext(ctx, "phrase saved",
		slog.Int64("phrase_id", out.ID),
		slog.String("norwegian", out.Norwegian),
		slog.String("outcome", string(outcome)),
	)
	return out, outcome, nil
}

// GetPhrase returns a phrase by ID.
func (s *Service) GetPhrase(ctx context.Context, id int64) (*domain.Phrase, error) {
	return s.phrases.GetByID(ctx, id)
}

// ListPhrases returns phrases matching the tag, category and level filter.
func (s *Service) ListPhrases(ctx context.Context, f domain.Filter) ([]*domain.Phrase, error) {
	f = f.Normalized()
	return s.phrases.List(ctx, f)
}

// UpdatePhrase applies a partial change. Changing the natural key to one that
// is already taken returns domain.ErrAlreadyExists.
func (s *Service) UpdatePhrase(ctx context.Context, id int64, params domain.PhraseUpdateParams) (*domain.Phrase, error) {
	params, err := preparePhraseUpdate(params)
	if err != nil {
		return nil, err
	}

	out, err := s.phrases.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "phrase updated", slog.Int64("phrase_id", id))
	return out, nil
}

// DeletePhrase removes a phrase.
func (s *Service) DeletePhrase(ctx context.Context, id int64) error {
	if err := s.phrases.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "phrase deleted", slog.Int64("phrase_id", id))
	return nil
}

// PhraseCategories returns the distinct phrase categories in use.
func (s *Service) PhraseCategories(ctx context.Context) ([]string, error) {
	return s.phrases.Categories(ctx)
}
