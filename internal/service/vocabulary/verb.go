package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// CreateVerb stores a new verb. When a verb with the same natural key already
// exists nothing is written and the stored record is returned with
// domain.OutcomeDuplicate.
func (s *Service) CreateVerb(ctx context.Context, input VerbInput) (*domain.Verb, domain.CreateOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}
	v := input.toDomain()

	out, outcome, err := createOnce(ctx, s.tx,
		func(ctx context.Context) (*domain.Verb, error) { return s.verbs.FindByNaturalKey(ctx, v.Infinitive) },
		func(ctx context.Context) (*domain.Verb, error) { return s.verbs.Create(ctx, v) },
	)
	if err != nil {
		return nil, "", fmt.Errorf("create verb: %w", err)
	}

	s.log.InfoContext(ctx, "verb saved",
		slog.Int64("verb_id", out.ID),
		slog.String("infinitive", out.Infinitive),
		slog.String("outcome", string(outcome)),
	)
	return out, outcome, nil
}

// GetVerb returns a verb by ID.
func (s *Service) GetVerb(ctx context.Context, id int64) (*domain.Verb, error) {
	return s.verbs.GetByID(ctx, id)
}

// ListVerbs returns verbs matching the tag and level filter.
func (s *Service) ListVerbs(ctx context.Context, f domain.Filter) ([]*domain.Verb, error) {
	f = f.Normalized()
	f.Category = ""
	return s.verbs.List(ctx, f)
}

// UpdateVerb applies a partial change. Changing the natural key to one that
// is already taken returns domain.ErrAlreadyExists.
func (s *Service) UpdateVerb(ctx context.Context, id int64, params domain.VerbUpdateParams) (*domain.Verb, error) {
	params, err := prepareVerbUpdate(params)
	if err != nil {
		return nil, err
	}

	out, err := s.verbs.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "verb updated", slog.Int64("verb_id", id))
	return out, nil
}

// DeleteVerb removes a verb.
func (s *Service) DeleteVerb(ctx context.Context, id int64) error {
	if err := s.verbs.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "verb deleted", slog.Int64("verb_id", id))
	return nil
}
