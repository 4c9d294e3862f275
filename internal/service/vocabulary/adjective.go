package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// CreateAdjective stores a new adjective. When a adjective with the same natural key already
// exists nothing is written and the stored record is returned with
// domain.OutcomeDuplicate.
func (s *Service) CreateAdjective(ctx context.Context, input AdjectiveInput) (*domain.Adjective, domain.CreateOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}
	a := input.toDomain()

	out, outcome, err := createOnce(ctx, s.tx,
		func(ctx context.Context) (*domain.Adjective, error) { return s.adjectives.FindByNaturalKey(ctx, a.Base) },
		func(ctx context.Context) (*domain.Adjective, error) { return s.adjectives.Create(ctx, a) },
	)
	if err != nil {
		return nil, "", fmt.Errorf("create adjective: %w", err)
	}

	s.log.InfoContext(ctx, "adjective saved",
		slog.Int64("adjective_id", out.ID),
		slog.String("base", out.Base),
		slog.String("outcome", string(outcome)),
	)
	return out, outcome, nil
}

// GetAdjective returns a adjective by ID.
func (s *Service) GetAdjective(ctx context.Context, id int64) (*domain.Adjective, error) {
	return s.adjectives.GetByID(ctx, id)
}

// ListAdjectives returns adjectives matching the tag and level filter.
func (s *Service) ListAdjectives(ctx context.Context, f domain.Filter) ([]*domain.Adjective, error) {
	f = f.Normalized()
	f.Category = ""
	return s.adjectives.List(ctx, f)
}

// UpdateAdjective applies a partial change. Changing the natural key to one that
// is already taken returns domain.ErrAlreadyExists.
func (s *Service) UpdateAdjective(ctx context.Context, id int64, params domain.AdjectiveUpdateParams) (*domain.Adjective, error) {
	params, err := prepareAdjectiveUpdate(params)
	if err != nil {
		return nil, err
	}

	out, err := s.adjectives.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "adjective updated", slog.Int64("adjective_id", id))
	return out, nil
}

// DeleteAdjective removes a adjective.
func (s *Service) DeleteAdjective(ctx context.Context, id int64) error {
	if err := s.adjectives.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "adjective deleted", slog.Int64("adjective_id", id))
	return nil
}
