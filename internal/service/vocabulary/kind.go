package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Get returns the item of the given class by ID.
func (s *Service) Get(ctx context.Context, kind domain.Kind, id int64) (domain.Item, error) {
	switch kind {
	case domain.KindNoun:
		return asItem(s.GetNoun(ctx, id))
	case domain.KindVerb:
		return asItem(s.GetVerb(ctx, id))
	case domain.KindAdjective:
		return asItem(s.GetAdjective(ctx, id))
	case domain.KindPhrase:
		return asItem(s.GetPhrase(ctx, id))
	}
	return nil, unknownKind(kind)
}

// List returns every item of the given class matching f.
func (s *Service) List(ctx context.Context, kind domain.Kind, f domain.Filter) ([]domain.Item, error) {
	switch kind {
	case domain.KindNoun:
		return asItems(s.ListNouns(ctx, f))
	case domain.KindVerb:
		return asItems(s.ListVerbs(ctx, f))
	case domain.KindAdjective:
		return asItems(s.ListAdjectives(ctx, f))
	case domain.KindPhrase:
		return asItems(s.ListPhrases(ctx, f))
	}
	return nil, unknownKind(kind)
}

// Delete removes the item of the given class.
func (s *Service) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	switch kind {
	case domain.KindNoun:
		return s.DeleteNoun(ctx, id)
	case domain.KindVerb:
		return s.DeleteVerb(ctx, id)
	case domain.KindAdjective:
		return s.DeleteAdjective(ctx, id)
	case domain.KindPhrase:
		return s.DeletePhrase(ctx, id)
	}
	return unknownKind(kind)
}

func asItem[T domain.Item](v T, err error) (domain.Item, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func asItems[T domain.Item](vs []T, err error) ([]domain.Item, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out, nil
}

func unknownKind(kind domain.Kind) error {
	return domain.NewValidationError("kind", fmt.Sprintf("unknown word class %q", kind))
}
