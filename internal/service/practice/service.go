package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// ItemSource is the read side of one word-class store.
type ItemSource interface {
	GetItem(ctx context.Context, id int64) (domain.Item, error)
	ListItems(ctx context.Context, filter domain.Filter) ([]domain.Item, error)
}

// Repo is the typed repository shape Adapt turns into an ItemSource.
type Repo[T domain.Item] interface {
	GetByID(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, filter domain.Filter) ([]T, error)
}

// Adapt exposes a typed repository as an ItemSource.
func Adapt[T domain.Item](r Repo[T]) ItemSource {
	return repoSource[T]{repo: r}
}

type repoSource[T domain.Item] struct {
	repo Repo[T]
}

func (s repoSource[T]) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s repoSource[T]) ListItems(ctx context.Context, filter domain.Filter) ([]domain.Item, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}
	return items, nil
}

// Service serves practice questions and grades answers.
type Service struct {
	sources    map[domain.Kind]ItemSource
	sampler    *Sampler
	maxExclude int
	log        *slog.Logger
}

// NewService creates a practice service. maxExclude <= 0 disables the
// exclusion size limit.
func NewService(
	log *slog.Logger,
	sampler *Sampler,
	maxExclude int,
	nouns, verbs, adjectives, phrases ItemSource,
) *Service {
	if sampler == nil {
		sampler = NewSampler(nil)
	}
	return &Service{
		sources: map[domain.Kind]ItemSource{
			domain.KindNoun:      nouns,
			domain.KindVerb:      verbs,
			domain.KindAdjective: adjectives,
			domain.KindPhrase:    phrases,
		},
		sampler:    sampler,
		maxExclude: maxExclude,
		log:        log.With("service", "practice"),
	}
}

func (s *Service) source(kind domain.Kind) (ItemSource, error) {
	src, ok := s.sources[kind]
	if !ok || src == nil {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unsupported word class %q", kind))
	}
	return src, nil
}

// RandomCandidate returns one random item of kind that matches filter and
// is not in excludeIDs. It returns domain.ErrNoneAvailable once every
// matching item has been excluded.
func (s *Service) RandomCandidate(ctx context.Context, kind domain.Kind, filter domain.Filter, excludeIDs []int64) (domain.Item, error) {
	src, err := s.source(kind)
	if err != nil {
		return nil, err
	}
	if s.maxExclude > 0 && len(excludeIDs) > s.maxExclude {
		return nil, domain.NewValidationError("exclude_ids", fmt.Sprintf("at most %d ids", s.maxExclude))
	}

	filter = filter.Normalized()
	if kind != domain.KindPhrase {
		filter.Category = ""
	}
	filter.Limit, filter.Offset = 0, 0

	candidates, err := src.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Plural(), err)
	}

	item, err := s.sampler.Sample(candidates, ExclusionSet(excludeIDs))
	if err != nil {
		s.log.DebugContext(ctx, "candidates exhausted",
			slog.String("kind", kind.String()),
			slog.Int("candidates", len(candidates)),
			slog.Int("excluded", len(excludeIDs)),
		)
		return nil, err
	}
	return item, nil
}

// CheckAnswer loads the item and grades sub against it.
func (s *Service) CheckAnswer(ctx context.Context, kind domain.Kind, id int64, sub domain.Submission) (domain.Verdict, error) {
	src, err := s.source(kind)
	if err != nil {
		return domain.Verdict{}, err
	}

	item, err := src.GetItem(ctx, id)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("get %s %d: %w", kind, id, err)
	}

	v := Check(item, sub)
	s.log.DebugContext(ctx, "answer checked",
		slog.String("kind", kind.String()),
		slog.Int64("id", id),
		slog.Bool("all_correct", v.AllCorrect),
	)
	return v, nil
}
