// Package search finds vocabulary across all word classes by substring.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const MaxQueryLen = 100

type repo[T domain.Item] interface {
	Search(ctx context.Context, q string, limit int) ([]T, error)
}

// Hit is one search result. MatchedTranslation is set when the query
// occurs in one of the translations rather than only in the Norwegian forms.
type Hit[T domain.Item] struct {
	Item               T
	MatchedTranslation bool
}

// Result groups hits by word class.
type Result struct {
	Query      string
	Nouns      []Hit[*domain.Noun]
	Verbs      []Hit[*domain.Verb]
	Adjectives []Hit[*domain.Adjective]
	Phrases    []Hit[*domain.Phrase]
}

// Total returns the number of hits over all classes.
func (r Result) Total() int {
	return len(r.Nouns) + len(r.Verbs) + len(r.Adjectives) + len(r.Phrases)
}

// Service runs searches.
type Service struct {
	nouns      repo[*domain.Noun]
	verbs      repo[*domain.Verb]
	adjectives repo[*domain.Adjective]
	phrases    repo[*domain.Phrase]
	limit      int
	log        *slog.Logger
}

// NewService creates a new search service returning at most limit hits per
// class.
func NewService(
	log *slog.Logger,
	nouns repo[*domain.Noun],
	verbs repo[*domain.Verb],
	adjectives repo[*domain.Adjective],
	phrases repo[*domain.Phrase],
	limit int,
) *Service {
	return &Service{
		nouns:      nouns,
		verbs:      verbs,
		adjectives: adjectives,
		phrases:    phrases,
		limit:      limit,
		log:        log.With("service", "search"),
	}
}

// Search matches q case-insensitively against headwords, inflected forms
// and translations. The four classes are queried concurrently.
func (s *Service) Search(ctx context.Context, q string) (Result, error) {
	query := strings.TrimSpace(q)
	if query == "" {
		return Result{}, domain.NewValidationError("q", "required")
	}
	if utf8.RuneCountInString(query) > MaxQueryLen {
		return Result{}, domain.NewValidationError("q", fmt.Sprintf("max %d characters", MaxQueryLen))
	}

	res := Result{Query: q}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { res.Nouns, err = find(gctx, s.nouns, query, s.limit, "nouns"); return })
	g.Go(func() (err error) { res.Verbs, err = find(gctx, s.verbs, query, s.limit, "verbs"); return })
	g.Go(func() (err error) { res.Adjectives, err = find(gctx, s.adjectives, query, s.limit, "adjectives"); return })
	g.Go(func() (err error) { res.Phrases, err = find(gctx, s.phrases, query, s.limit, "phrases"); return })
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	s.log.DebugContext(ctx, "search",
		slog.String("query", query),
		slog.Int("hits", res.Total()),
	)
	return res, nil
}

func find[T domain.Item](ctx context.Context, r repo[T], q string, limit int, name string) ([]Hit[T], error) {
	items, err := r.Search(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", name, err)
	}
	needle := strings.ToLower(q)
	return lo.Map(items, func(it T, _ int) Hit[T] {
		return Hit[T]{Item: it, MatchedTranslation: inTranslations(it, needle)}
	}), nil
}

func inTranslations(it domain.Item, needle string) bool {
	return lo.SomeBy(it.TranslationList(), func(t string) bool {
		return strings.Contains(strings.ToLower(t), needle)
	})
}
