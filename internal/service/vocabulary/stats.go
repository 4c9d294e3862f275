package vocabulary

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Stats counts the stored records of every class concurrently.
func (s *Service) Stats(ctx context.Context) (domain.Counts, error) {
	var counts domain.Counts

	targets := []struct {
		name string
		src  counter
		dst  *int
	}{
		{"nouns", s.nouns, &counts.Nouns},
		{"verbs", s.verbs, &counts.Verbs},
		{"adjectives", s.adjectives, &counts.Adjectives},
		{"phrases", s.phrases, &counts.Phrases},
		{"lessons", s.lessons, &counts.Lessons},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			n, err := t.src.Count(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", t.name, err)
			}
			*t.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Counts{}, err
	}
	return counts, nil
}
