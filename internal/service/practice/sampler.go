package practice

import (
	"math/rand/v2"
	"sync"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Sampler picks one practice candidate uniformly at random.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand // nil means the global generator
}

// NewSampler returns a Sampler drawing from src. A nil src uses the
// process-wide generator, which is already safe for concurrent use.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		return &Sampler{}
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample drops the excluded candidates and returns one of the rest.
// It returns domain.ErrNoneAvailable when nothing is left.
func (s *Sampler) Sample(candidates []domain.Item, exclude map[int64]struct{}) (domain.Item, error) {
	pool := lo.Filter(candidates, func(it domain.Item, _ int) bool {
		_, skip := exclude[it.ItemID()]
		return !skip
	})
	if len(pool) == 0 {
		return nil, domain.ErrNoneAvailable
	}
	return pool[s.intN(len(pool))], nil
}

func (s *Sampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// ExclusionSet builds the lookup set used by Sample.
func ExclusionSet(ids []int64) map[int64]struct{} {
	return lo.Associate(ids, func(id int64) (int64, struct{}) {
		return id, struct{}{}
	})
}
