package spaced_repetition

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/example/wordlearner/pkg/models"
)

// PoolDivisor sets the share of the collection a pick is drawn from:
// the least recently practiced 1/PoolDivisor of the words.
const PoolDivisor = 3

// Selector picks the next word to practice. Words that were never
// practiced come first, then the ones practiced longest ago.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a selector. A nil rnd is seeded from the clock.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// Order returns a copy of words sorted ascending by last practice,
// never-practiced words first. Ties keep storage order.
func Order(words []models.WordRecord) []models.WordRecord {
	sorted := make([]models.WordRecord, len(words))
	copy(sorted, words)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].LastPracticed, sorted[j].LastPracticed
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})
	return sorted
}

// PoolSize is the number of candidates considered for a collection of n words
func PoolSize(n int) int {
	if n <= 0 {
		return 0
	}
	if p := n / PoolDivisor; p > 1 {
		return p
	}
	return 1
}

// Pick returns a random word among the least recently practiced third.
// ok is false when there are no words.
func (s *Selector) Pick(words []models.WordRecord) (word models.WordRecord, ok bool) {
	if len(words) == 0 {
		return models.WordRecord{}, false
	}

	sorted := Order(words)
	pool := PoolSize(len(sorted))

	s.mu.Lock()
	i := s.rnd.Intn(pool)
	s.mu.Unlock()

	return sorted[i], true
}
