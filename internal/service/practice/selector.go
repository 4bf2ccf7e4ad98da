package practice

import (
	"math/rand/v2"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// MaxQuestions is the hard upper bound of questions in one session.
const MaxQuestions = 50

// SelectQuestions draws count distinct nouns from pool without replacement and
// binds them to positions 0..K-1. K is count clamped to [1, min(MaxQuestions, len(pool))];
// an oversized count is not an error. Every ordering is possible.
//
// rng may be nil, in which case the global source is used.
func SelectQuestions(pool []domain.Noun, count int, rng *rand.Rand) ([]domain.Question, error) {
	if len(pool) == 0 {
		return nil, domain.ErrNoItemsAvailable
	}

	k := min(max(count, 1), MaxQuestions, len(pool))

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	questions := make([]domain.Question, k)
	for pos := range k {
		questions[pos] = domain.Question{Position: pos, Noun: pool[idx[pos]]}
	}
	return questions, nil
}
