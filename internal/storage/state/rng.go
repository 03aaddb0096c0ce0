package state

import (
	"math/rand"
	"sync"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// Rand is the shared question-selection source. A single generator behind a
// mutex serializes draws across concurrent chats; each draw stays uniform
// over the eligible set.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws one question uniformly at random. The second return is false
// when the slice is empty.
func (r *Rand) Pick(questions []models.Question) (models.Question, bool) {
	if len(questions) == 0 {
		return models.Question{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return questions[r.rng.Intn(len(questions))], true
}
