package state

import (
	"sort"
	"sync"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// Scores is the cumulative score ledger keyed by user id. Records are created
// lazily on the first correct answer and never deleted; scores only grow.
type Scores struct {
	mu     sync.Mutex
	scores map[int64]models.UserScore
}

func NewScores(initial map[int64]models.UserScore) *Scores {
	if initial == nil {
		initial = make(map[int64]models.UserScore)
	}
	return &Scores{scores: initial}
}

func (s *Scores) Get(userID int64) (models.UserScore, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, exists := s.scores[userID]
	return score, exists
}

// AddPoints create-or-increments the user's record by delta and stamps the
// answer time. The username is only set when the record is created.
func (s *Scores) AddPoints(userID int64, username string, delta int, now time.Time) models.UserScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	score, exists := s.scores[userID]
	if !exists {
		score = models.UserScore{
			UserID:   userID,
			Username: username,
		}
	}
	score.Score += delta
	score.LastAnswerTime = now.Unix()
	s.scores[userID] = score

	return score
}

// TopN returns up to n records sorted by score descending, ties broken by
// user id so the order is stable across calls.
func (s *Scores) TopN(n int) []models.UserScore {
	s.mu.Lock()
	top := make([]models.UserScore, 0, len(s.scores))
	for _, score := range s.scores {
		top = append(top, score)
	}
	s.mu.Unlock()

	sort.Slice(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].UserID < top[j].UserID
	})

	if len(top) > n {
		top = top[:n]
	}
	return top
}

// Snapshot returns a copy of the ledger for persistence.
func (s *Scores) Snapshot() map[int64]models.UserScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[int64]models.UserScore, len(s.scores))
	for id, score := range s.scores {
		snapshot[id] = score
	}
	return snapshot
}
