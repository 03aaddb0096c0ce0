package state

import (
	"sync"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// Sessions holds at most one active question per chat. A second Set for the
// same chat replaces the previous session (last start wins).
type Sessions struct {
	mu     sync.Mutex
	active map[int64]models.ActiveQuestion
}

func NewSessions() *Sessions {
	return &Sessions{
		active: make(map[int64]models.ActiveQuestion),
	}
}

func (s *Sessions) Set(chatID int64, q models.ActiveQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = q
}

func (s *Sessions) Get(chatID int64) (models.ActiveQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, exists := s.active[chatID]
	return q, exists
}

// Delete removes the chat's session and reports whether one existed.
func (s *Sessions) Delete(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.active[chatID]
	delete(s.active, chatID)
	return exists
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
