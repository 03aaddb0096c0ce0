package mock_service

import (
	"sync"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

type SentQuestion struct {
	ChatID    int64
	Text      string
	Question  models.Question
	MessageID int
}

type SentMessage struct {
	ChatID int64
	Text   string
}

type Reveal struct {
	ChatID    int64
	MessageID int
	Question  models.Question
	Selected  string
}

// MockNotifier records everything the services publish and hands out
// incrementing message ids.
type MockNotifier struct {
	mu        sync.Mutex
	nextMsgID int

	Questions []SentQuestion
	Messages  []SentMessage
	Reveals   []Reveal

	SendErr error
}

func (m *MockNotifier) SendQuestion(chatID int64, text string, question models.Question) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return 0, m.SendErr
	}
	m.nextMsgID++
	m.Questions = append(m.Questions, SentQuestion{
		ChatID:    chatID,
		Text:      text,
		Question:  question,
		MessageID: m.nextMsgID,
	})
	return m.nextMsgID, nil
}

func (m *MockNotifier) RevealAnswer(chatID int64, messageID int, question models.Question, selected string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Reveals = append(m.Reveals, Reveal{
		ChatID:    chatID,
		MessageID: messageID,
		Question:  question,
		Selected:  selected,
	})
	return nil
}

func (m *MockNotifier) SendMessage(chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Messages = append(m.Messages, SentMessage{ChatID: chatID, Text: text})
	return nil
}

// MessageTexts returns the plain-message texts sent to chatID, in order.
func (m *MockNotifier) MessageTexts(chatID int64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var texts []string
	for _, msg := range m.Messages {
		if msg.ChatID == chatID {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}
