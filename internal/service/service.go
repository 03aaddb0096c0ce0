package service

import (
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/catalog"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/config"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	"go.uber.org/zap"
)

// Notifier is the narrow surface the services need from the chat transport.
// SendQuestion publishes a question with its answer keyboard and returns the
// outbound message id; RevealAnswer recolors that keyboard after an answer.
type Notifier interface {
	SendQuestion(chatID int64, text string, question models.Question) (int, error)
	RevealAnswer(chatID int64, messageID int, question models.Question, selected string) error
	SendMessage(chatID int64, text string) error
}

type ScoreStoreI interface {
	SaveScores(scores map[int64]models.UserScore) error
}

type PreferenceStoreI interface {
	SavePreferences(prefs map[int64]models.UserReminderPreferences) error
}

type RepositoryI interface {
	ScoreStoreI
	PreferenceStoreI
}

type Service struct {
	*QuizS
	*ReminderS
}

func InitServices(
	cat *catalog.Catalog,
	sessions *state.Sessions,
	scores *state.Scores,
	prefs *state.Preferences,
	rng *state.Rand,
	repo RepositoryI,
	notifier Notifier,
	cfg config.ReminderConfig,
	log *zap.Logger,
) *Service {
	return &Service{
		QuizS:     NewQuizService(cat, sessions, scores, rng, repo, notifier, log),
		ReminderS: NewReminderService(cat, prefs, repo, notifier, cfg, log),
	}
}
