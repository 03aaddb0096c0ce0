package bot

import (
	"context"
	"errors"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// DefaultQuizLength is how many questions the /question command asks.
const DefaultQuizLength = 5

type QuizSI interface {
	StartQuiz(ctx context.Context, chatID int64, maxQuestions int) error
	StartThemedQuiz(ctx context.Context, chatID int64, category string) error
	HandleAnswer(ctx context.Context, chatID, userID int64, username, data string) error
	Leaderboard() string
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *QuizT) startQuiz(ctx context.Context, message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := t.service.StartQuiz(ctx, message.Chat.ID, DefaultQuizLength); err != nil {
		t.log.Error("failed to start quiz", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to start a quiz. Please try again later."))
	}
}

func (t *QuizT) startThemedQuiz(ctx context.Context, message *tgbotapi.Message, category string) {
	if category == "" {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Usage: /theme <category>"))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := t.service.StartThemedQuiz(ctx, message.Chat.ID, category)
	switch {
	case errors.Is(err, service.ErrNoQuestionsInCategory):
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "No questions found for this category!"))
	case err != nil:
		t.log.Error("failed to start themed quiz", zap.Int64("chat_id", message.Chat.ID), zap.String("category", category), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to start a quiz. Please try again later."))
	}
}

func (t *QuizT) sendLeaderboard(message *tgbotapi.Message) {
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, t.service.Leaderboard()))
}

func (t *QuizT) processAnswer(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.From == nil {
		t.log.Warn("callback without sender", zap.String("callback_id", query.ID))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := t.service.HandleAnswer(ctx, query.Message.Chat.ID, query.From.ID, query.From.FirstName, query.Data)
	if err != nil {
		t.log.Error("failed to process answer",
			zap.Int64("chat_id", query.Message.Chat.ID),
			zap.Int64("user_id", query.From.ID),
			zap.Error(err),
		)
	}
}
