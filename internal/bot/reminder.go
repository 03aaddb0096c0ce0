package bot

import (
	"context"
	"errors"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/service"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	busyText        = "Sorry, the system is busy. Please try again in a few moments."
	persistWarnText = "Warning: There was an issue saving your preferences. Your settings might not persist after bot restart."
)

type ReminderSI interface {
	OptIn(ctx context.Context, userID int64, username string) error
	OptOut(ctx context.Context, userID int64) (bool, error)
	Preferences(ctx context.Context, userID int64) (string, error)
}

type ReminderT struct {
	bot     BotSender
	service ReminderSI
	log     *zap.Logger
}

func NewReminderTAPI(bot BotSender, service ReminderSI, log *zap.Logger) *ReminderT {
	return &ReminderT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *ReminderT) optIn(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := t.service.OptIn(ctx, message.Chat.ID, message.From.FirstName)
	switch {
	case errors.Is(err, state.ErrLockTimeout):
		t.log.Error("opt-in lock timeout", zap.Int64("chat_id", message.Chat.ID))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, busyText))
		return
	case errors.Is(err, service.ErrPersistence):
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID,
			"✅ You've successfully opted in to receive daily reminders! You'll receive one random reminder every 24 hours."))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, persistWarnText))
		return
	case err != nil:
		t.log.Error("opt-in failed", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, busyText))
		return
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID,
		"✅ You've successfully opted in to receive daily reminders! You'll receive one random reminder every 24 hours."))
}

func (t *ReminderT) optOut(ctx context.Context, message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existed, err := t.service.OptOut(ctx, message.Chat.ID)
	switch {
	case errors.Is(err, state.ErrLockTimeout):
		t.log.Error("opt-out lock timeout", zap.Int64("chat_id", message.Chat.ID))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, busyText))
		return
	case errors.Is(err, service.ErrPersistence):
		// The opt-out took effect in memory; warn about durability only.
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, persistWarnText))
	case err != nil:
		t.log.Error("opt-out failed", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		return
	}

	if existed {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID,
			"✅ You've successfully opted out of reminders. Use /optin anytime to start receiving them again."))
	}
}

func (t *ReminderT) showPreferences(ctx context.Context, message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := t.service.Preferences(ctx, message.Chat.ID)
	if err != nil {
		t.log.Error("failed to read preferences", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, busyText))
		return
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, text))
}
