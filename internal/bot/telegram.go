package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ServiceI is everything the transport needs from the service layer.
type ServiceI interface {
	QuizSI
	ReminderSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot      *tgbotapi.BotAPI
	quiz     *QuizT
	reminder *ReminderT
	log      *zap.Logger
}

func NewTelegramAPI(api *tgbotapi.BotAPI, env string, service ServiceI, log *zap.Logger) *TelegramAPI {
	api.Debug = env == "development"

	return &TelegramAPI{
		bot:      api,
		quiz:     NewQuizTAPI(api, service, log),
		reminder: NewReminderTAPI(api, service, log),
		log:      log,
	}
}

// Start consumes updates until the context is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		t.bot.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(ctx, update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(ctx, update.CallbackQuery)
		}
	}
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	t.quiz.processAnswer(ctx, query)
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		log.Warn("failed to send message", zap.Error(err))
	}
}
