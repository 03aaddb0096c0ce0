package bot

import (
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier implements the services' notifier interface over the Telegram API.
type Notifier struct {
	bot BotSender
}

func NewNotifier(bot BotSender) *Notifier {
	return &Notifier{bot: bot}
}

func (n *Notifier) SendQuestion(chatID int64, text string, question models.Question) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	keyboard := quizKeyboard(question, "")
	msg.ReplyMarkup = &keyboard

	sent, err := n.bot.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (n *Notifier) RevealAnswer(chatID int64, messageID int, question models.Question, selected string) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, quizKeyboard(question, selected))
	_, err := n.bot.Send(edit)
	return err
}

func (n *Notifier) SendMessage(chatID int64, text string) error {
	_, err := n.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
