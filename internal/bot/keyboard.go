package bot

import (
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// quizKeyboard builds the answer keyboard: one option per row, callback data
// equal to the option text, plus an end-quiz row. When selected is non-empty
// the keyboard reveals correctness: the correct option gets a check mark and
// a selected wrong option gets a cross.
func quizKeyboard(question models.Question, selected string) tgbotapi.InlineKeyboardMarkup {
	options := question.Options()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+1)

	for _, option := range options {
		text := option
		if selected != "" {
			switch {
			case option == question.CorrectAnswer:
				text = "✅ " + option
			case option == selected:
				text = "❌ " + option
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, option),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🛑 End Quiz", service.EndQuizAction),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
