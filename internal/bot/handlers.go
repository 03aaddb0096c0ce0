package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeText = `🕌 Use /question for a random question to deepen your Islamic knowledge.

📚 Use /theme <category> for themed quizzes on various topics.

🏆 Use /leaderboard to see top scores and track your progress.

🔔 Use /optin to receive daily Islamic and Sunnah reminders (6 times a day) designed to help you build habits through repetition. Sunnah reminders change weekly to keep things fresh and engaging.

🔕 Use /optout if you prefer not to receive reminders.

❓ Use /help for additional guidance.`

const helpText = `Available commands:
/start - start the bot
/question - get a random trivia question
/theme <category> - start a themed quiz
/leaderboard - show the leaderboard
/optin - opt in to receive reminders
/optout - opt out of reminders
/preferences - show your reminder preferences
/help - show this message`

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, welcomeText))
	case "help":
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, helpText))
	case "question":
		t.quiz.startQuiz(ctx, message)
	case "theme":
		t.quiz.startThemedQuiz(ctx, message, strings.TrimSpace(message.CommandArguments()))
	case "leaderboard":
		t.quiz.sendLeaderboard(message)
	case "optin":
		t.reminder.optIn(ctx, message)
	case "optout":
		t.reminder.optOut(ctx, message)
	case "preferences":
		t.reminder.showPreferences(ctx, message)
	default:
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help to see available commands."))
	}
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "I only understand commands. Use /help to see what I can do."))
}
