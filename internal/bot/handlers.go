package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonQuiz  = "🧠 Quiz"
	ButtonStats = "📊 Stats"
	ButtonHelp  = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		t.quiz.sendStartScreen(message.Chat.ID)
	case "stats":
		t.quiz.sendQuizStats(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I am a quiz bot.\n\n" +
		"✨ What I can do:\n" +
		"• 🧠 Run a multiple choice quiz\n" +
		"• ✅ Show which answers were right\n" +
		"• 📊 Keep your results\n\n" +
		"Press Start below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)

	t.quiz.sendStartScreen(message.Chat.ID)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — main menu
/quiz — start a quiz
/stats — your results
/help — this message

🎯 Pick an answer under each question. The next question appears shortly after.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		t.log.Warn("message without chat", zap.Int("message_id", message.MessageID))
		return
	}

	switch message.Text {
	case ButtonQuiz:
		t.quiz.sendStartScreen(message.Chat.ID)
	case ButtonStats:
		t.quiz.sendQuizStats(message.Chat.ID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not understand. Use the buttons below.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil {
		t.answerCallback(query.ID, "")
		return
	}

	chatID := query.Message.Chat.ID
	data := query.Data
	alert := ""

	switch {
	case data == callbackStart:
		alert = t.quiz.startQuiz(chatID)
	case data == callbackRestart:
		alert = t.quiz.restartQuiz(chatID, query.Message.MessageID)
	case data == callbackStats:
		t.quiz.sendQuizStats(chatID)
	case data == callbackNoop:
	case strings.HasPrefix(data, callbackAnswerPrefix):
		t.quiz.processAnswer(chatID, data)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat_id", chatID))
	}

	t.answerCallback(query.ID, alert)
}

// answerCallback stops the client spinner. A non-empty text is shown as a blocking alert.
func (t *TelegramAPI) answerCallback(queryID, text string) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = text != ""
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}
}
