package bot

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/DanRulev/quizbot.git/internal/quiz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	callbackStart        = "quiz_start"
	callbackRestart      = "quiz_restart"
	callbackNoop         = "quiz_noop"
	callbackStats        = "quiz_stats"
	callbackAnswerPrefix = "quiz_a:"

	// Telegram rejects messages over 4096 characters.
	maxMessageLen = 4000
)

func startText(total int) string {
	return fmt.Sprintf("🧠 <b>Quiz</b>\n\nQuestions: <b>%d</b>\n\nPress Start when you are ready.", total)
}

func startKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("▶️ Start", callbackStart)),
	)
}

func questionText(view quiz.QuestionView) string {
	return fmt.Sprintf("❓ <b>Question %d/%d</b>\n\n%d. %s\n\n📊 Score: %d",
		view.Number, view.Total, view.Number, html.EscapeString(view.Text), view.Score)
}

func optionText(opt quiz.OptionView) string {
	text := opt.Key + ": " + opt.Label
	switch opt.Mark {
	case quiz.MarkCorrect:
		return "✅ " + text
	case quiz.MarkWrong:
		return "❌ " + text
	default:
		return text
	}
}

// questionKeyboard disables every button once the question is answered.
// Buttons carry the option position, not its key, so callback data stays within
// Telegram's 64 byte limit whatever the keys are.
func questionKeyboard(view quiz.QuestionView, round, index int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Options))
	for pos, opt := range view.Options {
		data := callbackNoop
		if opt.Selectable {
			data = answerData(round, index, pos)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(optionText(opt), data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func answerData(round, index, pos int) string {
	return callbackAnswerPrefix + strconv.Itoa(round) + ":" + strconv.Itoa(index) + ":" + strconv.Itoa(pos)
}

func parseAnswerData(data string) (round, index, pos int, err error) {
	if !strings.HasPrefix(data, callbackAnswerPrefix) {
		return 0, 0, 0, errors.New("not an answer callback")
	}

	parts := strings.Split(strings.TrimPrefix(data, callbackAnswerPrefix), ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed answer callback %q", data)
	}

	if round, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("bad round: %w", err)
	}
	if index, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("bad index: %w", err)
	}
	if pos, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("bad option: %w", err)
	}

	return round, index, pos, nil
}

func resultItemText(item quiz.ResultItem) string {
	mark := "❌"
	if item.Correct {
		mark = "✅"
	}

	chosen := "no answer"
	if item.Answered {
		chosen = html.EscapeString(item.ChosenLabel)
	}

	return fmt.Sprintf("%s <b>Question %d:</b> %s\nYour answer: %s\nCorrect answer: %s\n\n",
		mark, item.Number, html.EscapeString(item.Text), chosen, html.EscapeString(item.CorrectLabel))
}

// resultsMessages renders the summary and splits the review so no part exceeds the message limit.
func resultsMessages(res quiz.Results) []string {
	var (
		parts []string
		sb    strings.Builder
	)

	sb.WriteString(fmt.Sprintf("🏁 <b>Quiz finished!</b>\n\nYour score: <b>%d%%</b> (%d/%d)\n\n",
		res.Percentage, res.Score, res.Total))

	for _, item := range res.Items {
		text := resultItemText(item)
		if sb.Len()+len(text) > maxMessageLen && sb.Len() > 0 {
			parts = append(parts, strings.TrimSpace(sb.String()))
			sb.Reset()
		}
		sb.WriteString(text)
	}

	if sb.Len() > 0 {
		parts = append(parts, strings.TrimSpace(sb.String()))
	}

	return parts
}

func resultsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Restart", callbackRestart),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", callbackStats),
		),
	)
}
