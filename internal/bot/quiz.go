package bot

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/quizbot.git/internal/models"
	"github.com/DanRulev/quizbot.git/internal/quiz"
	"github.com/DanRulev/quizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const alertNoQuestions = "❌ Failed to load the questions. Try again later."

type QuizSI interface {
	Questions() []models.Question
	Total() int
	SaveAnswer(ctx context.Context, chatID int64, index int, key string) error
	Answers(ctx context.Context, chatID int64) (map[int]string, error)
	ClearAnswers(ctx context.Context, chatID int64) error
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context, chatID int64) (string, error)
}

// AfterFunc schedules f after d and returns a handle that can cancel it.
type AfterFunc func(d time.Duration, f func()) cache.Timer

func timeAfterFunc(d time.Duration, f func()) cache.Timer {
	return time.AfterFunc(d, f)
}

// QuizT owns every chat's quiz. A chat's entry lock serialises its user events
// and deferred advances. Chats do not wait on each other.
type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	delay   time.Duration
	after   AfterFunc
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, delay time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		delay:   delay,
		after:   timeAfterFunc,
		log:     log,
	}
}

func (t *QuizT) sendStartScreen(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, startText(t.service.Total()))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = startKeyboard()

	sendMessage(t.bot, msg, t.log)
}

// startQuiz returns an alert for the user when the quiz cannot be started.
func (t *QuizT) startQuiz(chatID int64) string {
	entry := t.cache.GetOrCreateEntry(chatID, func() *cache.Entry {
		return &cache.Entry{Session: quiz.NewSession(t.service.Questions())}
	})

	entry.Lock()
	defer entry.Unlock()

	entry.StopPending()

	if err := entry.Session.Start(); err != nil {
		t.log.Error("failed to start quiz", zap.Int64("chat_id", chatID), zap.Error(err))
		return alertNoQuestions
	}

	entry.SessionID = uuid.NewString()
	entry.MessageID = 0

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	// errors are logged by the service; stale rows are also overwritten on answer
	_ = t.service.ClearAnswers(ctx, chatID)

	t.log.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", entry.SessionID),
		zap.Int("total", entry.Session.Total()),
	)

	t.presentQuestion(chatID, entry)
	return ""
}

func (t *QuizT) restartQuiz(chatID int64, resultsMessageID int) string {
	if resultsMessageID != 0 {
		hide := tgbotapi.NewEditMessageReplyMarkup(chatID, resultsMessageID, tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
		})
		sendMessage(t.bot, hide, t.log)
	}

	return t.startQuiz(chatID)
}

// presentQuestion expects entry to be locked.
func (t *QuizT) presentQuestion(chatID int64, entry *cache.Entry) {
	view, ok := entry.Session.QuestionView()
	if !ok {
		t.log.Warn("no question at current index, showing results",
			zap.Int64("chat_id", chatID), zap.Int("index", entry.Session.Index()))
		entry.Session.Finish()
		t.showResults(chatID, entry)
		return
	}

	msg := tgbotapi.NewMessage(chatID, questionText(view))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = questionKeyboard(view, entry.Session.Round(), entry.Session.Index())

	sent, ok := sendMessage(t.bot, msg, t.log)
	if !ok {
		return
	}
	entry.MessageID = sent.MessageID
}

func (t *QuizT) processAnswer(chatID int64, data string) {
	round, index, pos, err := parseAnswerData(data)
	if err != nil {
		t.log.Warn("bad answer callback", zap.String("data", data), zap.Error(err))
		return
	}

	entry, exists := t.cache.GetEntry(chatID)
	if !exists {
		t.log.Debug("answer without quiz", zap.Int64("chat_id", chatID))
		return
	}

	entry.Lock()
	defer entry.Unlock()

	session := entry.Session
	if session.Round() != round || session.Index() != index {
		t.log.Debug("stale answer ignored", zap.Int64("chat_id", chatID), zap.String("data", data))
		return
	}

	outcome, err := session.SubmitOption(pos)
	if err != nil {
		t.rejectAnswer(chatID, entry, pos, err)
		return
	}

	t.log.Debug("answer accepted",
		zap.Int64("chat_id", chatID),
		zap.Int("index", outcome.Index),
		zap.String("key", outcome.Key),
		zap.Bool("correct", outcome.Correct),
	)

	if view, ok := session.QuestionView(); ok {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, entry.MessageID, questionText(view), questionKeyboard(view, round, index))
		edit.ParseMode = tgbotapi.ModeHTML
		sendMessage(t.bot, edit, t.log)
	}

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	// a lost write only degrades the review on the results screen
	_ = t.service.SaveAnswer(ctx, chatID, outcome.Index, outcome.Key)

	entry.Pending = t.after(t.delay, func() {
		t.advance(chatID, round)
	})
}

// rejectAnswer expects entry to be locked. A session that lost its current
// question is already finished and goes straight to the results.
func (t *QuizT) rejectAnswer(chatID int64, entry *cache.Entry, pos int, err error) {
	switch {
	case errors.Is(err, quiz.ErrQuestionMissing):
		t.log.Warn("no question at current index, showing results",
			zap.Int64("chat_id", chatID), zap.Int("index", entry.Session.Index()))
		entry.StopPending()
		t.showResults(chatID, entry)
	case errors.Is(err, quiz.ErrNotActive), errors.Is(err, quiz.ErrAlreadyAnswered):
		t.log.Debug("answer ignored", zap.Int64("chat_id", chatID), zap.Error(err))
	default:
		t.log.Warn("answer rejected", zap.Int64("chat_id", chatID), zap.Int("option", pos), zap.Error(err))
	}
}

func (t *QuizT) advance(chatID int64, round int) {
	entry, exists := t.cache.GetEntry(chatID)
	if !exists {
		return
	}

	entry.Lock()
	defer entry.Unlock()

	session := entry.Session
	if session.Round() != round || !session.Answered() {
		t.log.Debug("stale advance ignored", zap.Int64("chat_id", chatID), zap.Int("round", round))
		return
	}
	entry.Pending = nil

	if session.Advance() == quiz.Finished {
		t.showResults(chatID, entry)
		return
	}

	t.presentQuestion(chatID, entry)
}

// showResults expects entry to be locked.
func (t *QuizT) showResults(chatID int64, entry *cache.Entry) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	answers, err := t.service.Answers(ctx, chatID)
	if err != nil {
		answers = nil
	}

	res, err := entry.Session.Results(answers)
	if err != nil {
		t.log.Error("failed to build results", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	parts := resultsMessages(res)
	for i, text := range parts {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if i == len(parts)-1 {
			msg.ReplyMarkup = resultsKeyboard()
		}
		sendMessage(t.bot, msg, t.log)
	}

	t.log.Info("quiz finished",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", entry.SessionID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Int("percentage", res.Percentage),
	)

	_ = t.service.AddQuizResult(ctx, models.QuizResult{
		ChatID:     chatID,
		SessionID:  entry.SessionID,
		Score:      res.Score,
		Total:      res.Total,
		Percentage: res.Percentage,
	})
}

func (t *QuizT) sendQuizStats(chatID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	stats, err := t.service.QuizStats(ctx, chatID)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to load your stats")
		sendMessage(t.bot, msg, t.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, stats)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg, t.log)
}
