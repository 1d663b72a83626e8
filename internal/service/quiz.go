package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/DanRulev/quizbot.git/internal/models"
	"go.uber.org/zap"
)

type QuizS struct {
	answers AnswersRI
	repo    QuizRI
	log     *zap.Logger
}

func NewQuizService(answers AnswersRI, repo QuizRI, log *zap.Logger) *QuizS {
	return &QuizS{
		answers: answers,
		repo:    repo,
		log:     log,
	}
}

func (q *QuizS) SaveAnswer(ctx context.Context, chatID int64, index int, key string) error {
	err := q.answers.SaveAnswer(ctx, models.Answer{
		ChatID:        chatID,
		QuestionIndex: index,
		AnswerKey:     key,
	})
	if err != nil {
		q.log.Warn("failed to save answer", zap.Int64("chat_id", chatID), zap.Int("index", index), zap.Error(err))
		return err
	}

	return nil
}

func (q *QuizS) Answers(ctx context.Context, chatID int64) (map[int]string, error) {
	rows, err := q.answers.Answers(ctx, chatID)
	if err != nil {
		q.log.Warn("failed to get answers", zap.Int64("chat_id", chatID), zap.Error(err))
		return nil, err
	}

	answers := make(map[int]string, len(rows))
	for _, row := range rows {
		answers[row.QuestionIndex] = row.AnswerKey
	}

	return answers, nil
}

func (q *QuizS) ClearAnswers(ctx context.Context, chatID int64) error {
	if err := q.answers.ClearAnswers(ctx, chatID); err != nil {
		q.log.Warn("failed to clear answers", zap.Int64("chat_id", chatID), zap.Error(err))
		return err
	}
	return nil
}

func (q *QuizS) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	if err := q.repo.AddQuizResult(ctx, result); err != nil {
		q.log.Warn("failed to save quiz result", zap.Int64("chat_id", result.ChatID), zap.String("session_id", result.SessionID), zap.Error(err))
		return err
	}
	return nil
}

func (q *QuizS) QuizStats(ctx context.Context, chatID int64) (string, error) {
	stats, err := q.repo.QuizStats(ctx, chatID)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Int64("chat_id", chatID), zap.Error(err))
		return "", err
	}

	return quizStatsFormat(stats), nil
}

func quizStatsFormat(stats models.QuizStats) string {
	var sb strings.Builder

	sb.WriteString("🏁 *Quizzes finished*: ")
	sb.WriteString(strconv.Itoa(stats.SessionCount))
	sb.WriteString("\n\n")

	sb.WriteString("✅ *Correct answers*: ")
	sb.WriteString(strconv.Itoa(stats.RightCount))
	sb.WriteString("\n\n")

	sb.WriteString("❌ *Wrong answers*: ")
	sb.WriteString(strconv.Itoa(stats.WrongCount))
	sb.WriteString("\n\n")

	sb.WriteString("🏆 *Best result*: ")
	sb.WriteString(strconv.Itoa(stats.BestPercent))
	sb.WriteString("%")

	return sb.String()
}
