package repository

import (
	"context"

	"github.com/DanRulev/quizbot.git/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	query := q.db.Rebind(`
        INSERT INTO quiz_results (chat_id, session_id, score, total, percentage)
        VALUES (?, ?, ?, ?, ?)
    `)

	_, err := q.db.ExecContext(ctx, query, result.ChatID, result.SessionID, result.Score, result.Total, result.Percentage)
	if err != nil {
		return err
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context, chatID int64) (models.QuizStats, error) {
	query := q.db.Rebind(`SELECT
		COUNT(*) AS session_count,
		COALESCE(SUM(total), 0) AS answered_count,
		COALESCE(SUM(score), 0) AS right_count,
		COALESCE(MAX(percentage), 0) AS best_percent
	FROM quiz_results
	WHERE chat_id = ?`)

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query, chatID)
	if err != nil {
		return models.QuizStats{}, err
	}

	stats.WrongCount = stats.AnsweredCount - stats.RightCount

	return stats, nil
}
