package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/quizbot.git/internal/models"
)

type AnswersR struct {
	db QueryI
}

func NewAnswersRepository(db QueryI) *AnswersR {
	return &AnswersR{db: db}
}

func (a *AnswersR) SaveAnswer(ctx context.Context, answer models.Answer) error {
	query := a.db.Rebind(`
		INSERT INTO quiz_answers (chat_id, question_index, answer_key)
		VALUES (?, ?, ?)
		ON CONFLICT (chat_id, question_index)
		DO UPDATE SET answer_key = EXCLUDED.answer_key
	`)

	_, err := a.db.ExecContext(ctx, query, answer.ChatID, answer.QuestionIndex, answer.AnswerKey)
	if err != nil {
		return fmt.Errorf("failed to save answer %d for chat %d: %w", answer.QuestionIndex, answer.ChatID, err)
	}

	return nil
}

func (a *AnswersR) Answers(ctx context.Context, chatID int64) ([]models.Answer, error) {
	query := a.db.Rebind(`
		SELECT chat_id, question_index, answer_key
		FROM quiz_answers
		WHERE chat_id = ?
		ORDER BY question_index
	`)

	answers := make([]models.Answer, 0)
	err := a.db.SelectContext(ctx, &answers, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers for chat %d: %w", chatID, err)
	}

	return answers, nil
}

func (a *AnswersR) ClearAnswers(ctx context.Context, chatID int64) error {
	query := a.db.Rebind(`DELETE FROM quiz_answers WHERE chat_id = ?`)

	_, err := a.db.ExecContext(ctx, query, chatID)
	if err != nil {
		return fmt.Errorf("failed to clear answers for chat %d: %w", chatID, err)
	}

	return nil
}
