package service

import (
	"context"

	"github.com/DanRulev/quizbot.git/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock_service.go

type QuestionSourceI interface {
	FetchQuestions(ctx context.Context) ([]models.Question, error)
}

type AnswersRI interface {
	SaveAnswer(ctx context.Context, answer models.Answer) error
	Answers(ctx context.Context, chatID int64) ([]models.Answer, error)
	ClearAnswers(ctx context.Context, chatID int64) error
}

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context, chatID int64) (models.QuizStats, error)
}

type RepositoryI interface {
	AnswersRI
	QuizRI
}

type Service struct {
	*QuestionS
	*QuizS
}

func InitServices(source QuestionSourceI, repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		QuestionS: NewQuestionService(source, log),
		QuizS:     NewQuizService(repo, repo, log),
	}
}
