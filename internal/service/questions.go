package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/DanRulev/quizbot.git/internal/models"
	"github.com/DanRulev/quizbot.git/pkg/validator"
	"go.uber.org/zap"
)

var ErrEmptyQuestions = errors.New("question list is empty")

type QuestionS struct {
	source QuestionSourceI
	log    *zap.Logger

	mu        sync.RWMutex
	questions []models.Question
}

func NewQuestionService(source QuestionSourceI, log *zap.Logger) *QuestionS {
	return &QuestionS{
		source: source,
		log:    log,
	}
}

// Load never fails: an unusable source is replaced by the placeholder set.
func (q *QuestionS) Load(ctx context.Context) int {
	questions, err := q.fetch(ctx)
	if err != nil {
		q.log.Warn("failed to load questions, using placeholder set", zap.Error(err))
		questions = models.PlaceholderQuestions()
	} else {
		q.log.Info("questions loaded", zap.Int("total", len(questions)))
	}

	q.mu.Lock()
	q.questions = questions
	q.mu.Unlock()

	return len(questions)
}

func (q *QuestionS) fetch(ctx context.Context) ([]models.Question, error) {
	questions, err := q.source.FetchQuestions(ctx)
	if err != nil {
		return nil, err
	}

	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (q *QuestionS) Questions() []models.Question {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.questions
}

func (q *QuestionS) Total() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.questions)
}

func ValidateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuestions
	}

	for i, question := range questions {
		if err := validator.ValidateStruct(question); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if !question.Options.Has(question.CorrectKey) {
			return fmt.Errorf("question %d: correct key %q is not an option", i+1, question.CorrectKey)
		}
	}

	return nil
}
