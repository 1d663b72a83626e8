package quiz

import (
	"math"

	"github.com/DanRulev/quizbot.git/internal/models"
)

type ResultItem struct {
	Number       int
	Text         string
	ChosenKey    string
	ChosenLabel  string
	Answered     bool
	CorrectLabel string
	Correct      bool
}

type Results struct {
	Score      int
	Total      int
	Percentage int
	Items      []ResultItem
}

// Percentage rounds halves up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)*100/float64(total) + 0.5))
}

func (s *Session) Results(answers map[int]string) (Results, error) {
	if s.state != Finished {
		return Results{}, ErrNotFinished
	}
	return BuildResults(s.questions, answers, s.score), nil
}

func BuildResults(questions []models.Question, answers map[int]string, score int) Results {
	res := Results{
		Score:      score,
		Total:      len(questions),
		Percentage: Percentage(score, len(questions)),
		Items:      make([]ResultItem, 0, len(questions)),
	}

	for i, q := range questions {
		item := ResultItem{
			Number: i + 1,
			Text:   q.Text,
		}
		item.CorrectLabel, _ = q.Options.Label(q.CorrectKey)

		if key, ok := answers[i]; ok && key != "" {
			item.ChosenKey = key
			item.ChosenLabel, item.Answered = q.Options.Label(key)
			item.Correct = key == q.CorrectKey
		}

		res.Items = append(res.Items, item)
	}

	return res
}
