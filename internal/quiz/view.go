package quiz

type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

type OptionView struct {
	Key        string
	Label      string
	Selectable bool
	Mark       Mark
}

type QuestionView struct {
	Number   int
	Total    int
	Text     string
	Score    int
	Answered bool
	Options  []OptionView
}

// QuestionView projects the current question. The bool is false when there is
// no question at the current index.
func (s *Session) QuestionView() (QuestionView, bool) {
	question, ok := s.Current()
	if !ok {
		return QuestionView{}, false
	}

	view := QuestionView{
		Number:   s.index + 1,
		Total:    len(s.questions),
		Text:     question.Text,
		Score:    s.score,
		Answered: s.answered,
		Options:  make([]OptionView, 0, len(question.Options)),
	}

	for _, opt := range question.Options {
		ov := OptionView{
			Key:        opt.Key,
			Label:      opt.Label,
			Selectable: s.active && !s.answered,
		}

		if s.answered {
			switch {
			case opt.Key == question.CorrectKey:
				ov.Mark = MarkCorrect
			case opt.Key == s.selected:
				ov.Mark = MarkWrong
			}
		}

		view.Options = append(view.Options, ov)
	}

	return view, true
}
