package quiz

import (
	"errors"

	"github.com/DanRulev/quizbot.git/internal/models"
)

type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrNoQuestions     = errors.New("no questions loaded")
	ErrNotActive       = errors.New("quiz is not active")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrUnknownOption   = errors.New("unknown option")
	ErrNotFinished     = errors.New("quiz is not finished")
	// ErrQuestionMissing means the session had no question at its index and was finished.
	ErrQuestionMissing = errors.New("no question at current index")
)

// Session walks one chat through the question list. It does no I/O.
type Session struct {
	questions []models.Question

	index  int
	score  int
	active bool
	state  State
	round  int

	answered bool
	selected string
}

type Outcome struct {
	Index      int
	Key        string
	CorrectKey string
	Correct    bool
	Score      int
}

func NewSession(questions []models.Question) *Session {
	return &Session{
		questions: questions,
		state:     NotStarted,
	}
}

func (s *Session) Start() error {
	if len(s.questions) == 0 {
		return ErrNoQuestions
	}

	s.index = 0
	s.score = 0
	s.active = true
	s.state = Running
	s.answered = false
	s.selected = ""
	s.round++

	return nil
}

func (s *Session) Restart() error {
	return s.Start()
}

func (s *Session) Current() (models.Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return models.Question{}, false
	}
	return s.questions[s.index], true
}

func (s *Session) Submit(key string) (Outcome, error) {
	if !s.active {
		return Outcome{}, ErrNotActive
	}
	if s.answered {
		return Outcome{}, ErrAlreadyAnswered
	}

	question, ok := s.Current()
	if !ok {
		s.Finish()
		return Outcome{}, ErrQuestionMissing
	}
	if !question.Options.Has(key) {
		return Outcome{}, ErrUnknownOption
	}

	s.answered = true
	s.selected = key

	correct := key == question.CorrectKey
	if correct {
		s.score++
	}

	return Outcome{
		Index:      s.index,
		Key:        key,
		CorrectKey: question.CorrectKey,
		Correct:    correct,
		Score:      s.score,
	}, nil
}

// SubmitOption submits the option at position pos of the current question.
func (s *Session) SubmitOption(pos int) (Outcome, error) {
	key := ""
	if question, ok := s.Current(); ok && s.active {
		if pos < 0 || pos >= len(question.Options) {
			return Outcome{}, ErrUnknownOption
		}
		key = question.Options[pos].Key
	}
	return s.Submit(key)
}

func (s *Session) Advance() State {
	if s.state != Running {
		return s.state
	}

	s.index++
	s.answered = false
	s.selected = ""

	if s.index >= len(s.questions) {
		s.index = len(s.questions)
		s.Finish()
	}

	return s.state
}

func (s *Session) Finish() {
	s.active = false
	s.state = Finished
	s.answered = false
	s.selected = ""
}

func (s *Session) Questions() []models.Question { return s.questions }
func (s *Session) Total() int                   { return len(s.questions) }
func (s *Session) Index() int                   { return s.index }
func (s *Session) Score() int                   { return s.score }
func (s *Session) Active() bool                 { return s.active }
func (s *Session) State() State                 { return s.state }
func (s *Session) Answered() bool               { return s.answered }
func (s *Session) Selected() string             { return s.selected }

// Round grows on every start so deferred work from an earlier run can be discarded.
func (s *Session) Round() int { return s.round }
