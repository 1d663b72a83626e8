package quiz

import (
	"strings"
	"testing"

	"github.com/DanRulev/quizbot.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, models.Question{
			Text: "question",
			Options: models.Options{
				{Key: "A", Label: "alpha"},
				{Key: "B", Label: "beta"},
				{Key: "C", Label: "gamma"},
			},
			CorrectKey: "B",
		})
	}
	return questions
}

func TestSession_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		questions []models.Question
		wantErr   error
		wantState State
	}{
		{
			name:      "success",
			questions: testQuestions(3),
			wantState: Running,
		},
		{
			name:      "error: no questions",
			questions: nil,
			wantErr:   ErrNoQuestions,
			wantState: NotStarted,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(tt.questions)
			err := s.Start()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, s.Active())
				assert.Equal(t, tt.wantState, s.State())
				assert.Equal(t, 0, s.Round())
				return
			}

			require.NoError(t, err)
			assert.True(t, s.Active())
			assert.Equal(t, tt.wantState, s.State())
			assert.Equal(t, 0, s.Index())
			assert.Equal(t, 0, s.Score())
			assert.Equal(t, 1, s.Round())
		})
	}
}

func TestSession_Restart(t *testing.T) {
	t.Parallel()

	prepare := map[string]func(*testing.T, *Session){
		"fresh": func(t *testing.T, s *Session) {},
		"mid quiz": func(t *testing.T, s *Session) {
			require.NoError(t, s.Start())
			_, err := s.Submit("B")
			require.NoError(t, err)
			s.Advance()
		},
		"answered, advance pending": func(t *testing.T, s *Session) {
			require.NoError(t, s.Start())
			_, err := s.Submit("B")
			require.NoError(t, err)
		},
		"finished": func(t *testing.T, s *Session) {
			require.NoError(t, s.Start())
			for s.State() == Running {
				_, err := s.Submit("B")
				require.NoError(t, err)
				s.Advance()
			}
		},
	}

	for name, f := range prepare {
		f := f
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(testQuestions(2))
			f(t, s)
			round := s.Round()

			require.NoError(t, s.Restart())
			assert.Equal(t, 0, s.Index())
			assert.Equal(t, 0, s.Score())
			assert.True(t, s.Active())
			assert.False(t, s.Answered())
			assert.Equal(t, Running, s.State())
			assert.Equal(t, round+1, s.Round())
		})
	}
}

func TestSession_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prepare   func(*testing.T, *Session)
		key       string
		wantErr   error
		wantScore int
		correct   bool
	}{
		{
			name:      "correct answer",
			prepare:   func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			key:       "B",
			wantScore: 1,
			correct:   true,
		},
		{
			name:      "wrong answer",
			prepare:   func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			key:       "A",
			wantScore: 0,
		},
		{
			name:    "ignored: not started",
			prepare: func(t *testing.T, s *Session) {},
			key:     "B",
			wantErr: ErrNotActive,
		},
		{
			name: "ignored: second click",
			prepare: func(t *testing.T, s *Session) {
				require.NoError(t, s.Start())
				_, err := s.Submit("A")
				require.NoError(t, err)
			},
			key:     "B",
			wantErr: ErrAlreadyAnswered,
		},
		{
			name:    "error: unknown option",
			prepare: func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			key:     "Z",
			wantErr: ErrUnknownOption,
		},
		{
			name: "error: index past the last question",
			prepare: func(t *testing.T, s *Session) {
				require.NoError(t, s.Start())
				s.index = 5
			},
			key:     "B",
			wantErr: ErrQuestionMissing,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(testQuestions(2))
			tt.prepare(t, s)
			scoreBefore := s.Score()

			out, err := s.Submit(tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, scoreBefore, s.Score())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.correct, out.Correct)
			assert.Equal(t, tt.key, out.Key)
			assert.Equal(t, "B", out.CorrectKey)
			assert.Equal(t, 0, out.Index)
			assert.Equal(t, tt.wantScore, out.Score)
			assert.Equal(t, tt.wantScore, s.Score())
			assert.True(t, s.Answered())
			assert.Equal(t, tt.key, s.Selected())
		})
	}
}

func TestSession_SubmitMissingQuestionFinishes(t *testing.T) {
	t.Parallel()

	s := NewSession(testQuestions(2))
	require.NoError(t, s.Start())
	s.index = 2

	_, err := s.Submit("B")
	require.ErrorIs(t, err, ErrQuestionMissing)
	assert.Equal(t, Finished, s.State())
	assert.False(t, s.Active())

	_, err = s.Results(nil)
	require.NoError(t, err)
}

func TestSession_SubmitOption(t *testing.T) {
	t.Parallel()

	longKey := strings.Repeat("k", 60)
	questions := []models.Question{{
		Text:       "question",
		Options:    models.Options{{Key: "A", Label: "alpha"}, {Key: longKey, Label: "long"}},
		CorrectKey: longKey,
	}}

	tests := []struct {
		name    string
		prepare func(*testing.T, *Session)
		pos     int
		wantKey string
		wantErr error
	}{
		{
			name:    "first option",
			prepare: func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			pos:     0,
			wantKey: "A",
		},
		{
			name:    "long key resolved by position",
			prepare: func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			pos:     1,
			wantKey: longKey,
		},
		{
			name:    "error: position out of range",
			prepare: func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			pos:     2,
			wantErr: ErrUnknownOption,
		},
		{
			name:    "error: negative position",
			prepare: func(t *testing.T, s *Session) { require.NoError(t, s.Start()) },
			pos:     -1,
			wantErr: ErrUnknownOption,
		},
		{
			name:    "ignored: not started",
			prepare: func(t *testing.T, s *Session) {},
			pos:     0,
			wantErr: ErrNotActive,
		},
		{
			name: "error: index past the last question",
			prepare: func(t *testing.T, s *Session) {
				require.NoError(t, s.Start())
				s.index = 1
			},
			pos:     0,
			wantErr: ErrQuestionMissing,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(questions)
			tt.prepare(t, s)

			out, err := s.SubmitOption(tt.pos)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, s.Answered())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, out.Key)
			assert.Equal(t, tt.wantKey, s.Selected())
		})
	}
}

func TestSession_Advance(t *testing.T) {
	t.Parallel()

	s := NewSession(testQuestions(2))
	require.NoError(t, s.Start())

	_, err := s.Submit("A")
	require.NoError(t, err)
	assert.Equal(t, Running, s.Advance())
	assert.Equal(t, 1, s.Index())
	assert.True(t, s.Active())
	assert.False(t, s.Answered())

	_, err = s.Submit("B")
	require.NoError(t, err)
	assert.Equal(t, Finished, s.Advance())
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.Active())

	assert.Equal(t, Finished, s.Advance())
	assert.Equal(t, 2, s.Index())

	_, err = s.Submit("B")
	require.ErrorIs(t, err, ErrNotActive)
}

func TestSession_ScoreMatchesCorrectSubmissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{name: "all correct", keys: []string{"B", "B", "B", "B"}, want: 4},
		{name: "none correct", keys: []string{"A", "C", "A", "C"}, want: 0},
		{name: "mixed", keys: []string{"B", "A", "B", "C"}, want: 2},
		{name: "single", keys: []string{"B"}, want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(testQuestions(len(tt.keys)))
			require.NoError(t, s.Start())

			for _, key := range tt.keys {
				_, err := s.Submit(key)
				require.NoError(t, err)
				s.Advance()
			}

			assert.Equal(t, Finished, s.State())
			assert.Equal(t, tt.want, s.Score())
		})
	}
}

func TestSession_Current(t *testing.T) {
	t.Parallel()

	s := NewSession(testQuestions(1))
	_, ok := s.Current()
	assert.True(t, ok)

	require.NoError(t, s.Start())
	_, err := s.Submit("B")
	require.NoError(t, err)
	s.Advance()

	_, ok = s.Current()
	assert.False(t, ok)

	_, ok = s.QuestionView()
	assert.False(t, ok)
}
