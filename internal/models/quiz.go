package models

import "time"

type Answer struct {
	ChatID        int64  `db:"chat_id"`
	QuestionIndex int    `db:"question_index"`
	AnswerKey     string `db:"answer_key"`
}

type QuizResult struct {
	ChatID     int64     `db:"chat_id"`
	SessionID  string    `db:"session_id"`
	Score      int       `db:"score"`
	Total      int       `db:"total"`
	Percentage int       `db:"percentage"`
	FinishedAt time.Time `db:"finished_at"`
}

type QuizStats struct {
	SessionCount  int `db:"session_count"`
	AnsweredCount int `db:"answered_count"`
	RightCount    int `db:"right_count"`
	WrongCount    int `db:"wrong_count"`
	BestPercent   int `db:"best_percent"`
}
