package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DanRulev/quizbot.git/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DBConfig
		want    string
		wantErr bool
	}{
		{
			name: "postgres",
			cfg: config.DBConfig{
				Driver: "postgres",
				Conn: config.DBConn{
					Host: "localhost", Port: "5432", User: "quiz", Password: "pw", Name: "quizbot", SSL: "require",
				},
			},
			want: "host=localhost port=5432 dbname=quizbot user=quiz password=pw sslmode=require",
		},
		{
			name: "postgres: ssl defaults to disable",
			cfg: config.DBConfig{
				Driver: "postgres",
				Conn:   config.DBConn{Host: "db", Port: "5432", Name: "quizbot"},
			},
			want: "host=db port=5432 dbname=quizbot user= password= sslmode=disable",
		},
		{
			name:    "postgres: missing host",
			cfg:     config.DBConfig{Driver: "postgres", Conn: config.DBConn{Name: "quizbot"}},
			wantErr: true,
		},
		{
			name: "sqlite3",
			cfg:  config.DBConfig{Driver: "sqlite3", Conn: config.DBConn{Name: "quiz.db"}},
			want: "file:quiz.db?_busy_timeout=5000",
		},
		{
			name:    "unsupported driver",
			cfg:     config.DBConfig{Driver: "mysql"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DSN(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	stmts := splitStatements(schema)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "quiz_answers")
	assert.Contains(t, stmts[1], "quiz_results")
	assert.Contains(t, stmts[2], "CREATE INDEX")
}

func TestInitDB_SQLite(t *testing.T) {
	t.Parallel()

	cfg := config.DBConfig{
		Driver: "sqlite3",
		Conn:   config.DBConn{Name: filepath.Join(t.TempDir(), "quiz.db")},
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	}

	db, err := InitDB(cfg)
	require.NoError(t, err)
	defer db.Close()

	// running the schema twice must be harmless
	require.NoError(t, Migrate(context.Background(), db))

	_, err = db.Exec(`INSERT INTO quiz_answers (chat_id, question_index, answer_key) VALUES (1, 0, 'A')`)
	require.NoError(t, err)

	var key string
	require.NoError(t, db.Get(&key, `SELECT answer_key FROM quiz_answers WHERE chat_id = 1 AND question_index = 0`))
	assert.Equal(t, "A", key)
}
