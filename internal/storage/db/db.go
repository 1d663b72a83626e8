package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/quizbot.git/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_answers (
	chat_id        BIGINT  NOT NULL,
	question_index INTEGER NOT NULL,
	answer_key     TEXT    NOT NULL,
	PRIMARY KEY (chat_id, question_index)
);

CREATE TABLE IF NOT EXISTS quiz_results (
	chat_id     BIGINT    NOT NULL,
	session_id  TEXT      NOT NULL,
	score       INTEGER   NOT NULL,
	total       INTEGER   NOT NULL,
	percentage  INTEGER   NOT NULL,
	finished_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_chat_id ON quiz_results (chat_id);
`

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func DSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case "postgres":
		if cfg.Conn.Host == "" {
			return "", errors.New("postgres requires db.conn.host")
		}
		ssl := cfg.Conn.SSL
		if ssl == "" {
			ssl = "disable"
		}
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, ssl), nil
	case "sqlite3":
		return fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Conn.Name), nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Migrate runs statements one by one; lib/pq and go-sqlite3 differ on multi-statement Exec.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range splitStatements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}

func splitStatements(s string) []string {
	var stmts []string
	for _, stmt := range strings.Split(s, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
