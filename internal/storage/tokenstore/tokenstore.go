package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS auth_tokens (
	user_id INTEGER PRIMARY KEY,
	token   TEXT NOT NULL
);`

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Open opens (and migrates) the local sqlite database holding bearer tokens.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed open token db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed token db ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed token db migrate: %w", err)
	}

	return db, nil
}

// Store persists one bearer token per account. Token presence is the sole
// authentication predicate; all reads go through Get, never around it.
type Store struct {
	db QueryI
}

func NewStore(db QueryI) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, userID int64) (string, bool, error) {
	var token string
	err := s.db.GetContext(ctx, &token, `SELECT token FROM auth_tokens WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *Store) Set(ctx context.Context, userID int64, token string) error {
	query := `
        INSERT INTO auth_tokens (user_id, token)
        VALUES (?, ?)
        ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token
    `
	_, err := s.db.ExecContext(ctx, query, userID, token)
	return err
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id = ?`, userID)
	return err
}
