package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// historyKey is the fixed slot the serialized history collection lives in.
const historyKey = "quiz_history"

// historyRepo implements HistoryRepo on the kv table.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Load(ctx context.Context) (string, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?", historyKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load history: %w", err)
	}
	return payload, true, nil
}

func (r *historyRepo) Save(ctx context.Context, payload string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		historyKey, payload,
	)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (r *historyRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM kv WHERE key = ?", historyKey,
	)
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
