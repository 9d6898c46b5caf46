package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hairsalon/internal/wizard"
)

// PostgresSessionStore is the session store for deployments without redis.
// Sessions live in a single wizard_sessions table as JSON; the cron sweeper
// calls DeleteExpired since postgres has no key TTL.
type PostgresSessionStore struct {
	DB *sql.DB
}

func NewPostgresSessionStore(db *sql.DB) *PostgresSessionStore {
	return &PostgresSessionStore{DB: db}
}

func (s *PostgresSessionStore) Save(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.SessionID, err)
	}
	query := `
		INSERT INTO wizard_sessions (session_id, state, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id)
		DO UPDATE SET state = $2, payload = $3, updated_at = $4
	`
	_, err = s.DB.ExecContext(ctx, query, session.SessionID, string(session.State), data, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store session %s: %w", session.SessionID, err)
	}
	return nil
}

func (s *PostgresSessionStore) Get(ctx context.Context, sessionID string) (*wizard.Session, error) {
	query := `SELECT payload FROM wizard_sessions WHERE session_id = $1`
	var data []byte
	err := s.DB.QueryRowContext(ctx, query, sessionID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *PostgresSessionStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

func (s *PostgresSessionStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE updated_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
