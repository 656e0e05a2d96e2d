package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/me/vita/pkg/model"

	_ "modernc.org/sqlite"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserProfile  = "user_profile"
)

// SQLiteStore implements Store using SQLite with an in-memory mirror.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger

	mu      sync.RWMutex
	access  string
	refresh string
	user    *model.UserProfile
}

// NewSQLiteStore opens (or creates) the credentials database at dbPath and
// hydrates the mirror. Use ":memory:" for an in-memory database (useful in
// tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS credentials (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create credentials table: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger.With("component", "credstore"),
	}
	if err := s.hydrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// hydrate loads all persisted entries into the mirror. A profile snapshot
// that fails to decode is dropped and reads as absent.
func (s *SQLiteStore) hydrate() error {
	rows, err := s.db.Query(`SELECT key, value FROM credentials`)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scan credentials: %w", err)
		}
		switch key {
		case keyAccessToken:
			s.access = value
		case keyRefreshToken:
			s.refresh = value
		case keyUserProfile:
			var user model.UserProfile
			if err := json.Unmarshal([]byte(value), &user); err != nil {
				s.logger.Debug("discarding malformed profile snapshot", "error", err)
				continue
			}
			s.user = &user
		}
	}
	return rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveTokens(ctx context.Context, pair model.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		keyAccessToken:  pair.AccessToken,
		keyRefreshToken: pair.RefreshToken,
	} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO credentials (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.access = pair.AccessToken
	s.refresh = pair.RefreshToken
	return nil
}

func (s *SQLiteStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *SQLiteStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *SQLiteStore) SaveUser(ctx context.Context, user *model.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyUserProfile, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	copied := *user
	s.user = &copied
	return nil
}

func (s *SQLiteStore) LoadUser() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	s.access = ""
	s.refresh = ""
	s.user = nil
	return nil
}
