package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// sessionRepo implements the polling-session repository
type sessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new polling-session repository
func NewSessionRepo(dbPath string) (repo.SessionRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-row poll state: the next Telegram update offset to resume from
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS poll_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			update_offset INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create poll_state table: %w", err)
	}

	// Cache of successfully resolved channels
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS resolved_channels (
			chat_id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			resolved_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create resolved_channels table: %w", err)
	}

	return &sessionRepo{db: db}, nil
}

// GetOffset returns the persisted update offset, or 0 when no session exists
func (r *sessionRepo) GetOffset(ctx context.Context) (int, error) {
	var offset int
	err := r.db.QueryRowContext(ctx, `
		SELECT update_offset FROM poll_state WHERE id = 1
	`).Scan(&offset)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query update offset: %w", err)
	}
	return offset, nil
}

// SaveOffset persists the next update offset to resume from
func (r *sessionRepo) SaveOffset(ctx context.Context, offset int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO poll_state (id, update_offset, updated_at)
		VALUES (1, ?, ?)
	`, offset, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save update offset: %w", err)
	}
	return nil
}

// SaveChannel records a successfully resolved channel
func (r *sessionRepo) SaveChannel(ctx context.Context, ch domain.RegisteredChannel) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO resolved_channels (chat_id, title, category, resolved_at)
		VALUES (?, ?, ?, ?)
	`, ch.ChatID, ch.Title, string(ch.Category), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save resolved channel: %w", err)
	}
	return nil
}

// ListChannels lists cached resolved channels
func (r *sessionRepo) ListChannels(ctx context.Context) ([]domain.RegisteredChannel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, title, category
		FROM resolved_channels
		ORDER BY resolved_at ASC, chat_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolved channels: %w", err)
	}
	defer rows.Close()

	var channels []domain.RegisteredChannel
	for rows.Next() {
		var ch domain.RegisteredChannel
		var category string
		if err := rows.Scan(&ch.ChatID, &ch.Title, &category); err != nil {
			return nil, fmt.Errorf("failed to scan resolved channel: %w", err)
		}
		ch.Category = domain.Category(category)
		channels = append(channels, ch)
	}
	return channels, nil
}

// Close closes the database connection
func (r *sessionRepo) Close() error {
	return r.db.Close()
}
