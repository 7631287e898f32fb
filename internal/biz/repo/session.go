package repo

import (
	"context"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
)

// SessionRepo is the polling-session repository interface.
// Responsible for persisting the Telegram update offset and the
// resolved-channel cache across restarts (SQLite).
type SessionRepo interface {
	// GetOffset returns the last persisted update offset (0 if none).
	GetOffset(ctx context.Context) (int, error)

	// SaveOffset persists the next update offset to resume from.
	SaveOffset(ctx context.Context, offset int) error

	// SaveChannel records a successfully resolved channel.
	SaveChannel(ctx context.Context, ch domain.RegisteredChannel) error

	// ListChannels lists cached resolved channels in resolution order.
	ListChannels(ctx context.Context) ([]domain.RegisteredChannel, error)

	// Close closes the underlying database.
	Close() error
}
