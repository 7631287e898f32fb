package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
)

func TestSessionOffsetRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	repo, err := NewSessionRepo(dbPath)
	if err != nil {
		t.Fatalf("Failed to create session repo: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	// Fresh session starts at offset 0
	offset, err := repo.GetOffset(ctx)
	if err != nil {
		t.Fatalf("Failed to get offset: %v", err)
	}
	if offset != 0 {
		t.Errorf("Expected offset 0 for fresh session, got %d", offset)
	}

	if err := repo.SaveOffset(ctx, 1234); err != nil {
		t.Fatalf("Failed to save offset: %v", err)
	}
	if err := repo.SaveOffset(ctx, 1240); err != nil {
		t.Fatalf("Failed to overwrite offset: %v", err)
	}

	offset, err = repo.GetOffset(ctx)
	if err != nil {
		t.Fatalf("Failed to get offset: %v", err)
	}
	if offset != 1240 {
		t.Errorf("Expected offset 1240, got %d", offset)
	}
}

func TestSessionOffsetSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	repo, err := NewSessionRepo(dbPath)
	if err != nil {
		t.Fatalf("Failed to create session repo: %v", err)
	}
	if err := repo.SaveOffset(ctx, 77); err != nil {
		t.Fatalf("Failed to save offset: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Failed to close repo: %v", err)
	}

	reopened, err := NewSessionRepo(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen session repo: %v", err)
	}
	defer reopened.Close()

	offset, err := reopened.GetOffset(ctx)
	if err != nil {
		t.Fatalf("Failed to get offset after reopen: %v", err)
	}
	if offset != 77 {
		t.Errorf("Expected persisted offset 77, got %d", offset)
	}
}

func TestSessionChannelCache(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	repo, err := NewSessionRepo(dbPath)
	if err != nil {
		t.Fatalf("Failed to create session repo: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	channels := []domain.RegisteredChannel{
		{ChatID: 100, Title: "Sharks Pump", Category: domain.CategoryPumpDump},
		{ChatID: 200, Title: "Ethereum News", Category: domain.CategoryNews},
	}
	for _, ch := range channels {
		if err := repo.SaveChannel(ctx, ch); err != nil {
			t.Fatalf("Failed to save channel %d: %v", ch.ChatID, err)
		}
	}

	// Re-resolving overwrites the cached title, not adds a row
	if err := repo.SaveChannel(ctx, domain.RegisteredChannel{ChatID: 100, Title: "Sharks Pump Signals", Category: domain.CategoryPumpDump}); err != nil {
		t.Fatalf("Failed to re-save channel: %v", err)
	}

	cached, err := repo.ListChannels(ctx)
	if err != nil {
		t.Fatalf("Failed to list channels: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("Expected 2 cached channels, got %d", len(cached))
	}
	if cached[0].ChatID != 100 || cached[0].Title != "Sharks Pump Signals" {
		t.Errorf("Unexpected first channel: %+v", cached[0])
	}
	if cached[1].ChatID != 200 || cached[1].Category != domain.CategoryNews {
		t.Errorf("Unexpected second channel: %+v", cached[1])
	}
}
