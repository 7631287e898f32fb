package data

import (
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/repo"
)

// Repositories contains all repositories
type Repositories struct {
	Classifier repo.ClassifierRepo
	Session    repo.SessionRepo
}

// NewRepositories creates all repositories
func NewRepositories(mistralAPIKey, mistralModel string, classifierTimeout time.Duration, sessionDBPath string) (*Repositories, error) {
	sessionRepo, err := NewSessionRepo(sessionDBPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Classifier: NewMistralRepo(mistralAPIKey, mistralModel, classifierTimeout),
		Session:    sessionRepo,
	}, nil
}
