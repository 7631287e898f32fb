package repo

import "context"

// ClassifierRepo is the external language-model classifier interface.
// Implementations issue a single-turn completion request and return the raw
// reply text; response parsing belongs to the normalizer, not the repo.
type ClassifierRepo interface {
	// Complete sends one prompt and returns the classifier's raw reply.
	// The call blocks until the reply arrives or the bounded timeout fires.
	Complete(ctx context.Context, prompt string) (string, error)
}
