package biz

import (
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"
)

// Usecases contains all usecases
type Usecases struct {
	Ingest   *usecase.IngestUsecase
	Analysis *usecase.AnalysisUsecase
}
