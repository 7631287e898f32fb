package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/repo"
)

// PromptConfig holds the category prompt templates. Templates embed the
// JSON-encoded queue snapshot via the {{messages}} / {{news}} placeholders.
type PromptConfig struct {
	PumpDumpTemplate string
	NewsTemplate     string
}

// RenderPumpDump builds the pump-and-dump classification prompt.
func (c PromptConfig) RenderPumpDump(messages string) string {
	return strings.ReplaceAll(c.PumpDumpTemplate, "{{messages}}", messages)
}

// RenderNews builds the news classification prompt.
func (c PromptConfig) RenderNews(news string) string {
	return strings.ReplaceAll(c.NewsTemplate, "{{news}}", news)
}

// DefaultPromptConfig carries the built-in prompt texts.
var DefaultPromptConfig = PromptConfig{
	PumpDumpTemplate: `You are a sentiment analysis model and chatbot for cryptocurrency topics.
Your task is to analyze the following Telegram messages discussing potential pump and dump schemes.
For each message, determine:
1. Whether the message is discussing a pump or dump scheme (return a boolean).
2. The cryptocurrencies being discussed.
3. A summary paragraph of what the messages are about.

Messages:
{{messages}}

Return the result in the following JSON format:
{
    "is_pump_and_dump": boolean,
    "cryptocurrencies": [list of cryptocurrencies],
    "summary": "summary paragraph"
}`,
	NewsTemplate: `You are a sentiment analysis model and chatbot specialized in cryptocurrency news.
Analyze the following news headlines and classify them into:
1. Political sentiment about crypto,
2. Technical analysis of the market,
3. News about new coins or projects.

Return a JSON object with the following format:
{
    "political_sentiment": {
        "summary_paragraph": "summary paragraph",
        "news_related_to": [list of headlines]
    },
    "technical_analysis": {
        "summary_paragraph": "summary paragraph",
        "news_related_to": [list of headlines]
    },
    "new_coins": {
        "summary_paragraph": "summary paragraph",
        "news_related_to": [list of headlines]
    }
}

News:
{{news}}`,
}

// AnalysisUsecase serves the query endpoints: it snapshots a category queue,
// builds the category prompt, calls the classifier once and normalizes the
// reply. Queues are never drained; repeated calls may analyze overlapping
// record sets until new arrivals evict old entries.
type AnalysisUsecase struct {
	classifier repo.ClassifierRepo
	prompts    PromptConfig
	pndQueue   *domain.MessageQueue
	newsQueue  *domain.MessageQueue
}

// NewAnalysisUsecase creates a new analysis usecase.
func NewAnalysisUsecase(classifier repo.ClassifierRepo, prompts PromptConfig, pndQueue, newsQueue *domain.MessageQueue) *AnalysisUsecase {
	if prompts.PumpDumpTemplate == "" {
		prompts.PumpDumpTemplate = DefaultPromptConfig.PumpDumpTemplate
	}
	if prompts.NewsTemplate == "" {
		prompts.NewsTemplate = DefaultPromptConfig.NewsTemplate
	}
	return &AnalysisUsecase{
		classifier: classifier,
		prompts:    prompts,
		pndQueue:   pndQueue,
		newsQueue:  newsQueue,
	}
}

// AnalyzePumpDump produces the pump-and-dump report. An empty snapshot takes
// the fast path: the classifier is not called and the analysis is the empty
// default with count 0.
func (uc *AnalysisUsecase) AnalyzePumpDump(ctx context.Context) (*domain.PumpDumpReport, error) {
	snapshot := uc.pndQueue.Snapshot()
	report := &domain.PumpDumpReport{Messages: snapshot, Count: len(snapshot)}

	if len(snapshot) == 0 {
		report.Analysis = domain.EmptyPumpDumpAnalysis()
		return report, nil
	}

	prompt := uc.prompts.RenderPumpDump(encodeSnapshot(snapshot))
	reply, err := uc.classifier.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("classifier call: %w", err)
	}

	report.Analysis = NormalizePumpDump(reply)
	return report, nil
}

// AnalyzeNews produces the news report. Same empty-snapshot fast path as
// AnalyzePumpDump, degrading the analysis to an empty object.
func (uc *AnalysisUsecase) AnalyzeNews(ctx context.Context) (*domain.NewsReport, error) {
	snapshot := uc.newsQueue.Snapshot()
	report := &domain.NewsReport{News: snapshot, Count: len(snapshot)}

	if len(snapshot) == 0 {
		report.Analysis = domain.NewsAnalysis{}
		return report, nil
	}

	prompt := uc.prompts.RenderNews(encodeSnapshot(snapshot))
	reply, err := uc.classifier.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("classifier call: %w", err)
	}

	report.Analysis = NormalizeNews(reply)
	return report, nil
}

// encodeSnapshot renders a snapshot as indented JSON for prompt embedding.
func encodeSnapshot(messages []domain.Message) string {
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		// Message contains only plain scalar fields; this cannot happen.
		return "[]"
	}
	return string(data)
}
