package domain

// ParseFailureSummary is returned when the classifier reply could not be
// decoded into the pump-and-dump schema. The exact text is part of the API
// contract; callers key off it in dashboards.
const ParseFailureSummary = "Failed to parse LLM response correctly."

// PumpDumpAnalysis is the fixed output schema for the pump-and-dump category.
type PumpDumpAnalysis struct {
	IsPumpAndDump    bool     `json:"is_pump_and_dump"`
	Cryptocurrencies []string `json:"cryptocurrencies"`
	Summary          string   `json:"summary"`
}

// EmptyPumpDumpAnalysis is the degraded result for an empty snapshot, where
// the classifier is never called.
func EmptyPumpDumpAnalysis() PumpDumpAnalysis {
	return PumpDumpAnalysis{Cryptocurrencies: []string{}}
}

// FallbackPumpDumpAnalysis is the schema-valid default substituted when the
// classifier reply cannot be parsed.
func FallbackPumpDumpAnalysis() PumpDumpAnalysis {
	return PumpDumpAnalysis{
		Cryptocurrencies: []string{},
		Summary:          ParseFailureSummary,
	}
}

// NewsAnalysis is the news-category result: the classifier's decoded JSON
// object passed through without per-field coercion. Degrades to an empty
// object on any parse failure.
type NewsAnalysis map[string]interface{}

// PumpDumpReport is the full payload served by GET /pd.
type PumpDumpReport struct {
	Messages []Message        `json:"messages"`
	Count    int              `json:"count"`
	Analysis PumpDumpAnalysis `json:"analysis"`
}

// NewsReport is the full payload served by GET /news.
type NewsReport struct {
	News     []Message    `json:"news"`
	Count    int          `json:"count"`
	Analysis NewsAnalysis `json:"analysis"`
}
