package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
)

// Response normalization: the classifier returns free text that is expected
// to contain a JSON object, usually inside a ```json fence. Extraction and
// coercion are isolated here so the degraded-result contract stays testable
// on its own.
//
// Fallback table (pump-and-dump schema):
//
//	no JSON found / decode error / non-object  -> FallbackPumpDumpAnalysis
//	is_pump_and_dump missing or non-bool       -> false
//	cryptocurrencies missing or non-list       -> []
//	cryptocurrencies entry not a string        -> stringified entry
//	summary missing or non-string              -> ""
//
// News schema: the decoded object is passed through untouched; any failure
// degrades to an empty object. Failures never propagate as errors.

// extractJSONObject pulls a JSON object out of a classifier reply. The last
// ```json fence wins; with no fence the whole reply is parsed. The top level
// must be an object.
func extractJSONObject(reply string) (map[string]interface{}, error) {
	candidate := reply
	if idx := strings.LastIndex(reply, "```json"); idx >= 0 {
		candidate = reply[idx+len("```json"):]
		if end := strings.Index(candidate, "```"); end >= 0 {
			candidate = candidate[:end]
		}
	}
	candidate = strings.TrimSpace(candidate)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("decode classifier reply: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("classifier reply is not a JSON object")
	}
	return obj, nil
}

// NormalizePumpDump coerces a classifier reply into the pump-and-dump schema.
func NormalizePumpDump(reply string) domain.PumpDumpAnalysis {
	obj, err := extractJSONObject(reply)
	if err != nil {
		fmt.Printf("[Normalizer] Failed to parse classifier reply: %v\n", err)
		return domain.FallbackPumpDumpAnalysis()
	}

	out := domain.EmptyPumpDumpAnalysis()
	if v, ok := obj["is_pump_and_dump"].(bool); ok {
		out.IsPumpAndDump = v
	}
	if list, ok := obj["cryptocurrencies"].([]interface{}); ok {
		coins := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				coins = append(coins, s)
			} else {
				coins = append(coins, fmt.Sprintf("%v", item))
			}
		}
		out.Cryptocurrencies = coins
	}
	if s, ok := obj["summary"].(string); ok {
		out.Summary = s
	}
	return out
}

// NormalizeNews decodes a classifier reply for the news category. The three
// sub-sections are passed through as decoded; a parse failure degrades the
// whole result to an empty object.
func NormalizeNews(reply string) domain.NewsAnalysis {
	obj, err := extractJSONObject(reply)
	if err != nil {
		fmt.Printf("[Normalizer] Failed to parse classifier reply: %v\n", err)
		return domain.NewsAnalysis{}
	}
	return domain.NewsAnalysis(obj)
}
