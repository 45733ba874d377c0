package recommendations

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Render-time defaults for fields the model left out.
const (
	DefaultSetting = "N/A"
	DefaultUnit    = "Not specified"
	DefaultSummary = "No summary provided."
)

// WithDefaults returns a copy with every missing field substituted and the
// source list capped at MaxSources. Unknown confidence values become Medium.
func (r Result) WithDefaults() Result {
	out := Result{
		RecommendedSetting: strings.TrimSpace(r.RecommendedSetting),
		Unit:               strings.TrimSpace(r.Unit),
		Confidence:         normalizeConfidence(r.Confidence),
		Summary:            strings.TrimSpace(r.Summary),
	}
	if out.RecommendedSetting == "" {
		out.RecommendedSetting = DefaultSetting
	}
	if out.Unit == "" {
		out.Unit = DefaultUnit
	}
	if out.Summary == "" {
		out.Summary = DefaultSummary
	}
	for _, src := range r.Sources {
		if len(out.Sources) == MaxSources {
			break
		}
		if strings.TrimSpace(src.Title) == "" && strings.TrimSpace(src.URL) == "" {
			continue
		}
		out.Sources = append(out.Sources, src)
	}
	return out
}

func normalizeConfidence(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return ConfidenceHigh
	case "low":
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// ParseResult decodes a model payload into a Result. Scalars of the wrong
// type are stringified and unknown keys ignored so that any JSON object the
// model returns can be rendered.
func ParseResult(raw []byte) (Result, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	res := Result{
		RecommendedSetting: stringify(fields["recommendedSetting"]),
		Unit:               stringify(fields["unit"]),
		Confidence:         stringify(fields["confidence"]),
		Summary:            stringify(fields["summary"]),
	}
	if list, ok := fields["sources"].([]any); ok {
		for _, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			res.Sources = append(res.Sources, Source{
				Title:   stringify(obj["title"]),
				URL:     stringify(obj["url"]),
				Snippet: stringify(obj["snippet"]),
			})
		}
	}
	return res, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
