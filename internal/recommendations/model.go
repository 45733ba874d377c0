package recommendations

import "strings"

// Request is the user's brewing setup as submitted by the form.
type Request struct {
	Grinder string `json:"grinder" form:"grinder"`
	Beans   string `json:"beans" form:"beans"`
	Machine string `json:"machine" form:"machine"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (r Request) Normalize() Request {
	return Request{
		Grinder: strings.TrimSpace(r.Grinder),
		Beans:   strings.TrimSpace(r.Beans),
		Machine: strings.TrimSpace(r.Machine),
	}
}

// Validate reports ErrMissingFields unless all three fields are non-empty after trimming.
func (r Request) Validate() error {
	n := r.Normalize()
	if n.Grinder == "" || n.Beans == "" || n.Machine == "" {
		return ErrMissingFields
	}
	return nil
}

// Confidence levels the model is asked to choose from.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// MaxSources is the number of sources the model is asked for and the card shows.
const MaxSources = 3

// Result is the recommendation shape the model is instructed to return.
// Every field is optional; the model's output is not schema-validated.
type Result struct {
	RecommendedSetting string   `json:"recommendedSetting,omitempty"`
	Unit               string   `json:"unit,omitempty"`
	Confidence         string   `json:"confidence,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Sources            []Source `json:"sources,omitempty"`
}

// Source is a reference the model cites for its recommendation.
type Source struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
