package web

import (
	"strings"

	"brew-backend/internal/recommendations"
)

// Taste adjustments shown under every recommendation.
const (
	tasteSour   = "Your coffee is likely under-extracted. The water isn't pulling enough flavor out. Grind finer to increase surface area and extraction."
	tasteBitter = "Your coffee is likely over-extracted. The water is pulling too much flavor, including bitter compounds. Grind coarser to reduce surface area and extraction."
)

// CardView is the render model of one recommendation.
type CardView struct {
	Setting         string
	Unit            string
	Confidence      string
	ConfidenceClass string
	Summary         string
	Sources         []recommendations.Source
	TasteSour       string
	TasteBitter     string
}

// NewCardView builds the card for res after applying the render defaults.
func NewCardView(res recommendations.Result) CardView {
	res = res.WithDefaults()
	return CardView{
		Setting:         res.RecommendedSetting,
		Unit:            res.Unit,
		Confidence:      res.Confidence,
		ConfidenceClass: strings.ToLower(res.Confidence),
		Summary:         res.Summary,
		Sources:         res.Sources,
		TasteSour:       tasteSour,
		TasteBitter:     tasteBitter,
	}
}
