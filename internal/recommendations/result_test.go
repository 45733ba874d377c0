package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultsFillsMissingFields(t *testing.T) {
	got := Result{}.WithDefaults()

	assert.Equal(t, DefaultSetting, got.RecommendedSetting)
	assert.Equal(t, DefaultUnit, got.Unit)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
	assert.Equal(t, DefaultSummary, got.Summary)
	assert.Empty(t, got.Sources)
}

func TestWithDefaultsKeepsValuesAndCapsSources(t *testing.T) {
	in := Result{
		RecommendedSetting: "18",
		Unit:               "clicks",
		Confidence:         "high",
		Summary:            "Light roasts want finer.",
		Sources: []Source{
			{Title: "a", URL: "https://a.test"},
			{},
			{Title: "b"},
			{URL: "https://c.test"},
			{Title: "d"},
		},
	}

	got := in.WithDefaults()

	assert.Equal(t, "18", got.RecommendedSetting)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
	require.Len(t, got.Sources, MaxSources)
	assert.Equal(t, "a", got.Sources[0].Title)
	assert.Equal(t, "b", got.Sources[1].Title)
	assert.Equal(t, "https://c.test", got.Sources[2].URL)
}

func TestWithDefaultsUnknownConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceMedium, Result{Confidence: "Very sure"}.WithDefaults().Confidence)
	assert.Equal(t, ConfidenceLow, Result{Confidence: " LOW "}.WithDefaults().Confidence)
}

func TestParseResultLenient(t *testing.T) {
	got, err := ParseResult([]byte(`{"recommendedSetting":12,"unit":"clicks","confidence":null,"extra":true,"sources":[{"title":"t","url":"u","snippet":"s"},"junk"]}`))

	require.NoError(t, err)
	assert.Equal(t, "12", got.RecommendedSetting)
	assert.Equal(t, "clicks", got.Unit)
	assert.Empty(t, got.Confidence)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, Source{Title: "t", URL: "u", Snippet: "s"}, got.Sources[0])
}

func TestParseResultRejectsNonObject(t *testing.T) {
	_, err := ParseResult([]byte(`[1,2,3]`))
	assert.Error(t, err)
}
