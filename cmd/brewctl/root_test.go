package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brew-backend/internal/llm"
	"brew-backend/internal/recommendations"
	"brew-backend/internal/shared/config"
)

type cannedGenerator struct {
	text string
}

func (g cannedGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return g.text, nil
}

func withGenerator(t *testing.T, gen llm.Generator) {
	t.Helper()
	prev := newGenerator
	newGenerator = func(config.Config) (llm.Generator, error) { return gen, nil }
	t.Cleanup(func() { newGenerator = prev })
}

func runRecommend(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"recommend"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRecommendPrintsJSON(t *testing.T) {
	withGenerator(t, cannedGenerator{text: `{"recommendedSetting":"12","unit":"clicks from zero"}`})

	out, err := runRecommend(t, "--grinder", "Baratza Encore", "--beans", "Ethiopian", "--machine", "AeroPress")

	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendedSetting":"12","unit":"clicks from zero"}`, out)
}

func TestRecommendPrintsCard(t *testing.T) {
	withGenerator(t, cannedGenerator{text: `{"recommendedSetting":"12","unit":"clicks"}`})

	out, err := runRecommend(t, "--grinder", "G", "--beans", "B", "--machine", "M", "--card")

	require.NoError(t, err)
	assert.Contains(t, out, "Recommended setting: 12 (clicks)")
	assert.Contains(t, out, "Confidence: Medium")
	assert.Contains(t, out, recommendations.DefaultSummary)
}

func TestRecommendMissingFields(t *testing.T) {
	withGenerator(t, cannedGenerator{text: `{}`})

	_, err := runRecommend(t, "--grinder", "G")

	require.Error(t, err)
	assert.Equal(t, recommendations.MsgMissingFields, err.Error())
}

func TestRecommendWithoutKey(t *testing.T) {
	withGenerator(t, nil)

	_, err := runRecommend(t, "--grinder", "G", "--beans", "B", "--machine", "M")

	require.Error(t, err)
	assert.Equal(t, recommendations.MsgMissingAPIKey, err.Error())
}
