package recommendations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsFieldsVerbatim(t *testing.T) {
	prompt := BuildPrompt(Request{Grinder: "1Zpresso JX-Pro", Beans: "Colombian \"Huila\" medium", Machine: "Hario V60"})

	assert.Contains(t, prompt, `- Grinder: "1Zpresso JX-Pro"`)
	assert.Contains(t, prompt, `- Coffee Beans: "Colombian "Huila" medium"`)
	assert.Contains(t, prompt, `- Brew Method / Machine: "Hario V60"`)
	assert.Contains(t, prompt, "Respond with ONLY a valid JSON object")
	for _, key := range []string{"recommendedSetting", "unit", "confidence", "summary", "sources"} {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
	assert.False(t, strings.Contains(prompt, "{{"), "unreplaced placeholder in prompt")
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := Request{Grinder: "Niche Zero", Beans: "Brazil natural", Machine: "Gaggia Classic"}
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
	assert.NotEqual(t, BuildPrompt(req), BuildPrompt(Request{Grinder: "Niche Zero", Beans: "Brazil natural", Machine: "Moka pot"}))
}
