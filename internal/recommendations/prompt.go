package recommendations

import (
	_ "embed"
	"strings"
)

//go:embed prompts/recommendation.txt
var promptTemplate string

// BuildPrompt fills the recommendation prompt with the request's values.
// Only the three field values vary between calls.
func BuildPrompt(req Request) string {
	n := req.Normalize()
	replacer := strings.NewReplacer(
		"{{GRINDER}}", n.Grinder,
		"{{BEANS}}", n.Beans,
		"{{MACHINE}}", n.Machine,
	)
	return replacer.Replace(promptTemplate)
}
