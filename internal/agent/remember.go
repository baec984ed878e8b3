package agent

import (
	"regexp"
	"strings"
)

// memoryPattern matches the [[MEMORY: Category | Content]] tags the model is
// instructed to append when it learns something permanent about a user.
var memoryPattern = regexp.MustCompile(`\[\[MEMORY:\s*(.*?)\s*\|\s*(.*?)\]\]`)

type Memory struct {
	Category string
	Content  string
}

// extractMemories pulls every memory tag out of a model response and returns
// the response with the tags stripped.
func extractMemories(response string) ([]Memory, string) {
	matches := memoryPattern.FindAllStringSubmatch(response, -1)
	if len(matches) == 0 {
		return nil, response
	}

	memories := make([]Memory, 0, len(matches))
	for _, m := range matches {
		category := strings.TrimSpace(m[1])
		content := strings.TrimSpace(m[2])
		if content == "" {
			continue
		}
		memories = append(memories, Memory{Category: category, Content: content})
	}

	cleaned := strings.TrimSpace(memoryPattern.ReplaceAllString(response, ""))
	return memories, cleaned
}
