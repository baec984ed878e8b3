package agent

import (
	"fmt"
	"strings"

	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

const snippetLength = 200

// HomeworldCategory is a convention layered on the open category mechanism:
// the first fact filed under it is treated as the user's homeworld.
const HomeworldCategory = "Homeworld"

func homeworldOf(p *lore.Profile) string {
	if items := p.Group(HomeworldCategory); len(items) > 0 {
		return items[0]
	}
	return ""
}

func userContext(p *lore.Profile) string {
	var info strings.Builder
	for _, g := range p.Information {
		fmt.Fprintf(&info, "%s: %s. ", g.Category, strings.Join(g.Items, "; "))
	}

	return fmt.Sprintf("\n[User Context: This is %s. Aliases: %s. Known Info: %s]",
		p.Name, strings.Join(p.Aliases, ", "), info.String())
}

func storiesContext(stories []lore.Story) string {
	if len(stories) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n[Relevant Lore/Stories in Database]\n")

	for _, s := range stories {
		tag := ""
		if s.Homeworld != "" {
			tag = fmt.Sprintf(" [From %s]", s.Homeworld)
		}
		fmt.Fprintf(&sb, "- Title: %s%s\n  Snippet: %s\n", s.Title, tag, snippet(s.Content))
	}

	return sb.String()
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}
