package bot

import (
	"fmt"
	"strings"

	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

const notAuthorized = "You do not have permission to add lore to the archives."

// chunkMessage splits a reply into pieces no longer than size runes so it
// fits the transport's message length cap. Cutting on rune boundaries keeps
// multibyte characters intact.
func chunkMessage(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for len(runes) > size {
		chunks = append(chunks, string(runes[:size]))
		runes = runes[size:]
	}

	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}

func formatProfile(p *lore.Profile) string {
	aliases := "None"
	if len(p.Aliases) > 0 {
		aliases = strings.Join(p.Aliases, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Profile for %s**\n**Aliases:** %s\n", p.Name, aliases)

	for _, g := range p.Information {
		fmt.Fprintf(&sb, "**%s:**\n", g.Category)
		for _, item := range g.Items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
	}

	return sb.String()
}

func formatStoryList(stories []lore.Story) string {
	if len(stories) == 0 {
		return "No stories found."
	}

	var lines []string
	for _, s := range stories {
		tag := ""
		if s.Homeworld != "" {
			tag = fmt.Sprintf(" [From %s]", s.Homeworld)
		}
		lines = append(lines, fmt.Sprintf("- **%s**%s", s.Title, tag))
	}

	return "**Recent Stories:**\n" + strings.Join(lines, "\n")
}

const helpText = `**LoreKeeper Commands:**
/lore_profile [user] - View your profile or another user's
/lore_stories [homeworld] - List recent stories, optionally from a homeworld

**Curators Only:**
/lore_add_alias <alias> - Add an alias for yourself
/lore_add_info <category> <content> - Add info about yourself
/lore_add_story <title> <content> [homeworld] - Add a lore story`
