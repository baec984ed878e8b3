package agent

import (
	"context"
	"os"
	"strings"

	"github.com/Slaterfr/Discord-Echo/internal/llm"
	"github.com/Slaterfr/Discord-Echo/internal/logger"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

// storyContextLimit is how many stories are pulled into the prompt.
const storyContextLimit = 2

const defaultPersona = `You are Echo, an archivist chatbot who keeps the lore of this community.
You are friendly, slightly mysterious, and always willing to answer questions. Keep it casual.
If you don't know an answer, say that you don't know, but that you'll consult the old scriptures to find out.

[MEMORY SYSTEM]
You have the ability to remember important facts about users.
If the user tells you something new and permanent about themselves (e.g., their name, a specific alias, a personality trait, a significant event they participated in),
you MUST output a memory tag at the END of your response.
Format: [[MEMORY: Category | Content]]
Example: [[MEMORY: Identity | User's real name is Sarah]]
Example: [[MEMORY: Preference | Dislikes spicy food]]
Do not output this tag for trivial conversation. Only for facts worth remembering long-term.`

type Agent struct {
	llm          llm.LLM
	store        *lore.Store
	systemPrompt string
}

// Request is one incoming message the agent should answer.
type Request struct {
	AuthorID   int64
	AuthorName string
	Content    string
	MentionIDs []int64  // users explicitly referenced by the transport
	History    []string // recent channel lines, oldest first
}

func New(model llm.LLM, store *lore.Store, personaPath string) *Agent {
	return &Agent{
		llm:          model,
		store:        store,
		systemPrompt: loadPersona(personaPath),
	}
}

func loadPersona(path string) string {
	if path == "" {
		return defaultPersona
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("persona file not readable, using built-in persona", "path", path, "error", err)
		return defaultPersona
	}

	return string(data)
}

// Reply answers one message: it resolves who the message is about, assembles
// lore context for that user, asks the model, and files any memory tags the
// model emitted before returning the cleaned response.
func (a *Agent) Reply(ctx context.Context, req Request) (string, error) {
	targetID := a.resolveTarget(req)

	system := a.systemPrompt

	var homeworld string
	profile, err := a.store.GetUserProfile(targetID)
	if err != nil {
		return "", err
	}

	if profile != nil {
		system += userContext(profile)
		homeworld = homeworldOf(profile)
	}

	stories, err := a.store.GetRecentStories(storyContextLimit, homeworld)
	if err != nil {
		return "", err
	}

	system += storiesContext(stories)

	prompt := "Here is the recent conversation history:\n---\n" +
		strings.Join(req.History, "\n") +
		"\n---\n\nPlease respond to the last message from " + req.AuthorName +
		". Remember to use [[MEMORY: Category | Content]] if you learn something new."

	response, err := a.llm.Chat(ctx, system, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", err
	}

	memories, cleaned := extractMemories(response)
	for _, m := range memories {
		if err := a.store.AddInformation(targetID, m.Category, m.Content); err != nil {
			logger.Error("failed to store memory", "error", err, "category", m.Category)
			continue
		}
		logger.Info("memory recorded", "user", targetID, "category", m.Category)
	}

	return cleaned, nil
}

// resolveTarget picks which user the message is about: an explicit mention
// wins, then a name or alias found in the message text, then the author.
func (a *Agent) resolveTarget(req Request) int64 {
	if len(req.MentionIDs) > 0 {
		return req.MentionIDs[0]
	}

	for _, word := range strings.Fields(req.Content) {
		token := strings.Trim(word, "@.,!?")
		if token == "" || stopWords[strings.ToLower(token)] {
			continue
		}

		id, found, err := a.store.SearchUserByName(token)
		if err != nil {
			logger.Error("name search failed", "error", err, "token", token)
			continue
		}
		if found {
			logger.Debug("resolved user by name", "token", token, "id", id)
			return id
		}
	}

	return req.AuthorID
}

// stopWords are common words skipped during the name scan to avoid useless
// lookups on every message.
var stopWords = map[string]bool{
	"do": true, "you": true, "who": true, "is": true, "give": true,
	"me": true, "info": true, "know": true, "about": true, "tell": true,
	"any": true, "information": true, "the": true, "of": true, "and": true,
	"for": true, "this": true, "that": true, "they": true, "them": true,
	"their": true, "what": true, "a": true, "an": true,
}
