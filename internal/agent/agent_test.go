package agent

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Slaterfr/Discord-Echo/internal/llm"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

type fakeLLM struct {
	response string
	system   string
}

func (f *fakeLLM) Chat(ctx context.Context, systemPrompt string, messages []llm.Message) (string, error) {
	f.system = systemPrompt
	return f.response, nil
}

func testAgent(t *testing.T, model llm.LLM) (*Agent, *lore.Store) {
	t.Helper()

	store, err := lore.Open(filepath.Join(t.TempDir(), "lore.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(model, store, ""), store
}

func TestResolveTargetPrefersMention(t *testing.T) {
	a, store := testAgent(t, nil)

	store.UpsertUser(1, "Slater")
	store.UpsertUser(2, "Swift")

	id := a.resolveTarget(Request{AuthorID: 1, Content: "who is Swift", MentionIDs: []int64{2}})
	if id != 2 {
		t.Errorf("expected mentioned user 2, got %d", id)
	}
}

func TestResolveTargetByNameScan(t *testing.T) {
	a, store := testAgent(t, nil)

	store.UpsertUser(1, "Slater")
	store.UpsertUser(2, "Swifvv")
	store.AddAlias(2, "Swift")

	id := a.resolveTarget(Request{AuthorID: 1, Content: "do you know about swift?"})
	if id != 2 {
		t.Errorf("expected user 2 via alias scan, got %d", id)
	}
}

func TestResolveTargetSkipsStopWords(t *testing.T) {
	a, store := testAgent(t, nil)

	// a user unfortunately named after a stop word must not hijack lookups
	store.UpsertUser(3, "info")
	store.UpsertUser(1, "Slater")

	id := a.resolveTarget(Request{AuthorID: 1, Content: "give me info"})
	if id != 1 {
		t.Errorf("expected fallback to author, got %d", id)
	}
}

func TestResolveTargetFallsBackToAuthor(t *testing.T) {
	a, store := testAgent(t, nil)

	store.UpsertUser(1, "Slater")

	id := a.resolveTarget(Request{AuthorID: 1, Content: "hello there"})
	if id != 1 {
		t.Errorf("expected author, got %d", id)
	}
}

func TestReplyStoresMemoriesAndStripsTags(t *testing.T) {
	model := &fakeLLM{response: "Noted, General. [[MEMORY: Titles | Engineer of the Taskforce]]"}
	a, store := testAgent(t, model)

	store.UpsertUser(1, "Slater")

	reply, err := a.Reply(context.Background(), Request{
		AuthorID:   1,
		AuthorName: "Slater",
		Content:    "I am the engineer of the taskforce",
		History:    []string{"Slater: I am the engineer of the taskforce"},
	})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	if reply != "Noted, General." {
		t.Errorf("expected cleaned reply, got %q", reply)
	}

	profile, err := store.GetUserProfile(1)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}

	titles := profile.Group("Titles")
	if len(titles) != 1 || titles[0] != "Engineer of the Taskforce" {
		t.Errorf("expected the memory filed under Titles, got %+v", profile.Information)
	}
}

func TestReplyBiasesStoriesByHomeworld(t *testing.T) {
	model := &fakeLLM{response: "ok"}
	a, store := testAgent(t, model)

	store.UpsertUser(1, "Swift")
	store.AddInformation(1, "Homeworld", "Castilon")
	store.AddStory("Far away", "unrelated lore", "Coruscant")
	store.AddStory("Home tale", "castilon lore", "Castilon")

	if _, err := a.Reply(context.Background(), Request{AuthorID: 1, AuthorName: "Swift", Content: "hi"}); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	if !containsBefore(model.system, "Home tale", "Far away") {
		t.Errorf("expected homeworld story first in context:\n%s", model.system)
	}
}

func containsBefore(s, first, second string) bool {
	i := strings.Index(s, first)
	j := strings.Index(s, second)
	return i >= 0 && j >= 0 && i < j
}
