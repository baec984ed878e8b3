package lore

import "testing"

func titles(stories []Story) []string {
	var out []string
	for _, s := range stories {
		out = append(out, s.Title)
	}
	return out
}

func TestRecentStoriesHomeworldFirst(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("S1", "oldest", "Coruscant")
	store.AddStory("S2", "middle", "Castilon")
	store.AddStory("S3", "newest", "Coruscant")

	stories, err := store.GetRecentStories(2, "Coruscant")
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	if len(stories) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(stories))
	}

	if stories[0].Title != "S3" || stories[1].Title != "S1" {
		t.Errorf("expected [S3 S1], got %v", titles(stories))
	}
}

func TestRecentStoriesFillFromGeneralPool(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("match", "only regional story", "Malachor")
	store.AddStory("other1", "general", "")
	store.AddStory("other2", "general", "Coruscant")
	store.AddStory("other3", "general", "")

	stories, err := store.GetRecentStories(3, "Malachor")
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	if len(stories) != 3 {
		t.Fatalf("expected 3 stories, got %d", len(stories))
	}

	if stories[0].Title != "match" {
		t.Errorf("expected the regional story first, got %v", titles(stories))
	}

	if stories[1].Title != "other3" || stories[2].Title != "other2" {
		t.Errorf("expected most recent filler [other3 other2], got %v", titles(stories))
	}

	for _, s := range stories[1:] {
		if s.Title == "match" {
			t.Error("regional story duplicated in the filler tier")
		}
	}
}

func TestRecentStoriesWithoutHomeworld(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("first", "a", "Coruscant")
	store.AddStory("second", "b", "")
	store.AddStory("third", "c", "Castilon")

	stories, err := store.GetRecentStories(2, "")
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	if len(stories) != 2 || stories[0].Title != "third" || stories[1].Title != "second" {
		t.Errorf("expected plain recency [third second], got %v", titles(stories))
	}
}

func TestRecentStoriesHomeworldIsCaseSensitive(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("lower", "tagged lowercase", "coruscant")
	store.AddStory("upper", "tagged uppercase", "Coruscant")

	stories, err := store.GetRecentStories(2, "Coruscant")
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	// "coruscant" only qualifies for the filler tier
	if len(stories) != 2 || stories[0].Title != "upper" || stories[1].Title != "lower" {
		t.Errorf("expected [upper lower], got %v", titles(stories))
	}
}

func TestRecentStoriesZeroLimit(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("any", "content", "")

	stories, err := store.GetRecentStories(0, "Coruscant")
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	if len(stories) != 0 {
		t.Errorf("expected empty result, got %v", titles(stories))
	}
}

func TestGetAllStories(t *testing.T) {
	store := openTestStore(t)

	store.AddStory("one", "a", "")
	store.AddStory("two", "b", "Castilon")
	store.AddStory("three", "c", "")

	stories, err := store.GetAllStories()
	if err != nil {
		t.Fatalf("failed to get stories: %v", err)
	}

	if len(stories) != 3 {
		t.Fatalf("expected 3 stories, got %d", len(stories))
	}

	if stories[0].Title != "three" || stories[2].Title != "one" {
		t.Errorf("expected most-recent-first, got %v", titles(stories))
	}

	if stories[1].Homeworld != "Castilon" || stories[0].Homeworld != "" {
		t.Errorf("homeworld tags not preserved: %+v", stories)
	}
}
