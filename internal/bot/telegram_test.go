package bot

import "testing"

func TestParseStoryArgs(t *testing.T) {
	title, content, homeworld, ok := parseStoryArgs("The Fall | It began at dusk. | Malachor")

	if !ok {
		t.Fatal("expected parse to succeed")
	}

	if title != "The Fall" || content != "It began at dusk." || homeworld != "Malachor" {
		t.Errorf("unexpected parse: %q %q %q", title, content, homeworld)
	}
}

func TestParseStoryArgsWithoutHomeworld(t *testing.T) {
	title, content, homeworld, ok := parseStoryArgs("The Fall | It began at dusk.")

	if !ok || homeworld != "" {
		t.Errorf("expected homeworld to be optional: %q %q %q ok=%v", title, content, homeworld, ok)
	}
}

func TestParseStoryArgsRejectsMissingParts(t *testing.T) {
	if _, _, _, ok := parseStoryArgs("only a title"); ok {
		t.Error("expected parse to fail without content")
	}

	if _, _, _, ok := parseStoryArgs(" | no title"); ok {
		t.Error("expected parse to fail with empty title")
	}
}
