package catalog

import (
	"strings"
	"testing"
)

func TestOrder(t *testing.T) {
	want := []string{"IM1", "IM2", "IM3", "IH", "AL", "AM", "AH"}
	got := Order()
	if len(got) != len(want) {
		t.Fatalf("Order() has %d codes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Order()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGet(t *testing.T) {
	lvl, ok := Get("IM1")
	if !ok {
		t.Fatal("expected IM1 to exist")
	}
	if lvl.Code != "IM1" {
		t.Errorf("Code = %q, want IM1", lvl.Code)
	}
	if lvl.Name == "" || lvl.Description == "" || lvl.Color == "" {
		t.Error("expected name, description and color to be set")
	}
	if lvl.PassingScore != PassingScore {
		t.Errorf("PassingScore = %d, want %d", lvl.PassingScore, PassingScore)
	}

	if _, ok := Get("XX"); ok {
		t.Error("expected unknown code to miss")
	}
}

func TestEveryLevelHasContent(t *testing.T) {
	for _, lvl := range All() {
		if len(lvl.Topics) == 0 {
			t.Errorf("%s has no topics", lvl.Code)
		}
		if len(lvl.GrammarFocus) == 0 {
			t.Errorf("%s has no grammar focus", lvl.Code)
		}
		if len(lvl.CulturalContexts) == 0 {
			t.Errorf("%s has no cultural contexts", lvl.Code)
		}
		if len(lvl.SpeakingTasks) == 0 {
			t.Errorf("%s has no speaking tasks", lvl.Code)
		}
		if len(lvl.DifficultyIndicators) == 0 {
			t.Errorf("%s has no difficulty indicators", lvl.Code)
		}
	}
}

func TestNextPrevious(t *testing.T) {
	if next, ok := Next("IM1"); !ok || next != "IM2" {
		t.Errorf("Next(IM1) = %q, %v", next, ok)
	}
	if _, ok := Next("AH"); ok {
		t.Error("expected no level after AH")
	}
	if prev, ok := Previous("IM2"); !ok || prev != "IM1" {
		t.Errorf("Previous(IM2) = %q, %v", prev, ok)
	}
	if _, ok := Previous("IM1"); ok {
		t.Error("expected no level before IM1")
	}
	if _, ok := Next("XX"); ok {
		t.Error("expected unknown code to have no successor")
	}
}

func TestHasTopicAndTopicLevel(t *testing.T) {
	topics := Topics("IM1")
	if len(topics) == 0 {
		t.Fatal("expected IM1 topics")
	}

	if !HasTopic("IM1", topics[0]) {
		t.Errorf("HasTopic(IM1, %q) = false", topics[0])
	}
	if HasTopic("IM1", "No Such Topic") {
		t.Error("expected miss for unknown topic")
	}
	if HasTopic("XX", topics[0]) {
		t.Error("expected miss for unknown level")
	}

	if code, ok := TopicLevel(topics[0]); !ok || code != "IM1" {
		t.Errorf("TopicLevel(%q) = %q, %v", topics[0], code, ok)
	}
}

func TestSearchTopicsCaseInsensitive(t *testing.T) {
	topics := Topics("IM1")
	term := strings.ToUpper(topics[0][:4])

	matches := SearchTopics(term)
	if len(matches) == 0 {
		t.Fatalf("SearchTopics(%q) found nothing", term)
	}

	found := false
	for _, m := range matches {
		if m.Level == "IM1" && m.Topic == topics[0] {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in matches", topics[0])
	}
}

func TestStatistics(t *testing.T) {
	stats := Statistics()
	if stats.Levels != 7 {
		t.Errorf("Levels = %d, want 7", stats.Levels)
	}

	total := 0
	for _, lvl := range All() {
		total += len(lvl.Topics)
	}
	if stats.Topics != total {
		t.Errorf("Topics = %d, want %d", stats.Topics, total)
	}
}

func TestDifficultyProgression(t *testing.T) {
	entries := DifficultyProgression()
	if len(entries) != 7 {
		t.Fatalf("got %d entries, want 7", len(entries))
	}
	if entries[0].Code != "IM1" || entries[6].Code != "AH" {
		t.Errorf("progression order wrong: %s .. %s", entries[0].Code, entries[6].Code)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	lvl, _ := Get("IM1")
	original := lvl.Topics[0]
	lvl.Topics[0] = "mutated"

	again, _ := Get("IM1")
	if again.Topics[0] != original {
		t.Error("mutating a returned level leaked into the catalog")
	}
}
