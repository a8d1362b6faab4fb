package quizgen

import (
	"strings"
	"testing"

	"github.com/minhtc/opicly/internal/catalog"
)

func TestBuildPromptDeterministic(t *testing.T) {
	req := NewRequest("IM1", "Daily Routines")
	lvl, _ := catalog.Get("IM1")

	a := BuildPrompt(req, lvl)
	b := BuildPrompt(req, lvl)
	if a != b {
		t.Error("prompt must be byte-identical across calls")
	}
}

func TestBuildPromptContent(t *testing.T) {
	req := NewRequest("IM1", "Daily Routines")
	lvl, _ := catalog.Get("IM1")
	prompt := BuildPrompt(req, lvl)

	for _, want := range []string{
		`Generate 10 comprehensive OPIC IM1 (Intermediate Mid 1) English fill-in-the-blank questions for the topic: "Daily Routines".`,
		"CRITICAL OPIC IM1 REQUIREMENTS:",
		"Progressive difficulty (questions 1-3 easier, 4-7 medium, 8-10 harder)",
		"Test cultural knowledge and situational appropriateness",
		`TOPIC FOCUS: "Daily Routines"`,
		"DIFFICULTY INDICATORS FOR IM1:",
		blankMarker,
		"Vietnamese explanation",
		"valid JSON array",
		"clear progression in difficulty",
		`"wrongAnswers": ["makes", "creates", "gives", "brings"]`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptFlagsOff(t *testing.T) {
	req := NewRequest("IM2", "Travel & Vacations")
	req.DifficultyProgression = false
	req.CulturalContext = false
	lvl, _ := catalog.Get("IM2")
	prompt := BuildPrompt(req, lvl)

	if !strings.Contains(prompt, "Consistent difficulty appropriate for IM2") {
		t.Error("expected consistent-difficulty clause")
	}
	if strings.Contains(prompt, "Progressive difficulty") {
		t.Error("progression clause should be absent")
	}
	if !strings.Contains(prompt, "Focus on grammatical accuracy") {
		t.Error("expected grammar-focus clause")
	}
	if strings.Contains(prompt, "Test cultural knowledge") {
		t.Error("cultural clause should be absent")
	}
	if !strings.Contains(prompt, "consistent appropriate difficulty") {
		t.Error("expected consistent closing clause")
	}
}

func TestBuildPromptGrammarOverrideAndCaps(t *testing.T) {
	req := NewRequest("IM1", "Hobbies")
	req.GrammarFocus = []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8", "g9", "g10"}
	lvl, _ := catalog.Get("IM1")
	prompt := BuildPrompt(req, lvl)

	if !strings.Contains(prompt, "g1, g2, g3, g4, g5, g6, g7, g8") {
		t.Error("override grammar points missing")
	}
	if strings.Contains(prompt, "g9") {
		t.Error("grammar list should be capped at 8 points")
	}
	// The level's own grammar focus is replaced by the override.
	if strings.Contains(prompt, lvl.GrammarFocus[0]) {
		t.Error("default grammar focus should not appear with an override")
	}
}
