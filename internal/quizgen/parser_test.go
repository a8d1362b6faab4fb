package quizgen

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const validItem = `{
	"sentence": "I _____ to work every day.",
	"correctAnswer": "go",
	"wrongAnswers": ["goes", "went", "going", "gone"],
	"explanation": "Thì hiện tại đơn."
}`

func testRequest(count int) Request {
	req := NewRequest("IM1", "Daily Routines")
	req.Count = count
	return req
}

func TestParseStrictArray(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	questions, warnings, err := parseQuestions("["+validItem+"]", testRequest(10), now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	q := questions[0]
	if q.Level != "IM1" || q.Topic != "Daily Routines" {
		t.Errorf("provenance not stamped: %+v", q)
	}
	if q.GeneratedAt != "2026-08-29T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", q.GeneratedAt)
	}
}

func TestParseExtractsFromProse(t *testing.T) {
	content := "Here are your questions:\n\n[" + validItem + "]\n\nHope these help!"
	questions, _, err := parseQuestions(content, testRequest(10), time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseMarkdownFence(t *testing.T) {
	content := "```json\n[" + validItem + "]\n```"
	questions, _, err := parseQuestions(content, testRequest(10), time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseNoArray(t *testing.T) {
	_, _, err := parseQuestions("Sorry, I cannot do that.", testRequest(10), time.Now())
	if err == nil {
		t.Fatal("expected error for prose-only response")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseSkipsInvalidItems(t *testing.T) {
	content := `[
		{"sentence": "No blank here.", "correctAnswer": "go", "wrongAnswers": ["a","b","c","d"], "explanation": "x"},
		{"sentence": "I _____ hungry.", "correctAnswer": "am", "wrongAnswers": ["is","are"], "explanation": "x"},
		{"sentence": "I _____ hungry.", "correctAnswer": "", "wrongAnswers": ["is","are","was","were"], "explanation": "x"},
		` + validItem + `
	]`

	questions, warnings, err := parseQuestions(content, testRequest(10), time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want 3: %v", len(warnings), warnings)
	}
	for i, want := range []string{"missing blank", "insufficient wrong answers", "missing required fields"} {
		if !strings.Contains(warnings[i], want) {
			t.Errorf("warnings[%d] = %q, want substring %q", i, warnings[i], want)
		}
	}
}

func TestParseStopsAtCount(t *testing.T) {
	content := "[" + strings.Join([]string{validItem, validItem, validItem}, ",") + "]"
	questions, _, err := parseQuestions(content, testRequest(2), time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("got %d questions, want 2", len(questions))
	}
}

func TestParseTrimsAndCapsWrongAnswers(t *testing.T) {
	content := `[{
		"sentence": "  I _____ tea.  ",
		"correctAnswer": " drink ",
		"wrongAnswers": [" drinks ", "drank", "drinking", "drunk", "extra"],
		"explanation": "  Giải thích.  "
	}]`

	questions, _, err := parseQuestions(content, testRequest(10), time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := questions[0]
	if q.Sentence != "I _____ tea." || q.CorrectAnswer != "drink" || q.Explanation != "Giải thích." {
		t.Errorf("fields not trimmed: %+v", q)
	}
	if len(q.WrongAnswers) != 4 || q.WrongAnswers[0] != "drinks" {
		t.Errorf("wrong answers not capped/trimmed: %v", q.WrongAnswers)
	}
}

func TestParseAllInvalid(t *testing.T) {
	content := `[{"sentence": "no blank", "correctAnswer": "x", "wrongAnswers": ["a","b","c","d"], "explanation": "x"}]`
	_, warnings, err := parseQuestions(content, testRequest(10), time.Now())
	if err == nil {
		t.Fatal("expected error when every item is invalid")
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}
