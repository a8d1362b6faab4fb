package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// parseQuestions turns raw provider output into validated questions.
//
// Parsing runs in two stages. The strict stage takes the whole payload as a
// JSON array and checks it against the response schema. When the provider
// wrapped the array in prose, the fallback stage extracts the substring from
// the first '[' to the last ']'. If both stages fail the response is
// unusable and a *ParseError is returned.
//
// Items that survive parsing are validated one by one; malformed items are
// skipped with a warning rather than failing the batch. Validation stops
// once req.Count items have been accepted.
func parseQuestions(content string, req Request, now time.Time) ([]Question, []string, error) {
	payload, err := extractArray(content)
	if err != nil {
		return nil, nil, err
	}

	var items []Question
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, nil, &ParseError{Stage: "decode", Err: err}
	}

	questions := make([]Question, 0, req.Count)
	var warnings []string

	for i, item := range items {
		if reason := validateItem(&item); reason != "" {
			warnings = append(warnings, fmt.Sprintf("question %d skipped: %s", i+1, reason))
			continue
		}

		item.Level = req.Level
		item.Topic = req.Topic
		item.GeneratedAt = now.Format(time.RFC3339)
		questions = append(questions, item)

		if len(questions) >= req.Count {
			break
		}
	}

	if len(questions) == 0 {
		return nil, warnings, fmt.Errorf("no valid questions in response")
	}
	return questions, warnings, nil
}

// extractArray returns the JSON array payload from raw provider output.
func extractArray(content string) (string, error) {
	content = strings.TrimSpace(content)

	// Strict stage: the whole payload is the array.
	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err == nil {
		schema, serr := questionListSchema()
		if serr != nil {
			return "", &ParseError{Stage: "strict", Err: serr}
		}
		if verr := schema.Validate(parsed); verr == nil {
			return content, nil
		}
	}

	// Fallback stage: the array is embedded in surrounding prose.
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", &ParseError{Stage: "extract", Err: fmt.Errorf("no JSON array found in response")}
	}
	return content[start : end+1], nil
}

// validateItem cleans an item in place and returns a non-empty reason when
// the item must be skipped.
func validateItem(q *Question) string {
	q.Sentence = strings.TrimSpace(q.Sentence)
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	q.Explanation = strings.TrimSpace(q.Explanation)

	if q.Sentence == "" || q.CorrectAnswer == "" || q.Explanation == "" {
		return "missing required fields"
	}
	if !strings.Contains(q.Sentence, blankMarker) {
		return "missing blank in sentence"
	}
	if len(q.WrongAnswers) < 4 {
		return "insufficient wrong answers"
	}

	wrong := make([]string, 4)
	for i := range wrong {
		wrong[i] = strings.TrimSpace(q.WrongAnswers[i])
		if wrong[i] == "" {
			return "empty wrong answer"
		}
	}
	q.WrongAnswers = wrong
	return ""
}
