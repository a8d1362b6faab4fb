package quizgen

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest("IM1", "Hobbies")

	assert.Equal(t, "IM1", req.Level)
	assert.Equal(t, "Hobbies", req.Topic)
	assert.Equal(t, 10, req.Count)
	assert.True(t, req.DifficultyProgression)
	assert.True(t, req.CulturalContext)
	assert.Empty(t, req.GrammarFocus)
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 4000, cfg.MaxTokens)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 0.9, cfg.TopP)
	assert.Equal(t, 0.1, cfg.FrequencyPenalty)
	assert.Equal(t, 0.1, cfg.PresencePenalty)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestQuestionWireFormat(t *testing.T) {
	q := Question{
		Sentence:      "I _____ happy.",
		CorrectAnswer: "am",
		WrongAnswers:  []string{"is", "are", "was", "were"},
		Explanation:   "Động từ to be ngôi thứ nhất.",
		Level:         "IM1",
		Topic:         "Daily Routines",
		GeneratedAt:   "2026-08-29T10:00:00Z",
	}

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"sentence", "correctAnswer", "wrongAnswers", "explanation", "level", "topic", "generated_at"} {
		assert.Contains(t, raw, key)
	}

	var back Question
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, q, back)
}

func TestQuestionChoices(t *testing.T) {
	q := Question{
		CorrectAnswer: "am",
		WrongAnswers:  []string{"is", "are", "was", "were"},
	}

	choices := q.Choices()
	require.Len(t, choices, 5)
	assert.Equal(t, "am", choices[0])

	// Mutating the returned slice must not touch the question.
	choices[1] = "mutated"
	assert.Equal(t, "is", q.WrongAnswers[0])
}
