package quizgen

import (
	"fmt"
	"time"

	"github.com/minhtc/opicly/internal/llm"
)

// Question is a single fill-in-the-blank question. The JSON tags are the
// wire format shared by the LLM response, the question cache, and saved
// session transcripts.
type Question struct {
	Sentence      string   `json:"sentence"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
	Explanation   string   `json:"explanation"`
	Level         string   `json:"level"`
	Topic         string   `json:"topic"`
	GeneratedAt   string   `json:"generated_at"`
}

// Choices returns the correct answer followed by the wrong answers.
func (q Question) Choices() []string {
	out := make([]string, 0, 1+len(q.WrongAnswers))
	out = append(out, q.CorrectAnswer)
	out = append(out, q.WrongAnswers...)
	return out
}

// Request describes one generation run.
type Request struct {
	Level                 string
	Topic                 string
	Count                 int
	DifficultyProgression bool
	CulturalContext       bool

	// GrammarFocus overrides the level's default grammar points
	// when non-empty.
	GrammarFocus []string
}

// NewRequest returns a Request with the standard defaults: ten questions,
// progressive difficulty, and cultural context enabled.
func NewRequest(level, topic string) Request {
	return Request{
		Level:                 level,
		Topic:                 topic,
		Count:                 10,
		DifficultyProgression: true,
		CulturalContext:       true,
	}
}

// Result is the outcome of a successful generation run. Warnings carry
// per-item skip reasons; a Result may hold fewer questions than requested.
type Result struct {
	Questions      []Question
	Warnings       []string
	GenerationTime time.Duration
	Usage          llm.Usage
	Model          string
}

// Config controls the generation pipeline.
type Config struct {
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64

	// Timeout bounds a single provider call. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        4000,
		Temperature:      0.3,
		TopP:             0.9,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
		Timeout:          30 * time.Second,
	}
}

// ValidationError reports an invalid generation request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// ParseError reports a provider response that could not be turned into
// questions. Stage names the pipeline stage that gave up.
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response (%s): %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
