package llm

import "context"

// Provider is the abstraction over chat-completion APIs.
// One Generate call is one request; the reply is the raw text of the
// first completion choice, with no structure imposed.
type Provider interface {
	// Generate sends the prompt and returns the model's reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one chat-completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single user message.
	Prompt string

	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// TopP is the nucleus sampling parameter. Zero means provider default.
	TopP float64

	// FrequencyPenalty discourages verbatim repetition. Zero means default.
	FrequencyPenalty float64

	// PresencePenalty discourages topic repetition. Zero means default.
	PresencePenalty float64
}

// Response holds the model's reply.
type Response struct {
	// Content is the raw reply text. It may contain prose around the
	// JSON payload; extracting structure is the caller's concern.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
