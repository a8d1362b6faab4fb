package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuditRecord captures one provider call for the persistent request log.
type AuditRecord struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AuditSink persists audit records. The store's LLM log satisfies it
// through a thin adapter at wiring time.
type AuditSink interface {
	Append(ctx context.Context, rec AuditRecord) error
}

// AuditProvider is a decorator that records every LLM request in the
// audit sink.
type AuditProvider struct {
	inner    Provider
	provider string
	sink     AuditSink
}

// WithAudit wraps a Provider with audit logging.
func WithAudit(p Provider, providerName string, sink AuditSink) Provider {
	return &AuditProvider{inner: p, provider: providerName, sink: sink}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := a.inner.Generate(ctx, req)

	rec := AuditRecord{
		RequestID:   uuid.NewString(),
		Provider:    a.provider,
		Model:       a.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = resp.Content
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the record but don't fail the request if logging fails.
	if logErr := a.sink.Append(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request: %v\n", logErr)
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n")

	return b.String()
}
