package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/llmrequest"
)

// LLMRecord captures one generation API call for the audit log.
type LLMRecord struct {
	ID           int
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
	CreatedAt    time.Time
}

// LLMRepo provides append and read access to the LLM audit log.
type LLMRepo interface {
	// Append records one API call, success or failure.
	Append(ctx context.Context, rec LLMRecord) error

	// Recent returns the limit most recent records, newest first.
	Recent(ctx context.Context, limit int) ([]LLMRecord, error)
}

type llmRepo struct {
	client *ent.Client
}

func (r *llmRepo) Append(ctx context.Context, rec LLMRecord) error {
	builder := r.client.LLMRequest.Create().
		SetRequestID(rec.RequestID).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success)

	if rec.ErrorMessage != "" {
		builder = builder.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.RequestBody != "" {
		builder = builder.SetRequestBody(rec.RequestBody)
	}
	if rec.ResponseBody != "" {
		builder = builder.SetResponseBody(rec.ResponseBody)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save llm request: %w", err)
	}
	return nil
}

func (r *llmRepo) Recent(ctx context.Context, limit int) ([]LLMRecord, error) {
	rows, err := r.client.LLMRequest.Query().
		Order(ent.Desc(llmrequest.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	out := make([]LLMRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMRecord{
			ID:           row.ID,
			RequestID:    row.RequestID,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
