package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequest is the audit log of generation API calls: one row per
// request, success or failure.
type LLMRequest struct {
	ent.Schema
}

func (LLMRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Immutable().
			Comment("UUID correlating this row with caller-side logs"),
		field.String("provider").
			NotEmpty().
			Immutable(),
		field.String("model").
			Immutable(),
		field.String("purpose").
			Immutable().
			Comment("question-gen or connection-test"),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Int64("latency_ms").
			Default(0).
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Text("error_message").
			Optional().
			Immutable(),
		field.Text("request_body").
			Optional().
			Immutable(),
		field.Text("response_body").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LLMRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("purpose"),
	}
}
