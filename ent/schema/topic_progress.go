package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicProgress tracks per-topic results within a level.
// Rows are merged on every completed session: best_score is a running
// maximum, attempts and counters accumulate.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("level").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Int("best_score").
			Default(0),
		field.Int("attempts").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Time("last_attempt").
			Optional().
			Nillable(),
		field.Bool("is_completed").
			Default(false).
			Comment("True iff best_score has reached the passing threshold"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "topic").Unique(),
		index.Fields("level"),
	}
}
