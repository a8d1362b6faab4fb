package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameSession is the append-only log of completed practice sessions.
// Rows are immutable once written; only age-based cleanup deletes them.
type GameSession struct {
	ent.Schema
}

func (GameSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("level").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Immutable(),
		field.Int("total_questions").
			Immutable(),
		field.Float("accuracy").
			Immutable().
			Comment("Percentage, stored redundantly for aggregate queries"),
		field.Int("duration_secs").
			Default(0).
			Immutable(),
		field.Int("streak").
			Default(0).
			Immutable().
			Comment("Streak at session completion"),
		field.Text("questions_data").
			Optional().
			Immutable().
			Comment("JSON array of the questions served"),
		field.Text("answers_data").
			Optional().
			Immutable().
			Comment("JSON array of the learner's answers"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (GameSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
		index.Fields("level", "topic"),
	}
}
