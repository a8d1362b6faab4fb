package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserProgress is the singleton row tracking overall learner state.
// Exactly one row (id=1) is seeded at store initialization.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("current_level").
			Default("IM1").
			Comment("Level code the learner is currently practicing"),
		field.JSON("unlocked_levels", []string{}).
			Comment("Level codes unlocked so far, in progression order; never shrinks"),
		field.Int("total_score").
			Default(0),
		field.Int("current_streak").
			Default(0),
		field.Int("best_streak").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Time("last_played").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
