package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionCache holds at most one live entry of generated questions per
// (level, topic) key. Entries expire by wall clock; reads past expiry
// delete the row.
type QuestionCache struct {
	ent.Schema
}

func (QuestionCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("level").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Text("question_data").
			NotEmpty().
			Comment("JSON array of question records"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

func (QuestionCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "topic").Unique(),
		index.Fields("expires_at"),
	}
}
