package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events (start, end, restart).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or restart"),
		field.Int("total_questions").
			Default(0).
			Comment("Size of the shuffled order"),
		field.Int("attempted").
			Default(0).
			Comment("Submitted positions (on end/restart only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Score (on end/restart only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on end/restart only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
