package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records a finished quiz. Insights are derived from
// these rows.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// TopicCount is the per-topic tally stored with a quiz result.
type TopicCount struct {
	Topic     string `json:"topic"`
	Correct   int    `json:"correct"`
	Attempted int    `json:"attempted"`
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").
			Default("").
			Comment("Display name at the time of the quiz"),
		field.String("goal").
			NotEmpty(),
		field.String("quiz_type").
			NotEmpty().
			Comment("practice or final"),
		field.Int("correct").
			NonNegative(),
		field.Int("total").
			NonNegative(),
		field.JSON("topics", []TopicCount{}).
			Optional(),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal"),
	}
}
