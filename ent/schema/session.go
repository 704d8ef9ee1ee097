package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity. One row per
// conversation an agent reports, created idempotently on the client-chosen
// session_id and patched as the conversation progresses.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("bot_id"),
		field.String("user_id"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("NULL while the conversation is still active"),
		field.Enum("final_mode").
			Values("normal", "monitoring", "honeypot", "blocked").
			Default("normal"),
		field.Float("final_score").
			Default(0),
		field.Float("max_score").
			Default(0),
		field.Int("total_messages").
			Default(0),
		field.Int("detection_count").
			Default(0),
		field.Int("honeypot_responses").
			Default(0),
		field.JSON("attack_types", []string{}).
			Optional(),
		field.JSON("conversation_log", []map[string]interface{}{}).
			Optional().
			Comment("Ordered turns as reported; replay serves them verbatim"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_id"),
		index.Fields("user_id"),
		index.Fields("bot_id", "started_at"),

		// Partial index for active-session scans
		index.Fields("started_at").
			Annotations(entsql.IndexWhere("ended_at IS NULL")),
	}
}
