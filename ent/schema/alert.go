package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for the Alert entity. Derived rows
// written whenever an ingested event carries warning or critical level.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.Enum("level").
			Values("warning", "critical"),
		field.String("title"),
		field.Text("summary"),
		field.String("bot_id").
			Optional(),
		field.String("event_id").
			Optional().
			Comment("Triggering event when derived from one"),
		field.String("session_id").
			Optional(),
		field.Bool("acknowledged").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("bot_id"),
		// Dashboard reads newest-unacknowledged first
		index.Fields("acknowledged", "created_at"),
	}
}
