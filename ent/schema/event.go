package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity. Append-only
// telemetry from the fleet; the retention job is the only deleter.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("bot_id"),
		field.Enum("event_type").
			Values("message", "detection", "honeypot_activated", "user_blocked", "alert").
			Default("message"),
		field.Enum("level").
			Values("info", "warning", "critical").
			Default("info"),
		field.String("user_id").
			Optional(),
		field.String("session_id").
			Optional(),
		field.Float("threat_score").
			Optional().
			Nillable().
			Comment("Always within [0,100]; validated before insert"),
		field.JSON("detection_types", []string{}).
			Optional(),
		field.Text("message_content").
			Optional().
			Nillable().
			Comment("Raw user text; stripped from every broadcast copy"),
		field.String("message_hash").
			Optional().
			Comment("64-hex sha256 of message_content"),
		field.JSON("analysis_result", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_id", "created_at"),
		index.Fields("session_id"),
		index.Fields("level"),
		index.Fields("event_type"),
		// Retention deletes by age
		index.Fields("created_at"),
	}
}
