package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Bot holds the schema definition for the Bot entity. One row per
// registered honeypot agent; later registrations and heartbeats mutate it.
type Bot struct {
	ent.Schema
}

// Fields of the Bot.
func (Bot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bot_id").
			Unique().
			Immutable(),
		field.String("persona_category").
			Comment("Persona vertical (e.g. 'dental_office')"),
		field.String("persona_name"),
		field.String("company_name").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("online", "offline", "degraded").
			Default("offline"),
		field.String("version").
			Optional().
			Comment("Agent build reported at registration"),
		field.String("config_hash").
			Optional().
			Comment("64-hex sha256 of the serialized agent config, secret redacted"),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Bot.
func (Bot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("persona_category"),
		// Staleness sweep scans by status and heartbeat age
		index.Fields("status", "last_heartbeat"),
	}
}
