package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NovelPattern holds the schema definition for the NovelPattern entity.
// Candidate attack templates the fleet saw but the heuristics did not,
// deduplicated by content hash.
type NovelPattern struct {
	ent.Schema
}

// Fields of the NovelPattern.
func (NovelPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_hash").
			Unique().
			Immutable().
			Comment("64-hex sha256 of lowercase(trim(pattern_text))"),
		field.Text("pattern_text"),
		field.String("attack_type"),
		field.Int("occurrence_count").
			Default(1).
			Comment("Incremented atomically on conflict"),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
		field.JSON("sample_contexts", []map[string]interface{}{}).
			Optional().
			Comment("Reporting context captured at first sight"),
	}
}

// Indexes of the NovelPattern.
func (NovelPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attack_type"),
		index.Fields("occurrence_count"),
		index.Fields("last_seen_at"),
	}
}
