// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"warning", "critical"}},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "bot_id", Type: field.TypeString, Nullable: true},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alert_level",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1]},
			},
			{
				Name:    "alert_bot_id",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4]},
			},
			{
				Name:    "alert_acknowledged_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7], AlertsColumns[8]},
			},
		},
	}
	// BotsColumns holds the columns for the "bots" table.
	BotsColumns = []*schema.Column{
		{Name: "bot_id", Type: field.TypeString, Unique: true},
		{Name: "persona_category", Type: field.TypeString},
		{Name: "persona_name", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "offline", "degraded"}, Default: "offline"},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "config_hash", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "registered_at", Type: field.TypeTime},
	}
	// BotsTable holds the schema information for the "bots" table.
	BotsTable = &schema.Table{
		Name:       "bots",
		Columns:    BotsColumns,
		PrimaryKey: []*schema.Column{BotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bot_status",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[4]},
			},
			{
				Name:    "bot_persona_category",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[1]},
			},
			{
				Name:    "bot_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[4], BotsColumns[7]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "bot_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"message", "detection", "honeypot_activated", "user_blocked", "alert"}, Default: "message"},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}, Default: "info"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "threat_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "detection_types", Type: field.TypeJSON, Nullable: true},
		{Name: "message_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "message_hash", Type: field.TypeString, Nullable: true},
		{Name: "analysis_result", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_bot_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[12]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
			{
				Name:    "event_level",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[12]},
			},
		},
	}
	// NovelPatternsColumns holds the columns for the "novel_patterns" table.
	NovelPatternsColumns = []*schema.Column{
		{Name: "pattern_hash", Type: field.TypeString, Unique: true},
		{Name: "pattern_text", Type: field.TypeString, Size: 2147483647},
		{Name: "attack_type", Type: field.TypeString},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "sample_contexts", Type: field.TypeJSON, Nullable: true},
	}
	// NovelPatternsTable holds the schema information for the "novel_patterns" table.
	NovelPatternsTable = &schema.Table{
		Name:       "novel_patterns",
		Columns:    NovelPatternsColumns,
		PrimaryKey: []*schema.Column{NovelPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "novelpattern_attack_type",
				Unique:  false,
				Columns: []*schema.Column{NovelPatternsColumns[2]},
			},
			{
				Name:    "novelpattern_occurrence_count",
				Unique:  false,
				Columns: []*schema.Column{NovelPatternsColumns[3]},
			},
			{
				Name:    "novelpattern_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{NovelPatternsColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "bot_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "final_mode", Type: field.TypeEnum, Enums: []string{"normal", "monitoring", "honeypot", "blocked"}, Default: "normal"},
		{Name: "final_score", Type: field.TypeFloat64, Default: 0},
		{Name: "max_score", Type: field.TypeFloat64, Default: 0},
		{Name: "total_messages", Type: field.TypeInt, Default: 0},
		{Name: "detection_count", Type: field.TypeInt, Default: 0},
		{Name: "honeypot_responses", Type: field.TypeInt, Default: 0},
		{Name: "attack_types", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_log", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_bot_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_bot_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[3]},
			},
			{
				Name:    "session_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "ended_at IS NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		BotsTable,
		EventsTable,
		NovelPatternsTable,
		SessionsTable,
	}
)

func init() {
}
