// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldThreatScore holds the string denoting the threat_score field in the database.
	FieldThreatScore = "threat_score"
	// FieldDetectionTypes holds the string denoting the detection_types field in the database.
	FieldDetectionTypes = "detection_types"
	// FieldMessageContent holds the string denoting the message_content field in the database.
	FieldMessageContent = "message_content"
	// FieldMessageHash holds the string denoting the message_hash field in the database.
	FieldMessageHash = "message_hash"
	// FieldAnalysisResult holds the string denoting the analysis_result field in the database.
	FieldAnalysisResult = "analysis_result"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldEventType,
	FieldLevel,
	FieldUserID,
	FieldSessionID,
	FieldThreatScore,
	FieldDetectionTypes,
	FieldMessageContent,
	FieldMessageHash,
	FieldAnalysisResult,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventTypeMessage is the default value of the EventType enum.
const DefaultEventType = EventTypeMessage

// EventType values.
const (
	EventTypeMessage           EventType = "message"
	EventTypeDetection         EventType = "detection"
	EventTypeHoneypotActivated EventType = "honeypot_activated"
	EventTypeUserBlocked       EventType = "user_blocked"
	EventTypeAlert             EventType = "alert"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeMessage, EventTypeDetection, EventTypeHoneypotActivated, EventTypeUserBlocked, EventTypeAlert:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for event_type field: %q", et)
	}
}

// Level defines the type for the "level" enum field.
type Level string

// LevelInfo is the default value of the Level enum.
const DefaultLevel = LevelInfo

// Level values.
const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelInfo, LevelWarning, LevelCritical:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByThreatScore orders the results by the threat_score field.
func ByThreatScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreatScore, opts...).ToFunc()
}

// ByMessageContent orders the results by the message_content field.
func ByMessageContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageContent, opts...).ToFunc()
}

// ByMessageHash orders the results by the message_hash field.
func ByMessageHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
