// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldFinalMode holds the string denoting the final_mode field in the database.
	FieldFinalMode = "final_mode"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldTotalMessages holds the string denoting the total_messages field in the database.
	FieldTotalMessages = "total_messages"
	// FieldDetectionCount holds the string denoting the detection_count field in the database.
	FieldDetectionCount = "detection_count"
	// FieldHoneypotResponses holds the string denoting the honeypot_responses field in the database.
	FieldHoneypotResponses = "honeypot_responses"
	// FieldAttackTypes holds the string denoting the attack_types field in the database.
	FieldAttackTypes = "attack_types"
	// FieldConversationLog holds the string denoting the conversation_log field in the database.
	FieldConversationLog = "conversation_log"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldUserID,
	FieldStartedAt,
	FieldEndedAt,
	FieldFinalMode,
	FieldFinalScore,
	FieldMaxScore,
	FieldTotalMessages,
	FieldDetectionCount,
	FieldHoneypotResponses,
	FieldAttackTypes,
	FieldConversationLog,
	FieldMetadata,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultFinalScore holds the default value on creation for the "final_score" field.
	DefaultFinalScore float64
	// DefaultMaxScore holds the default value on creation for the "max_score" field.
	DefaultMaxScore float64
	// DefaultTotalMessages holds the default value on creation for the "total_messages" field.
	DefaultTotalMessages int
	// DefaultDetectionCount holds the default value on creation for the "detection_count" field.
	DefaultDetectionCount int
	// DefaultHoneypotResponses holds the default value on creation for the "honeypot_responses" field.
	DefaultHoneypotResponses int
)

// FinalMode defines the type for the "final_mode" enum field.
type FinalMode string

// FinalModeNormal is the default value of the FinalMode enum.
const DefaultFinalMode = FinalModeNormal

// FinalMode values.
const (
	FinalModeNormal     FinalMode = "normal"
	FinalModeMonitoring FinalMode = "monitoring"
	FinalModeHoneypot   FinalMode = "honeypot"
	FinalModeBlocked    FinalMode = "blocked"
)

func (fm FinalMode) String() string {
	return string(fm)
}

// FinalModeValidator is a validator for the "final_mode" field enum values. It is called by the builders before save.
func FinalModeValidator(fm FinalMode) error {
	switch fm {
	case FinalModeNormal, FinalModeMonitoring, FinalModeHoneypot, FinalModeBlocked:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for final_mode field: %q", fm)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByFinalMode orders the results by the final_mode field.
func ByFinalMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalMode, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByTotalMessages orders the results by the total_messages field.
func ByTotalMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMessages, opts...).ToFunc()
}

// ByDetectionCount orders the results by the detection_count field.
func ByDetectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionCount, opts...).ToFunc()
}

// ByHoneypotResponses orders the results by the honeypot_responses field.
func ByHoneypotResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoneypotResponses, opts...).ToFunc()
}
