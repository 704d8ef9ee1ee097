// Code generated by ent, DO NOT EDIT.

package bot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bot type in the database.
	Label = "bot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bot_id"
	// FieldPersonaCategory holds the string denoting the persona_category field in the database.
	FieldPersonaCategory = "persona_category"
	// FieldPersonaName holds the string denoting the persona_name field in the database.
	FieldPersonaName = "persona_name"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldConfigHash holds the string denoting the config_hash field in the database.
	FieldConfigHash = "config_hash"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldRegisteredAt holds the string denoting the registered_at field in the database.
	FieldRegisteredAt = "registered_at"
	// Table holds the table name of the bot in the database.
	Table = "bots"
)

// Columns holds all SQL columns for bot fields.
var Columns = []string{
	FieldID,
	FieldPersonaCategory,
	FieldPersonaName,
	FieldCompanyName,
	FieldStatus,
	FieldVersion,
	FieldConfigHash,
	FieldLastHeartbeat,
	FieldMetadata,
	FieldRegisteredAt,
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
	// DefaultRegisteredAt holds the default value on creation for the "registered_at" field.
	DefaultRegisteredAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOffline is the default value of the Status enum.
const DefaultStatus = StatusOffline

// Status values.
const (
	StatusOnline   Status = "online"
	StatusOffline  Status = "offline"
	StatusDegraded Status = "degraded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOnline, StatusOffline, StatusDegraded:
		return nil
	default:
		return fmt.Errorf("bot: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Bot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPersonaCategory orders the results by the persona_category field.
func ByPersonaCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaCategory, opts...).ToFunc()
}

// ByPersonaName orders the results by the persona_name field.
func ByPersonaName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaName, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByConfigHash orders the results by the config_hash field.
func ByConfigHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigHash, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByRegisteredAt orders the results by the registered_at field.
func ByRegisteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredAt, opts...).ToFunc()
}
