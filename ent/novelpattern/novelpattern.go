// Code generated by ent, DO NOT EDIT.

package novelpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the novelpattern type in the database.
	Label = "novel_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_hash"
	// FieldPatternText holds the string denoting the pattern_text field in the database.
	FieldPatternText = "pattern_text"
	// FieldAttackType holds the string denoting the attack_type field in the database.
	FieldAttackType = "attack_type"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldSampleContexts holds the string denoting the sample_contexts field in the database.
	FieldSampleContexts = "sample_contexts"
	// Table holds the table name of the novelpattern in the database.
	Table = "novel_patterns"
)

// Columns holds all SQL columns for novelpattern fields.
var Columns = []string{
	FieldID,
	FieldPatternText,
	FieldAttackType,
	FieldOccurrenceCount,
	FieldFirstSeenAt,
	FieldLastSeenAt,
	FieldSampleContexts,
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
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
)

// OrderOption defines the ordering options for the NovelPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternText orders the results by the pattern_text field.
func ByPatternText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternText, opts...).ToFunc()
}

// ByAttackType orders the results by the attack_type field.
func ByAttackType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttackType, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}
