// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
)

// NovelPattern is the model entity for the NovelPattern schema.
type NovelPattern struct {
	config `json:"-"`
	// ID of the ent.
	// 64-hex sha256 of lowercase(trim(pattern_text))
	ID string `json:"id,omitempty"`
	// PatternText holds the value of the "pattern_text" field.
	PatternText string `json:"pattern_text,omitempty"`
	// AttackType holds the value of the "attack_type" field.
	AttackType string `json:"attack_type,omitempty"`
	// Incremented atomically on conflict
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Reporting context captured at first sight
	SampleContexts []map[string]interface{} `json:"sample_contexts,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NovelPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case novelpattern.FieldSampleContexts:
			values[i] = new([]byte)
		case novelpattern.FieldOccurrenceCount:
			values[i] = new(sql.NullInt64)
		case novelpattern.FieldID, novelpattern.FieldPatternText, novelpattern.FieldAttackType:
			values[i] = new(sql.NullString)
		case novelpattern.FieldFirstSeenAt, novelpattern.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NovelPattern fields.
func (_m *NovelPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case novelpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case novelpattern.FieldPatternText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_text", values[i])
			} else if value.Valid {
				_m.PatternText = value.String
			}
		case novelpattern.FieldAttackType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attack_type", values[i])
			} else if value.Valid {
				_m.AttackType = value.String
			}
		case novelpattern.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case novelpattern.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case novelpattern.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case novelpattern.FieldSampleContexts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sample_contexts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SampleContexts); err != nil {
					return fmt.Errorf("unmarshal field sample_contexts: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NovelPattern.
// This includes values selected through modifiers, order, etc.
func (_m *NovelPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NovelPattern.
// Note that you need to call NovelPattern.Unwrap() before calling this method if this NovelPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NovelPattern) Update() *NovelPatternUpdateOne {
	return NewNovelPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NovelPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NovelPattern) Unwrap() *NovelPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NovelPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NovelPattern) String() string {
	var builder strings.Builder
	builder.WriteString("NovelPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_text=")
	builder.WriteString(_m.PatternText)
	builder.WriteString(", ")
	builder.WriteString("attack_type=")
	builder.WriteString(_m.AttackType)
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sample_contexts=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleContexts))
	builder.WriteByte(')')
	return builder.String()
}

// NovelPatterns is a parsable slice of NovelPattern.
type NovelPatterns []*NovelPattern
