// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID string `json:"bot_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// NULL while the conversation is still active
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// FinalMode holds the value of the "final_mode" field.
	FinalMode session.FinalMode `json:"final_mode,omitempty"`
	// FinalScore holds the value of the "final_score" field.
	FinalScore float64 `json:"final_score,omitempty"`
	// MaxScore holds the value of the "max_score" field.
	MaxScore float64 `json:"max_score,omitempty"`
	// TotalMessages holds the value of the "total_messages" field.
	TotalMessages int `json:"total_messages,omitempty"`
	// DetectionCount holds the value of the "detection_count" field.
	DetectionCount int `json:"detection_count,omitempty"`
	// HoneypotResponses holds the value of the "honeypot_responses" field.
	HoneypotResponses int `json:"honeypot_responses,omitempty"`
	// AttackTypes holds the value of the "attack_types" field.
	AttackTypes []string `json:"attack_types,omitempty"`
	// Ordered turns as reported; replay serves them verbatim
	ConversationLog []map[string]interface{} `json:"conversation_log,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldAttackTypes, session.FieldConversationLog, session.FieldMetadata:
			values[i] = new([]byte)
		case session.FieldFinalScore, session.FieldMaxScore:
			values[i] = new(sql.NullFloat64)
		case session.FieldTotalMessages, session.FieldDetectionCount, session.FieldHoneypotResponses:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldBotID, session.FieldUserID, session.FieldFinalMode:
			values[i] = new(sql.NullString)
		case session.FieldStartedAt, session.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = value.String
			}
		case session.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case session.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case session.FieldFinalMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_mode", values[i])
			} else if value.Valid {
				_m.FinalMode = session.FinalMode(value.String)
			}
		case session.FieldFinalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = value.Float64
			}
		case session.FieldMaxScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = value.Float64
			}
		case session.FieldTotalMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_messages", values[i])
			} else if value.Valid {
				_m.TotalMessages = int(value.Int64)
			}
		case session.FieldDetectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field detection_count", values[i])
			} else if value.Valid {
				_m.DetectionCount = int(value.Int64)
			}
		case session.FieldHoneypotResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field honeypot_responses", values[i])
			} else if value.Valid {
				_m.HoneypotResponses = int(value.Int64)
			}
		case session.FieldAttackTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attack_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AttackTypes); err != nil {
					return fmt.Errorf("unmarshal field attack_types: %w", err)
				}
			}
		case session.FieldConversationLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConversationLog); err != nil {
					return fmt.Errorf("unmarshal field conversation_log: %w", err)
				}
			}
		case session.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bot_id=")
	builder.WriteString(_m.BotID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("final_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalMode))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("total_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMessages))
	builder.WriteString(", ")
	builder.WriteString("detection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectionCount))
	builder.WriteString(", ")
	builder.WriteString("honeypot_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoneypotResponses))
	builder.WriteString(", ")
	builder.WriteString("attack_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttackTypes))
	builder.WriteString(", ")
	builder.WriteString("conversation_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationLog))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
