// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBotID sets the "bot_id" field.
func (_c *EventCreate) SetBotID(v string) *EventCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v event.EventType) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventType(v *event.EventType) *EventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *EventCreate) SetLevel(v event.Level) *EventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *EventCreate) SetNillableLevel(v *event.Level) *EventCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EventCreate) SetUserID(v string) *EventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableUserID(v *string) *EventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *EventCreate) SetSessionID(v string) *EventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableSessionID(v *string) *EventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetThreatScore sets the "threat_score" field.
func (_c *EventCreate) SetThreatScore(v float64) *EventCreate {
	_c.mutation.SetThreatScore(v)
	return _c
}

// SetNillableThreatScore sets the "threat_score" field if the given value is not nil.
func (_c *EventCreate) SetNillableThreatScore(v *float64) *EventCreate {
	if v != nil {
		_c.SetThreatScore(*v)
	}
	return _c
}

// SetDetectionTypes sets the "detection_types" field.
func (_c *EventCreate) SetDetectionTypes(v []string) *EventCreate {
	_c.mutation.SetDetectionTypes(v)
	return _c
}

// SetMessageContent sets the "message_content" field.
func (_c *EventCreate) SetMessageContent(v string) *EventCreate {
	_c.mutation.SetMessageContent(v)
	return _c
}

// SetNillableMessageContent sets the "message_content" field if the given value is not nil.
func (_c *EventCreate) SetNillableMessageContent(v *string) *EventCreate {
	if v != nil {
		_c.SetMessageContent(*v)
	}
	return _c
}

// SetMessageHash sets the "message_hash" field.
func (_c *EventCreate) SetMessageHash(v string) *EventCreate {
	_c.mutation.SetMessageHash(v)
	return _c
}

// SetNillableMessageHash sets the "message_hash" field if the given value is not nil.
func (_c *EventCreate) SetNillableMessageHash(v *string) *EventCreate {
	if v != nil {
		_c.SetMessageHash(*v)
	}
	return _c
}

// SetAnalysisResult sets the "analysis_result" field.
func (_c *EventCreate) SetAnalysisResult(v map[string]interface{}) *EventCreate {
	_c.mutation.SetAnalysisResult(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EventCreate) SetMetadata(v map[string]interface{}) *EventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.EventType(); !ok {
		v := event.DefaultEventType
		_c.mutation.SetEventType(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := event.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.BotID(); !ok {
		return &ValidationError{Name: "bot_id", err: errors.New(`ent: missing required field "Event.bot_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Event.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := event.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Event.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(event.FieldBotID, field.TypeString, value)
		_node.BotID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(event.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(event.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ThreatScore(); ok {
		_spec.SetField(event.FieldThreatScore, field.TypeFloat64, value)
		_node.ThreatScore = &value
	}
	if value, ok := _c.mutation.DetectionTypes(); ok {
		_spec.SetField(event.FieldDetectionTypes, field.TypeJSON, value)
		_node.DetectionTypes = value
	}
	if value, ok := _c.mutation.MessageContent(); ok {
		_spec.SetField(event.FieldMessageContent, field.TypeString, value)
		_node.MessageContent = &value
	}
	if value, ok := _c.mutation.MessageHash(); ok {
		_spec.SetField(event.FieldMessageHash, field.TypeString, value)
		_node.MessageHash = value
	}
	if value, ok := _c.mutation.AnalysisResult(); ok {
		_spec.SetField(event.FieldAnalysisResult, field.TypeJSON, value)
		_node.AnalysisResult = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(event.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetBotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetBotID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetBotID sets the "bot_id" field.
func (u *EventUpsert) SetBotID(v string) *EventUpsert {
	u.Set(event.FieldBotID, v)
	return u
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateBotID() *EventUpsert {
	u.SetExcluded(event.FieldBotID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *EventUpsert) SetEventType(v event.EventType) *EventUpsert {
	u.Set(event.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventType() *EventUpsert {
	u.SetExcluded(event.FieldEventType)
	return u
}

// SetLevel sets the "level" field.
func (u *EventUpsert) SetLevel(v event.Level) *EventUpsert {
	u.Set(event.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *EventUpsert) UpdateLevel() *EventUpsert {
	u.SetExcluded(event.FieldLevel)
	return u
}

// SetUserID sets the "user_id" field.
func (u *EventUpsert) SetUserID(v string) *EventUpsert {
	u.Set(event.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateUserID() *EventUpsert {
	u.SetExcluded(event.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *EventUpsert) ClearUserID() *EventUpsert {
	u.SetNull(event.FieldUserID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *EventUpsert) SetSessionID(v string) *EventUpsert {
	u.Set(event.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateSessionID() *EventUpsert {
	u.SetExcluded(event.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *EventUpsert) ClearSessionID() *EventUpsert {
	u.SetNull(event.FieldSessionID)
	return u
}

// SetThreatScore sets the "threat_score" field.
func (u *EventUpsert) SetThreatScore(v float64) *EventUpsert {
	u.Set(event.FieldThreatScore, v)
	return u
}

// UpdateThreatScore sets the "threat_score" field to the value that was provided on create.
func (u *EventUpsert) UpdateThreatScore() *EventUpsert {
	u.SetExcluded(event.FieldThreatScore)
	return u
}

// AddThreatScore adds v to the "threat_score" field.
func (u *EventUpsert) AddThreatScore(v float64) *EventUpsert {
	u.Add(event.FieldThreatScore, v)
	return u
}

// ClearThreatScore clears the value of the "threat_score" field.
func (u *EventUpsert) ClearThreatScore() *EventUpsert {
	u.SetNull(event.FieldThreatScore)
	return u
}

// SetDetectionTypes sets the "detection_types" field.
func (u *EventUpsert) SetDetectionTypes(v []string) *EventUpsert {
	u.Set(event.FieldDetectionTypes, v)
	return u
}

// UpdateDetectionTypes sets the "detection_types" field to the value that was provided on create.
func (u *EventUpsert) UpdateDetectionTypes() *EventUpsert {
	u.SetExcluded(event.FieldDetectionTypes)
	return u
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (u *EventUpsert) ClearDetectionTypes() *EventUpsert {
	u.SetNull(event.FieldDetectionTypes)
	return u
}

// SetMessageContent sets the "message_content" field.
func (u *EventUpsert) SetMessageContent(v string) *EventUpsert {
	u.Set(event.FieldMessageContent, v)
	return u
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *EventUpsert) UpdateMessageContent() *EventUpsert {
	u.SetExcluded(event.FieldMessageContent)
	return u
}

// ClearMessageContent clears the value of the "message_content" field.
func (u *EventUpsert) ClearMessageContent() *EventUpsert {
	u.SetNull(event.FieldMessageContent)
	return u
}

// SetMessageHash sets the "message_hash" field.
func (u *EventUpsert) SetMessageHash(v string) *EventUpsert {
	u.Set(event.FieldMessageHash, v)
	return u
}

// UpdateMessageHash sets the "message_hash" field to the value that was provided on create.
func (u *EventUpsert) UpdateMessageHash() *EventUpsert {
	u.SetExcluded(event.FieldMessageHash)
	return u
}

// ClearMessageHash clears the value of the "message_hash" field.
func (u *EventUpsert) ClearMessageHash() *EventUpsert {
	u.SetNull(event.FieldMessageHash)
	return u
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *EventUpsert) SetAnalysisResult(v map[string]interface{}) *EventUpsert {
	u.Set(event.FieldAnalysisResult, v)
	return u
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *EventUpsert) UpdateAnalysisResult() *EventUpsert {
	u.SetExcluded(event.FieldAnalysisResult)
	return u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *EventUpsert) ClearAnalysisResult() *EventUpsert {
	u.SetNull(event.FieldAnalysisResult)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EventUpsert) SetMetadata(v map[string]interface{}) *EventUpsert {
	u.Set(event.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EventUpsert) UpdateMetadata() *EventUpsert {
	u.SetExcluded(event.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EventUpsert) ClearMetadata() *EventUpsert {
	u.SetNull(event.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotID sets the "bot_id" field.
func (u *EventUpsertOne) SetBotID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateBotID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateBotID()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertOne) SetEventType(v event.EventType) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetLevel sets the "level" field.
func (u *EventUpsertOne) SetLevel(v event.Level) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLevel() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLevel()
	})
}

// SetUserID sets the "user_id" field.
func (u *EventUpsertOne) SetUserID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUserID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *EventUpsertOne) ClearUserID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *EventUpsertOne) SetSessionID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSessionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *EventUpsertOne) ClearSessionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearSessionID()
	})
}

// SetThreatScore sets the "threat_score" field.
func (u *EventUpsertOne) SetThreatScore(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetThreatScore(v)
	})
}

// AddThreatScore adds v to the "threat_score" field.
func (u *EventUpsertOne) AddThreatScore(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddThreatScore(v)
	})
}

// UpdateThreatScore sets the "threat_score" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateThreatScore() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateThreatScore()
	})
}

// ClearThreatScore clears the value of the "threat_score" field.
func (u *EventUpsertOne) ClearThreatScore() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearThreatScore()
	})
}

// SetDetectionTypes sets the "detection_types" field.
func (u *EventUpsertOne) SetDetectionTypes(v []string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDetectionTypes(v)
	})
}

// UpdateDetectionTypes sets the "detection_types" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDetectionTypes() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDetectionTypes()
	})
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (u *EventUpsertOne) ClearDetectionTypes() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearDetectionTypes()
	})
}

// SetMessageContent sets the "message_content" field.
func (u *EventUpsertOne) SetMessageContent(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMessageContent(v)
	})
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMessageContent() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessageContent()
	})
}

// ClearMessageContent clears the value of the "message_content" field.
func (u *EventUpsertOne) ClearMessageContent() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessageContent()
	})
}

// SetMessageHash sets the "message_hash" field.
func (u *EventUpsertOne) SetMessageHash(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMessageHash(v)
	})
}

// UpdateMessageHash sets the "message_hash" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMessageHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessageHash()
	})
}

// ClearMessageHash clears the value of the "message_hash" field.
func (u *EventUpsertOne) ClearMessageHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessageHash()
	})
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *EventUpsertOne) SetAnalysisResult(v map[string]interface{}) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetAnalysisResult(v)
	})
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateAnalysisResult() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAnalysisResult()
	})
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *EventUpsertOne) ClearAnalysisResult() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearAnalysisResult()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EventUpsertOne) SetMetadata(v map[string]interface{}) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMetadata() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EventUpsertOne) ClearMetadata() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetBotID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotID sets the "bot_id" field.
func (u *EventUpsertBulk) SetBotID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateBotID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateBotID()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertBulk) SetEventType(v event.EventType) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetLevel sets the "level" field.
func (u *EventUpsertBulk) SetLevel(v event.Level) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLevel() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLevel()
	})
}

// SetUserID sets the "user_id" field.
func (u *EventUpsertBulk) SetUserID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUserID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *EventUpsertBulk) ClearUserID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *EventUpsertBulk) SetSessionID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSessionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *EventUpsertBulk) ClearSessionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearSessionID()
	})
}

// SetThreatScore sets the "threat_score" field.
func (u *EventUpsertBulk) SetThreatScore(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetThreatScore(v)
	})
}

// AddThreatScore adds v to the "threat_score" field.
func (u *EventUpsertBulk) AddThreatScore(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddThreatScore(v)
	})
}

// UpdateThreatScore sets the "threat_score" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateThreatScore() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateThreatScore()
	})
}

// ClearThreatScore clears the value of the "threat_score" field.
func (u *EventUpsertBulk) ClearThreatScore() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearThreatScore()
	})
}

// SetDetectionTypes sets the "detection_types" field.
func (u *EventUpsertBulk) SetDetectionTypes(v []string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDetectionTypes(v)
	})
}

// UpdateDetectionTypes sets the "detection_types" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDetectionTypes() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDetectionTypes()
	})
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (u *EventUpsertBulk) ClearDetectionTypes() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearDetectionTypes()
	})
}

// SetMessageContent sets the "message_content" field.
func (u *EventUpsertBulk) SetMessageContent(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMessageContent(v)
	})
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMessageContent() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessageContent()
	})
}

// ClearMessageContent clears the value of the "message_content" field.
func (u *EventUpsertBulk) ClearMessageContent() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessageContent()
	})
}

// SetMessageHash sets the "message_hash" field.
func (u *EventUpsertBulk) SetMessageHash(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMessageHash(v)
	})
}

// UpdateMessageHash sets the "message_hash" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMessageHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessageHash()
	})
}

// ClearMessageHash clears the value of the "message_hash" field.
func (u *EventUpsertBulk) ClearMessageHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessageHash()
	})
}

// SetAnalysisResult sets the "analysis_result" field.
func (u *EventUpsertBulk) SetAnalysisResult(v map[string]interface{}) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetAnalysisResult(v)
	})
}

// UpdateAnalysisResult sets the "analysis_result" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateAnalysisResult() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAnalysisResult()
	})
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (u *EventUpsertBulk) ClearAnalysisResult() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearAnalysisResult()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EventUpsertBulk) SetMetadata(v map[string]interface{}) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMetadata() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EventUpsertBulk) ClearMetadata() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
