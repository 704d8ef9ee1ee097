// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *EventUpdate) SetBotID(v string) *EventUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableBotID(v *string) *EventUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdate) SetEventType(v event.EventType) *EventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventType(v *event.EventType) *EventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *EventUpdate) SetLevel(v event.Level) *EventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLevel(v *event.Level) *EventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EventUpdate) SetUserID(v string) *EventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableUserID(v *string) *EventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EventUpdate) ClearUserID() *EventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdate) SetSessionID(v string) *EventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSessionID(v *string) *EventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *EventUpdate) ClearSessionID() *EventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetThreatScore sets the "threat_score" field.
func (_u *EventUpdate) SetThreatScore(v float64) *EventUpdate {
	_u.mutation.ResetThreatScore()
	_u.mutation.SetThreatScore(v)
	return _u
}

// SetNillableThreatScore sets the "threat_score" field if the given value is not nil.
func (_u *EventUpdate) SetNillableThreatScore(v *float64) *EventUpdate {
	if v != nil {
		_u.SetThreatScore(*v)
	}
	return _u
}

// AddThreatScore adds value to the "threat_score" field.
func (_u *EventUpdate) AddThreatScore(v float64) *EventUpdate {
	_u.mutation.AddThreatScore(v)
	return _u
}

// ClearThreatScore clears the value of the "threat_score" field.
func (_u *EventUpdate) ClearThreatScore() *EventUpdate {
	_u.mutation.ClearThreatScore()
	return _u
}

// SetDetectionTypes sets the "detection_types" field.
func (_u *EventUpdate) SetDetectionTypes(v []string) *EventUpdate {
	_u.mutation.SetDetectionTypes(v)
	return _u
}

// AppendDetectionTypes appends value to the "detection_types" field.
func (_u *EventUpdate) AppendDetectionTypes(v []string) *EventUpdate {
	_u.mutation.AppendDetectionTypes(v)
	return _u
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (_u *EventUpdate) ClearDetectionTypes() *EventUpdate {
	_u.mutation.ClearDetectionTypes()
	return _u
}

// SetMessageContent sets the "message_content" field.
func (_u *EventUpdate) SetMessageContent(v string) *EventUpdate {
	_u.mutation.SetMessageContent(v)
	return _u
}

// SetNillableMessageContent sets the "message_content" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMessageContent(v *string) *EventUpdate {
	if v != nil {
		_u.SetMessageContent(*v)
	}
	return _u
}

// ClearMessageContent clears the value of the "message_content" field.
func (_u *EventUpdate) ClearMessageContent() *EventUpdate {
	_u.mutation.ClearMessageContent()
	return _u
}

// SetMessageHash sets the "message_hash" field.
func (_u *EventUpdate) SetMessageHash(v string) *EventUpdate {
	_u.mutation.SetMessageHash(v)
	return _u
}

// SetNillableMessageHash sets the "message_hash" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMessageHash(v *string) *EventUpdate {
	if v != nil {
		_u.SetMessageHash(*v)
	}
	return _u
}

// ClearMessageHash clears the value of the "message_hash" field.
func (_u *EventUpdate) ClearMessageHash() *EventUpdate {
	_u.mutation.ClearMessageHash()
	return _u
}

// SetAnalysisResult sets the "analysis_result" field.
func (_u *EventUpdate) SetAnalysisResult(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetAnalysisResult(v)
	return _u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (_u *EventUpdate) ClearAnalysisResult() *EventUpdate {
	_u.mutation.ClearAnalysisResult()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventUpdate) SetMetadata(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventUpdate) ClearMetadata() *EventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := event.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Event.level": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(event.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(event.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(event.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(event.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(event.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreatScore(); ok {
		_spec.SetField(event.FieldThreatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreatScore(); ok {
		_spec.AddField(event.FieldThreatScore, field.TypeFloat64, value)
	}
	if _u.mutation.ThreatScoreCleared() {
		_spec.ClearField(event.FieldThreatScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DetectionTypes(); ok {
		_spec.SetField(event.FieldDetectionTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectionTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldDetectionTypes, value)
		})
	}
	if _u.mutation.DetectionTypesCleared() {
		_spec.ClearField(event.FieldDetectionTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(event.FieldMessageContent, field.TypeString, value)
	}
	if _u.mutation.MessageContentCleared() {
		_spec.ClearField(event.FieldMessageContent, field.TypeString)
	}
	if value, ok := _u.mutation.MessageHash(); ok {
		_spec.SetField(event.FieldMessageHash, field.TypeString, value)
	}
	if _u.mutation.MessageHashCleared() {
		_spec.ClearField(event.FieldMessageHash, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisResult(); ok {
		_spec.SetField(event.FieldAnalysisResult, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisResultCleared() {
		_spec.ClearField(event.FieldAnalysisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(event.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(event.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetBotID sets the "bot_id" field.
func (_u *EventUpdateOne) SetBotID(v string) *EventUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableBotID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdateOne) SetEventType(v event.EventType) *EventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventType(v *event.EventType) *EventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *EventUpdateOne) SetLevel(v event.Level) *EventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLevel(v *event.Level) *EventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EventUpdateOne) SetUserID(v string) *EventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableUserID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EventUpdateOne) ClearUserID() *EventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdateOne) SetSessionID(v string) *EventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSessionID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *EventUpdateOne) ClearSessionID() *EventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetThreatScore sets the "threat_score" field.
func (_u *EventUpdateOne) SetThreatScore(v float64) *EventUpdateOne {
	_u.mutation.ResetThreatScore()
	_u.mutation.SetThreatScore(v)
	return _u
}

// SetNillableThreatScore sets the "threat_score" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableThreatScore(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetThreatScore(*v)
	}
	return _u
}

// AddThreatScore adds value to the "threat_score" field.
func (_u *EventUpdateOne) AddThreatScore(v float64) *EventUpdateOne {
	_u.mutation.AddThreatScore(v)
	return _u
}

// ClearThreatScore clears the value of the "threat_score" field.
func (_u *EventUpdateOne) ClearThreatScore() *EventUpdateOne {
	_u.mutation.ClearThreatScore()
	return _u
}

// SetDetectionTypes sets the "detection_types" field.
func (_u *EventUpdateOne) SetDetectionTypes(v []string) *EventUpdateOne {
	_u.mutation.SetDetectionTypes(v)
	return _u
}

// AppendDetectionTypes appends value to the "detection_types" field.
func (_u *EventUpdateOne) AppendDetectionTypes(v []string) *EventUpdateOne {
	_u.mutation.AppendDetectionTypes(v)
	return _u
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (_u *EventUpdateOne) ClearDetectionTypes() *EventUpdateOne {
	_u.mutation.ClearDetectionTypes()
	return _u
}

// SetMessageContent sets the "message_content" field.
func (_u *EventUpdateOne) SetMessageContent(v string) *EventUpdateOne {
	_u.mutation.SetMessageContent(v)
	return _u
}

// SetNillableMessageContent sets the "message_content" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMessageContent(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetMessageContent(*v)
	}
	return _u
}

// ClearMessageContent clears the value of the "message_content" field.
func (_u *EventUpdateOne) ClearMessageContent() *EventUpdateOne {
	_u.mutation.ClearMessageContent()
	return _u
}

// SetMessageHash sets the "message_hash" field.
func (_u *EventUpdateOne) SetMessageHash(v string) *EventUpdateOne {
	_u.mutation.SetMessageHash(v)
	return _u
}

// SetNillableMessageHash sets the "message_hash" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMessageHash(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetMessageHash(*v)
	}
	return _u
}

// ClearMessageHash clears the value of the "message_hash" field.
func (_u *EventUpdateOne) ClearMessageHash() *EventUpdateOne {
	_u.mutation.ClearMessageHash()
	return _u
}

// SetAnalysisResult sets the "analysis_result" field.
func (_u *EventUpdateOne) SetAnalysisResult(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetAnalysisResult(v)
	return _u
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (_u *EventUpdateOne) ClearAnalysisResult() *EventUpdateOne {
	_u.mutation.ClearAnalysisResult()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventUpdateOne) SetMetadata(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventUpdateOne) ClearMetadata() *EventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := event.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Event.level": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(event.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(event.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(event.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(event.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(event.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreatScore(); ok {
		_spec.SetField(event.FieldThreatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreatScore(); ok {
		_spec.AddField(event.FieldThreatScore, field.TypeFloat64, value)
	}
	if _u.mutation.ThreatScoreCleared() {
		_spec.ClearField(event.FieldThreatScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DetectionTypes(); ok {
		_spec.SetField(event.FieldDetectionTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectionTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldDetectionTypes, value)
		})
	}
	if _u.mutation.DetectionTypesCleared() {
		_spec.ClearField(event.FieldDetectionTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(event.FieldMessageContent, field.TypeString, value)
	}
	if _u.mutation.MessageContentCleared() {
		_spec.ClearField(event.FieldMessageContent, field.TypeString)
	}
	if value, ok := _u.mutation.MessageHash(); ok {
		_spec.SetField(event.FieldMessageHash, field.TypeString, value)
	}
	if _u.mutation.MessageHashCleared() {
		_spec.ClearField(event.FieldMessageHash, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisResult(); ok {
		_spec.SetField(event.FieldAnalysisResult, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisResultCleared() {
		_spec.ClearField(event.FieldAnalysisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(event.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(event.FieldMetadata, field.TypeJSON)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
