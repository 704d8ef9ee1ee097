// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/predicate"
	"github.com/honeybotlabs/honeybot/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *SessionUpdate) SetBotID(v string) *SessionUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableBotID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdate) SetStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetFinalMode sets the "final_mode" field.
func (_u *SessionUpdate) SetFinalMode(v session.FinalMode) *SessionUpdate {
	_u.mutation.SetFinalMode(v)
	return _u
}

// SetNillableFinalMode sets the "final_mode" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinalMode(v *session.FinalMode) *SessionUpdate {
	if v != nil {
		_u.SetFinalMode(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionUpdate) SetFinalScore(v float64) *SessionUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinalScore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionUpdate) AddFinalScore(v float64) *SessionUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionUpdate) SetMaxScore(v float64) *SessionUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMaxScore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionUpdate) AddMaxScore(v float64) *SessionUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *SessionUpdate) SetTotalMessages(v int) *SessionUpdate {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalMessages(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *SessionUpdate) AddTotalMessages(v int) *SessionUpdate {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetDetectionCount sets the "detection_count" field.
func (_u *SessionUpdate) SetDetectionCount(v int) *SessionUpdate {
	_u.mutation.ResetDetectionCount()
	_u.mutation.SetDetectionCount(v)
	return _u
}

// SetNillableDetectionCount sets the "detection_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDetectionCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDetectionCount(*v)
	}
	return _u
}

// AddDetectionCount adds value to the "detection_count" field.
func (_u *SessionUpdate) AddDetectionCount(v int) *SessionUpdate {
	_u.mutation.AddDetectionCount(v)
	return _u
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (_u *SessionUpdate) SetHoneypotResponses(v int) *SessionUpdate {
	_u.mutation.ResetHoneypotResponses()
	_u.mutation.SetHoneypotResponses(v)
	return _u
}

// SetNillableHoneypotResponses sets the "honeypot_responses" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableHoneypotResponses(v *int) *SessionUpdate {
	if v != nil {
		_u.SetHoneypotResponses(*v)
	}
	return _u
}

// AddHoneypotResponses adds value to the "honeypot_responses" field.
func (_u *SessionUpdate) AddHoneypotResponses(v int) *SessionUpdate {
	_u.mutation.AddHoneypotResponses(v)
	return _u
}

// SetAttackTypes sets the "attack_types" field.
func (_u *SessionUpdate) SetAttackTypes(v []string) *SessionUpdate {
	_u.mutation.SetAttackTypes(v)
	return _u
}

// AppendAttackTypes appends value to the "attack_types" field.
func (_u *SessionUpdate) AppendAttackTypes(v []string) *SessionUpdate {
	_u.mutation.AppendAttackTypes(v)
	return _u
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (_u *SessionUpdate) ClearAttackTypes() *SessionUpdate {
	_u.mutation.ClearAttackTypes()
	return _u
}

// SetConversationLog sets the "conversation_log" field.
func (_u *SessionUpdate) SetConversationLog(v []map[string]interface{}) *SessionUpdate {
	_u.mutation.SetConversationLog(v)
	return _u
}

// AppendConversationLog appends value to the "conversation_log" field.
func (_u *SessionUpdate) AppendConversationLog(v []map[string]interface{}) *SessionUpdate {
	_u.mutation.AppendConversationLog(v)
	return _u
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (_u *SessionUpdate) ClearConversationLog() *SessionUpdate {
	_u.mutation.ClearConversationLog()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdate) SetMetadata(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdate) ClearMetadata() *SessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.FinalMode(); ok {
		if err := session.FinalModeValidator(v); err != nil {
			return &ValidationError{Name: "final_mode", err: fmt.Errorf(`ent: validator failed for field "Session.final_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(session.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinalMode(); ok {
		_spec.SetField(session.FieldFinalMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(session.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(session.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(session.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(session.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(session.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(session.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetectionCount(); ok {
		_spec.SetField(session.FieldDetectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDetectionCount(); ok {
		_spec.AddField(session.FieldDetectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HoneypotResponses(); ok {
		_spec.SetField(session.FieldHoneypotResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoneypotResponses(); ok {
		_spec.AddField(session.FieldHoneypotResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttackTypes(); ok {
		_spec.SetField(session.FieldAttackTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttackTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAttackTypes, value)
		})
	}
	if _u.mutation.AttackTypesCleared() {
		_spec.ClearField(session.FieldAttackTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationLog(); ok {
		_spec.SetField(session.FieldConversationLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldConversationLog, value)
		})
	}
	if _u.mutation.ConversationLogCleared() {
		_spec.ClearField(session.FieldConversationLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetBotID sets the "bot_id" field.
func (_u *SessionUpdateOne) SetBotID(v string) *SessionUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBotID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdateOne) SetStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetFinalMode sets the "final_mode" field.
func (_u *SessionUpdateOne) SetFinalMode(v session.FinalMode) *SessionUpdateOne {
	_u.mutation.SetFinalMode(v)
	return _u
}

// SetNillableFinalMode sets the "final_mode" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinalMode(v *session.FinalMode) *SessionUpdateOne {
	if v != nil {
		_u.SetFinalMode(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionUpdateOne) SetFinalScore(v float64) *SessionUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinalScore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionUpdateOne) AddFinalScore(v float64) *SessionUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionUpdateOne) SetMaxScore(v float64) *SessionUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMaxScore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionUpdateOne) AddMaxScore(v float64) *SessionUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *SessionUpdateOne) SetTotalMessages(v int) *SessionUpdateOne {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalMessages(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *SessionUpdateOne) AddTotalMessages(v int) *SessionUpdateOne {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetDetectionCount sets the "detection_count" field.
func (_u *SessionUpdateOne) SetDetectionCount(v int) *SessionUpdateOne {
	_u.mutation.ResetDetectionCount()
	_u.mutation.SetDetectionCount(v)
	return _u
}

// SetNillableDetectionCount sets the "detection_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDetectionCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDetectionCount(*v)
	}
	return _u
}

// AddDetectionCount adds value to the "detection_count" field.
func (_u *SessionUpdateOne) AddDetectionCount(v int) *SessionUpdateOne {
	_u.mutation.AddDetectionCount(v)
	return _u
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (_u *SessionUpdateOne) SetHoneypotResponses(v int) *SessionUpdateOne {
	_u.mutation.ResetHoneypotResponses()
	_u.mutation.SetHoneypotResponses(v)
	return _u
}

// SetNillableHoneypotResponses sets the "honeypot_responses" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableHoneypotResponses(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetHoneypotResponses(*v)
	}
	return _u
}

// AddHoneypotResponses adds value to the "honeypot_responses" field.
func (_u *SessionUpdateOne) AddHoneypotResponses(v int) *SessionUpdateOne {
	_u.mutation.AddHoneypotResponses(v)
	return _u
}

// SetAttackTypes sets the "attack_types" field.
func (_u *SessionUpdateOne) SetAttackTypes(v []string) *SessionUpdateOne {
	_u.mutation.SetAttackTypes(v)
	return _u
}

// AppendAttackTypes appends value to the "attack_types" field.
func (_u *SessionUpdateOne) AppendAttackTypes(v []string) *SessionUpdateOne {
	_u.mutation.AppendAttackTypes(v)
	return _u
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (_u *SessionUpdateOne) ClearAttackTypes() *SessionUpdateOne {
	_u.mutation.ClearAttackTypes()
	return _u
}

// SetConversationLog sets the "conversation_log" field.
func (_u *SessionUpdateOne) SetConversationLog(v []map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetConversationLog(v)
	return _u
}

// AppendConversationLog appends value to the "conversation_log" field.
func (_u *SessionUpdateOne) AppendConversationLog(v []map[string]interface{}) *SessionUpdateOne {
	_u.mutation.AppendConversationLog(v)
	return _u
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (_u *SessionUpdateOne) ClearConversationLog() *SessionUpdateOne {
	_u.mutation.ClearConversationLog()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdateOne) SetMetadata(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdateOne) ClearMetadata() *SessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.FinalMode(); ok {
		if err := session.FinalModeValidator(v); err != nil {
			return &ValidationError{Name: "final_mode", err: fmt.Errorf(`ent: validator failed for field "Session.final_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinalMode(); ok {
		_spec.SetField(session.FieldFinalMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(session.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(session.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(session.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(session.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(session.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(session.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetectionCount(); ok {
		_spec.SetField(session.FieldDetectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDetectionCount(); ok {
		_spec.AddField(session.FieldDetectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HoneypotResponses(); ok {
		_spec.SetField(session.FieldHoneypotResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoneypotResponses(); ok {
		_spec.AddField(session.FieldHoneypotResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttackTypes(); ok {
		_spec.SetField(session.FieldAttackTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttackTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAttackTypes, value)
		})
	}
	if _u.mutation.AttackTypesCleared() {
		_spec.ClearField(session.FieldAttackTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationLog(); ok {
		_spec.SetField(session.FieldConversationLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldConversationLog, value)
		})
	}
	if _u.mutation.ConversationLogCleared() {
		_spec.ClearField(session.FieldConversationLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
