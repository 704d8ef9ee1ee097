// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AlertUpdate) SetLevel(v alert.Level) *AlertUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableLevel(v *alert.Level) *AlertUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertUpdate) SetTitle(v string) *AlertUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTitle(v *string) *AlertUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AlertUpdate) SetSummary(v string) *AlertUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSummary(v *string) *AlertUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *AlertUpdate) SetBotID(v string) *AlertUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableBotID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *AlertUpdate) ClearBotID() *AlertUpdate {
	_u.mutation.ClearBotID()
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AlertUpdate) SetEventID(v string) *AlertUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableEventID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *AlertUpdate) ClearEventID() *AlertUpdate {
	_u.mutation.ClearEventID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AlertUpdate) SetSessionID(v string) *AlertUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSessionID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AlertUpdate) ClearSessionID() *AlertUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *AlertUpdate) SetAcknowledged(v bool) *AlertUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAcknowledged(v *bool) *AlertUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := alert.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Alert.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(alert.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(alert.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(alert.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(alert.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(alert.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(alert.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(alert.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(alert.FieldAcknowledged, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetLevel sets the "level" field.
func (_u *AlertUpdateOne) SetLevel(v alert.Level) *AlertUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableLevel(v *alert.Level) *AlertUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertUpdateOne) SetTitle(v string) *AlertUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTitle(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AlertUpdateOne) SetSummary(v string) *AlertUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSummary(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *AlertUpdateOne) SetBotID(v string) *AlertUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableBotID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *AlertUpdateOne) ClearBotID() *AlertUpdateOne {
	_u.mutation.ClearBotID()
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AlertUpdateOne) SetEventID(v string) *AlertUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableEventID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *AlertUpdateOne) ClearEventID() *AlertUpdateOne {
	_u.mutation.ClearEventID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AlertUpdateOne) SetSessionID(v string) *AlertUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSessionID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AlertUpdateOne) ClearSessionID() *AlertUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *AlertUpdateOne) SetAcknowledged(v bool) *AlertUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAcknowledged(v *bool) *AlertUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := alert.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Alert.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(alert.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(alert.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(alert.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(alert.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(alert.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(alert.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(alert.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(alert.FieldAcknowledged, field.TypeBool, value)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
