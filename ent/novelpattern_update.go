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
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// NovelPatternUpdate is the builder for updating NovelPattern entities.
type NovelPatternUpdate struct {
	config
	hooks    []Hook
	mutation *NovelPatternMutation
}

// Where appends a list predicates to the NovelPatternUpdate builder.
func (_u *NovelPatternUpdate) Where(ps ...predicate.NovelPattern) *NovelPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternText sets the "pattern_text" field.
func (_u *NovelPatternUpdate) SetPatternText(v string) *NovelPatternUpdate {
	_u.mutation.SetPatternText(v)
	return _u
}

// SetNillablePatternText sets the "pattern_text" field if the given value is not nil.
func (_u *NovelPatternUpdate) SetNillablePatternText(v *string) *NovelPatternUpdate {
	if v != nil {
		_u.SetPatternText(*v)
	}
	return _u
}

// SetAttackType sets the "attack_type" field.
func (_u *NovelPatternUpdate) SetAttackType(v string) *NovelPatternUpdate {
	_u.mutation.SetAttackType(v)
	return _u
}

// SetNillableAttackType sets the "attack_type" field if the given value is not nil.
func (_u *NovelPatternUpdate) SetNillableAttackType(v *string) *NovelPatternUpdate {
	if v != nil {
		_u.SetAttackType(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *NovelPatternUpdate) SetOccurrenceCount(v int) *NovelPatternUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *NovelPatternUpdate) SetNillableOccurrenceCount(v *int) *NovelPatternUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *NovelPatternUpdate) AddOccurrenceCount(v int) *NovelPatternUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *NovelPatternUpdate) SetLastSeenAt(v time.Time) *NovelPatternUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *NovelPatternUpdate) SetNillableLastSeenAt(v *time.Time) *NovelPatternUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetSampleContexts sets the "sample_contexts" field.
func (_u *NovelPatternUpdate) SetSampleContexts(v []map[string]interface{}) *NovelPatternUpdate {
	_u.mutation.SetSampleContexts(v)
	return _u
}

// AppendSampleContexts appends value to the "sample_contexts" field.
func (_u *NovelPatternUpdate) AppendSampleContexts(v []map[string]interface{}) *NovelPatternUpdate {
	_u.mutation.AppendSampleContexts(v)
	return _u
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (_u *NovelPatternUpdate) ClearSampleContexts() *NovelPatternUpdate {
	_u.mutation.ClearSampleContexts()
	return _u
}

// Mutation returns the NovelPatternMutation object of the builder.
func (_u *NovelPatternUpdate) Mutation() *NovelPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NovelPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NovelPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NovelPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NovelPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NovelPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(novelpattern.Table, novelpattern.Columns, sqlgraph.NewFieldSpec(novelpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternText(); ok {
		_spec.SetField(novelpattern.FieldPatternText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackType(); ok {
		_spec.SetField(novelpattern.FieldAttackType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(novelpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(novelpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(novelpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SampleContexts(); ok {
		_spec.SetField(novelpattern.FieldSampleContexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleContexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelpattern.FieldSampleContexts, value)
		})
	}
	if _u.mutation.SampleContextsCleared() {
		_spec.ClearField(novelpattern.FieldSampleContexts, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{novelpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NovelPatternUpdateOne is the builder for updating a single NovelPattern entity.
type NovelPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NovelPatternMutation
}

// SetPatternText sets the "pattern_text" field.
func (_u *NovelPatternUpdateOne) SetPatternText(v string) *NovelPatternUpdateOne {
	_u.mutation.SetPatternText(v)
	return _u
}

// SetNillablePatternText sets the "pattern_text" field if the given value is not nil.
func (_u *NovelPatternUpdateOne) SetNillablePatternText(v *string) *NovelPatternUpdateOne {
	if v != nil {
		_u.SetPatternText(*v)
	}
	return _u
}

// SetAttackType sets the "attack_type" field.
func (_u *NovelPatternUpdateOne) SetAttackType(v string) *NovelPatternUpdateOne {
	_u.mutation.SetAttackType(v)
	return _u
}

// SetNillableAttackType sets the "attack_type" field if the given value is not nil.
func (_u *NovelPatternUpdateOne) SetNillableAttackType(v *string) *NovelPatternUpdateOne {
	if v != nil {
		_u.SetAttackType(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *NovelPatternUpdateOne) SetOccurrenceCount(v int) *NovelPatternUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *NovelPatternUpdateOne) SetNillableOccurrenceCount(v *int) *NovelPatternUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *NovelPatternUpdateOne) AddOccurrenceCount(v int) *NovelPatternUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *NovelPatternUpdateOne) SetLastSeenAt(v time.Time) *NovelPatternUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *NovelPatternUpdateOne) SetNillableLastSeenAt(v *time.Time) *NovelPatternUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetSampleContexts sets the "sample_contexts" field.
func (_u *NovelPatternUpdateOne) SetSampleContexts(v []map[string]interface{}) *NovelPatternUpdateOne {
	_u.mutation.SetSampleContexts(v)
	return _u
}

// AppendSampleContexts appends value to the "sample_contexts" field.
func (_u *NovelPatternUpdateOne) AppendSampleContexts(v []map[string]interface{}) *NovelPatternUpdateOne {
	_u.mutation.AppendSampleContexts(v)
	return _u
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (_u *NovelPatternUpdateOne) ClearSampleContexts() *NovelPatternUpdateOne {
	_u.mutation.ClearSampleContexts()
	return _u
}

// Mutation returns the NovelPatternMutation object of the builder.
func (_u *NovelPatternUpdateOne) Mutation() *NovelPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the NovelPatternUpdate builder.
func (_u *NovelPatternUpdateOne) Where(ps ...predicate.NovelPattern) *NovelPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NovelPatternUpdateOne) Select(field string, fields ...string) *NovelPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NovelPattern entity.
func (_u *NovelPatternUpdateOne) Save(ctx context.Context) (*NovelPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NovelPatternUpdateOne) SaveX(ctx context.Context) *NovelPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NovelPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NovelPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NovelPatternUpdateOne) sqlSave(ctx context.Context) (_node *NovelPattern, err error) {
	_spec := sqlgraph.NewUpdateSpec(novelpattern.Table, novelpattern.Columns, sqlgraph.NewFieldSpec(novelpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NovelPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, novelpattern.FieldID)
		for _, f := range fields {
			if !novelpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != novelpattern.FieldID {
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
	if value, ok := _u.mutation.PatternText(); ok {
		_spec.SetField(novelpattern.FieldPatternText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackType(); ok {
		_spec.SetField(novelpattern.FieldAttackType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(novelpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(novelpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(novelpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SampleContexts(); ok {
		_spec.SetField(novelpattern.FieldSampleContexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleContexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, novelpattern.FieldSampleContexts, value)
		})
	}
	if _u.mutation.SampleContextsCleared() {
		_spec.ClearField(novelpattern.FieldSampleContexts, field.TypeJSON)
	}
	_node = &NovelPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{novelpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
