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
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
)

// NovelPatternCreate is the builder for creating a NovelPattern entity.
type NovelPatternCreate struct {
	config
	mutation *NovelPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatternText sets the "pattern_text" field.
func (_c *NovelPatternCreate) SetPatternText(v string) *NovelPatternCreate {
	_c.mutation.SetPatternText(v)
	return _c
}

// SetAttackType sets the "attack_type" field.
func (_c *NovelPatternCreate) SetAttackType(v string) *NovelPatternCreate {
	_c.mutation.SetAttackType(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *NovelPatternCreate) SetOccurrenceCount(v int) *NovelPatternCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *NovelPatternCreate) SetNillableOccurrenceCount(v *int) *NovelPatternCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *NovelPatternCreate) SetFirstSeenAt(v time.Time) *NovelPatternCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *NovelPatternCreate) SetNillableFirstSeenAt(v *time.Time) *NovelPatternCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *NovelPatternCreate) SetLastSeenAt(v time.Time) *NovelPatternCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *NovelPatternCreate) SetNillableLastSeenAt(v *time.Time) *NovelPatternCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetSampleContexts sets the "sample_contexts" field.
func (_c *NovelPatternCreate) SetSampleContexts(v []map[string]interface{}) *NovelPatternCreate {
	_c.mutation.SetSampleContexts(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NovelPatternCreate) SetID(v string) *NovelPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NovelPatternMutation object of the builder.
func (_c *NovelPatternCreate) Mutation() *NovelPatternMutation {
	return _c.mutation
}

// Save creates the NovelPattern in the database.
func (_c *NovelPatternCreate) Save(ctx context.Context) (*NovelPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NovelPatternCreate) SaveX(ctx context.Context) *NovelPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NovelPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NovelPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NovelPatternCreate) defaults() {
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := novelpattern.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := novelpattern.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := novelpattern.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NovelPatternCreate) check() error {
	if _, ok := _c.mutation.PatternText(); !ok {
		return &ValidationError{Name: "pattern_text", err: errors.New(`ent: missing required field "NovelPattern.pattern_text"`)}
	}
	if _, ok := _c.mutation.AttackType(); !ok {
		return &ValidationError{Name: "attack_type", err: errors.New(`ent: missing required field "NovelPattern.attack_type"`)}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "NovelPattern.occurrence_count"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "NovelPattern.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "NovelPattern.last_seen_at"`)}
	}
	return nil
}

func (_c *NovelPatternCreate) sqlSave(ctx context.Context) (*NovelPattern, error) {
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
			return nil, fmt.Errorf("unexpected NovelPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NovelPatternCreate) createSpec() (*NovelPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &NovelPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(novelpattern.Table, sqlgraph.NewFieldSpec(novelpattern.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PatternText(); ok {
		_spec.SetField(novelpattern.FieldPatternText, field.TypeString, value)
		_node.PatternText = value
	}
	if value, ok := _c.mutation.AttackType(); ok {
		_spec.SetField(novelpattern.FieldAttackType, field.TypeString, value)
		_node.AttackType = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(novelpattern.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(novelpattern.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(novelpattern.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.SampleContexts(); ok {
		_spec.SetField(novelpattern.FieldSampleContexts, field.TypeJSON, value)
		_node.SampleContexts = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NovelPattern.Create().
//		SetPatternText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NovelPatternUpsert) {
//			SetPatternText(v+v).
//		}).
//		Exec(ctx)
func (_c *NovelPatternCreate) OnConflict(opts ...sql.ConflictOption) *NovelPatternUpsertOne {
	_c.conflict = opts
	return &NovelPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NovelPatternCreate) OnConflictColumns(columns ...string) *NovelPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NovelPatternUpsertOne{
		create: _c,
	}
}

type (
	// NovelPatternUpsertOne is the builder for "upsert"-ing
	//  one NovelPattern node.
	NovelPatternUpsertOne struct {
		create *NovelPatternCreate
	}

	// NovelPatternUpsert is the "OnConflict" setter.
	NovelPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatternText sets the "pattern_text" field.
func (u *NovelPatternUpsert) SetPatternText(v string) *NovelPatternUpsert {
	u.Set(novelpattern.FieldPatternText, v)
	return u
}

// UpdatePatternText sets the "pattern_text" field to the value that was provided on create.
func (u *NovelPatternUpsert) UpdatePatternText() *NovelPatternUpsert {
	u.SetExcluded(novelpattern.FieldPatternText)
	return u
}

// SetAttackType sets the "attack_type" field.
func (u *NovelPatternUpsert) SetAttackType(v string) *NovelPatternUpsert {
	u.Set(novelpattern.FieldAttackType, v)
	return u
}

// UpdateAttackType sets the "attack_type" field to the value that was provided on create.
func (u *NovelPatternUpsert) UpdateAttackType() *NovelPatternUpsert {
	u.SetExcluded(novelpattern.FieldAttackType)
	return u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (u *NovelPatternUpsert) SetOccurrenceCount(v int) *NovelPatternUpsert {
	u.Set(novelpattern.FieldOccurrenceCount, v)
	return u
}

// UpdateOccurrenceCount sets the "occurrence_count" field to the value that was provided on create.
func (u *NovelPatternUpsert) UpdateOccurrenceCount() *NovelPatternUpsert {
	u.SetExcluded(novelpattern.FieldOccurrenceCount)
	return u
}

// AddOccurrenceCount adds v to the "occurrence_count" field.
func (u *NovelPatternUpsert) AddOccurrenceCount(v int) *NovelPatternUpsert {
	u.Add(novelpattern.FieldOccurrenceCount, v)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *NovelPatternUpsert) SetLastSeenAt(v time.Time) *NovelPatternUpsert {
	u.Set(novelpattern.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *NovelPatternUpsert) UpdateLastSeenAt() *NovelPatternUpsert {
	u.SetExcluded(novelpattern.FieldLastSeenAt)
	return u
}

// SetSampleContexts sets the "sample_contexts" field.
func (u *NovelPatternUpsert) SetSampleContexts(v []map[string]interface{}) *NovelPatternUpsert {
	u.Set(novelpattern.FieldSampleContexts, v)
	return u
}

// UpdateSampleContexts sets the "sample_contexts" field to the value that was provided on create.
func (u *NovelPatternUpsert) UpdateSampleContexts() *NovelPatternUpsert {
	u.SetExcluded(novelpattern.FieldSampleContexts)
	return u
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (u *NovelPatternUpsert) ClearSampleContexts() *NovelPatternUpsert {
	u.SetNull(novelpattern.FieldSampleContexts)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(novelpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NovelPatternUpsertOne) UpdateNewValues() *NovelPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(novelpattern.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(novelpattern.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NovelPatternUpsertOne) Ignore() *NovelPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NovelPatternUpsertOne) DoNothing() *NovelPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NovelPatternCreate.OnConflict
// documentation for more info.
func (u *NovelPatternUpsertOne) Update(set func(*NovelPatternUpsert)) *NovelPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NovelPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternText sets the "pattern_text" field.
func (u *NovelPatternUpsertOne) SetPatternText(v string) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetPatternText(v)
	})
}

// UpdatePatternText sets the "pattern_text" field to the value that was provided on create.
func (u *NovelPatternUpsertOne) UpdatePatternText() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdatePatternText()
	})
}

// SetAttackType sets the "attack_type" field.
func (u *NovelPatternUpsertOne) SetAttackType(v string) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetAttackType(v)
	})
}

// UpdateAttackType sets the "attack_type" field to the value that was provided on create.
func (u *NovelPatternUpsertOne) UpdateAttackType() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateAttackType()
	})
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (u *NovelPatternUpsertOne) SetOccurrenceCount(v int) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetOccurrenceCount(v)
	})
}

// AddOccurrenceCount adds v to the "occurrence_count" field.
func (u *NovelPatternUpsertOne) AddOccurrenceCount(v int) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.AddOccurrenceCount(v)
	})
}

// UpdateOccurrenceCount sets the "occurrence_count" field to the value that was provided on create.
func (u *NovelPatternUpsertOne) UpdateOccurrenceCount() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateOccurrenceCount()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *NovelPatternUpsertOne) SetLastSeenAt(v time.Time) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *NovelPatternUpsertOne) UpdateLastSeenAt() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetSampleContexts sets the "sample_contexts" field.
func (u *NovelPatternUpsertOne) SetSampleContexts(v []map[string]interface{}) *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetSampleContexts(v)
	})
}

// UpdateSampleContexts sets the "sample_contexts" field to the value that was provided on create.
func (u *NovelPatternUpsertOne) UpdateSampleContexts() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateSampleContexts()
	})
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (u *NovelPatternUpsertOne) ClearSampleContexts() *NovelPatternUpsertOne {
	return u.Update(func(s *NovelPatternUpsert) {
		s.ClearSampleContexts()
	})
}

// Exec executes the query.
func (u *NovelPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NovelPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NovelPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NovelPatternUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: NovelPatternUpsertOne.ID is not supported by MySQL driver. Use NovelPatternUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NovelPatternUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NovelPatternCreateBulk is the builder for creating many NovelPattern entities in bulk.
type NovelPatternCreateBulk struct {
	config
	err      error
	builders []*NovelPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the NovelPattern entities in the database.
func (_c *NovelPatternCreateBulk) Save(ctx context.Context) ([]*NovelPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NovelPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NovelPatternMutation)
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
func (_c *NovelPatternCreateBulk) SaveX(ctx context.Context) []*NovelPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NovelPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NovelPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NovelPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NovelPatternUpsert) {
//			SetPatternText(v+v).
//		}).
//		Exec(ctx)
func (_c *NovelPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *NovelPatternUpsertBulk {
	_c.conflict = opts
	return &NovelPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NovelPatternCreateBulk) OnConflictColumns(columns ...string) *NovelPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NovelPatternUpsertBulk{
		create: _c,
	}
}

// NovelPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of NovelPattern nodes.
type NovelPatternUpsertBulk struct {
	create *NovelPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(novelpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NovelPatternUpsertBulk) UpdateNewValues() *NovelPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(novelpattern.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(novelpattern.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NovelPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NovelPatternUpsertBulk) Ignore() *NovelPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NovelPatternUpsertBulk) DoNothing() *NovelPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NovelPatternCreateBulk.OnConflict
// documentation for more info.
func (u *NovelPatternUpsertBulk) Update(set func(*NovelPatternUpsert)) *NovelPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NovelPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternText sets the "pattern_text" field.
func (u *NovelPatternUpsertBulk) SetPatternText(v string) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetPatternText(v)
	})
}

// UpdatePatternText sets the "pattern_text" field to the value that was provided on create.
func (u *NovelPatternUpsertBulk) UpdatePatternText() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdatePatternText()
	})
}

// SetAttackType sets the "attack_type" field.
func (u *NovelPatternUpsertBulk) SetAttackType(v string) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetAttackType(v)
	})
}

// UpdateAttackType sets the "attack_type" field to the value that was provided on create.
func (u *NovelPatternUpsertBulk) UpdateAttackType() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateAttackType()
	})
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (u *NovelPatternUpsertBulk) SetOccurrenceCount(v int) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetOccurrenceCount(v)
	})
}

// AddOccurrenceCount adds v to the "occurrence_count" field.
func (u *NovelPatternUpsertBulk) AddOccurrenceCount(v int) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.AddOccurrenceCount(v)
	})
}

// UpdateOccurrenceCount sets the "occurrence_count" field to the value that was provided on create.
func (u *NovelPatternUpsertBulk) UpdateOccurrenceCount() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateOccurrenceCount()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *NovelPatternUpsertBulk) SetLastSeenAt(v time.Time) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *NovelPatternUpsertBulk) UpdateLastSeenAt() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetSampleContexts sets the "sample_contexts" field.
func (u *NovelPatternUpsertBulk) SetSampleContexts(v []map[string]interface{}) *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.SetSampleContexts(v)
	})
}

// UpdateSampleContexts sets the "sample_contexts" field to the value that was provided on create.
func (u *NovelPatternUpsertBulk) UpdateSampleContexts() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.UpdateSampleContexts()
	})
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (u *NovelPatternUpsertBulk) ClearSampleContexts() *NovelPatternUpsertBulk {
	return u.Update(func(s *NovelPatternUpsert) {
		s.ClearSampleContexts()
	})
}

// Exec executes the query.
func (u *NovelPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the NovelPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NovelPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NovelPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
