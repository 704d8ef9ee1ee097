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
	"github.com/honeybotlabs/honeybot/ent/alert"
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLevel sets the "level" field.
func (_c *AlertCreate) SetLevel(v alert.Level) *AlertCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AlertCreate) SetTitle(v string) *AlertCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AlertCreate) SetSummary(v string) *AlertCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetBotID sets the "bot_id" field.
func (_c *AlertCreate) SetBotID(v string) *AlertCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableBotID(v *string) *AlertCreate {
	if v != nil {
		_c.SetBotID(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *AlertCreate) SetEventID(v string) *AlertCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableEventID(v *string) *AlertCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AlertCreate) SetSessionID(v string) *AlertCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableSessionID(v *string) *AlertCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *AlertCreate) SetAcknowledged(v bool) *AlertCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *AlertCreate) SetNillableAcknowledged(v *bool) *AlertCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertCreate) SetID(v string) *AlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := alert.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Alert.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := alert.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Alert.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Alert.title"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Alert.summary"`)}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "Alert.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alert.created_at"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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
			return nil, fmt.Errorf("unexpected Alert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(alert.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(alert.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(alert.FieldBotID, field.TypeString, value)
		_node.BotID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(alert.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(alert.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.Create().
//		SetLevel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetLevel(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreate) OnConflict(opts ...sql.ConflictOption) *AlertUpsertOne {
	_c.conflict = opts
	return &AlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreate) OnConflictColumns(columns ...string) *AlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertOne{
		create: _c,
	}
}

type (
	// AlertUpsertOne is the builder for "upsert"-ing
	//  one Alert node.
	AlertUpsertOne struct {
		create *AlertCreate
	}

	// AlertUpsert is the "OnConflict" setter.
	AlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetLevel sets the "level" field.
func (u *AlertUpsert) SetLevel(v alert.Level) *AlertUpsert {
	u.Set(alert.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *AlertUpsert) UpdateLevel() *AlertUpsert {
	u.SetExcluded(alert.FieldLevel)
	return u
}

// SetTitle sets the "title" field.
func (u *AlertUpsert) SetTitle(v string) *AlertUpsert {
	u.Set(alert.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsert) UpdateTitle() *AlertUpsert {
	u.SetExcluded(alert.FieldTitle)
	return u
}

// SetSummary sets the "summary" field.
func (u *AlertUpsert) SetSummary(v string) *AlertUpsert {
	u.Set(alert.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AlertUpsert) UpdateSummary() *AlertUpsert {
	u.SetExcluded(alert.FieldSummary)
	return u
}

// SetBotID sets the "bot_id" field.
func (u *AlertUpsert) SetBotID(v string) *AlertUpsert {
	u.Set(alert.FieldBotID, v)
	return u
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateBotID() *AlertUpsert {
	u.SetExcluded(alert.FieldBotID)
	return u
}

// ClearBotID clears the value of the "bot_id" field.
func (u *AlertUpsert) ClearBotID() *AlertUpsert {
	u.SetNull(alert.FieldBotID)
	return u
}

// SetEventID sets the "event_id" field.
func (u *AlertUpsert) SetEventID(v string) *AlertUpsert {
	u.Set(alert.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateEventID() *AlertUpsert {
	u.SetExcluded(alert.FieldEventID)
	return u
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlertUpsert) ClearEventID() *AlertUpsert {
	u.SetNull(alert.FieldEventID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AlertUpsert) SetSessionID(v string) *AlertUpsert {
	u.Set(alert.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateSessionID() *AlertUpsert {
	u.SetExcluded(alert.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *AlertUpsert) ClearSessionID() *AlertUpsert {
	u.SetNull(alert.FieldSessionID)
	return u
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AlertUpsert) SetAcknowledged(v bool) *AlertUpsert {
	u.Set(alert.FieldAcknowledged, v)
	return u
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AlertUpsert) UpdateAcknowledged() *AlertUpsert {
	u.SetExcluded(alert.FieldAcknowledged)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertOne) UpdateNewValues() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alert.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertUpsertOne) Ignore() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertOne) DoNothing() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreate.OnConflict
// documentation for more info.
func (u *AlertUpsertOne) Update(set func(*AlertUpsert)) *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetLevel sets the "level" field.
func (u *AlertUpsertOne) SetLevel(v alert.Level) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateLevel() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLevel()
	})
}

// SetTitle sets the "title" field.
func (u *AlertUpsertOne) SetTitle(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateTitle() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *AlertUpsertOne) SetSummary(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateSummary() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSummary()
	})
}

// SetBotID sets the "bot_id" field.
func (u *AlertUpsertOne) SetBotID(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateBotID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateBotID()
	})
}

// ClearBotID clears the value of the "bot_id" field.
func (u *AlertUpsertOne) ClearBotID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearBotID()
	})
}

// SetEventID sets the "event_id" field.
func (u *AlertUpsertOne) SetEventID(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateEventID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEventID()
	})
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlertUpsertOne) ClearEventID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearEventID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AlertUpsertOne) SetSessionID(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateSessionID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *AlertUpsertOne) ClearSessionID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearSessionID()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AlertUpsertOne) SetAcknowledged(v bool) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateAcknowledged() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAcknowledged()
	})
}

// Exec executes the query.
func (u *AlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlertUpsertOne.ID is not supported by MySQL driver. Use AlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
	conflict []sql.ConflictOption
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetLevel(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertUpsertBulk {
	_c.conflict = opts
	return &AlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflictColumns(columns ...string) *AlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertBulk{
		create: _c,
	}
}

// AlertUpsertBulk is the builder for "upsert"-ing
// a bulk of Alert nodes.
type AlertUpsertBulk struct {
	create *AlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertBulk) UpdateNewValues() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alert.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertUpsertBulk) Ignore() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertBulk) DoNothing() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreateBulk.OnConflict
// documentation for more info.
func (u *AlertUpsertBulk) Update(set func(*AlertUpsert)) *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetLevel sets the "level" field.
func (u *AlertUpsertBulk) SetLevel(v alert.Level) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateLevel() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLevel()
	})
}

// SetTitle sets the "title" field.
func (u *AlertUpsertBulk) SetTitle(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateTitle() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *AlertUpsertBulk) SetSummary(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateSummary() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSummary()
	})
}

// SetBotID sets the "bot_id" field.
func (u *AlertUpsertBulk) SetBotID(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateBotID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateBotID()
	})
}

// ClearBotID clears the value of the "bot_id" field.
func (u *AlertUpsertBulk) ClearBotID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearBotID()
	})
}

// SetEventID sets the "event_id" field.
func (u *AlertUpsertBulk) SetEventID(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateEventID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEventID()
	})
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlertUpsertBulk) ClearEventID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearEventID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AlertUpsertBulk) SetSessionID(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateSessionID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *AlertUpsertBulk) ClearSessionID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearSessionID()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AlertUpsertBulk) SetAcknowledged(v bool) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateAcknowledged() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAcknowledged()
	})
}

// Exec executes the query.
func (u *AlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
