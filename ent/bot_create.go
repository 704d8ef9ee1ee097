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
	"github.com/honeybotlabs/honeybot/ent/bot"
)

// BotCreate is the builder for creating a Bot entity.
type BotCreate struct {
	config
	mutation *BotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPersonaCategory sets the "persona_category" field.
func (_c *BotCreate) SetPersonaCategory(v string) *BotCreate {
	_c.mutation.SetPersonaCategory(v)
	return _c
}

// SetPersonaName sets the "persona_name" field.
func (_c *BotCreate) SetPersonaName(v string) *BotCreate {
	_c.mutation.SetPersonaName(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *BotCreate) SetCompanyName(v string) *BotCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *BotCreate) SetNillableCompanyName(v *string) *BotCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BotCreate) SetStatus(v bot.Status) *BotCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BotCreate) SetNillableStatus(v *bot.Status) *BotCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BotCreate) SetVersion(v string) *BotCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BotCreate) SetNillableVersion(v *string) *BotCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetConfigHash sets the "config_hash" field.
func (_c *BotCreate) SetConfigHash(v string) *BotCreate {
	_c.mutation.SetConfigHash(v)
	return _c
}

// SetNillableConfigHash sets the "config_hash" field if the given value is not nil.
func (_c *BotCreate) SetNillableConfigHash(v *string) *BotCreate {
	if v != nil {
		_c.SetConfigHash(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *BotCreate) SetLastHeartbeat(v time.Time) *BotCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *BotCreate) SetNillableLastHeartbeat(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BotCreate) SetMetadata(v map[string]interface{}) *BotCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetRegisteredAt sets the "registered_at" field.
func (_c *BotCreate) SetRegisteredAt(v time.Time) *BotCreate {
	_c.mutation.SetRegisteredAt(v)
	return _c
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableRegisteredAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetRegisteredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotCreate) SetID(v string) *BotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BotMutation object of the builder.
func (_c *BotCreate) Mutation() *BotMutation {
	return _c.mutation
}

// Save creates the Bot in the database.
func (_c *BotCreate) Save(ctx context.Context) (*Bot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotCreate) SaveX(ctx context.Context) *Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := bot.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		v := bot.DefaultRegisteredAt()
		_c.mutation.SetRegisteredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotCreate) check() error {
	if _, ok := _c.mutation.PersonaCategory(); !ok {
		return &ValidationError{Name: "persona_category", err: errors.New(`ent: missing required field "Bot.persona_category"`)}
	}
	if _, ok := _c.mutation.PersonaName(); !ok {
		return &ValidationError{Name: "persona_name", err: errors.New(`ent: missing required field "Bot.persona_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Bot.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bot.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		return &ValidationError{Name: "registered_at", err: errors.New(`ent: missing required field "Bot.registered_at"`)}
	}
	return nil
}

func (_c *BotCreate) sqlSave(ctx context.Context) (*Bot, error) {
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
			return nil, fmt.Errorf("unexpected Bot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotCreate) createSpec() (*Bot, *sqlgraph.CreateSpec) {
	var (
		_node = &Bot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bot.Table, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PersonaCategory(); ok {
		_spec.SetField(bot.FieldPersonaCategory, field.TypeString, value)
		_node.PersonaCategory = value
	}
	if value, ok := _c.mutation.PersonaName(); ok {
		_spec.SetField(bot.FieldPersonaName, field.TypeString, value)
		_node.PersonaName = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(bot.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bot.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ConfigHash(); ok {
		_spec.SetField(bot.FieldConfigHash, field.TypeString, value)
		_node.ConfigHash = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(bot.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.RegisteredAt(); ok {
		_spec.SetField(bot.FieldRegisteredAt, field.TypeTime, value)
		_node.RegisteredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bot.Create().
//		SetPersonaCategory(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotUpsert) {
//			SetPersonaCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *BotCreate) OnConflict(opts ...sql.ConflictOption) *BotUpsertOne {
	_c.conflict = opts
	return &BotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotCreate) OnConflictColumns(columns ...string) *BotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotUpsertOne{
		create: _c,
	}
}

type (
	// BotUpsertOne is the builder for "upsert"-ing
	//  one Bot node.
	BotUpsertOne struct {
		create *BotCreate
	}

	// BotUpsert is the "OnConflict" setter.
	BotUpsert struct {
		*sql.UpdateSet
	}
)

// SetPersonaCategory sets the "persona_category" field.
func (u *BotUpsert) SetPersonaCategory(v string) *BotUpsert {
	u.Set(bot.FieldPersonaCategory, v)
	return u
}

// UpdatePersonaCategory sets the "persona_category" field to the value that was provided on create.
func (u *BotUpsert) UpdatePersonaCategory() *BotUpsert {
	u.SetExcluded(bot.FieldPersonaCategory)
	return u
}

// SetPersonaName sets the "persona_name" field.
func (u *BotUpsert) SetPersonaName(v string) *BotUpsert {
	u.Set(bot.FieldPersonaName, v)
	return u
}

// UpdatePersonaName sets the "persona_name" field to the value that was provided on create.
func (u *BotUpsert) UpdatePersonaName() *BotUpsert {
	u.SetExcluded(bot.FieldPersonaName)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *BotUpsert) SetCompanyName(v string) *BotUpsert {
	u.Set(bot.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *BotUpsert) UpdateCompanyName() *BotUpsert {
	u.SetExcluded(bot.FieldCompanyName)
	return u
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *BotUpsert) ClearCompanyName() *BotUpsert {
	u.SetNull(bot.FieldCompanyName)
	return u
}

// SetStatus sets the "status" field.
func (u *BotUpsert) SetStatus(v bot.Status) *BotUpsert {
	u.Set(bot.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BotUpsert) UpdateStatus() *BotUpsert {
	u.SetExcluded(bot.FieldStatus)
	return u
}

// SetVersion sets the "version" field.
func (u *BotUpsert) SetVersion(v string) *BotUpsert {
	u.Set(bot.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BotUpsert) UpdateVersion() *BotUpsert {
	u.SetExcluded(bot.FieldVersion)
	return u
}

// ClearVersion clears the value of the "version" field.
func (u *BotUpsert) ClearVersion() *BotUpsert {
	u.SetNull(bot.FieldVersion)
	return u
}

// SetConfigHash sets the "config_hash" field.
func (u *BotUpsert) SetConfigHash(v string) *BotUpsert {
	u.Set(bot.FieldConfigHash, v)
	return u
}

// UpdateConfigHash sets the "config_hash" field to the value that was provided on create.
func (u *BotUpsert) UpdateConfigHash() *BotUpsert {
	u.SetExcluded(bot.FieldConfigHash)
	return u
}

// ClearConfigHash clears the value of the "config_hash" field.
func (u *BotUpsert) ClearConfigHash() *BotUpsert {
	u.SetNull(bot.FieldConfigHash)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *BotUpsert) SetLastHeartbeat(v time.Time) *BotUpsert {
	u.Set(bot.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *BotUpsert) UpdateLastHeartbeat() *BotUpsert {
	u.SetExcluded(bot.FieldLastHeartbeat)
	return u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *BotUpsert) ClearLastHeartbeat() *BotUpsert {
	u.SetNull(bot.FieldLastHeartbeat)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *BotUpsert) SetMetadata(v map[string]interface{}) *BotUpsert {
	u.Set(bot.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BotUpsert) UpdateMetadata() *BotUpsert {
	u.SetExcluded(bot.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BotUpsert) ClearMetadata() *BotUpsert {
	u.SetNull(bot.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Bot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BotUpsertOne) UpdateNewValues() *BotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bot.FieldID)
		}
		if _, exists := u.create.mutation.RegisteredAt(); exists {
			s.SetIgnore(bot.FieldRegisteredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BotUpsertOne) Ignore() *BotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotUpsertOne) DoNothing() *BotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotCreate.OnConflict
// documentation for more info.
func (u *BotUpsertOne) Update(set func(*BotUpsert)) *BotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotUpsert{UpdateSet: update})
	}))
	return u
}

// SetPersonaCategory sets the "persona_category" field.
func (u *BotUpsertOne) SetPersonaCategory(v string) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetPersonaCategory(v)
	})
}

// UpdatePersonaCategory sets the "persona_category" field to the value that was provided on create.
func (u *BotUpsertOne) UpdatePersonaCategory() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdatePersonaCategory()
	})
}

// SetPersonaName sets the "persona_name" field.
func (u *BotUpsertOne) SetPersonaName(v string) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetPersonaName(v)
	})
}

// UpdatePersonaName sets the "persona_name" field to the value that was provided on create.
func (u *BotUpsertOne) UpdatePersonaName() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdatePersonaName()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *BotUpsertOne) SetCompanyName(v string) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateCompanyName() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *BotUpsertOne) ClearCompanyName() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.ClearCompanyName()
	})
}

// SetStatus sets the "status" field.
func (u *BotUpsertOne) SetStatus(v bot.Status) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateStatus() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *BotUpsertOne) SetVersion(v string) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateVersion() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *BotUpsertOne) ClearVersion() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.ClearVersion()
	})
}

// SetConfigHash sets the "config_hash" field.
func (u *BotUpsertOne) SetConfigHash(v string) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetConfigHash(v)
	})
}

// UpdateConfigHash sets the "config_hash" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateConfigHash() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateConfigHash()
	})
}

// ClearConfigHash clears the value of the "config_hash" field.
func (u *BotUpsertOne) ClearConfigHash() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.ClearConfigHash()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *BotUpsertOne) SetLastHeartbeat(v time.Time) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateLastHeartbeat() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *BotUpsertOne) ClearLastHeartbeat() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.ClearLastHeartbeat()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BotUpsertOne) SetMetadata(v map[string]interface{}) *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BotUpsertOne) UpdateMetadata() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BotUpsertOne) ClearMetadata() *BotUpsertOne {
	return u.Update(func(s *BotUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *BotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BotUpsertOne.ID is not supported by MySQL driver. Use BotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BotCreateBulk is the builder for creating many Bot entities in bulk.
type BotCreateBulk struct {
	config
	err      error
	builders []*BotCreate
	conflict []sql.ConflictOption
}

// Save creates the Bot entities in the database.
func (_c *BotCreateBulk) Save(ctx context.Context) ([]*Bot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotMutation)
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
func (_c *BotCreateBulk) SaveX(ctx context.Context) []*Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotUpsert) {
//			SetPersonaCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *BotCreateBulk) OnConflict(opts ...sql.ConflictOption) *BotUpsertBulk {
	_c.conflict = opts
	return &BotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotCreateBulk) OnConflictColumns(columns ...string) *BotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotUpsertBulk{
		create: _c,
	}
}

// BotUpsertBulk is the builder for "upsert"-ing
// a bulk of Bot nodes.
type BotUpsertBulk struct {
	create *BotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Bot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BotUpsertBulk) UpdateNewValues() *BotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bot.FieldID)
			}
			if _, exists := b.mutation.RegisteredAt(); exists {
				s.SetIgnore(bot.FieldRegisteredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BotUpsertBulk) Ignore() *BotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotUpsertBulk) DoNothing() *BotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotCreateBulk.OnConflict
// documentation for more info.
func (u *BotUpsertBulk) Update(set func(*BotUpsert)) *BotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotUpsert{UpdateSet: update})
	}))
	return u
}

// SetPersonaCategory sets the "persona_category" field.
func (u *BotUpsertBulk) SetPersonaCategory(v string) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetPersonaCategory(v)
	})
}

// UpdatePersonaCategory sets the "persona_category" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdatePersonaCategory() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdatePersonaCategory()
	})
}

// SetPersonaName sets the "persona_name" field.
func (u *BotUpsertBulk) SetPersonaName(v string) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetPersonaName(v)
	})
}

// UpdatePersonaName sets the "persona_name" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdatePersonaName() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdatePersonaName()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *BotUpsertBulk) SetCompanyName(v string) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateCompanyName() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *BotUpsertBulk) ClearCompanyName() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.ClearCompanyName()
	})
}

// SetStatus sets the "status" field.
func (u *BotUpsertBulk) SetStatus(v bot.Status) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateStatus() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *BotUpsertBulk) SetVersion(v string) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateVersion() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *BotUpsertBulk) ClearVersion() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.ClearVersion()
	})
}

// SetConfigHash sets the "config_hash" field.
func (u *BotUpsertBulk) SetConfigHash(v string) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetConfigHash(v)
	})
}

// UpdateConfigHash sets the "config_hash" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateConfigHash() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateConfigHash()
	})
}

// ClearConfigHash clears the value of the "config_hash" field.
func (u *BotUpsertBulk) ClearConfigHash() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.ClearConfigHash()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *BotUpsertBulk) SetLastHeartbeat(v time.Time) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateLastHeartbeat() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *BotUpsertBulk) ClearLastHeartbeat() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.ClearLastHeartbeat()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BotUpsertBulk) SetMetadata(v map[string]interface{}) *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BotUpsertBulk) UpdateMetadata() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BotUpsertBulk) ClearMetadata() *BotUpsertBulk {
	return u.Update(func(s *BotUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *BotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
