// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// BotUpdate is the builder for updating Bot entities.
type BotUpdate struct {
	config
	hooks    []Hook
	mutation *BotMutation
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdate) Where(ps ...predicate.Bot) *BotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonaCategory sets the "persona_category" field.
func (_u *BotUpdate) SetPersonaCategory(v string) *BotUpdate {
	_u.mutation.SetPersonaCategory(v)
	return _u
}

// SetNillablePersonaCategory sets the "persona_category" field if the given value is not nil.
func (_u *BotUpdate) SetNillablePersonaCategory(v *string) *BotUpdate {
	if v != nil {
		_u.SetPersonaCategory(*v)
	}
	return _u
}

// SetPersonaName sets the "persona_name" field.
func (_u *BotUpdate) SetPersonaName(v string) *BotUpdate {
	_u.mutation.SetPersonaName(v)
	return _u
}

// SetNillablePersonaName sets the "persona_name" field if the given value is not nil.
func (_u *BotUpdate) SetNillablePersonaName(v *string) *BotUpdate {
	if v != nil {
		_u.SetPersonaName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *BotUpdate) SetCompanyName(v string) *BotUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *BotUpdate) SetNillableCompanyName(v *string) *BotUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *BotUpdate) ClearCompanyName() *BotUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BotUpdate) SetStatus(v bot.Status) *BotUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BotUpdate) SetNillableStatus(v *bot.Status) *BotUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotUpdate) SetVersion(v string) *BotUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotUpdate) SetNillableVersion(v *string) *BotUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *BotUpdate) ClearVersion() *BotUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetConfigHash sets the "config_hash" field.
func (_u *BotUpdate) SetConfigHash(v string) *BotUpdate {
	_u.mutation.SetConfigHash(v)
	return _u
}

// SetNillableConfigHash sets the "config_hash" field if the given value is not nil.
func (_u *BotUpdate) SetNillableConfigHash(v *string) *BotUpdate {
	if v != nil {
		_u.SetConfigHash(*v)
	}
	return _u
}

// ClearConfigHash clears the value of the "config_hash" field.
func (_u *BotUpdate) ClearConfigHash() *BotUpdate {
	_u.mutation.ClearConfigHash()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *BotUpdate) SetLastHeartbeat(v time.Time) *BotUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *BotUpdate) SetNillableLastHeartbeat(v *time.Time) *BotUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *BotUpdate) ClearLastHeartbeat() *BotUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BotUpdate) SetMetadata(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BotUpdate) ClearMetadata() *BotUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdate) Mutation() *BotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PersonaCategory(); ok {
		_spec.SetField(bot.FieldPersonaCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaName(); ok {
		_spec.SetField(bot.FieldPersonaName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(bot.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(bot.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(bot.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigHash(); ok {
		_spec.SetField(bot.FieldConfigHash, field.TypeString, value)
	}
	if _u.mutation.ConfigHashCleared() {
		_spec.ClearField(bot.FieldConfigHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(bot.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(bot.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bot.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotUpdateOne is the builder for updating a single Bot entity.
type BotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotMutation
}

// SetPersonaCategory sets the "persona_category" field.
func (_u *BotUpdateOne) SetPersonaCategory(v string) *BotUpdateOne {
	_u.mutation.SetPersonaCategory(v)
	return _u
}

// SetNillablePersonaCategory sets the "persona_category" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillablePersonaCategory(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetPersonaCategory(*v)
	}
	return _u
}

// SetPersonaName sets the "persona_name" field.
func (_u *BotUpdateOne) SetPersonaName(v string) *BotUpdateOne {
	_u.mutation.SetPersonaName(v)
	return _u
}

// SetNillablePersonaName sets the "persona_name" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillablePersonaName(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetPersonaName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *BotUpdateOne) SetCompanyName(v string) *BotUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableCompanyName(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *BotUpdateOne) ClearCompanyName() *BotUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BotUpdateOne) SetStatus(v bot.Status) *BotUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableStatus(v *bot.Status) *BotUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotUpdateOne) SetVersion(v string) *BotUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableVersion(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *BotUpdateOne) ClearVersion() *BotUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetConfigHash sets the "config_hash" field.
func (_u *BotUpdateOne) SetConfigHash(v string) *BotUpdateOne {
	_u.mutation.SetConfigHash(v)
	return _u
}

// SetNillableConfigHash sets the "config_hash" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableConfigHash(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetConfigHash(*v)
	}
	return _u
}

// ClearConfigHash clears the value of the "config_hash" field.
func (_u *BotUpdateOne) ClearConfigHash() *BotUpdateOne {
	_u.mutation.ClearConfigHash()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *BotUpdateOne) SetLastHeartbeat(v time.Time) *BotUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableLastHeartbeat(v *time.Time) *BotUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *BotUpdateOne) ClearLastHeartbeat() *BotUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BotUpdateOne) SetMetadata(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BotUpdateOne) ClearMetadata() *BotUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdateOne) Mutation() *BotMutation {
	return _u.mutation
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdateOne) Where(ps ...predicate.Bot) *BotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotUpdateOne) Select(field string, fields ...string) *BotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bot entity.
func (_u *BotUpdateOne) Save(ctx context.Context) (*Bot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdateOne) SaveX(ctx context.Context) *Bot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BotUpdateOne) sqlSave(ctx context.Context) (_node *Bot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bot.FieldID)
		for _, f := range fields {
			if !bot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bot.FieldID {
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
	if value, ok := _u.mutation.PersonaCategory(); ok {
		_spec.SetField(bot.FieldPersonaCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaName(); ok {
		_spec.SetField(bot.FieldPersonaName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(bot.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(bot.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(bot.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigHash(); ok {
		_spec.SetField(bot.FieldConfigHash, field.TypeString, value)
	}
	if _u.mutation.ConfigHashCleared() {
		_spec.ClearField(bot.FieldConfigHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(bot.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(bot.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bot.FieldMetadata, field.TypeJSON)
	}
	_node = &Bot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
