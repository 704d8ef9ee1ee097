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
	"github.com/honeybotlabs/honeybot/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBotID sets the "bot_id" field.
func (_c *SessionCreate) SetBotID(v string) *SessionCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionCreate) SetEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetFinalMode sets the "final_mode" field.
func (_c *SessionCreate) SetFinalMode(v session.FinalMode) *SessionCreate {
	_c.mutation.SetFinalMode(v)
	return _c
}

// SetNillableFinalMode sets the "final_mode" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinalMode(v *session.FinalMode) *SessionCreate {
	if v != nil {
		_c.SetFinalMode(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *SessionCreate) SetFinalScore(v float64) *SessionCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinalScore(v *float64) *SessionCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *SessionCreate) SetMaxScore(v float64) *SessionCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMaxScore(v *float64) *SessionCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetTotalMessages sets the "total_messages" field.
func (_c *SessionCreate) SetTotalMessages(v int) *SessionCreate {
	_c.mutation.SetTotalMessages(v)
	return _c
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalMessages(v *int) *SessionCreate {
	if v != nil {
		_c.SetTotalMessages(*v)
	}
	return _c
}

// SetDetectionCount sets the "detection_count" field.
func (_c *SessionCreate) SetDetectionCount(v int) *SessionCreate {
	_c.mutation.SetDetectionCount(v)
	return _c
}

// SetNillableDetectionCount sets the "detection_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDetectionCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetDetectionCount(*v)
	}
	return _c
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (_c *SessionCreate) SetHoneypotResponses(v int) *SessionCreate {
	_c.mutation.SetHoneypotResponses(v)
	return _c
}

// SetNillableHoneypotResponses sets the "honeypot_responses" field if the given value is not nil.
func (_c *SessionCreate) SetNillableHoneypotResponses(v *int) *SessionCreate {
	if v != nil {
		_c.SetHoneypotResponses(*v)
	}
	return _c
}

// SetAttackTypes sets the "attack_types" field.
func (_c *SessionCreate) SetAttackTypes(v []string) *SessionCreate {
	_c.mutation.SetAttackTypes(v)
	return _c
}

// SetConversationLog sets the "conversation_log" field.
func (_c *SessionCreate) SetConversationLog(v []map[string]interface{}) *SessionCreate {
	_c.mutation.SetConversationLog(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SessionCreate) SetMetadata(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := session.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.FinalMode(); !ok {
		v := session.DefaultFinalMode
		_c.mutation.SetFinalMode(v)
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		v := session.DefaultFinalScore
		_c.mutation.SetFinalScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := session.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.TotalMessages(); !ok {
		v := session.DefaultTotalMessages
		_c.mutation.SetTotalMessages(v)
	}
	if _, ok := _c.mutation.DetectionCount(); !ok {
		v := session.DefaultDetectionCount
		_c.mutation.SetDetectionCount(v)
	}
	if _, ok := _c.mutation.HoneypotResponses(); !ok {
		v := session.DefaultHoneypotResponses
		_c.mutation.SetHoneypotResponses(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.BotID(); !ok {
		return &ValidationError{Name: "bot_id", err: errors.New(`ent: missing required field "Session.bot_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Session.user_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Session.started_at"`)}
	}
	if _, ok := _c.mutation.FinalMode(); !ok {
		return &ValidationError{Name: "final_mode", err: errors.New(`ent: missing required field "Session.final_mode"`)}
	}
	if v, ok := _c.mutation.FinalMode(); ok {
		if err := session.FinalModeValidator(v); err != nil {
			return &ValidationError{Name: "final_mode", err: fmt.Errorf(`ent: validator failed for field "Session.final_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "Session.final_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "Session.max_score"`)}
	}
	if _, ok := _c.mutation.TotalMessages(); !ok {
		return &ValidationError{Name: "total_messages", err: errors.New(`ent: missing required field "Session.total_messages"`)}
	}
	if _, ok := _c.mutation.DetectionCount(); !ok {
		return &ValidationError{Name: "detection_count", err: errors.New(`ent: missing required field "Session.detection_count"`)}
	}
	if _, ok := _c.mutation.HoneypotResponses(); !ok {
		return &ValidationError{Name: "honeypot_responses", err: errors.New(`ent: missing required field "Session.honeypot_responses"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(session.FieldBotID, field.TypeString, value)
		_node.BotID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.FinalMode(); ok {
		_spec.SetField(session.FieldFinalMode, field.TypeEnum, value)
		_node.FinalMode = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(session.FieldFinalScore, field.TypeFloat64, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(session.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.TotalMessages(); ok {
		_spec.SetField(session.FieldTotalMessages, field.TypeInt, value)
		_node.TotalMessages = value
	}
	if value, ok := _c.mutation.DetectionCount(); ok {
		_spec.SetField(session.FieldDetectionCount, field.TypeInt, value)
		_node.DetectionCount = value
	}
	if value, ok := _c.mutation.HoneypotResponses(); ok {
		_spec.SetField(session.FieldHoneypotResponses, field.TypeInt, value)
		_node.HoneypotResponses = value
	}
	if value, ok := _c.mutation.AttackTypes(); ok {
		_spec.SetField(session.FieldAttackTypes, field.TypeJSON, value)
		_node.AttackTypes = value
	}
	if value, ok := _c.mutation.ConversationLog(); ok {
		_spec.SetField(session.FieldConversationLog, field.TypeJSON, value)
		_node.ConversationLog = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetBotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetBotID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetBotID sets the "bot_id" field.
func (u *SessionUpsert) SetBotID(v string) *SessionUpsert {
	u.Set(session.FieldBotID, v)
	return u
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateBotID() *SessionUpsert {
	u.SetExcluded(session.FieldBotID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsert) SetUserID(v string) *SessionUpsert {
	u.Set(session.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUserID() *SessionUpsert {
	u.SetExcluded(session.FieldUserID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsert) SetStartedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStartedAt() *SessionUpsert {
	u.SetExcluded(session.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsert) SetEndedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEndedAt() *SessionUpsert {
	u.SetExcluded(session.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsert) ClearEndedAt() *SessionUpsert {
	u.SetNull(session.FieldEndedAt)
	return u
}

// SetFinalMode sets the "final_mode" field.
func (u *SessionUpsert) SetFinalMode(v session.FinalMode) *SessionUpsert {
	u.Set(session.FieldFinalMode, v)
	return u
}

// UpdateFinalMode sets the "final_mode" field to the value that was provided on create.
func (u *SessionUpsert) UpdateFinalMode() *SessionUpsert {
	u.SetExcluded(session.FieldFinalMode)
	return u
}

// SetFinalScore sets the "final_score" field.
func (u *SessionUpsert) SetFinalScore(v float64) *SessionUpsert {
	u.Set(session.FieldFinalScore, v)
	return u
}

// UpdateFinalScore sets the "final_score" field to the value that was provided on create.
func (u *SessionUpsert) UpdateFinalScore() *SessionUpsert {
	u.SetExcluded(session.FieldFinalScore)
	return u
}

// AddFinalScore adds v to the "final_score" field.
func (u *SessionUpsert) AddFinalScore(v float64) *SessionUpsert {
	u.Add(session.FieldFinalScore, v)
	return u
}

// SetMaxScore sets the "max_score" field.
func (u *SessionUpsert) SetMaxScore(v float64) *SessionUpsert {
	u.Set(session.FieldMaxScore, v)
	return u
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMaxScore() *SessionUpsert {
	u.SetExcluded(session.FieldMaxScore)
	return u
}

// AddMaxScore adds v to the "max_score" field.
func (u *SessionUpsert) AddMaxScore(v float64) *SessionUpsert {
	u.Add(session.FieldMaxScore, v)
	return u
}

// SetTotalMessages sets the "total_messages" field.
func (u *SessionUpsert) SetTotalMessages(v int) *SessionUpsert {
	u.Set(session.FieldTotalMessages, v)
	return u
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTotalMessages() *SessionUpsert {
	u.SetExcluded(session.FieldTotalMessages)
	return u
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *SessionUpsert) AddTotalMessages(v int) *SessionUpsert {
	u.Add(session.FieldTotalMessages, v)
	return u
}

// SetDetectionCount sets the "detection_count" field.
func (u *SessionUpsert) SetDetectionCount(v int) *SessionUpsert {
	u.Set(session.FieldDetectionCount, v)
	return u
}

// UpdateDetectionCount sets the "detection_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateDetectionCount() *SessionUpsert {
	u.SetExcluded(session.FieldDetectionCount)
	return u
}

// AddDetectionCount adds v to the "detection_count" field.
func (u *SessionUpsert) AddDetectionCount(v int) *SessionUpsert {
	u.Add(session.FieldDetectionCount, v)
	return u
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (u *SessionUpsert) SetHoneypotResponses(v int) *SessionUpsert {
	u.Set(session.FieldHoneypotResponses, v)
	return u
}

// UpdateHoneypotResponses sets the "honeypot_responses" field to the value that was provided on create.
func (u *SessionUpsert) UpdateHoneypotResponses() *SessionUpsert {
	u.SetExcluded(session.FieldHoneypotResponses)
	return u
}

// AddHoneypotResponses adds v to the "honeypot_responses" field.
func (u *SessionUpsert) AddHoneypotResponses(v int) *SessionUpsert {
	u.Add(session.FieldHoneypotResponses, v)
	return u
}

// SetAttackTypes sets the "attack_types" field.
func (u *SessionUpsert) SetAttackTypes(v []string) *SessionUpsert {
	u.Set(session.FieldAttackTypes, v)
	return u
}

// UpdateAttackTypes sets the "attack_types" field to the value that was provided on create.
func (u *SessionUpsert) UpdateAttackTypes() *SessionUpsert {
	u.SetExcluded(session.FieldAttackTypes)
	return u
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (u *SessionUpsert) ClearAttackTypes() *SessionUpsert {
	u.SetNull(session.FieldAttackTypes)
	return u
}

// SetConversationLog sets the "conversation_log" field.
func (u *SessionUpsert) SetConversationLog(v []map[string]interface{}) *SessionUpsert {
	u.Set(session.FieldConversationLog, v)
	return u
}

// UpdateConversationLog sets the "conversation_log" field to the value that was provided on create.
func (u *SessionUpsert) UpdateConversationLog() *SessionUpsert {
	u.SetExcluded(session.FieldConversationLog)
	return u
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (u *SessionUpsert) ClearConversationLog() *SessionUpsert {
	u.SetNull(session.FieldConversationLog)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *SessionUpsert) SetMetadata(v map[string]interface{}) *SessionUpsert {
	u.Set(session.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMetadata() *SessionUpsert {
	u.SetExcluded(session.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SessionUpsert) ClearMetadata() *SessionUpsert {
	u.SetNull(session.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotID sets the "bot_id" field.
func (u *SessionUpsertOne) SetBotID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateBotID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateBotID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsertOne) SetUserID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUserID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUserID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsertOne) SetStartedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStartedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsertOne) SetEndedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsertOne) ClearEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetFinalMode sets the "final_mode" field.
func (u *SessionUpsertOne) SetFinalMode(v session.FinalMode) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetFinalMode(v)
	})
}

// UpdateFinalMode sets the "final_mode" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateFinalMode() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFinalMode()
	})
}

// SetFinalScore sets the "final_score" field.
func (u *SessionUpsertOne) SetFinalScore(v float64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetFinalScore(v)
	})
}

// AddFinalScore adds v to the "final_score" field.
func (u *SessionUpsertOne) AddFinalScore(v float64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddFinalScore(v)
	})
}

// UpdateFinalScore sets the "final_score" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateFinalScore() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFinalScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *SessionUpsertOne) SetMaxScore(v float64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *SessionUpsertOne) AddMaxScore(v float64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMaxScore() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMaxScore()
	})
}

// SetTotalMessages sets the "total_messages" field.
func (u *SessionUpsertOne) SetTotalMessages(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalMessages(v)
	})
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *SessionUpsertOne) AddTotalMessages(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalMessages(v)
	})
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTotalMessages() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalMessages()
	})
}

// SetDetectionCount sets the "detection_count" field.
func (u *SessionUpsertOne) SetDetectionCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetDetectionCount(v)
	})
}

// AddDetectionCount adds v to the "detection_count" field.
func (u *SessionUpsertOne) AddDetectionCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddDetectionCount(v)
	})
}

// UpdateDetectionCount sets the "detection_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateDetectionCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDetectionCount()
	})
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (u *SessionUpsertOne) SetHoneypotResponses(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetHoneypotResponses(v)
	})
}

// AddHoneypotResponses adds v to the "honeypot_responses" field.
func (u *SessionUpsertOne) AddHoneypotResponses(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddHoneypotResponses(v)
	})
}

// UpdateHoneypotResponses sets the "honeypot_responses" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateHoneypotResponses() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateHoneypotResponses()
	})
}

// SetAttackTypes sets the "attack_types" field.
func (u *SessionUpsertOne) SetAttackTypes(v []string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetAttackTypes(v)
	})
}

// UpdateAttackTypes sets the "attack_types" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateAttackTypes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateAttackTypes()
	})
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (u *SessionUpsertOne) ClearAttackTypes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearAttackTypes()
	})
}

// SetConversationLog sets the "conversation_log" field.
func (u *SessionUpsertOne) SetConversationLog(v []map[string]interface{}) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetConversationLog(v)
	})
}

// UpdateConversationLog sets the "conversation_log" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateConversationLog() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConversationLog()
	})
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (u *SessionUpsertOne) ClearConversationLog() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConversationLog()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SessionUpsertOne) SetMetadata(v map[string]interface{}) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMetadata() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SessionUpsertOne) ClearMetadata() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetBotID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotID sets the "bot_id" field.
func (u *SessionUpsertBulk) SetBotID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetBotID(v)
	})
}

// UpdateBotID sets the "bot_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateBotID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateBotID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsertBulk) SetUserID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUserID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUserID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsertBulk) SetStartedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStartedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsertBulk) SetEndedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsertBulk) ClearEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetFinalMode sets the "final_mode" field.
func (u *SessionUpsertBulk) SetFinalMode(v session.FinalMode) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetFinalMode(v)
	})
}

// UpdateFinalMode sets the "final_mode" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateFinalMode() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFinalMode()
	})
}

// SetFinalScore sets the "final_score" field.
func (u *SessionUpsertBulk) SetFinalScore(v float64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetFinalScore(v)
	})
}

// AddFinalScore adds v to the "final_score" field.
func (u *SessionUpsertBulk) AddFinalScore(v float64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddFinalScore(v)
	})
}

// UpdateFinalScore sets the "final_score" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateFinalScore() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFinalScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *SessionUpsertBulk) SetMaxScore(v float64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *SessionUpsertBulk) AddMaxScore(v float64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMaxScore() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMaxScore()
	})
}

// SetTotalMessages sets the "total_messages" field.
func (u *SessionUpsertBulk) SetTotalMessages(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalMessages(v)
	})
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *SessionUpsertBulk) AddTotalMessages(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalMessages(v)
	})
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTotalMessages() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalMessages()
	})
}

// SetDetectionCount sets the "detection_count" field.
func (u *SessionUpsertBulk) SetDetectionCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetDetectionCount(v)
	})
}

// AddDetectionCount adds v to the "detection_count" field.
func (u *SessionUpsertBulk) AddDetectionCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddDetectionCount(v)
	})
}

// UpdateDetectionCount sets the "detection_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateDetectionCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDetectionCount()
	})
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (u *SessionUpsertBulk) SetHoneypotResponses(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetHoneypotResponses(v)
	})
}

// AddHoneypotResponses adds v to the "honeypot_responses" field.
func (u *SessionUpsertBulk) AddHoneypotResponses(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddHoneypotResponses(v)
	})
}

// UpdateHoneypotResponses sets the "honeypot_responses" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateHoneypotResponses() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateHoneypotResponses()
	})
}

// SetAttackTypes sets the "attack_types" field.
func (u *SessionUpsertBulk) SetAttackTypes(v []string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetAttackTypes(v)
	})
}

// UpdateAttackTypes sets the "attack_types" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateAttackTypes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateAttackTypes()
	})
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (u *SessionUpsertBulk) ClearAttackTypes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearAttackTypes()
	})
}

// SetConversationLog sets the "conversation_log" field.
func (u *SessionUpsertBulk) SetConversationLog(v []map[string]interface{}) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetConversationLog(v)
	})
}

// UpdateConversationLog sets the "conversation_log" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateConversationLog() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConversationLog()
	})
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (u *SessionUpsertBulk) ClearConversationLog() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConversationLog()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SessionUpsertBulk) SetMetadata(v map[string]interface{}) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMetadata() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SessionUpsertBulk) ClearMetadata() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
