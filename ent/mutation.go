// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
	"github.com/honeybotlabs/honeybot/ent/predicate"
	"github.com/honeybotlabs/honeybot/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert        = "Alert"
	TypeBot          = "Bot"
	TypeEvent        = "Event"
	TypeNovelPattern = "NovelPattern"
	TypeSession      = "Session"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op            Op
	typ           string
	id            *string
	level         *alert.Level
	title         *string
	summary       *string
	bot_id        *string
	event_id      *string
	session_id    *string
	acknowledged  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Alert, error)
	predicates    []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *AlertMutation) SetLevel(a alert.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *AlertMutation) Level() (r alert.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLevel(ctx context.Context) (v alert.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AlertMutation) ResetLevel() {
	m.level = nil
}

// SetTitle sets the "title" field.
func (m *AlertMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AlertMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AlertMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *AlertMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AlertMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *AlertMutation) ResetSummary() {
	m.summary = nil
}

// SetBotID sets the "bot_id" field.
func (m *AlertMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *AlertMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ClearBotID clears the value of the "bot_id" field.
func (m *AlertMutation) ClearBotID() {
	m.bot_id = nil
	m.clearedFields[alert.FieldBotID] = struct{}{}
}

// BotIDCleared returns if the "bot_id" field was cleared in this mutation.
func (m *AlertMutation) BotIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldBotID]
	return ok
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *AlertMutation) ResetBotID() {
	m.bot_id = nil
	delete(m.clearedFields, alert.FieldBotID)
}

// SetEventID sets the "event_id" field.
func (m *AlertMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AlertMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *AlertMutation) ClearEventID() {
	m.event_id = nil
	m.clearedFields[alert.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *AlertMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AlertMutation) ResetEventID() {
	m.event_id = nil
	delete(m.clearedFields, alert.FieldEventID)
}

// SetSessionID sets the "session_id" field.
func (m *AlertMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AlertMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AlertMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[alert.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AlertMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AlertMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, alert.FieldSessionID)
}

// SetAcknowledged sets the "acknowledged" field.
func (m *AlertMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *AlertMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *AlertMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.level != nil {
		fields = append(fields, alert.FieldLevel)
	}
	if m.title != nil {
		fields = append(fields, alert.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, alert.FieldSummary)
	}
	if m.bot_id != nil {
		fields = append(fields, alert.FieldBotID)
	}
	if m.event_id != nil {
		fields = append(fields, alert.FieldEventID)
	}
	if m.session_id != nil {
		fields = append(fields, alert.FieldSessionID)
	}
	if m.acknowledged != nil {
		fields = append(fields, alert.FieldAcknowledged)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldLevel:
		return m.Level()
	case alert.FieldTitle:
		return m.Title()
	case alert.FieldSummary:
		return m.Summary()
	case alert.FieldBotID:
		return m.BotID()
	case alert.FieldEventID:
		return m.EventID()
	case alert.FieldSessionID:
		return m.SessionID()
	case alert.FieldAcknowledged:
		return m.Acknowledged()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldLevel:
		return m.OldLevel(ctx)
	case alert.FieldTitle:
		return m.OldTitle(ctx)
	case alert.FieldSummary:
		return m.OldSummary(ctx)
	case alert.FieldBotID:
		return m.OldBotID(ctx)
	case alert.FieldEventID:
		return m.OldEventID(ctx)
	case alert.FieldSessionID:
		return m.OldSessionID(ctx)
	case alert.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldLevel:
		v, ok := value.(alert.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case alert.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case alert.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case alert.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case alert.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case alert.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case alert.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldBotID) {
		fields = append(fields, alert.FieldBotID)
	}
	if m.FieldCleared(alert.FieldEventID) {
		fields = append(fields, alert.FieldEventID)
	}
	if m.FieldCleared(alert.FieldSessionID) {
		fields = append(fields, alert.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldBotID:
		m.ClearBotID()
		return nil
	case alert.FieldEventID:
		m.ClearEventID()
		return nil
	case alert.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldLevel:
		m.ResetLevel()
		return nil
	case alert.FieldTitle:
		m.ResetTitle()
		return nil
	case alert.FieldSummary:
		m.ResetSummary()
		return nil
	case alert.FieldBotID:
		m.ResetBotID()
		return nil
	case alert.FieldEventID:
		m.ResetEventID()
		return nil
	case alert.FieldSessionID:
		m.ResetSessionID()
		return nil
	case alert.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Alert edge %s", name)
}

// BotMutation represents an operation that mutates the Bot nodes in the graph.
type BotMutation struct {
	config
	op               Op
	typ              string
	id               *string
	persona_category *string
	persona_name     *string
	company_name     *string
	status           *bot.Status
	version          *string
	config_hash      *string
	last_heartbeat   *time.Time
	metadata         *map[string]interface{}
	registered_at    *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Bot, error)
	predicates       []predicate.Bot
}

var _ ent.Mutation = (*BotMutation)(nil)

// botOption allows management of the mutation configuration using functional options.
type botOption func(*BotMutation)

// newBotMutation creates new mutation for the Bot entity.
func newBotMutation(c config, op Op, opts ...botOption) *BotMutation {
	m := &BotMutation{
		config:        c,
		op:            op,
		typ:           TypeBot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotID sets the ID field of the mutation.
func withBotID(id string) botOption {
	return func(m *BotMutation) {
		var (
			err   error
			once  sync.Once
			value *Bot
		)
		m.oldValue = func(ctx context.Context) (*Bot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBot sets the old Bot of the mutation.
func withBot(node *Bot) botOption {
	return func(m *BotMutation) {
		m.oldValue = func(context.Context) (*Bot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bot entities.
func (m *BotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPersonaCategory sets the "persona_category" field.
func (m *BotMutation) SetPersonaCategory(s string) {
	m.persona_category = &s
}

// PersonaCategory returns the value of the "persona_category" field in the mutation.
func (m *BotMutation) PersonaCategory() (r string, exists bool) {
	v := m.persona_category
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaCategory returns the old "persona_category" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldPersonaCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaCategory: %w", err)
	}
	return oldValue.PersonaCategory, nil
}

// ResetPersonaCategory resets all changes to the "persona_category" field.
func (m *BotMutation) ResetPersonaCategory() {
	m.persona_category = nil
}

// SetPersonaName sets the "persona_name" field.
func (m *BotMutation) SetPersonaName(s string) {
	m.persona_name = &s
}

// PersonaName returns the value of the "persona_name" field in the mutation.
func (m *BotMutation) PersonaName() (r string, exists bool) {
	v := m.persona_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaName returns the old "persona_name" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldPersonaName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaName: %w", err)
	}
	return oldValue.PersonaName, nil
}

// ResetPersonaName resets all changes to the "persona_name" field.
func (m *BotMutation) ResetPersonaName() {
	m.persona_name = nil
}

// SetCompanyName sets the "company_name" field.
func (m *BotMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *BotMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldCompanyName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *BotMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[bot.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *BotMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[bot.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *BotMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, bot.FieldCompanyName)
}

// SetStatus sets the "status" field.
func (m *BotMutation) SetStatus(b bot.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BotMutation) Status() (r bot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldStatus(ctx context.Context) (v bot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BotMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *BotMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *BotMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *BotMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[bot.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *BotMutation) VersionCleared() bool {
	_, ok := m.clearedFields[bot.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *BotMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, bot.FieldVersion)
}

// SetConfigHash sets the "config_hash" field.
func (m *BotMutation) SetConfigHash(s string) {
	m.config_hash = &s
}

// ConfigHash returns the value of the "config_hash" field in the mutation.
func (m *BotMutation) ConfigHash() (r string, exists bool) {
	v := m.config_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigHash returns the old "config_hash" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldConfigHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigHash: %w", err)
	}
	return oldValue.ConfigHash, nil
}

// ClearConfigHash clears the value of the "config_hash" field.
func (m *BotMutation) ClearConfigHash() {
	m.config_hash = nil
	m.clearedFields[bot.FieldConfigHash] = struct{}{}
}

// ConfigHashCleared returns if the "config_hash" field was cleared in this mutation.
func (m *BotMutation) ConfigHashCleared() bool {
	_, ok := m.clearedFields[bot.FieldConfigHash]
	return ok
}

// ResetConfigHash resets all changes to the "config_hash" field.
func (m *BotMutation) ResetConfigHash() {
	m.config_hash = nil
	delete(m.clearedFields, bot.FieldConfigHash)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *BotMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *BotMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *BotMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[bot.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *BotMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[bot.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *BotMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, bot.FieldLastHeartbeat)
}

// SetMetadata sets the "metadata" field.
func (m *BotMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BotMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BotMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[bot.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BotMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[bot.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BotMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, bot.FieldMetadata)
}

// SetRegisteredAt sets the "registered_at" field.
func (m *BotMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *BotMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *BotMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// Where appends a list predicates to the BotMutation builder.
func (m *BotMutation) Where(ps ...predicate.Bot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bot).
func (m *BotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.persona_category != nil {
		fields = append(fields, bot.FieldPersonaCategory)
	}
	if m.persona_name != nil {
		fields = append(fields, bot.FieldPersonaName)
	}
	if m.company_name != nil {
		fields = append(fields, bot.FieldCompanyName)
	}
	if m.status != nil {
		fields = append(fields, bot.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, bot.FieldVersion)
	}
	if m.config_hash != nil {
		fields = append(fields, bot.FieldConfigHash)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, bot.FieldLastHeartbeat)
	}
	if m.metadata != nil {
		fields = append(fields, bot.FieldMetadata)
	}
	if m.registered_at != nil {
		fields = append(fields, bot.FieldRegisteredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bot.FieldPersonaCategory:
		return m.PersonaCategory()
	case bot.FieldPersonaName:
		return m.PersonaName()
	case bot.FieldCompanyName:
		return m.CompanyName()
	case bot.FieldStatus:
		return m.Status()
	case bot.FieldVersion:
		return m.Version()
	case bot.FieldConfigHash:
		return m.ConfigHash()
	case bot.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case bot.FieldMetadata:
		return m.Metadata()
	case bot.FieldRegisteredAt:
		return m.RegisteredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bot.FieldPersonaCategory:
		return m.OldPersonaCategory(ctx)
	case bot.FieldPersonaName:
		return m.OldPersonaName(ctx)
	case bot.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case bot.FieldStatus:
		return m.OldStatus(ctx)
	case bot.FieldVersion:
		return m.OldVersion(ctx)
	case bot.FieldConfigHash:
		return m.OldConfigHash(ctx)
	case bot.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case bot.FieldMetadata:
		return m.OldMetadata(ctx)
	case bot.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bot.FieldPersonaCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaCategory(v)
		return nil
	case bot.FieldPersonaName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaName(v)
		return nil
	case bot.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case bot.FieldStatus:
		v, ok := value.(bot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bot.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case bot.FieldConfigHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigHash(v)
		return nil
	case bot.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case bot.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case bot.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Bot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bot.FieldCompanyName) {
		fields = append(fields, bot.FieldCompanyName)
	}
	if m.FieldCleared(bot.FieldVersion) {
		fields = append(fields, bot.FieldVersion)
	}
	if m.FieldCleared(bot.FieldConfigHash) {
		fields = append(fields, bot.FieldConfigHash)
	}
	if m.FieldCleared(bot.FieldLastHeartbeat) {
		fields = append(fields, bot.FieldLastHeartbeat)
	}
	if m.FieldCleared(bot.FieldMetadata) {
		fields = append(fields, bot.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotMutation) ClearField(name string) error {
	switch name {
	case bot.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case bot.FieldVersion:
		m.ClearVersion()
		return nil
	case bot.FieldConfigHash:
		m.ClearConfigHash()
		return nil
	case bot.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case bot.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Bot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotMutation) ResetField(name string) error {
	switch name {
	case bot.FieldPersonaCategory:
		m.ResetPersonaCategory()
		return nil
	case bot.FieldPersonaName:
		m.ResetPersonaName()
		return nil
	case bot.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case bot.FieldStatus:
		m.ResetStatus()
		return nil
	case bot.FieldVersion:
		m.ResetVersion()
		return nil
	case bot.FieldConfigHash:
		m.ResetConfigHash()
		return nil
	case bot.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case bot.FieldMetadata:
		m.ResetMetadata()
		return nil
	case bot.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Bot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Bot edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	bot_id                *string
	event_type            *event.EventType
	level                 *event.Level
	user_id               *string
	session_id            *string
	threat_score          *float64
	addthreat_score       *float64
	detection_types       *[]string
	appenddetection_types []string
	message_content       *string
	message_hash          *string
	analysis_result       *map[string]interface{}
	metadata              *map[string]interface{}
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Event, error)
	predicates            []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *EventMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *EventMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *EventMutation) ResetBotID() {
	m.bot_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(et event.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r event.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v event.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetLevel sets the "level" field.
func (m *EventMutation) SetLevel(e event.Level) {
	m.level = &e
}

// Level returns the value of the "level" field in the mutation.
func (m *EventMutation) Level() (r event.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLevel(ctx context.Context) (v event.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *EventMutation) ResetLevel() {
	m.level = nil
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *EventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[event.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *EventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[event.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, event.FieldUserID)
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetThreatScore sets the "threat_score" field.
func (m *EventMutation) SetThreatScore(f float64) {
	m.threat_score = &f
	m.addthreat_score = nil
}

// ThreatScore returns the value of the "threat_score" field in the mutation.
func (m *EventMutation) ThreatScore() (r float64, exists bool) {
	v := m.threat_score
	if v == nil {
		return
	}
	return *v, true
}

// OldThreatScore returns the old "threat_score" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldThreatScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreatScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreatScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreatScore: %w", err)
	}
	return oldValue.ThreatScore, nil
}

// AddThreatScore adds f to the "threat_score" field.
func (m *EventMutation) AddThreatScore(f float64) {
	if m.addthreat_score != nil {
		*m.addthreat_score += f
	} else {
		m.addthreat_score = &f
	}
}

// AddedThreatScore returns the value that was added to the "threat_score" field in this mutation.
func (m *EventMutation) AddedThreatScore() (r float64, exists bool) {
	v := m.addthreat_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearThreatScore clears the value of the "threat_score" field.
func (m *EventMutation) ClearThreatScore() {
	m.threat_score = nil
	m.addthreat_score = nil
	m.clearedFields[event.FieldThreatScore] = struct{}{}
}

// ThreatScoreCleared returns if the "threat_score" field was cleared in this mutation.
func (m *EventMutation) ThreatScoreCleared() bool {
	_, ok := m.clearedFields[event.FieldThreatScore]
	return ok
}

// ResetThreatScore resets all changes to the "threat_score" field.
func (m *EventMutation) ResetThreatScore() {
	m.threat_score = nil
	m.addthreat_score = nil
	delete(m.clearedFields, event.FieldThreatScore)
}

// SetDetectionTypes sets the "detection_types" field.
func (m *EventMutation) SetDetectionTypes(s []string) {
	m.detection_types = &s
	m.appenddetection_types = nil
}

// DetectionTypes returns the value of the "detection_types" field in the mutation.
func (m *EventMutation) DetectionTypes() (r []string, exists bool) {
	v := m.detection_types
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionTypes returns the old "detection_types" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDetectionTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionTypes: %w", err)
	}
	return oldValue.DetectionTypes, nil
}

// AppendDetectionTypes adds s to the "detection_types" field.
func (m *EventMutation) AppendDetectionTypes(s []string) {
	m.appenddetection_types = append(m.appenddetection_types, s...)
}

// AppendedDetectionTypes returns the list of values that were appended to the "detection_types" field in this mutation.
func (m *EventMutation) AppendedDetectionTypes() ([]string, bool) {
	if len(m.appenddetection_types) == 0 {
		return nil, false
	}
	return m.appenddetection_types, true
}

// ClearDetectionTypes clears the value of the "detection_types" field.
func (m *EventMutation) ClearDetectionTypes() {
	m.detection_types = nil
	m.appenddetection_types = nil
	m.clearedFields[event.FieldDetectionTypes] = struct{}{}
}

// DetectionTypesCleared returns if the "detection_types" field was cleared in this mutation.
func (m *EventMutation) DetectionTypesCleared() bool {
	_, ok := m.clearedFields[event.FieldDetectionTypes]
	return ok
}

// ResetDetectionTypes resets all changes to the "detection_types" field.
func (m *EventMutation) ResetDetectionTypes() {
	m.detection_types = nil
	m.appenddetection_types = nil
	delete(m.clearedFields, event.FieldDetectionTypes)
}

// SetMessageContent sets the "message_content" field.
func (m *EventMutation) SetMessageContent(s string) {
	m.message_content = &s
}

// MessageContent returns the value of the "message_content" field in the mutation.
func (m *EventMutation) MessageContent() (r string, exists bool) {
	v := m.message_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageContent returns the old "message_content" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessageContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageContent: %w", err)
	}
	return oldValue.MessageContent, nil
}

// ClearMessageContent clears the value of the "message_content" field.
func (m *EventMutation) ClearMessageContent() {
	m.message_content = nil
	m.clearedFields[event.FieldMessageContent] = struct{}{}
}

// MessageContentCleared returns if the "message_content" field was cleared in this mutation.
func (m *EventMutation) MessageContentCleared() bool {
	_, ok := m.clearedFields[event.FieldMessageContent]
	return ok
}

// ResetMessageContent resets all changes to the "message_content" field.
func (m *EventMutation) ResetMessageContent() {
	m.message_content = nil
	delete(m.clearedFields, event.FieldMessageContent)
}

// SetMessageHash sets the "message_hash" field.
func (m *EventMutation) SetMessageHash(s string) {
	m.message_hash = &s
}

// MessageHash returns the value of the "message_hash" field in the mutation.
func (m *EventMutation) MessageHash() (r string, exists bool) {
	v := m.message_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageHash returns the old "message_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessageHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageHash: %w", err)
	}
	return oldValue.MessageHash, nil
}

// ClearMessageHash clears the value of the "message_hash" field.
func (m *EventMutation) ClearMessageHash() {
	m.message_hash = nil
	m.clearedFields[event.FieldMessageHash] = struct{}{}
}

// MessageHashCleared returns if the "message_hash" field was cleared in this mutation.
func (m *EventMutation) MessageHashCleared() bool {
	_, ok := m.clearedFields[event.FieldMessageHash]
	return ok
}

// ResetMessageHash resets all changes to the "message_hash" field.
func (m *EventMutation) ResetMessageHash() {
	m.message_hash = nil
	delete(m.clearedFields, event.FieldMessageHash)
}

// SetAnalysisResult sets the "analysis_result" field.
func (m *EventMutation) SetAnalysisResult(value map[string]interface{}) {
	m.analysis_result = &value
}

// AnalysisResult returns the value of the "analysis_result" field in the mutation.
func (m *EventMutation) AnalysisResult() (r map[string]interface{}, exists bool) {
	v := m.analysis_result
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisResult returns the old "analysis_result" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAnalysisResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisResult: %w", err)
	}
	return oldValue.AnalysisResult, nil
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (m *EventMutation) ClearAnalysisResult() {
	m.analysis_result = nil
	m.clearedFields[event.FieldAnalysisResult] = struct{}{}
}

// AnalysisResultCleared returns if the "analysis_result" field was cleared in this mutation.
func (m *EventMutation) AnalysisResultCleared() bool {
	_, ok := m.clearedFields[event.FieldAnalysisResult]
	return ok
}

// ResetAnalysisResult resets all changes to the "analysis_result" field.
func (m *EventMutation) ResetAnalysisResult() {
	m.analysis_result = nil
	delete(m.clearedFields, event.FieldAnalysisResult)
}

// SetMetadata sets the "metadata" field.
func (m *EventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[event.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[event.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, event.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.bot_id != nil {
		fields = append(fields, event.FieldBotID)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.level != nil {
		fields = append(fields, event.FieldLevel)
	}
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.threat_score != nil {
		fields = append(fields, event.FieldThreatScore)
	}
	if m.detection_types != nil {
		fields = append(fields, event.FieldDetectionTypes)
	}
	if m.message_content != nil {
		fields = append(fields, event.FieldMessageContent)
	}
	if m.message_hash != nil {
		fields = append(fields, event.FieldMessageHash)
	}
	if m.analysis_result != nil {
		fields = append(fields, event.FieldAnalysisResult)
	}
	if m.metadata != nil {
		fields = append(fields, event.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldBotID:
		return m.BotID()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldLevel:
		return m.Level()
	case event.FieldUserID:
		return m.UserID()
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldThreatScore:
		return m.ThreatScore()
	case event.FieldDetectionTypes:
		return m.DetectionTypes()
	case event.FieldMessageContent:
		return m.MessageContent()
	case event.FieldMessageHash:
		return m.MessageHash()
	case event.FieldAnalysisResult:
		return m.AnalysisResult()
	case event.FieldMetadata:
		return m.Metadata()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldBotID:
		return m.OldBotID(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldLevel:
		return m.OldLevel(ctx)
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldThreatScore:
		return m.OldThreatScore(ctx)
	case event.FieldDetectionTypes:
		return m.OldDetectionTypes(ctx)
	case event.FieldMessageContent:
		return m.OldMessageContent(ctx)
	case event.FieldMessageHash:
		return m.OldMessageHash(ctx)
	case event.FieldAnalysisResult:
		return m.OldAnalysisResult(ctx)
	case event.FieldMetadata:
		return m.OldMetadata(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(event.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldLevel:
		v, ok := value.(event.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case event.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldThreatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreatScore(v)
		return nil
	case event.FieldDetectionTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionTypes(v)
		return nil
	case event.FieldMessageContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageContent(v)
		return nil
	case event.FieldMessageHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageHash(v)
		return nil
	case event.FieldAnalysisResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisResult(v)
		return nil
	case event.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addthreat_score != nil {
		fields = append(fields, event.FieldThreatScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldThreatScore:
		return m.AddedThreatScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldThreatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreatScore(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldUserID) {
		fields = append(fields, event.FieldUserID)
	}
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	if m.FieldCleared(event.FieldThreatScore) {
		fields = append(fields, event.FieldThreatScore)
	}
	if m.FieldCleared(event.FieldDetectionTypes) {
		fields = append(fields, event.FieldDetectionTypes)
	}
	if m.FieldCleared(event.FieldMessageContent) {
		fields = append(fields, event.FieldMessageContent)
	}
	if m.FieldCleared(event.FieldMessageHash) {
		fields = append(fields, event.FieldMessageHash)
	}
	if m.FieldCleared(event.FieldAnalysisResult) {
		fields = append(fields, event.FieldAnalysisResult)
	}
	if m.FieldCleared(event.FieldMetadata) {
		fields = append(fields, event.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ClearUserID()
		return nil
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	case event.FieldThreatScore:
		m.ClearThreatScore()
		return nil
	case event.FieldDetectionTypes:
		m.ClearDetectionTypes()
		return nil
	case event.FieldMessageContent:
		m.ClearMessageContent()
		return nil
	case event.FieldMessageHash:
		m.ClearMessageHash()
		return nil
	case event.FieldAnalysisResult:
		m.ClearAnalysisResult()
		return nil
	case event.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldBotID:
		m.ResetBotID()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldLevel:
		m.ResetLevel()
		return nil
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldThreatScore:
		m.ResetThreatScore()
		return nil
	case event.FieldDetectionTypes:
		m.ResetDetectionTypes()
		return nil
	case event.FieldMessageContent:
		m.ResetMessageContent()
		return nil
	case event.FieldMessageHash:
		m.ResetMessageHash()
		return nil
	case event.FieldAnalysisResult:
		m.ResetAnalysisResult()
		return nil
	case event.FieldMetadata:
		m.ResetMetadata()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// NovelPatternMutation represents an operation that mutates the NovelPattern nodes in the graph.
type NovelPatternMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	pattern_text          *string
	attack_type           *string
	occurrence_count      *int
	addoccurrence_count   *int
	first_seen_at         *time.Time
	last_seen_at          *time.Time
	sample_contexts       *[]map[string]interface{}
	appendsample_contexts []map[string]interface{}
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*NovelPattern, error)
	predicates            []predicate.NovelPattern
}

var _ ent.Mutation = (*NovelPatternMutation)(nil)

// novelpatternOption allows management of the mutation configuration using functional options.
type novelpatternOption func(*NovelPatternMutation)

// newNovelPatternMutation creates new mutation for the NovelPattern entity.
func newNovelPatternMutation(c config, op Op, opts ...novelpatternOption) *NovelPatternMutation {
	m := &NovelPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeNovelPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNovelPatternID sets the ID field of the mutation.
func withNovelPatternID(id string) novelpatternOption {
	return func(m *NovelPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *NovelPattern
		)
		m.oldValue = func(ctx context.Context) (*NovelPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NovelPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNovelPattern sets the old NovelPattern of the mutation.
func withNovelPattern(node *NovelPattern) novelpatternOption {
	return func(m *NovelPatternMutation) {
		m.oldValue = func(context.Context) (*NovelPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NovelPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NovelPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NovelPattern entities.
func (m *NovelPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NovelPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NovelPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NovelPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternText sets the "pattern_text" field.
func (m *NovelPatternMutation) SetPatternText(s string) {
	m.pattern_text = &s
}

// PatternText returns the value of the "pattern_text" field in the mutation.
func (m *NovelPatternMutation) PatternText() (r string, exists bool) {
	v := m.pattern_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternText returns the old "pattern_text" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldPatternText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternText: %w", err)
	}
	return oldValue.PatternText, nil
}

// ResetPatternText resets all changes to the "pattern_text" field.
func (m *NovelPatternMutation) ResetPatternText() {
	m.pattern_text = nil
}

// SetAttackType sets the "attack_type" field.
func (m *NovelPatternMutation) SetAttackType(s string) {
	m.attack_type = &s
}

// AttackType returns the value of the "attack_type" field in the mutation.
func (m *NovelPatternMutation) AttackType() (r string, exists bool) {
	v := m.attack_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackType returns the old "attack_type" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldAttackType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackType: %w", err)
	}
	return oldValue.AttackType, nil
}

// ResetAttackType resets all changes to the "attack_type" field.
func (m *NovelPatternMutation) ResetAttackType() {
	m.attack_type = nil
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *NovelPatternMutation) SetOccurrenceCount(i int) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *NovelPatternMutation) OccurrenceCount() (r int, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldOccurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *NovelPatternMutation) AddOccurrenceCount(i int) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *NovelPatternMutation) AddedOccurrenceCount() (r int, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *NovelPatternMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *NovelPatternMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *NovelPatternMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *NovelPatternMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *NovelPatternMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *NovelPatternMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *NovelPatternMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetSampleContexts sets the "sample_contexts" field.
func (m *NovelPatternMutation) SetSampleContexts(value []map[string]interface{}) {
	m.sample_contexts = &value
	m.appendsample_contexts = nil
}

// SampleContexts returns the value of the "sample_contexts" field in the mutation.
func (m *NovelPatternMutation) SampleContexts() (r []map[string]interface{}, exists bool) {
	v := m.sample_contexts
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleContexts returns the old "sample_contexts" field's value of the NovelPattern entity.
// If the NovelPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelPatternMutation) OldSampleContexts(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleContexts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleContexts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleContexts: %w", err)
	}
	return oldValue.SampleContexts, nil
}

// AppendSampleContexts adds value to the "sample_contexts" field.
func (m *NovelPatternMutation) AppendSampleContexts(value []map[string]interface{}) {
	m.appendsample_contexts = append(m.appendsample_contexts, value...)
}

// AppendedSampleContexts returns the list of values that were appended to the "sample_contexts" field in this mutation.
func (m *NovelPatternMutation) AppendedSampleContexts() ([]map[string]interface{}, bool) {
	if len(m.appendsample_contexts) == 0 {
		return nil, false
	}
	return m.appendsample_contexts, true
}

// ClearSampleContexts clears the value of the "sample_contexts" field.
func (m *NovelPatternMutation) ClearSampleContexts() {
	m.sample_contexts = nil
	m.appendsample_contexts = nil
	m.clearedFields[novelpattern.FieldSampleContexts] = struct{}{}
}

// SampleContextsCleared returns if the "sample_contexts" field was cleared in this mutation.
func (m *NovelPatternMutation) SampleContextsCleared() bool {
	_, ok := m.clearedFields[novelpattern.FieldSampleContexts]
	return ok
}

// ResetSampleContexts resets all changes to the "sample_contexts" field.
func (m *NovelPatternMutation) ResetSampleContexts() {
	m.sample_contexts = nil
	m.appendsample_contexts = nil
	delete(m.clearedFields, novelpattern.FieldSampleContexts)
}

// Where appends a list predicates to the NovelPatternMutation builder.
func (m *NovelPatternMutation) Where(ps ...predicate.NovelPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NovelPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NovelPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NovelPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NovelPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NovelPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NovelPattern).
func (m *NovelPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NovelPatternMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.pattern_text != nil {
		fields = append(fields, novelpattern.FieldPatternText)
	}
	if m.attack_type != nil {
		fields = append(fields, novelpattern.FieldAttackType)
	}
	if m.occurrence_count != nil {
		fields = append(fields, novelpattern.FieldOccurrenceCount)
	}
	if m.first_seen_at != nil {
		fields = append(fields, novelpattern.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, novelpattern.FieldLastSeenAt)
	}
	if m.sample_contexts != nil {
		fields = append(fields, novelpattern.FieldSampleContexts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NovelPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case novelpattern.FieldPatternText:
		return m.PatternText()
	case novelpattern.FieldAttackType:
		return m.AttackType()
	case novelpattern.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case novelpattern.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case novelpattern.FieldLastSeenAt:
		return m.LastSeenAt()
	case novelpattern.FieldSampleContexts:
		return m.SampleContexts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NovelPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case novelpattern.FieldPatternText:
		return m.OldPatternText(ctx)
	case novelpattern.FieldAttackType:
		return m.OldAttackType(ctx)
	case novelpattern.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case novelpattern.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case novelpattern.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case novelpattern.FieldSampleContexts:
		return m.OldSampleContexts(ctx)
	}
	return nil, fmt.Errorf("unknown NovelPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NovelPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case novelpattern.FieldPatternText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternText(v)
		return nil
	case novelpattern.FieldAttackType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackType(v)
		return nil
	case novelpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case novelpattern.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case novelpattern.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case novelpattern.FieldSampleContexts:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleContexts(v)
		return nil
	}
	return fmt.Errorf("unknown NovelPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NovelPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrence_count != nil {
		fields = append(fields, novelpattern.FieldOccurrenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NovelPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case novelpattern.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NovelPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case novelpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown NovelPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NovelPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(novelpattern.FieldSampleContexts) {
		fields = append(fields, novelpattern.FieldSampleContexts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NovelPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NovelPatternMutation) ClearField(name string) error {
	switch name {
	case novelpattern.FieldSampleContexts:
		m.ClearSampleContexts()
		return nil
	}
	return fmt.Errorf("unknown NovelPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NovelPatternMutation) ResetField(name string) error {
	switch name {
	case novelpattern.FieldPatternText:
		m.ResetPatternText()
		return nil
	case novelpattern.FieldAttackType:
		m.ResetAttackType()
		return nil
	case novelpattern.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case novelpattern.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case novelpattern.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case novelpattern.FieldSampleContexts:
		m.ResetSampleContexts()
		return nil
	}
	return fmt.Errorf("unknown NovelPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NovelPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NovelPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NovelPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NovelPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NovelPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NovelPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NovelPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NovelPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NovelPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NovelPattern edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	bot_id                 *string
	user_id                *string
	started_at             *time.Time
	ended_at               *time.Time
	final_mode             *session.FinalMode
	final_score            *float64
	addfinal_score         *float64
	max_score              *float64
	addmax_score           *float64
	total_messages         *int
	addtotal_messages      *int
	detection_count        *int
	adddetection_count     *int
	honeypot_responses     *int
	addhoneypot_responses  *int
	attack_types           *[]string
	appendattack_types     []string
	conversation_log       *[]map[string]interface{}
	appendconversation_log []map[string]interface{}
	metadata               *map[string]interface{}
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Session, error)
	predicates             []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *SessionMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *SessionMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *SessionMutation) ResetBotID() {
	m.bot_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetFinalMode sets the "final_mode" field.
func (m *SessionMutation) SetFinalMode(sm session.FinalMode) {
	m.final_mode = &sm
}

// FinalMode returns the value of the "final_mode" field in the mutation.
func (m *SessionMutation) FinalMode() (r session.FinalMode, exists bool) {
	v := m.final_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalMode returns the old "final_mode" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalMode(ctx context.Context) (v session.FinalMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalMode: %w", err)
	}
	return oldValue.FinalMode, nil
}

// ResetFinalMode resets all changes to the "final_mode" field.
func (m *SessionMutation) ResetFinalMode() {
	m.final_mode = nil
}

// SetFinalScore sets the "final_score" field.
func (m *SessionMutation) SetFinalScore(f float64) {
	m.final_score = &f
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *SessionMutation) FinalScore() (r float64, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds f to the "final_score" field.
func (m *SessionMutation) AddFinalScore(f float64) {
	if m.addfinal_score != nil {
		*m.addfinal_score += f
	} else {
		m.addfinal_score = &f
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *SessionMutation) AddedFinalScore() (r float64, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *SessionMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
}

// SetMaxScore sets the "max_score" field.
func (m *SessionMutation) SetMaxScore(f float64) {
	m.max_score = &f
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *SessionMutation) MaxScore() (r float64, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMaxScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds f to the "max_score" field.
func (m *SessionMutation) AddMaxScore(f float64) {
	if m.addmax_score != nil {
		*m.addmax_score += f
	} else {
		m.addmax_score = &f
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *SessionMutation) AddedMaxScore() (r float64, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *SessionMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetTotalMessages sets the "total_messages" field.
func (m *SessionMutation) SetTotalMessages(i int) {
	m.total_messages = &i
	m.addtotal_messages = nil
}

// TotalMessages returns the value of the "total_messages" field in the mutation.
func (m *SessionMutation) TotalMessages() (r int, exists bool) {
	v := m.total_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMessages returns the old "total_messages" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalMessages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMessages: %w", err)
	}
	return oldValue.TotalMessages, nil
}

// AddTotalMessages adds i to the "total_messages" field.
func (m *SessionMutation) AddTotalMessages(i int) {
	if m.addtotal_messages != nil {
		*m.addtotal_messages += i
	} else {
		m.addtotal_messages = &i
	}
}

// AddedTotalMessages returns the value that was added to the "total_messages" field in this mutation.
func (m *SessionMutation) AddedTotalMessages() (r int, exists bool) {
	v := m.addtotal_messages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMessages resets all changes to the "total_messages" field.
func (m *SessionMutation) ResetTotalMessages() {
	m.total_messages = nil
	m.addtotal_messages = nil
}

// SetDetectionCount sets the "detection_count" field.
func (m *SessionMutation) SetDetectionCount(i int) {
	m.detection_count = &i
	m.adddetection_count = nil
}

// DetectionCount returns the value of the "detection_count" field in the mutation.
func (m *SessionMutation) DetectionCount() (r int, exists bool) {
	v := m.detection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionCount returns the old "detection_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDetectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionCount: %w", err)
	}
	return oldValue.DetectionCount, nil
}

// AddDetectionCount adds i to the "detection_count" field.
func (m *SessionMutation) AddDetectionCount(i int) {
	if m.adddetection_count != nil {
		*m.adddetection_count += i
	} else {
		m.adddetection_count = &i
	}
}

// AddedDetectionCount returns the value that was added to the "detection_count" field in this mutation.
func (m *SessionMutation) AddedDetectionCount() (r int, exists bool) {
	v := m.adddetection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDetectionCount resets all changes to the "detection_count" field.
func (m *SessionMutation) ResetDetectionCount() {
	m.detection_count = nil
	m.adddetection_count = nil
}

// SetHoneypotResponses sets the "honeypot_responses" field.
func (m *SessionMutation) SetHoneypotResponses(i int) {
	m.honeypot_responses = &i
	m.addhoneypot_responses = nil
}

// HoneypotResponses returns the value of the "honeypot_responses" field in the mutation.
func (m *SessionMutation) HoneypotResponses() (r int, exists bool) {
	v := m.honeypot_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldHoneypotResponses returns the old "honeypot_responses" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldHoneypotResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoneypotResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoneypotResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoneypotResponses: %w", err)
	}
	return oldValue.HoneypotResponses, nil
}

// AddHoneypotResponses adds i to the "honeypot_responses" field.
func (m *SessionMutation) AddHoneypotResponses(i int) {
	if m.addhoneypot_responses != nil {
		*m.addhoneypot_responses += i
	} else {
		m.addhoneypot_responses = &i
	}
}

// AddedHoneypotResponses returns the value that was added to the "honeypot_responses" field in this mutation.
func (m *SessionMutation) AddedHoneypotResponses() (r int, exists bool) {
	v := m.addhoneypot_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoneypotResponses resets all changes to the "honeypot_responses" field.
func (m *SessionMutation) ResetHoneypotResponses() {
	m.honeypot_responses = nil
	m.addhoneypot_responses = nil
}

// SetAttackTypes sets the "attack_types" field.
func (m *SessionMutation) SetAttackTypes(s []string) {
	m.attack_types = &s
	m.appendattack_types = nil
}

// AttackTypes returns the value of the "attack_types" field in the mutation.
func (m *SessionMutation) AttackTypes() (r []string, exists bool) {
	v := m.attack_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackTypes returns the old "attack_types" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAttackTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackTypes: %w", err)
	}
	return oldValue.AttackTypes, nil
}

// AppendAttackTypes adds s to the "attack_types" field.
func (m *SessionMutation) AppendAttackTypes(s []string) {
	m.appendattack_types = append(m.appendattack_types, s...)
}

// AppendedAttackTypes returns the list of values that were appended to the "attack_types" field in this mutation.
func (m *SessionMutation) AppendedAttackTypes() ([]string, bool) {
	if len(m.appendattack_types) == 0 {
		return nil, false
	}
	return m.appendattack_types, true
}

// ClearAttackTypes clears the value of the "attack_types" field.
func (m *SessionMutation) ClearAttackTypes() {
	m.attack_types = nil
	m.appendattack_types = nil
	m.clearedFields[session.FieldAttackTypes] = struct{}{}
}

// AttackTypesCleared returns if the "attack_types" field was cleared in this mutation.
func (m *SessionMutation) AttackTypesCleared() bool {
	_, ok := m.clearedFields[session.FieldAttackTypes]
	return ok
}

// ResetAttackTypes resets all changes to the "attack_types" field.
func (m *SessionMutation) ResetAttackTypes() {
	m.attack_types = nil
	m.appendattack_types = nil
	delete(m.clearedFields, session.FieldAttackTypes)
}

// SetConversationLog sets the "conversation_log" field.
func (m *SessionMutation) SetConversationLog(value []map[string]interface{}) {
	m.conversation_log = &value
	m.appendconversation_log = nil
}

// ConversationLog returns the value of the "conversation_log" field in the mutation.
func (m *SessionMutation) ConversationLog() (r []map[string]interface{}, exists bool) {
	v := m.conversation_log
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationLog returns the old "conversation_log" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldConversationLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationLog: %w", err)
	}
	return oldValue.ConversationLog, nil
}

// AppendConversationLog adds value to the "conversation_log" field.
func (m *SessionMutation) AppendConversationLog(value []map[string]interface{}) {
	m.appendconversation_log = append(m.appendconversation_log, value...)
}

// AppendedConversationLog returns the list of values that were appended to the "conversation_log" field in this mutation.
func (m *SessionMutation) AppendedConversationLog() ([]map[string]interface{}, bool) {
	if len(m.appendconversation_log) == 0 {
		return nil, false
	}
	return m.appendconversation_log, true
}

// ClearConversationLog clears the value of the "conversation_log" field.
func (m *SessionMutation) ClearConversationLog() {
	m.conversation_log = nil
	m.appendconversation_log = nil
	m.clearedFields[session.FieldConversationLog] = struct{}{}
}

// ConversationLogCleared returns if the "conversation_log" field was cleared in this mutation.
func (m *SessionMutation) ConversationLogCleared() bool {
	_, ok := m.clearedFields[session.FieldConversationLog]
	return ok
}

// ResetConversationLog resets all changes to the "conversation_log" field.
func (m *SessionMutation) ResetConversationLog() {
	m.conversation_log = nil
	m.appendconversation_log = nil
	delete(m.clearedFields, session.FieldConversationLog)
}

// SetMetadata sets the "metadata" field.
func (m *SessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[session.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, session.FieldMetadata)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.bot_id != nil {
		fields = append(fields, session.FieldBotID)
	}
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.final_mode != nil {
		fields = append(fields, session.FieldFinalMode)
	}
	if m.final_score != nil {
		fields = append(fields, session.FieldFinalScore)
	}
	if m.max_score != nil {
		fields = append(fields, session.FieldMaxScore)
	}
	if m.total_messages != nil {
		fields = append(fields, session.FieldTotalMessages)
	}
	if m.detection_count != nil {
		fields = append(fields, session.FieldDetectionCount)
	}
	if m.honeypot_responses != nil {
		fields = append(fields, session.FieldHoneypotResponses)
	}
	if m.attack_types != nil {
		fields = append(fields, session.FieldAttackTypes)
	}
	if m.conversation_log != nil {
		fields = append(fields, session.FieldConversationLog)
	}
	if m.metadata != nil {
		fields = append(fields, session.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldBotID:
		return m.BotID()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldFinalMode:
		return m.FinalMode()
	case session.FieldFinalScore:
		return m.FinalScore()
	case session.FieldMaxScore:
		return m.MaxScore()
	case session.FieldTotalMessages:
		return m.TotalMessages()
	case session.FieldDetectionCount:
		return m.DetectionCount()
	case session.FieldHoneypotResponses:
		return m.HoneypotResponses()
	case session.FieldAttackTypes:
		return m.AttackTypes()
	case session.FieldConversationLog:
		return m.ConversationLog()
	case session.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldBotID:
		return m.OldBotID(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldFinalMode:
		return m.OldFinalMode(ctx)
	case session.FieldFinalScore:
		return m.OldFinalScore(ctx)
	case session.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case session.FieldTotalMessages:
		return m.OldTotalMessages(ctx)
	case session.FieldDetectionCount:
		return m.OldDetectionCount(ctx)
	case session.FieldHoneypotResponses:
		return m.OldHoneypotResponses(ctx)
	case session.FieldAttackTypes:
		return m.OldAttackTypes(ctx)
	case session.FieldConversationLog:
		return m.OldConversationLog(ctx)
	case session.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldFinalMode:
		v, ok := value.(session.FinalMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalMode(v)
		return nil
	case session.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	case session.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case session.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMessages(v)
		return nil
	case session.FieldDetectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionCount(v)
		return nil
	case session.FieldHoneypotResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoneypotResponses(v)
		return nil
	case session.FieldAttackTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackTypes(v)
		return nil
	case session.FieldConversationLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationLog(v)
		return nil
	case session.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addfinal_score != nil {
		fields = append(fields, session.FieldFinalScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, session.FieldMaxScore)
	}
	if m.addtotal_messages != nil {
		fields = append(fields, session.FieldTotalMessages)
	}
	if m.adddetection_count != nil {
		fields = append(fields, session.FieldDetectionCount)
	}
	if m.addhoneypot_responses != nil {
		fields = append(fields, session.FieldHoneypotResponses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldFinalScore:
		return m.AddedFinalScore()
	case session.FieldMaxScore:
		return m.AddedMaxScore()
	case session.FieldTotalMessages:
		return m.AddedTotalMessages()
	case session.FieldDetectionCount:
		return m.AddedDetectionCount()
	case session.FieldHoneypotResponses:
		return m.AddedHoneypotResponses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	case session.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	case session.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMessages(v)
		return nil
	case session.FieldDetectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDetectionCount(v)
		return nil
	case session.FieldHoneypotResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoneypotResponses(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.FieldCleared(session.FieldAttackTypes) {
		fields = append(fields, session.FieldAttackTypes)
	}
	if m.FieldCleared(session.FieldConversationLog) {
		fields = append(fields, session.FieldConversationLog)
	}
	if m.FieldCleared(session.FieldMetadata) {
		fields = append(fields, session.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case session.FieldAttackTypes:
		m.ClearAttackTypes()
		return nil
	case session.FieldConversationLog:
		m.ClearConversationLog()
		return nil
	case session.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldBotID:
		m.ResetBotID()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldFinalMode:
		m.ResetFinalMode()
		return nil
	case session.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	case session.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case session.FieldTotalMessages:
		m.ResetTotalMessages()
		return nil
	case session.FieldDetectionCount:
		m.ResetDetectionCount()
		return nil
	case session.FieldHoneypotResponses:
		m.ResetHoneypotResponses()
		return nil
	case session.FieldAttackTypes:
		m.ResetAttackTypes()
		return nil
	case session.FieldConversationLog:
		m.ResetConversationLog()
		return nil
	case session.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
