// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBotID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// ThreatScore applies equality check predicate on the "threat_score" field. It's identical to ThreatScoreEQ.
func ThreatScore(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldThreatScore, v))
}

// MessageContent applies equality check predicate on the "message_content" field. It's identical to MessageContentEQ.
func MessageContent(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessageContent, v))
}

// MessageHash applies equality check predicate on the "message_hash" field. It's identical to MessageHashEQ.
func MessageHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessageHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldBotID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLevel, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSessionID, v))
}

// ThreatScoreEQ applies the EQ predicate on the "threat_score" field.
func ThreatScoreEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldThreatScore, v))
}

// ThreatScoreNEQ applies the NEQ predicate on the "threat_score" field.
func ThreatScoreNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldThreatScore, v))
}

// ThreatScoreIn applies the In predicate on the "threat_score" field.
func ThreatScoreIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldThreatScore, vs...))
}

// ThreatScoreNotIn applies the NotIn predicate on the "threat_score" field.
func ThreatScoreNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldThreatScore, vs...))
}

// ThreatScoreGT applies the GT predicate on the "threat_score" field.
func ThreatScoreGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldThreatScore, v))
}

// ThreatScoreGTE applies the GTE predicate on the "threat_score" field.
func ThreatScoreGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldThreatScore, v))
}

// ThreatScoreLT applies the LT predicate on the "threat_score" field.
func ThreatScoreLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldThreatScore, v))
}

// ThreatScoreLTE applies the LTE predicate on the "threat_score" field.
func ThreatScoreLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldThreatScore, v))
}

// ThreatScoreIsNil applies the IsNil predicate on the "threat_score" field.
func ThreatScoreIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldThreatScore))
}

// ThreatScoreNotNil applies the NotNil predicate on the "threat_score" field.
func ThreatScoreNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldThreatScore))
}

// DetectionTypesIsNil applies the IsNil predicate on the "detection_types" field.
func DetectionTypesIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldDetectionTypes))
}

// DetectionTypesNotNil applies the NotNil predicate on the "detection_types" field.
func DetectionTypesNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldDetectionTypes))
}

// MessageContentEQ applies the EQ predicate on the "message_content" field.
func MessageContentEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessageContent, v))
}

// MessageContentNEQ applies the NEQ predicate on the "message_content" field.
func MessageContentNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldMessageContent, v))
}

// MessageContentIn applies the In predicate on the "message_content" field.
func MessageContentIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldMessageContent, vs...))
}

// MessageContentNotIn applies the NotIn predicate on the "message_content" field.
func MessageContentNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldMessageContent, vs...))
}

// MessageContentGT applies the GT predicate on the "message_content" field.
func MessageContentGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldMessageContent, v))
}

// MessageContentGTE applies the GTE predicate on the "message_content" field.
func MessageContentGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldMessageContent, v))
}

// MessageContentLT applies the LT predicate on the "message_content" field.
func MessageContentLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldMessageContent, v))
}

// MessageContentLTE applies the LTE predicate on the "message_content" field.
func MessageContentLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldMessageContent, v))
}

// MessageContentContains applies the Contains predicate on the "message_content" field.
func MessageContentContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldMessageContent, v))
}

// MessageContentHasPrefix applies the HasPrefix predicate on the "message_content" field.
func MessageContentHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldMessageContent, v))
}

// MessageContentHasSuffix applies the HasSuffix predicate on the "message_content" field.
func MessageContentHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldMessageContent, v))
}

// MessageContentIsNil applies the IsNil predicate on the "message_content" field.
func MessageContentIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMessageContent))
}

// MessageContentNotNil applies the NotNil predicate on the "message_content" field.
func MessageContentNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMessageContent))
}

// MessageContentEqualFold applies the EqualFold predicate on the "message_content" field.
func MessageContentEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldMessageContent, v))
}

// MessageContentContainsFold applies the ContainsFold predicate on the "message_content" field.
func MessageContentContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldMessageContent, v))
}

// MessageHashEQ applies the EQ predicate on the "message_hash" field.
func MessageHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessageHash, v))
}

// MessageHashNEQ applies the NEQ predicate on the "message_hash" field.
func MessageHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldMessageHash, v))
}

// MessageHashIn applies the In predicate on the "message_hash" field.
func MessageHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldMessageHash, vs...))
}

// MessageHashNotIn applies the NotIn predicate on the "message_hash" field.
func MessageHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldMessageHash, vs...))
}

// MessageHashGT applies the GT predicate on the "message_hash" field.
func MessageHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldMessageHash, v))
}

// MessageHashGTE applies the GTE predicate on the "message_hash" field.
func MessageHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldMessageHash, v))
}

// MessageHashLT applies the LT predicate on the "message_hash" field.
func MessageHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldMessageHash, v))
}

// MessageHashLTE applies the LTE predicate on the "message_hash" field.
func MessageHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldMessageHash, v))
}

// MessageHashContains applies the Contains predicate on the "message_hash" field.
func MessageHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldMessageHash, v))
}

// MessageHashHasPrefix applies the HasPrefix predicate on the "message_hash" field.
func MessageHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldMessageHash, v))
}

// MessageHashHasSuffix applies the HasSuffix predicate on the "message_hash" field.
func MessageHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldMessageHash, v))
}

// MessageHashIsNil applies the IsNil predicate on the "message_hash" field.
func MessageHashIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMessageHash))
}

// MessageHashNotNil applies the NotNil predicate on the "message_hash" field.
func MessageHashNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMessageHash))
}

// MessageHashEqualFold applies the EqualFold predicate on the "message_hash" field.
func MessageHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldMessageHash, v))
}

// MessageHashContainsFold applies the ContainsFold predicate on the "message_hash" field.
func MessageHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldMessageHash, v))
}

// AnalysisResultIsNil applies the IsNil predicate on the "analysis_result" field.
func AnalysisResultIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAnalysisResult))
}

// AnalysisResultNotNil applies the NotNil predicate on the "analysis_result" field.
func AnalysisResultNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAnalysisResult))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
