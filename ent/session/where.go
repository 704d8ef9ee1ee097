// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBotID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxScore, v))
}

// TotalMessages applies equality check predicate on the "total_messages" field. It's identical to TotalMessagesEQ.
func TotalMessages(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalMessages, v))
}

// DetectionCount applies equality check predicate on the "detection_count" field. It's identical to DetectionCountEQ.
func DetectionCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDetectionCount, v))
}

// HoneypotResponses applies equality check predicate on the "honeypot_responses" field. It's identical to HoneypotResponsesEQ.
func HoneypotResponses(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldHoneypotResponses, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldBotID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// FinalModeEQ applies the EQ predicate on the "final_mode" field.
func FinalModeEQ(v FinalMode) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalMode, v))
}

// FinalModeNEQ applies the NEQ predicate on the "final_mode" field.
func FinalModeNEQ(v FinalMode) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalMode, v))
}

// FinalModeIn applies the In predicate on the "final_mode" field.
func FinalModeIn(vs ...FinalMode) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalMode, vs...))
}

// FinalModeNotIn applies the NotIn predicate on the "final_mode" field.
func FinalModeNotIn(vs ...FinalMode) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalMode, vs...))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinalScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMaxScore, v))
}

// TotalMessagesEQ applies the EQ predicate on the "total_messages" field.
func TotalMessagesEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalMessages, v))
}

// TotalMessagesNEQ applies the NEQ predicate on the "total_messages" field.
func TotalMessagesNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalMessages, v))
}

// TotalMessagesIn applies the In predicate on the "total_messages" field.
func TotalMessagesIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalMessages, vs...))
}

// TotalMessagesNotIn applies the NotIn predicate on the "total_messages" field.
func TotalMessagesNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalMessages, vs...))
}

// TotalMessagesGT applies the GT predicate on the "total_messages" field.
func TotalMessagesGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalMessages, v))
}

// TotalMessagesGTE applies the GTE predicate on the "total_messages" field.
func TotalMessagesGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalMessages, v))
}

// TotalMessagesLT applies the LT predicate on the "total_messages" field.
func TotalMessagesLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalMessages, v))
}

// TotalMessagesLTE applies the LTE predicate on the "total_messages" field.
func TotalMessagesLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalMessages, v))
}

// DetectionCountEQ applies the EQ predicate on the "detection_count" field.
func DetectionCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDetectionCount, v))
}

// DetectionCountNEQ applies the NEQ predicate on the "detection_count" field.
func DetectionCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDetectionCount, v))
}

// DetectionCountIn applies the In predicate on the "detection_count" field.
func DetectionCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDetectionCount, vs...))
}

// DetectionCountNotIn applies the NotIn predicate on the "detection_count" field.
func DetectionCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDetectionCount, vs...))
}

// DetectionCountGT applies the GT predicate on the "detection_count" field.
func DetectionCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDetectionCount, v))
}

// DetectionCountGTE applies the GTE predicate on the "detection_count" field.
func DetectionCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDetectionCount, v))
}

// DetectionCountLT applies the LT predicate on the "detection_count" field.
func DetectionCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDetectionCount, v))
}

// DetectionCountLTE applies the LTE predicate on the "detection_count" field.
func DetectionCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDetectionCount, v))
}

// HoneypotResponsesEQ applies the EQ predicate on the "honeypot_responses" field.
func HoneypotResponsesEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldHoneypotResponses, v))
}

// HoneypotResponsesNEQ applies the NEQ predicate on the "honeypot_responses" field.
func HoneypotResponsesNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldHoneypotResponses, v))
}

// HoneypotResponsesIn applies the In predicate on the "honeypot_responses" field.
func HoneypotResponsesIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldHoneypotResponses, vs...))
}

// HoneypotResponsesNotIn applies the NotIn predicate on the "honeypot_responses" field.
func HoneypotResponsesNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldHoneypotResponses, vs...))
}

// HoneypotResponsesGT applies the GT predicate on the "honeypot_responses" field.
func HoneypotResponsesGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldHoneypotResponses, v))
}

// HoneypotResponsesGTE applies the GTE predicate on the "honeypot_responses" field.
func HoneypotResponsesGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldHoneypotResponses, v))
}

// HoneypotResponsesLT applies the LT predicate on the "honeypot_responses" field.
func HoneypotResponsesLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldHoneypotResponses, v))
}

// HoneypotResponsesLTE applies the LTE predicate on the "honeypot_responses" field.
func HoneypotResponsesLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldHoneypotResponses, v))
}

// AttackTypesIsNil applies the IsNil predicate on the "attack_types" field.
func AttackTypesIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAttackTypes))
}

// AttackTypesNotNil applies the NotNil predicate on the "attack_types" field.
func AttackTypesNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAttackTypes))
}

// ConversationLogIsNil applies the IsNil predicate on the "conversation_log" field.
func ConversationLogIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldConversationLog))
}

// ConversationLogNotNil applies the NotNil predicate on the "conversation_log" field.
func ConversationLogNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldConversationLog))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
