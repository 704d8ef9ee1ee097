// Code generated by ent, DO NOT EDIT.

package novelpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldContainsFold(FieldID, id))
}

// PatternText applies equality check predicate on the "pattern_text" field. It's identical to PatternTextEQ.
func PatternText(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldPatternText, v))
}

// AttackType applies equality check predicate on the "attack_type" field. It's identical to AttackTypeEQ.
func AttackType(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldAttackType, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// PatternTextEQ applies the EQ predicate on the "pattern_text" field.
func PatternTextEQ(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldPatternText, v))
}

// PatternTextNEQ applies the NEQ predicate on the "pattern_text" field.
func PatternTextNEQ(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldPatternText, v))
}

// PatternTextIn applies the In predicate on the "pattern_text" field.
func PatternTextIn(vs ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldPatternText, vs...))
}

// PatternTextNotIn applies the NotIn predicate on the "pattern_text" field.
func PatternTextNotIn(vs ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldPatternText, vs...))
}

// PatternTextGT applies the GT predicate on the "pattern_text" field.
func PatternTextGT(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldPatternText, v))
}

// PatternTextGTE applies the GTE predicate on the "pattern_text" field.
func PatternTextGTE(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldPatternText, v))
}

// PatternTextLT applies the LT predicate on the "pattern_text" field.
func PatternTextLT(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldPatternText, v))
}

// PatternTextLTE applies the LTE predicate on the "pattern_text" field.
func PatternTextLTE(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldPatternText, v))
}

// PatternTextContains applies the Contains predicate on the "pattern_text" field.
func PatternTextContains(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldContains(FieldPatternText, v))
}

// PatternTextHasPrefix applies the HasPrefix predicate on the "pattern_text" field.
func PatternTextHasPrefix(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldHasPrefix(FieldPatternText, v))
}

// PatternTextHasSuffix applies the HasSuffix predicate on the "pattern_text" field.
func PatternTextHasSuffix(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldHasSuffix(FieldPatternText, v))
}

// PatternTextEqualFold applies the EqualFold predicate on the "pattern_text" field.
func PatternTextEqualFold(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEqualFold(FieldPatternText, v))
}

// PatternTextContainsFold applies the ContainsFold predicate on the "pattern_text" field.
func PatternTextContainsFold(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldContainsFold(FieldPatternText, v))
}

// AttackTypeEQ applies the EQ predicate on the "attack_type" field.
func AttackTypeEQ(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldAttackType, v))
}

// AttackTypeNEQ applies the NEQ predicate on the "attack_type" field.
func AttackTypeNEQ(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldAttackType, v))
}

// AttackTypeIn applies the In predicate on the "attack_type" field.
func AttackTypeIn(vs ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldAttackType, vs...))
}

// AttackTypeNotIn applies the NotIn predicate on the "attack_type" field.
func AttackTypeNotIn(vs ...string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldAttackType, vs...))
}

// AttackTypeGT applies the GT predicate on the "attack_type" field.
func AttackTypeGT(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldAttackType, v))
}

// AttackTypeGTE applies the GTE predicate on the "attack_type" field.
func AttackTypeGTE(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldAttackType, v))
}

// AttackTypeLT applies the LT predicate on the "attack_type" field.
func AttackTypeLT(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldAttackType, v))
}

// AttackTypeLTE applies the LTE predicate on the "attack_type" field.
func AttackTypeLTE(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldAttackType, v))
}

// AttackTypeContains applies the Contains predicate on the "attack_type" field.
func AttackTypeContains(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldContains(FieldAttackType, v))
}

// AttackTypeHasPrefix applies the HasPrefix predicate on the "attack_type" field.
func AttackTypeHasPrefix(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldHasPrefix(FieldAttackType, v))
}

// AttackTypeHasSuffix applies the HasSuffix predicate on the "attack_type" field.
func AttackTypeHasSuffix(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldHasSuffix(FieldAttackType, v))
}

// AttackTypeEqualFold applies the EqualFold predicate on the "attack_type" field.
func AttackTypeEqualFold(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEqualFold(FieldAttackType, v))
}

// AttackTypeContainsFold applies the ContainsFold predicate on the "attack_type" field.
func AttackTypeContainsFold(v string) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldContainsFold(FieldAttackType, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldOccurrenceCount, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldLTE(FieldLastSeenAt, v))
}

// SampleContextsIsNil applies the IsNil predicate on the "sample_contexts" field.
func SampleContextsIsNil() predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldIsNull(FieldSampleContexts))
}

// SampleContextsNotNil applies the NotNil predicate on the "sample_contexts" field.
func SampleContextsNotNil() predicate.NovelPattern {
	return predicate.NovelPattern(sql.FieldNotNull(FieldSampleContexts))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NovelPattern) predicate.NovelPattern {
	return predicate.NovelPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NovelPattern) predicate.NovelPattern {
	return predicate.NovelPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NovelPattern) predicate.NovelPattern {
	return predicate.NovelPattern(sql.NotPredicates(p))
}
