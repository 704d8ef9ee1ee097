// Code generated by ent, DO NOT EDIT.

package bot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldID, id))
}

// PersonaCategory applies equality check predicate on the "persona_category" field. It's identical to PersonaCategoryEQ.
func PersonaCategory(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldPersonaCategory, v))
}

// PersonaName applies equality check predicate on the "persona_name" field. It's identical to PersonaNameEQ.
func PersonaName(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldPersonaName, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldCompanyName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldVersion, v))
}

// ConfigHash applies equality check predicate on the "config_hash" field. It's identical to ConfigHashEQ.
func ConfigHash(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldConfigHash, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldLastHeartbeat, v))
}

// RegisteredAt applies equality check predicate on the "registered_at" field. It's identical to RegisteredAtEQ.
func RegisteredAt(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldRegisteredAt, v))
}

// PersonaCategoryEQ applies the EQ predicate on the "persona_category" field.
func PersonaCategoryEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldPersonaCategory, v))
}

// PersonaCategoryNEQ applies the NEQ predicate on the "persona_category" field.
func PersonaCategoryNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldPersonaCategory, v))
}

// PersonaCategoryIn applies the In predicate on the "persona_category" field.
func PersonaCategoryIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldPersonaCategory, vs...))
}

// PersonaCategoryNotIn applies the NotIn predicate on the "persona_category" field.
func PersonaCategoryNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldPersonaCategory, vs...))
}

// PersonaCategoryGT applies the GT predicate on the "persona_category" field.
func PersonaCategoryGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldPersonaCategory, v))
}

// PersonaCategoryGTE applies the GTE predicate on the "persona_category" field.
func PersonaCategoryGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldPersonaCategory, v))
}

// PersonaCategoryLT applies the LT predicate on the "persona_category" field.
func PersonaCategoryLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldPersonaCategory, v))
}

// PersonaCategoryLTE applies the LTE predicate on the "persona_category" field.
func PersonaCategoryLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldPersonaCategory, v))
}

// PersonaCategoryContains applies the Contains predicate on the "persona_category" field.
func PersonaCategoryContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldPersonaCategory, v))
}

// PersonaCategoryHasPrefix applies the HasPrefix predicate on the "persona_category" field.
func PersonaCategoryHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldPersonaCategory, v))
}

// PersonaCategoryHasSuffix applies the HasSuffix predicate on the "persona_category" field.
func PersonaCategoryHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldPersonaCategory, v))
}

// PersonaCategoryEqualFold applies the EqualFold predicate on the "persona_category" field.
func PersonaCategoryEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldPersonaCategory, v))
}

// PersonaCategoryContainsFold applies the ContainsFold predicate on the "persona_category" field.
func PersonaCategoryContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldPersonaCategory, v))
}

// PersonaNameEQ applies the EQ predicate on the "persona_name" field.
func PersonaNameEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldPersonaName, v))
}

// PersonaNameNEQ applies the NEQ predicate on the "persona_name" field.
func PersonaNameNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldPersonaName, v))
}

// PersonaNameIn applies the In predicate on the "persona_name" field.
func PersonaNameIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldPersonaName, vs...))
}

// PersonaNameNotIn applies the NotIn predicate on the "persona_name" field.
func PersonaNameNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldPersonaName, vs...))
}

// PersonaNameGT applies the GT predicate on the "persona_name" field.
func PersonaNameGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldPersonaName, v))
}

// PersonaNameGTE applies the GTE predicate on the "persona_name" field.
func PersonaNameGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldPersonaName, v))
}

// PersonaNameLT applies the LT predicate on the "persona_name" field.
func PersonaNameLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldPersonaName, v))
}

// PersonaNameLTE applies the LTE predicate on the "persona_name" field.
func PersonaNameLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldPersonaName, v))
}

// PersonaNameContains applies the Contains predicate on the "persona_name" field.
func PersonaNameContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldPersonaName, v))
}

// PersonaNameHasPrefix applies the HasPrefix predicate on the "persona_name" field.
func PersonaNameHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldPersonaName, v))
}

// PersonaNameHasSuffix applies the HasSuffix predicate on the "persona_name" field.
func PersonaNameHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldPersonaName, v))
}

// PersonaNameEqualFold applies the EqualFold predicate on the "persona_name" field.
func PersonaNameEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldPersonaName, v))
}

// PersonaNameContainsFold applies the ContainsFold predicate on the "persona_name" field.
func PersonaNameContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldPersonaName, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldCompanyName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldVersion, v))
}

// ConfigHashEQ applies the EQ predicate on the "config_hash" field.
func ConfigHashEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldConfigHash, v))
}

// ConfigHashNEQ applies the NEQ predicate on the "config_hash" field.
func ConfigHashNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldConfigHash, v))
}

// ConfigHashIn applies the In predicate on the "config_hash" field.
func ConfigHashIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldConfigHash, vs...))
}

// ConfigHashNotIn applies the NotIn predicate on the "config_hash" field.
func ConfigHashNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldConfigHash, vs...))
}

// ConfigHashGT applies the GT predicate on the "config_hash" field.
func ConfigHashGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldConfigHash, v))
}

// ConfigHashGTE applies the GTE predicate on the "config_hash" field.
func ConfigHashGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldConfigHash, v))
}

// ConfigHashLT applies the LT predicate on the "config_hash" field.
func ConfigHashLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldConfigHash, v))
}

// ConfigHashLTE applies the LTE predicate on the "config_hash" field.
func ConfigHashLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldConfigHash, v))
}

// ConfigHashContains applies the Contains predicate on the "config_hash" field.
func ConfigHashContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldConfigHash, v))
}

// ConfigHashHasPrefix applies the HasPrefix predicate on the "config_hash" field.
func ConfigHashHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldConfigHash, v))
}

// ConfigHashHasSuffix applies the HasSuffix predicate on the "config_hash" field.
func ConfigHashHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldConfigHash, v))
}

// ConfigHashIsNil applies the IsNil predicate on the "config_hash" field.
func ConfigHashIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldConfigHash))
}

// ConfigHashNotNil applies the NotNil predicate on the "config_hash" field.
func ConfigHashNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldConfigHash))
}

// ConfigHashEqualFold applies the EqualFold predicate on the "config_hash" field.
func ConfigHashEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldConfigHash, v))
}

// ConfigHashContainsFold applies the ContainsFold predicate on the "config_hash" field.
func ConfigHashContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldConfigHash, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldLastHeartbeat))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldMetadata))
}

// RegisteredAtEQ applies the EQ predicate on the "registered_at" field.
func RegisteredAtEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldRegisteredAt, v))
}

// RegisteredAtNEQ applies the NEQ predicate on the "registered_at" field.
func RegisteredAtNEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldRegisteredAt, v))
}

// RegisteredAtIn applies the In predicate on the "registered_at" field.
func RegisteredAtIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldRegisteredAt, vs...))
}

// RegisteredAtNotIn applies the NotIn predicate on the "registered_at" field.
func RegisteredAtNotIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldRegisteredAt, vs...))
}

// RegisteredAtGT applies the GT predicate on the "registered_at" field.
func RegisteredAtGT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldRegisteredAt, v))
}

// RegisteredAtGTE applies the GTE predicate on the "registered_at" field.
func RegisteredAtGTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldRegisteredAt, v))
}

// RegisteredAtLT applies the LT predicate on the "registered_at" field.
func RegisteredAtLT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldRegisteredAt, v))
}

// RegisteredAtLTE applies the LTE predicate on the "registered_at" field.
func RegisteredAtLTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldRegisteredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.NotPredicates(p))
}
