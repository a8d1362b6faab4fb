// Code generated by ent, DO NOT EDIT.

package questioncache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldID, id))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldLevel, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldTopic, v))
}

// QuestionData applies equality check predicate on the "question_data" field. It's identical to QuestionDataEQ.
func QuestionData(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldQuestionData, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldExpiresAt, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContainsFold(FieldLevel, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionDataEQ applies the EQ predicate on the "question_data" field.
func QuestionDataEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldQuestionData, v))
}

// QuestionDataNEQ applies the NEQ predicate on the "question_data" field.
func QuestionDataNEQ(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldQuestionData, v))
}

// QuestionDataIn applies the In predicate on the "question_data" field.
func QuestionDataIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldQuestionData, vs...))
}

// QuestionDataNotIn applies the NotIn predicate on the "question_data" field.
func QuestionDataNotIn(vs ...string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldQuestionData, vs...))
}

// QuestionDataGT applies the GT predicate on the "question_data" field.
func QuestionDataGT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldQuestionData, v))
}

// QuestionDataGTE applies the GTE predicate on the "question_data" field.
func QuestionDataGTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldQuestionData, v))
}

// QuestionDataLT applies the LT predicate on the "question_data" field.
func QuestionDataLT(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldQuestionData, v))
}

// QuestionDataLTE applies the LTE predicate on the "question_data" field.
func QuestionDataLTE(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldQuestionData, v))
}

// QuestionDataContains applies the Contains predicate on the "question_data" field.
func QuestionDataContains(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContains(FieldQuestionData, v))
}

// QuestionDataHasPrefix applies the HasPrefix predicate on the "question_data" field.
func QuestionDataHasPrefix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasPrefix(FieldQuestionData, v))
}

// QuestionDataHasSuffix applies the HasSuffix predicate on the "question_data" field.
func QuestionDataHasSuffix(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldHasSuffix(FieldQuestionData, v))
}

// QuestionDataEqualFold applies the EqualFold predicate on the "question_data" field.
func QuestionDataEqualFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEqualFold(FieldQuestionData, v))
}

// QuestionDataContainsFold applies the ContainsFold predicate on the "question_data" field.
func QuestionDataContainsFold(v string) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldContainsFold(FieldQuestionData, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.QuestionCache {
	return predicate.QuestionCache(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionCache) predicate.QuestionCache {
	return predicate.QuestionCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionCache) predicate.QuestionCache {
	return predicate.QuestionCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionCache) predicate.QuestionCache {
	return predicate.QuestionCache(sql.NotPredicates(p))
}
