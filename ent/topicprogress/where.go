// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldID, id))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLevel, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopic, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldBestScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldAttempts, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// LastAttempt applies equality check predicate on the "last_attempt" field. It's identical to LastAttemptEQ.
func LastAttempt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLastAttempt, v))
}

// IsCompleted applies equality check predicate on the "is_completed" field. It's identical to IsCompletedEQ.
func IsCompleted(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldIsCompleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContainsFold(FieldLevel, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContainsFold(FieldTopic, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldBestScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldAttempts, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// LastAttemptEQ applies the EQ predicate on the "last_attempt" field.
func LastAttemptEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLastAttempt, v))
}

// LastAttemptNEQ applies the NEQ predicate on the "last_attempt" field.
func LastAttemptNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldLastAttempt, v))
}

// LastAttemptIn applies the In predicate on the "last_attempt" field.
func LastAttemptIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldLastAttempt, vs...))
}

// LastAttemptNotIn applies the NotIn predicate on the "last_attempt" field.
func LastAttemptNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldLastAttempt, vs...))
}

// LastAttemptGT applies the GT predicate on the "last_attempt" field.
func LastAttemptGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldLastAttempt, v))
}

// LastAttemptGTE applies the GTE predicate on the "last_attempt" field.
func LastAttemptGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldLastAttempt, v))
}

// LastAttemptLT applies the LT predicate on the "last_attempt" field.
func LastAttemptLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldLastAttempt, v))
}

// LastAttemptLTE applies the LTE predicate on the "last_attempt" field.
func LastAttemptLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldLastAttempt, v))
}

// LastAttemptIsNil applies the IsNil predicate on the "last_attempt" field.
func LastAttemptIsNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIsNull(FieldLastAttempt))
}

// LastAttemptNotNil applies the NotNil predicate on the "last_attempt" field.
func LastAttemptNotNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotNull(FieldLastAttempt))
}

// IsCompletedEQ applies the EQ predicate on the "is_completed" field.
func IsCompletedEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldIsCompleted, v))
}

// IsCompletedNEQ applies the NEQ predicate on the "is_completed" field.
func IsCompletedNEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldIsCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.NotPredicates(p))
}
