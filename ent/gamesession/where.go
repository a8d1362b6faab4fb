// Code generated by ent, DO NOT EDIT.

package gamesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldID, id))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldLevel, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTopic, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTotalQuestions, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldAccuracy, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDurationSecs, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStreak, v))
}

// QuestionsData applies equality check predicate on the "questions_data" field. It's identical to QuestionsDataEQ.
func QuestionsData(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldQuestionsData, v))
}

// AnswersData applies equality check predicate on the "answers_data" field. It's identical to AnswersDataEQ.
func AnswersData(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldAnswersData, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompletedAt, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldLevel, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldTopic, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldTotalQuestions, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldAccuracy, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldDurationSecs, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldStreak, v))
}

// QuestionsDataEQ applies the EQ predicate on the "questions_data" field.
func QuestionsDataEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldQuestionsData, v))
}

// QuestionsDataNEQ applies the NEQ predicate on the "questions_data" field.
func QuestionsDataNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldQuestionsData, v))
}

// QuestionsDataIn applies the In predicate on the "questions_data" field.
func QuestionsDataIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldQuestionsData, vs...))
}

// QuestionsDataNotIn applies the NotIn predicate on the "questions_data" field.
func QuestionsDataNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldQuestionsData, vs...))
}

// QuestionsDataGT applies the GT predicate on the "questions_data" field.
func QuestionsDataGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldQuestionsData, v))
}

// QuestionsDataGTE applies the GTE predicate on the "questions_data" field.
func QuestionsDataGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldQuestionsData, v))
}

// QuestionsDataLT applies the LT predicate on the "questions_data" field.
func QuestionsDataLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldQuestionsData, v))
}

// QuestionsDataLTE applies the LTE predicate on the "questions_data" field.
func QuestionsDataLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldQuestionsData, v))
}

// QuestionsDataContains applies the Contains predicate on the "questions_data" field.
func QuestionsDataContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldQuestionsData, v))
}

// QuestionsDataHasPrefix applies the HasPrefix predicate on the "questions_data" field.
func QuestionsDataHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldQuestionsData, v))
}

// QuestionsDataHasSuffix applies the HasSuffix predicate on the "questions_data" field.
func QuestionsDataHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldQuestionsData, v))
}

// QuestionsDataIsNil applies the IsNil predicate on the "questions_data" field.
func QuestionsDataIsNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldIsNull(FieldQuestionsData))
}

// QuestionsDataNotNil applies the NotNil predicate on the "questions_data" field.
func QuestionsDataNotNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldNotNull(FieldQuestionsData))
}

// QuestionsDataEqualFold applies the EqualFold predicate on the "questions_data" field.
func QuestionsDataEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldQuestionsData, v))
}

// QuestionsDataContainsFold applies the ContainsFold predicate on the "questions_data" field.
func QuestionsDataContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldQuestionsData, v))
}

// AnswersDataEQ applies the EQ predicate on the "answers_data" field.
func AnswersDataEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldAnswersData, v))
}

// AnswersDataNEQ applies the NEQ predicate on the "answers_data" field.
func AnswersDataNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldAnswersData, v))
}

// AnswersDataIn applies the In predicate on the "answers_data" field.
func AnswersDataIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldAnswersData, vs...))
}

// AnswersDataNotIn applies the NotIn predicate on the "answers_data" field.
func AnswersDataNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldAnswersData, vs...))
}

// AnswersDataGT applies the GT predicate on the "answers_data" field.
func AnswersDataGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldAnswersData, v))
}

// AnswersDataGTE applies the GTE predicate on the "answers_data" field.
func AnswersDataGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldAnswersData, v))
}

// AnswersDataLT applies the LT predicate on the "answers_data" field.
func AnswersDataLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldAnswersData, v))
}

// AnswersDataLTE applies the LTE predicate on the "answers_data" field.
func AnswersDataLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldAnswersData, v))
}

// AnswersDataContains applies the Contains predicate on the "answers_data" field.
func AnswersDataContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldAnswersData, v))
}

// AnswersDataHasPrefix applies the HasPrefix predicate on the "answers_data" field.
func AnswersDataHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldAnswersData, v))
}

// AnswersDataHasSuffix applies the HasSuffix predicate on the "answers_data" field.
func AnswersDataHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldAnswersData, v))
}

// AnswersDataIsNil applies the IsNil predicate on the "answers_data" field.
func AnswersDataIsNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldIsNull(FieldAnswersData))
}

// AnswersDataNotNil applies the NotNil predicate on the "answers_data" field.
func AnswersDataNotNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldNotNull(FieldAnswersData))
}

// AnswersDataEqualFold applies the EqualFold predicate on the "answers_data" field.
func AnswersDataEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldAnswersData, v))
}

// AnswersDataContainsFold applies the ContainsFold predicate on the "answers_data" field.
func AnswersDataContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldAnswersData, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.NotPredicates(p))
}
