// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldID, id))
}

// CurrentLevel applies equality check predicate on the "current_level" field. It's identical to CurrentLevelEQ.
func CurrentLevel(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLevel, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalScore, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentStreak, v))
}

// BestStreak applies equality check predicate on the "best_streak" field. It's identical to BestStreakEQ.
func BestStreak(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldBestStreak, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// LastPlayed applies equality check predicate on the "last_played" field. It's identical to LastPlayedEQ.
func LastPlayed(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastPlayed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// CurrentLevelGT applies the GT predicate on the "current_level" field.
func CurrentLevelGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCurrentLevel, v))
}

// CurrentLevelGTE applies the GTE predicate on the "current_level" field.
func CurrentLevelGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCurrentLevel, v))
}

// CurrentLevelLT applies the LT predicate on the "current_level" field.
func CurrentLevelLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCurrentLevel, v))
}

// CurrentLevelLTE applies the LTE predicate on the "current_level" field.
func CurrentLevelLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCurrentLevel, v))
}

// CurrentLevelContains applies the Contains predicate on the "current_level" field.
func CurrentLevelContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldCurrentLevel, v))
}

// CurrentLevelHasPrefix applies the HasPrefix predicate on the "current_level" field.
func CurrentLevelHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldCurrentLevel, v))
}

// CurrentLevelHasSuffix applies the HasSuffix predicate on the "current_level" field.
func CurrentLevelHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldCurrentLevel, v))
}

// CurrentLevelEqualFold applies the EqualFold predicate on the "current_level" field.
func CurrentLevelEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldCurrentLevel, v))
}

// CurrentLevelContainsFold applies the ContainsFold predicate on the "current_level" field.
func CurrentLevelContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldCurrentLevel, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTotalScore, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCurrentStreak, v))
}

// BestStreakEQ applies the EQ predicate on the "best_streak" field.
func BestStreakEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldBestStreak, v))
}

// BestStreakNEQ applies the NEQ predicate on the "best_streak" field.
func BestStreakNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldBestStreak, v))
}

// BestStreakIn applies the In predicate on the "best_streak" field.
func BestStreakIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldBestStreak, vs...))
}

// BestStreakNotIn applies the NotIn predicate on the "best_streak" field.
func BestStreakNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldBestStreak, vs...))
}

// BestStreakGT applies the GT predicate on the "best_streak" field.
func BestStreakGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldBestStreak, v))
}

// BestStreakGTE applies the GTE predicate on the "best_streak" field.
func BestStreakGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldBestStreak, v))
}

// BestStreakLT applies the LT predicate on the "best_streak" field.
func BestStreakLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldBestStreak, v))
}

// BestStreakLTE applies the LTE predicate on the "best_streak" field.
func BestStreakLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldBestStreak, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// LastPlayedEQ applies the EQ predicate on the "last_played" field.
func LastPlayedEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastPlayed, v))
}

// LastPlayedNEQ applies the NEQ predicate on the "last_played" field.
func LastPlayedNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLastPlayed, v))
}

// LastPlayedIn applies the In predicate on the "last_played" field.
func LastPlayedIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLastPlayed, vs...))
}

// LastPlayedNotIn applies the NotIn predicate on the "last_played" field.
func LastPlayedNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLastPlayed, vs...))
}

// LastPlayedGT applies the GT predicate on the "last_played" field.
func LastPlayedGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLastPlayed, v))
}

// LastPlayedGTE applies the GTE predicate on the "last_played" field.
func LastPlayedGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLastPlayed, v))
}

// LastPlayedLT applies the LT predicate on the "last_played" field.
func LastPlayedLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLastPlayed, v))
}

// LastPlayedLTE applies the LTE predicate on the "last_played" field.
func LastPlayedLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLastPlayed, v))
}

// LastPlayedIsNil applies the IsNil predicate on the "last_played" field.
func LastPlayedIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldLastPlayed))
}

// LastPlayedNotNil applies the NotNil predicate on the "last_played" field.
func LastPlayedNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldLastPlayed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.NotPredicates(p))
}
