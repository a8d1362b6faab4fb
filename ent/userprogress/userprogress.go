// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprogress type in the database.
	Label = "user_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCurrentLevel holds the string denoting the current_level field in the database.
	FieldCurrentLevel = "current_level"
	// FieldUnlockedLevels holds the string denoting the unlocked_levels field in the database.
	FieldUnlockedLevels = "unlocked_levels"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldBestStreak holds the string denoting the best_streak field in the database.
	FieldBestStreak = "best_streak"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldLastPlayed holds the string denoting the last_played field in the database.
	FieldLastPlayed = "last_played"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the userprogress in the database.
	Table = "user_progresses"
)

// Columns holds all SQL columns for userprogress fields.
var Columns = []string{
	FieldID,
	FieldCurrentLevel,
	FieldUnlockedLevels,
	FieldTotalScore,
	FieldCurrentStreak,
	FieldBestStreak,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldLastPlayed,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentLevel holds the default value on creation for the "current_level" field.
	DefaultCurrentLevel string
	// DefaultTotalScore holds the default value on creation for the "total_score" field.
	DefaultTotalScore int
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultBestStreak holds the default value on creation for the "best_streak" field.
	DefaultBestStreak int
	// DefaultTotalQuestions holds the default value on creation for the "total_questions" field.
	DefaultTotalQuestions int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCurrentLevel orders the results by the current_level field.
func ByCurrentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLevel, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByBestStreak orders the results by the best_streak field.
func ByBestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestStreak, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByLastPlayed orders the results by the last_played field.
func ByLastPlayed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
