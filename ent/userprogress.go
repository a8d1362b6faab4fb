// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/userprogress"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Level code the learner is currently practicing
	CurrentLevel string `json:"current_level,omitempty"`
	// Level codes unlocked so far, in progression order; never shrinks
	UnlockedLevels []string `json:"unlocked_levels,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// BestStreak holds the value of the "best_streak" field.
	BestStreak int `json:"best_streak,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// LastPlayed holds the value of the "last_played" field.
	LastPlayed *time.Time `json:"last_played,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldUnlockedLevels:
			values[i] = new([]byte)
		case userprogress.FieldID, userprogress.FieldTotalScore, userprogress.FieldCurrentStreak, userprogress.FieldBestStreak, userprogress.FieldTotalQuestions, userprogress.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldCurrentLevel:
			values[i] = new(sql.NullString)
		case userprogress.FieldLastPlayed, userprogress.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (_m *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprogress.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = value.String
			}
		case userprogress.FieldUnlockedLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UnlockedLevels); err != nil {
					return fmt.Errorf("unmarshal field unlocked_levels: %w", err)
				}
			}
		case userprogress.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case userprogress.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case userprogress.FieldBestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_streak", values[i])
			} else if value.Valid {
				_m.BestStreak = int(value.Int64)
			}
		case userprogress.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case userprogress.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case userprogress.FieldLastPlayed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_played", values[i])
			} else if value.Valid {
				_m.LastPlayed = new(time.Time)
				*_m.LastPlayed = value.Time
			}
		case userprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProgress) Unwrap() *UserProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("current_level=")
	builder.WriteString(_m.CurrentLevel)
	builder.WriteString(", ")
	builder.WriteString("unlocked_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnlockedLevels))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("best_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestStreak))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	if v := _m.LastPlayed; v != nil {
		builder.WriteString("last_played=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
