// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/gamesession"
)

// GameSession is the model entity for the GameSession schema.
type GameSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Percentage, stored redundantly for aggregate queries
	Accuracy float64 `json:"accuracy,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	// Streak at session completion
	Streak int `json:"streak,omitempty"`
	// JSON array of the questions served
	QuestionsData string `json:"questions_data,omitempty"`
	// JSON array of the learner's answers
	AnswersData string `json:"answers_data,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case gamesession.FieldID, gamesession.FieldScore, gamesession.FieldTotalQuestions, gamesession.FieldDurationSecs, gamesession.FieldStreak:
			values[i] = new(sql.NullInt64)
		case gamesession.FieldLevel, gamesession.FieldTopic, gamesession.FieldQuestionsData, gamesession.FieldAnswersData:
			values[i] = new(sql.NullString)
		case gamesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameSession fields.
func (_m *GameSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gamesession.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case gamesession.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case gamesession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case gamesession.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case gamesession.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case gamesession.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case gamesession.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case gamesession.FieldQuestionsData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field questions_data", values[i])
			} else if value.Valid {
				_m.QuestionsData = value.String
			}
		case gamesession.FieldAnswersData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answers_data", values[i])
			} else if value.Valid {
				_m.AnswersData = value.String
			}
		case gamesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameSession.
// This includes values selected through modifiers, order, etc.
func (_m *GameSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameSession.
// Note that you need to call GameSession.Unwrap() before calling this method if this GameSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameSession) Update() *GameSessionUpdateOne {
	return NewGameSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameSession) Unwrap() *GameSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameSession) String() string {
	var builder strings.Builder
	builder.WriteString("GameSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("questions_data=")
	builder.WriteString(_m.QuestionsData)
	builder.WriteString(", ")
	builder.WriteString("answers_data=")
	builder.WriteString(_m.AnswersData)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GameSessions is a parsable slice of GameSession.
type GameSessions []*GameSession
