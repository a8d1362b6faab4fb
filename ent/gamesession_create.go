// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/gamesession"
)

// GameSessionCreate is the builder for creating a GameSession entity.
type GameSessionCreate struct {
	config
	mutation *GameSessionMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *GameSessionCreate) SetLevel(v string) *GameSessionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *GameSessionCreate) SetTopic(v string) *GameSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GameSessionCreate) SetScore(v int) *GameSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *GameSessionCreate) SetTotalQuestions(v int) *GameSessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *GameSessionCreate) SetAccuracy(v float64) *GameSessionCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *GameSessionCreate) SetDurationSecs(v int) *GameSessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableDurationSecs(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *GameSessionCreate) SetStreak(v int) *GameSessionCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableStreak(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetQuestionsData sets the "questions_data" field.
func (_c *GameSessionCreate) SetQuestionsData(v string) *GameSessionCreate {
	_c.mutation.SetQuestionsData(v)
	return _c
}

// SetNillableQuestionsData sets the "questions_data" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableQuestionsData(v *string) *GameSessionCreate {
	if v != nil {
		_c.SetQuestionsData(*v)
	}
	return _c
}

// SetAnswersData sets the "answers_data" field.
func (_c *GameSessionCreate) SetAnswersData(v string) *GameSessionCreate {
	_c.mutation.SetAnswersData(v)
	return _c
}

// SetNillableAnswersData sets the "answers_data" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableAnswersData(v *string) *GameSessionCreate {
	if v != nil {
		_c.SetAnswersData(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GameSessionCreate) SetCompletedAt(v time.Time) *GameSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableCompletedAt(v *time.Time) *GameSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the GameSessionMutation object of the builder.
func (_c *GameSessionCreate) Mutation() *GameSessionMutation {
	return _c.mutation
}

// Save creates the GameSession in the database.
func (_c *GameSessionCreate) Save(ctx context.Context) (*GameSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameSessionCreate) SaveX(ctx context.Context) *GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameSessionCreate) defaults() {
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := gamesession.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := gamesession.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := gamesession.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameSessionCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "GameSession.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := gamesession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GameSession.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "GameSession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := gamesession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "GameSession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GameSession.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "GameSession.total_questions"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "GameSession.accuracy"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "GameSession.duration_secs"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "GameSession.streak"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "GameSession.completed_at"`)}
	}
	return nil
}

func (_c *GameSessionCreate) sqlSave(ctx context.Context) (*GameSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameSessionCreate) createSpec() (*GameSession, *sqlgraph.CreateSpec) {
	var (
		_node = &GameSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamesession.Table, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(gamesession.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(gamesession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(gamesession.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(gamesession.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(gamesession.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(gamesession.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.QuestionsData(); ok {
		_spec.SetField(gamesession.FieldQuestionsData, field.TypeString, value)
		_node.QuestionsData = value
	}
	if value, ok := _c.mutation.AnswersData(); ok {
		_spec.SetField(gamesession.FieldAnswersData, field.TypeString, value)
		_node.AnswersData = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(gamesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// GameSessionCreateBulk is the builder for creating many GameSession entities in bulk.
type GameSessionCreateBulk struct {
	config
	err      error
	builders []*GameSessionCreate
}

// Save creates the GameSession entities in the database.
func (_c *GameSessionCreateBulk) Save(ctx context.Context) ([]*GameSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameSessionCreateBulk) SaveX(ctx context.Context) []*GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
