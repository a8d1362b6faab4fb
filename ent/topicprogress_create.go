// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *TopicProgressCreate) SetLevel(v string) *TopicProgressCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicProgressCreate) SetTopic(v string) *TopicProgressCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *TopicProgressCreate) SetBestScore(v int) *TopicProgressCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableBestScore(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicProgressCreate) SetAttempts(v int) *TopicProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableAttempts(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TopicProgressCreate) SetTotalQuestions(v int) *TopicProgressCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableTotalQuestions(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *TopicProgressCreate) SetCorrectAnswers(v int) *TopicProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableCorrectAnswers(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetLastAttempt sets the "last_attempt" field.
func (_c *TopicProgressCreate) SetLastAttempt(v time.Time) *TopicProgressCreate {
	_c.mutation.SetLastAttempt(v)
	return _c
}

// SetNillableLastAttempt sets the "last_attempt" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableLastAttempt(v *time.Time) *TopicProgressCreate {
	if v != nil {
		_c.SetLastAttempt(*v)
	}
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *TopicProgressCreate) SetIsCompleted(v bool) *TopicProgressCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableIsCompleted(v *bool) *TopicProgressCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicProgressCreate) SetCreatedAt(v time.Time) *TopicProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableCreatedAt(v *time.Time) *TopicProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.BestScore(); !ok {
		v := topicprogress.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := topicprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := topicprogress.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := topicprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := topicprogress.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topicprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "TopicProgress.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := topicprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicProgress.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "TopicProgress.best_score"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicProgress.attempts"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "TopicProgress.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "TopicProgress.correct_answers"`)}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`ent: missing required field "TopicProgress.is_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicProgress.created_at"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
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

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(topicprogress.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.LastAttempt(); ok {
		_spec.SetField(topicprogress.FieldLastAttempt, field.TypeTime, value)
		_node.LastAttempt = &value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(topicprogress.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topicprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
