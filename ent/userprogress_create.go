// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
}

// SetCurrentLevel sets the "current_level" field.
func (_c *UserProgressCreate) SetCurrentLevel(v string) *UserProgressCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCurrentLevel(v *string) *UserProgressCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// SetUnlockedLevels sets the "unlocked_levels" field.
func (_c *UserProgressCreate) SetUnlockedLevels(v []string) *UserProgressCreate {
	_c.mutation.SetUnlockedLevels(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *UserProgressCreate) SetTotalScore(v int) *UserProgressCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableTotalScore(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *UserProgressCreate) SetCurrentStreak(v int) *UserProgressCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCurrentStreak(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *UserProgressCreate) SetBestStreak(v int) *UserProgressCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableBestStreak(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *UserProgressCreate) SetTotalQuestions(v int) *UserProgressCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableTotalQuestions(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *UserProgressCreate) SetCorrectAnswers(v int) *UserProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCorrectAnswers(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetLastPlayed sets the "last_played" field.
func (_c *UserProgressCreate) SetLastPlayed(v time.Time) *UserProgressCreate {
	_c.mutation.SetLastPlayed(v)
	return _c
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLastPlayed(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetLastPlayed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserProgressCreate) SetCreatedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCreatedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := userprogress.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := userprogress.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := userprogress.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := userprogress.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := userprogress.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := userprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`ent: missing required field "UserProgress.current_level"`)}
	}
	if _, ok := _c.mutation.UnlockedLevels(); !ok {
		return &ValidationError{Name: "unlocked_levels", err: errors.New(`ent: missing required field "UserProgress.unlocked_levels"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "UserProgress.total_score"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "UserProgress.current_streak"`)}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "UserProgress.best_streak"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "UserProgress.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "UserProgress.correct_answers"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserProgress.created_at"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
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

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeString, value)
		_node.CurrentLevel = value
	}
	if value, ok := _c.mutation.UnlockedLevels(); ok {
		_spec.SetField(userprogress.FieldUnlockedLevels, field.TypeJSON, value)
		_node.UnlockedLevels = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(userprogress.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(userprogress.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(userprogress.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(userprogress.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(userprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.LastPlayed(); ok {
		_spec.SetField(userprogress.FieldLastPlayed, field.TypeTime, value)
		_node.LastPlayed = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
