// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/predicate"
	"github.com/minhtc/opicly/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *TopicProgressUpdate) SetLevel(v string) *TopicProgressUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableLevel(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdate) SetTopic(v string) *TopicProgressUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTopic(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicProgressUpdate) SetBestScore(v int) *TopicProgressUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableBestScore(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicProgressUpdate) AddBestScore(v int) *TopicProgressUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdate) SetAttempts(v int) *TopicProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableAttempts(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdate) AddAttempts(v int) *TopicProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TopicProgressUpdate) SetTotalQuestions(v int) *TopicProgressUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTotalQuestions(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TopicProgressUpdate) AddTotalQuestions(v int) *TopicProgressUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdate) SetCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableCorrectAnswers(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdate) AddCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLastAttempt sets the "last_attempt" field.
func (_u *TopicProgressUpdate) SetLastAttempt(v time.Time) *TopicProgressUpdate {
	_u.mutation.SetLastAttempt(v)
	return _u
}

// SetNillableLastAttempt sets the "last_attempt" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableLastAttempt(v *time.Time) *TopicProgressUpdate {
	if v != nil {
		_u.SetLastAttempt(*v)
	}
	return _u
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (_u *TopicProgressUpdate) ClearLastAttempt() *TopicProgressUpdate {
	_u.mutation.ClearLastAttempt()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TopicProgressUpdate) SetIsCompleted(v bool) *TopicProgressUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableIsCompleted(v *bool) *TopicProgressUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := topicprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(topicprogress.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempt(); ok {
		_spec.SetField(topicprogress.FieldLastAttempt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptCleared() {
		_spec.ClearField(topicprogress.FieldLastAttempt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(topicprogress.FieldIsCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetLevel sets the "level" field.
func (_u *TopicProgressUpdateOne) SetLevel(v string) *TopicProgressUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableLevel(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdateOne) SetTopic(v string) *TopicProgressUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTopic(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicProgressUpdateOne) SetBestScore(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableBestScore(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicProgressUpdateOne) AddBestScore(v int) *TopicProgressUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdateOne) SetAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableAttempts(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdateOne) AddAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TopicProgressUpdateOne) SetTotalQuestions(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTotalQuestions(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TopicProgressUpdateOne) AddTotalQuestions(v int) *TopicProgressUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdateOne) SetCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableCorrectAnswers(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdateOne) AddCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLastAttempt sets the "last_attempt" field.
func (_u *TopicProgressUpdateOne) SetLastAttempt(v time.Time) *TopicProgressUpdateOne {
	_u.mutation.SetLastAttempt(v)
	return _u
}

// SetNillableLastAttempt sets the "last_attempt" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableLastAttempt(v *time.Time) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetLastAttempt(*v)
	}
	return _u
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (_u *TopicProgressUpdateOne) ClearLastAttempt() *TopicProgressUpdateOne {
	_u.mutation.ClearLastAttempt()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TopicProgressUpdateOne) SetIsCompleted(v bool) *TopicProgressUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableIsCompleted(v *bool) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := topicprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(topicprogress.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempt(); ok {
		_spec.SetField(topicprogress.FieldLastAttempt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptCleared() {
		_spec.ClearField(topicprogress.FieldLastAttempt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(topicprogress.FieldIsCompleted, field.TypeBool, value)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
