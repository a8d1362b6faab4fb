// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/predicate"
	"github.com/minhtc/opicly/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserProgressUpdate) SetCurrentLevel(v string) *UserProgressUpdate {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCurrentLevel(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetUnlockedLevels sets the "unlocked_levels" field.
func (_u *UserProgressUpdate) SetUnlockedLevels(v []string) *UserProgressUpdate {
	_u.mutation.SetUnlockedLevels(v)
	return _u
}

// AppendUnlockedLevels appends value to the "unlocked_levels" field.
func (_u *UserProgressUpdate) AppendUnlockedLevels(v []string) *UserProgressUpdate {
	_u.mutation.AppendUnlockedLevels(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *UserProgressUpdate) SetTotalScore(v int) *UserProgressUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableTotalScore(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *UserProgressUpdate) AddTotalScore(v int) *UserProgressUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserProgressUpdate) SetCurrentStreak(v int) *UserProgressUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCurrentStreak(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserProgressUpdate) AddCurrentStreak(v int) *UserProgressUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *UserProgressUpdate) SetBestStreak(v int) *UserProgressUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableBestStreak(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *UserProgressUpdate) AddBestStreak(v int) *UserProgressUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *UserProgressUpdate) SetTotalQuestions(v int) *UserProgressUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableTotalQuestions(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *UserProgressUpdate) AddTotalQuestions(v int) *UserProgressUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *UserProgressUpdate) SetCorrectAnswers(v int) *UserProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCorrectAnswers(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *UserProgressUpdate) AddCorrectAnswers(v int) *UserProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLastPlayed sets the "last_played" field.
func (_u *UserProgressUpdate) SetLastPlayed(v time.Time) *UserProgressUpdate {
	_u.mutation.SetLastPlayed(v)
	return _u
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLastPlayed(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetLastPlayed(*v)
	}
	return _u
}

// ClearLastPlayed clears the value of the "last_played" field.
func (_u *UserProgressUpdate) ClearLastPlayed() *UserProgressUpdate {
	_u.mutation.ClearLastPlayed()
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnlockedLevels(); ok {
		_spec.SetField(userprogress.FieldUnlockedLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlockedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldUnlockedLevels, value)
		})
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(userprogress.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(userprogress.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(userprogress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(userprogress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(userprogress.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(userprogress.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(userprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(userprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(userprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(userprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayed(); ok {
		_spec.SetField(userprogress.FieldLastPlayed, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedCleared() {
		_spec.ClearField(userprogress.FieldLastPlayed, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserProgressUpdateOne) SetCurrentLevel(v string) *UserProgressUpdateOne {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCurrentLevel(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetUnlockedLevels sets the "unlocked_levels" field.
func (_u *UserProgressUpdateOne) SetUnlockedLevels(v []string) *UserProgressUpdateOne {
	_u.mutation.SetUnlockedLevels(v)
	return _u
}

// AppendUnlockedLevels appends value to the "unlocked_levels" field.
func (_u *UserProgressUpdateOne) AppendUnlockedLevels(v []string) *UserProgressUpdateOne {
	_u.mutation.AppendUnlockedLevels(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *UserProgressUpdateOne) SetTotalScore(v int) *UserProgressUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableTotalScore(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *UserProgressUpdateOne) AddTotalScore(v int) *UserProgressUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserProgressUpdateOne) SetCurrentStreak(v int) *UserProgressUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCurrentStreak(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserProgressUpdateOne) AddCurrentStreak(v int) *UserProgressUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *UserProgressUpdateOne) SetBestStreak(v int) *UserProgressUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableBestStreak(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *UserProgressUpdateOne) AddBestStreak(v int) *UserProgressUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *UserProgressUpdateOne) SetTotalQuestions(v int) *UserProgressUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableTotalQuestions(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *UserProgressUpdateOne) AddTotalQuestions(v int) *UserProgressUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *UserProgressUpdateOne) SetCorrectAnswers(v int) *UserProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCorrectAnswers(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *UserProgressUpdateOne) AddCorrectAnswers(v int) *UserProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLastPlayed sets the "last_played" field.
func (_u *UserProgressUpdateOne) SetLastPlayed(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetLastPlayed(v)
	return _u
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLastPlayed(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLastPlayed(*v)
	}
	return _u
}

// ClearLastPlayed clears the value of the "last_played" field.
func (_u *UserProgressUpdateOne) ClearLastPlayed() *UserProgressUpdateOne {
	_u.mutation.ClearLastPlayed()
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
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
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnlockedLevels(); ok {
		_spec.SetField(userprogress.FieldUnlockedLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlockedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldUnlockedLevels, value)
		})
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(userprogress.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(userprogress.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(userprogress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(userprogress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(userprogress.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(userprogress.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(userprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(userprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(userprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(userprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayed(); ok {
		_spec.SetField(userprogress.FieldLastPlayed, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedCleared() {
		_spec.ClearField(userprogress.FieldLastPlayed, field.TypeTime)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
