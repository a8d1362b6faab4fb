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
	"github.com/minhtc/opicly/ent/questioncache"
)

// QuestionCacheUpdate is the builder for updating QuestionCache entities.
type QuestionCacheUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionCacheMutation
}

// Where appends a list predicates to the QuestionCacheUpdate builder.
func (_u *QuestionCacheUpdate) Where(ps ...predicate.QuestionCache) *QuestionCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuestionCacheUpdate) SetLevel(v string) *QuestionCacheUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuestionCacheUpdate) SetNillableLevel(v *string) *QuestionCacheUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionCacheUpdate) SetTopic(v string) *QuestionCacheUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionCacheUpdate) SetNillableTopic(v *string) *QuestionCacheUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *QuestionCacheUpdate) SetQuestionData(v string) *QuestionCacheUpdate {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetNillableQuestionData sets the "question_data" field if the given value is not nil.
func (_u *QuestionCacheUpdate) SetNillableQuestionData(v *string) *QuestionCacheUpdate {
	if v != nil {
		_u.SetQuestionData(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionCacheUpdate) SetCreatedAt(v time.Time) *QuestionCacheUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionCacheUpdate) SetNillableCreatedAt(v *time.Time) *QuestionCacheUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuestionCacheUpdate) SetExpiresAt(v time.Time) *QuestionCacheUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuestionCacheUpdate) SetNillableExpiresAt(v *time.Time) *QuestionCacheUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuestionCacheMutation object of the builder.
func (_u *QuestionCacheUpdate) Mutation() *QuestionCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionCacheUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := questioncache.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questioncache.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionData(); ok {
		if err := questioncache.QuestionDataValidator(v); err != nil {
			return &ValidationError{Name: "question_data", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.question_data": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questioncache.Table, questioncache.Columns, sqlgraph.NewFieldSpec(questioncache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(questioncache.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questioncache.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(questioncache.FieldQuestionData, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(questioncache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(questioncache.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionCacheUpdateOne is the builder for updating a single QuestionCache entity.
type QuestionCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionCacheMutation
}

// SetLevel sets the "level" field.
func (_u *QuestionCacheUpdateOne) SetLevel(v string) *QuestionCacheUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuestionCacheUpdateOne) SetNillableLevel(v *string) *QuestionCacheUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionCacheUpdateOne) SetTopic(v string) *QuestionCacheUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionCacheUpdateOne) SetNillableTopic(v *string) *QuestionCacheUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *QuestionCacheUpdateOne) SetQuestionData(v string) *QuestionCacheUpdateOne {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetNillableQuestionData sets the "question_data" field if the given value is not nil.
func (_u *QuestionCacheUpdateOne) SetNillableQuestionData(v *string) *QuestionCacheUpdateOne {
	if v != nil {
		_u.SetQuestionData(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionCacheUpdateOne) SetCreatedAt(v time.Time) *QuestionCacheUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionCacheUpdateOne) SetNillableCreatedAt(v *time.Time) *QuestionCacheUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuestionCacheUpdateOne) SetExpiresAt(v time.Time) *QuestionCacheUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuestionCacheUpdateOne) SetNillableExpiresAt(v *time.Time) *QuestionCacheUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuestionCacheMutation object of the builder.
func (_u *QuestionCacheUpdateOne) Mutation() *QuestionCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionCacheUpdate builder.
func (_u *QuestionCacheUpdateOne) Where(ps ...predicate.QuestionCache) *QuestionCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionCacheUpdateOne) Select(field string, fields ...string) *QuestionCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionCache entity.
func (_u *QuestionCacheUpdateOne) Save(ctx context.Context) (*QuestionCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionCacheUpdateOne) SaveX(ctx context.Context) *QuestionCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionCacheUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := questioncache.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questioncache.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionData(); ok {
		if err := questioncache.QuestionDataValidator(v); err != nil {
			return &ValidationError{Name: "question_data", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.question_data": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionCacheUpdateOne) sqlSave(ctx context.Context) (_node *QuestionCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questioncache.Table, questioncache.Columns, sqlgraph.NewFieldSpec(questioncache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questioncache.FieldID)
		for _, f := range fields {
			if !questioncache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questioncache.FieldID {
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
		_spec.SetField(questioncache.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questioncache.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(questioncache.FieldQuestionData, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(questioncache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(questioncache.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &QuestionCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
