// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/questioncache"
)

// QuestionCacheCreate is the builder for creating a QuestionCache entity.
type QuestionCacheCreate struct {
	config
	mutation *QuestionCacheMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *QuestionCacheCreate) SetLevel(v string) *QuestionCacheCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCacheCreate) SetTopic(v string) *QuestionCacheCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionData sets the "question_data" field.
func (_c *QuestionCacheCreate) SetQuestionData(v string) *QuestionCacheCreate {
	_c.mutation.SetQuestionData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCacheCreate) SetCreatedAt(v time.Time) *QuestionCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCacheCreate) SetNillableCreatedAt(v *time.Time) *QuestionCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QuestionCacheCreate) SetExpiresAt(v time.Time) *QuestionCacheCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the QuestionCacheMutation object of the builder.
func (_c *QuestionCacheCreate) Mutation() *QuestionCacheMutation {
	return _c.mutation
}

// Save creates the QuestionCache in the database.
func (_c *QuestionCacheCreate) Save(ctx context.Context) (*QuestionCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCacheCreate) SaveX(ctx context.Context) *QuestionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCacheCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questioncache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCacheCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "QuestionCache.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := questioncache.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuestionCache.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := questioncache.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionData(); !ok {
		return &ValidationError{Name: "question_data", err: errors.New(`ent: missing required field "QuestionCache.question_data"`)}
	}
	if v, ok := _c.mutation.QuestionData(); ok {
		if err := questioncache.QuestionDataValidator(v); err != nil {
			return &ValidationError{Name: "question_data", err: fmt.Errorf(`ent: validator failed for field "QuestionCache.question_data": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionCache.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "QuestionCache.expires_at"`)}
	}
	return nil
}

func (_c *QuestionCacheCreate) sqlSave(ctx context.Context) (*QuestionCache, error) {
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

func (_c *QuestionCacheCreate) createSpec() (*QuestionCache, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questioncache.Table, sqlgraph.NewFieldSpec(questioncache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(questioncache.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(questioncache.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionData(); ok {
		_spec.SetField(questioncache.FieldQuestionData, field.TypeString, value)
		_node.QuestionData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questioncache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(questioncache.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// QuestionCacheCreateBulk is the builder for creating many QuestionCache entities in bulk.
type QuestionCacheCreateBulk struct {
	config
	err      error
	builders []*QuestionCacheCreate
}

// Save creates the QuestionCache entities in the database.
func (_c *QuestionCacheCreateBulk) Save(ctx context.Context) ([]*QuestionCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionCacheMutation)
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
func (_c *QuestionCacheCreateBulk) SaveX(ctx context.Context) []*QuestionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
