// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/llmrequest"
	"github.com/minhtc/opicly/ent/predicate"
)

// LLMRequestUpdate is the builder for updating LLMRequest entities.
type LLMRequestUpdate struct {
	config
	hooks    []Hook
	mutation *LLMRequestMutation
}

// Where appends a list predicates to the LLMRequestUpdate builder.
func (_u *LLMRequestUpdate) Where(ps ...predicate.LLMRequest) *LLMRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_u *LLMRequestUpdate) Mutation() *LLMRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmrequest.Table, llmrequest.Columns, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrequest.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RequestBodyCleared() {
		_spec.ClearField(llmrequest.FieldRequestBody, field.TypeString)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(llmrequest.FieldResponseBody, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMRequestUpdateOne is the builder for updating a single LLMRequest entity.
type LLMRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMRequestMutation
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_u *LLMRequestUpdateOne) Mutation() *LLMRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMRequestUpdate builder.
func (_u *LLMRequestUpdateOne) Where(ps ...predicate.LLMRequest) *LLMRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMRequestUpdateOne) Select(field string, fields ...string) *LLMRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMRequest entity.
func (_u *LLMRequestUpdateOne) Save(ctx context.Context) (*LLMRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestUpdateOne) SaveX(ctx context.Context) *LLMRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMRequestUpdateOne) sqlSave(ctx context.Context) (_node *LLMRequest, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmrequest.Table, llmrequest.Columns, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmrequest.FieldID)
		for _, f := range fields {
			if !llmrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmrequest.FieldID {
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
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrequest.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RequestBodyCleared() {
		_spec.ClearField(llmrequest.FieldRequestBody, field.TypeString)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(llmrequest.FieldResponseBody, field.TypeString)
	}
	_node = &LLMRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
