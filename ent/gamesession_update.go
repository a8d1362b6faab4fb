// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhtc/opicly/ent/gamesession"
	"github.com/minhtc/opicly/ent/predicate"
)

// GameSessionUpdate is the builder for updating GameSession entities.
type GameSessionUpdate struct {
	config
	hooks    []Hook
	mutation *GameSessionMutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdate) Where(ps ...predicate.GameSession) *GameSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdate) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.QuestionsDataCleared() {
		_spec.ClearField(gamesession.FieldQuestionsData, field.TypeString)
	}
	if _u.mutation.AnswersDataCleared() {
		_spec.ClearField(gamesession.FieldAnswersData, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameSessionUpdateOne is the builder for updating a single GameSession entity.
type GameSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameSessionMutation
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdateOne) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdateOne) Where(ps ...predicate.GameSession) *GameSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameSessionUpdateOne) Select(field string, fields ...string) *GameSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameSession entity.
func (_u *GameSessionUpdateOne) Save(ctx context.Context) (*GameSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdateOne) SaveX(ctx context.Context) *GameSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameSessionUpdateOne) sqlSave(ctx context.Context) (_node *GameSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamesession.FieldID)
		for _, f := range fields {
			if !gamesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gamesession.FieldID {
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
	if _u.mutation.QuestionsDataCleared() {
		_spec.ClearField(gamesession.FieldQuestionsData, field.TypeString)
	}
	if _u.mutation.AnswersDataCleared() {
		_spec.ClearField(gamesession.FieldAnswersData, field.TypeString)
	}
	_node = &GameSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
