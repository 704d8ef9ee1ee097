// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
	"github.com/honeybotlabs/honeybot/ent/predicate"
)

// NovelPatternDelete is the builder for deleting a NovelPattern entity.
type NovelPatternDelete struct {
	config
	hooks    []Hook
	mutation *NovelPatternMutation
}

// Where appends a list predicates to the NovelPatternDelete builder.
func (_d *NovelPatternDelete) Where(ps ...predicate.NovelPattern) *NovelPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NovelPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NovelPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NovelPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(novelpattern.Table, sqlgraph.NewFieldSpec(novelpattern.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// NovelPatternDeleteOne is the builder for deleting a single NovelPattern entity.
type NovelPatternDeleteOne struct {
	_d *NovelPatternDelete
}

// Where appends a list predicates to the NovelPatternDelete builder.
func (_d *NovelPatternDeleteOne) Where(ps ...predicate.NovelPattern) *NovelPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NovelPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{novelpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NovelPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
