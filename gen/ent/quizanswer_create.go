// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizAnswerCreate is the builder for creating a QuizAnswer entity.
type QuizAnswerCreate struct {
	config
	mutation *QuizAnswerMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAnswerCreate) SetAttemptID(v uuid.UUID) *QuizAnswerCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuizAnswerCreate) SetQuestionID(v uuid.UUID) *QuizAnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *QuizAnswerCreate) SetSelectedOption(v string) *QuizAnswerCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuizAnswerCreate) SetIsCorrect(v bool) *QuizAnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *QuizAnswerCreate) SetNillableIsCorrect(v *bool) *QuizAnswerCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuizAnswerCreate) SetID(v uuid.UUID) *QuizAnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizAnswerCreate) SetNillableID(v *uuid.UUID) *QuizAnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" edge to the QuizAttempt entity.
func (_c *QuizAnswerCreate) SetAttempt(v *QuizAttempt) *QuizAnswerCreate {
	return _c.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_c *QuizAnswerCreate) SetQuestion(v *QuizQuestion) *QuizAnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_c *QuizAnswerCreate) Mutation() *QuizAnswerMutation {
	return _c.mutation
}

// Save creates the QuizAnswer in the database.
func (_c *QuizAnswerCreate) Save(ctx context.Context) (*QuizAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAnswerCreate) SaveX(ctx context.Context) *QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAnswerCreate) defaults() {
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := quizanswer.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quizanswer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAnswerCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAnswer.attempt_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuizAnswer.question_id"`)}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "QuizAnswer.selected_option"`)}
	}
	if v, ok := _c.mutation.SelectedOption(); ok {
		if err := quizanswer.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.selected_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuizAnswer.is_correct"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "QuizAnswer.attempt"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "QuizAnswer.question"`)}
	}
	return nil
}

func (_c *QuizAnswerCreate) sqlSave(ctx context.Context) (*QuizAnswer, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAnswerCreate) createSpec() (*QuizAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizanswer.Table, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(quizanswer.FieldSelectedOption, field.TypeString, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(quizanswer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizanswer.AttemptTable,
			Columns: []string{quizanswer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AttemptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizanswer.QuestionTable,
			Columns: []string{quizanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizAnswerCreateBulk is the builder for creating many QuizAnswer entities in bulk.
type QuizAnswerCreateBulk struct {
	config
	err      error
	builders []*QuizAnswerCreate
}

// Save creates the QuizAnswer entities in the database.
func (_c *QuizAnswerCreateBulk) Save(ctx context.Context) ([]*QuizAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAnswerMutation)
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
func (_c *QuizAnswerCreateBulk) SaveX(ctx context.Context) []*QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
