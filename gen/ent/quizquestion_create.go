// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizQuestionCreate is the builder for creating a QuizQuestion entity.
type QuizQuestionCreate struct {
	config
	mutation *QuizQuestionMutation
	hooks    []Hook
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizQuestionCreate) SetQuizID(v uuid.UUID) *QuizQuestionCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *QuizQuestionCreate) SetQuestionText(v string) *QuizQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuizQuestionCreate) SetOptions(v []string) *QuizQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *QuizQuestionCreate) SetCorrectOption(v string) *QuizQuestionCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuizQuestionCreate) SetPosition(v int) *QuizQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillablePosition(v *int) *QuizQuestionCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuizQuestionCreate) SetID(v uuid.UUID) *QuizQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableID(v *uuid.UUID) *QuizQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_c *QuizQuestionCreate) SetQuiz(v *Quiz) *QuizQuestionCreate {
	return _c.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_c *QuizQuestionCreate) AddAnswerIDs(ids ...uuid.UUID) *QuizQuestionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_c *QuizQuestionCreate) AddAnswers(v ...*QuizAnswer) *QuizQuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_c *QuizQuestionCreate) Mutation() *QuizQuestionMutation {
	return _c.mutation
}

// Save creates the QuizQuestion in the database.
func (_c *QuizQuestionCreate) Save(ctx context.Context) (*QuizQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizQuestionCreate) SaveX(ctx context.Context) *QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizQuestionCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := quizquestion.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quizquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizQuestionCreate) check() error {
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizQuestion.quiz_id"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "QuizQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := quizquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "QuizQuestion.options"`)}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "QuizQuestion.correct_option"`)}
	}
	if v, ok := _c.mutation.CorrectOption(); ok {
		if err := quizquestion.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "QuizQuestion.position"`)}
	}
	if len(_c.mutation.QuizIDs()) == 0 {
		return &ValidationError{Name: "quiz", err: errors.New(`ent: missing required edge "QuizQuestion.quiz"`)}
	}
	return nil
}

func (_c *QuizQuestionCreate) sqlSave(ctx context.Context) (*QuizQuestion, error) {
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

func (_c *QuizQuestionCreate) createSpec() (*QuizQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizquestion.Table, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(quizquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(quizquestion.FieldCorrectOption, field.TypeString, value)
		_node.CorrectOption = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(quizquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.QuizTable,
			Columns: []string{quizquestion.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuizID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizQuestionCreateBulk is the builder for creating many QuizQuestion entities in bulk.
type QuizQuestionCreateBulk struct {
	config
	err      error
	builders []*QuizQuestionCreate
}

// Save creates the QuizQuestion entities in the database.
func (_c *QuizQuestionCreateBulk) Save(ctx context.Context) ([]*QuizQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizQuestionMutation)
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
func (_c *QuizQuestionCreateBulk) SaveX(ctx context.Context) []*QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
