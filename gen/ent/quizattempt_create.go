// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizAttemptCreate) SetQuizID(v uuid.UUID) *QuizAttemptCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *QuizAttemptCreate) SetOwnerID(v string) *QuizAttemptCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizAttemptCreate) SetTotalQuestions(v int) *QuizAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableTotalQuestions(v *int) *QuizAttemptCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *QuizAttemptCreate) SetCorrectAnswers(v int) *QuizAttemptCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableCorrectAnswers(v *int) *QuizAttemptCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptCreate) SetScore(v float64) *QuizAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableScore(v *float64) *QuizAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_c *QuizAttemptCreate) SetTimeTakenSeconds(v int) *QuizAttemptCreate {
	_c.mutation.SetTimeTakenSeconds(v)
	return _c
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableTimeTakenSeconds(v *int) *QuizAttemptCreate {
	if v != nil {
		_c.SetTimeTakenSeconds(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuizAttemptCreate) SetCompletedAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableCompletedAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuizAttemptCreate) SetID(v uuid.UUID) *QuizAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableID(v *uuid.UUID) *QuizAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_c *QuizAttemptCreate) SetQuiz(v *Quiz) *QuizAttemptCreate {
	return _c.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_c *QuizAttemptCreate) AddAnswerIDs(ids ...uuid.UUID) *QuizAttemptCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_c *QuizAttemptCreate) AddAnswers(v ...*QuizAnswer) *QuizAttemptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := quizattempt.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := quizattempt.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := quizattempt.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quizattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizAttempt.quiz_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "QuizAttempt.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := quizattempt.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizAttempt.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "QuizAttempt.correct_answers"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttempt.score"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "QuizAttempt.completed_at"`)}
	}
	if len(_c.mutation.QuizIDs()) == 0 {
		return &ValidationError{Name: "quiz", err: errors.New(`ent: missing required edge "QuizAttempt.quiz"`)}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
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

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(quizattempt.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizattempt.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizattempt.FieldTimeTakenSeconds, field.TypeInt, value)
		_node.TimeTakenSeconds = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(quizattempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizattempt.QuizTable,
			Columns: []string{quizattempt.QuizColumn},
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
			Table:   quizattempt.AnswersTable,
			Columns: []string{quizattempt.AnswersColumn},
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

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
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
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
