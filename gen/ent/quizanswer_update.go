// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/predicate"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizAnswerUpdate is the builder for updating QuizAnswer entities.
type QuizAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAnswerMutation
}

// Where appends a list predicates to the QuizAnswerUpdate builder.
func (_u *QuizAnswerUpdate) Where(ps ...predicate.QuizAnswer) *QuizAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAnswerUpdate) SetAttemptID(v uuid.UUID) *QuizAnswerUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableAttemptID(v *uuid.UUID) *QuizAnswerUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizAnswerUpdate) SetQuestionID(v uuid.UUID) *QuizAnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableQuestionID(v *uuid.UUID) *QuizAnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *QuizAnswerUpdate) SetSelectedOption(v string) *QuizAnswerUpdate {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableSelectedOption(v *string) *QuizAnswerUpdate {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizAnswerUpdate) SetIsCorrect(v bool) *QuizAnswerUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableIsCorrect(v *bool) *QuizAnswerUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the QuizAttempt entity.
func (_u *QuizAnswerUpdate) SetAttempt(v *QuizAttempt) *QuizAnswerUpdate {
	return _u.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_u *QuizAnswerUpdate) SetQuestion(v *QuizQuestion) *QuizAnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_u *QuizAnswerUpdate) Mutation() *QuizAnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the QuizAttempt entity.
func (_u *QuizAnswerUpdate) ClearAttempt() *QuizAnswerUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the QuizQuestion entity.
func (_u *QuizAnswerUpdate) ClearQuestion() *QuizAnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerUpdate) check() error {
	if v, ok := _u.mutation.SelectedOption(); ok {
		if err := quizanswer.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.selected_option": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAnswer.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAnswer.question"`)
	}
	return nil
}

func (_u *QuizAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswer.Table, quizanswer.Columns, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(quizanswer.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAnswerUpdateOne is the builder for updating a single QuizAnswer entity.
type QuizAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAnswerMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAnswerUpdateOne) SetAttemptID(v uuid.UUID) *QuizAnswerUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableAttemptID(v *uuid.UUID) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizAnswerUpdateOne) SetQuestionID(v uuid.UUID) *QuizAnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableQuestionID(v *uuid.UUID) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *QuizAnswerUpdateOne) SetSelectedOption(v string) *QuizAnswerUpdateOne {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableSelectedOption(v *string) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizAnswerUpdateOne) SetIsCorrect(v bool) *QuizAnswerUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableIsCorrect(v *bool) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the QuizAttempt entity.
func (_u *QuizAnswerUpdateOne) SetAttempt(v *QuizAttempt) *QuizAnswerUpdateOne {
	return _u.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_u *QuizAnswerUpdateOne) SetQuestion(v *QuizQuestion) *QuizAnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_u *QuizAnswerUpdateOne) Mutation() *QuizAnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the QuizAttempt entity.
func (_u *QuizAnswerUpdateOne) ClearAttempt() *QuizAnswerUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the QuizQuestion entity.
func (_u *QuizAnswerUpdateOne) ClearQuestion() *QuizAnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the QuizAnswerUpdate builder.
func (_u *QuizAnswerUpdateOne) Where(ps ...predicate.QuizAnswer) *QuizAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAnswerUpdateOne) Select(field string, fields ...string) *QuizAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAnswer entity.
func (_u *QuizAnswerUpdateOne) Save(ctx context.Context) (*QuizAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerUpdateOne) SaveX(ctx context.Context) *QuizAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerUpdateOne) check() error {
	if v, ok := _u.mutation.SelectedOption(); ok {
		if err := quizanswer.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.selected_option": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAnswer.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAnswer.question"`)
	}
	return nil
}

func (_u *QuizAnswerUpdateOne) sqlSave(ctx context.Context) (_node *QuizAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswer.Table, quizanswer.Columns, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizanswer.FieldID)
		for _, f := range fields {
			if !quizanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizanswer.FieldID {
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
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(quizanswer.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
