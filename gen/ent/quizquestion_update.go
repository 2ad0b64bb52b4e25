// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/predicate"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizQuestionUpdate is the builder for updating QuizQuestion entities.
type QuizQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdate) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizQuestionUpdate) SetQuizID(v uuid.UUID) *QuizQuestionUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableQuizID(v *uuid.UUID) *QuizQuestionUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizQuestionUpdate) SetQuestionText(v string) *QuizQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableQuestionText(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdate) SetOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdate) AppendOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuizQuestionUpdate) SetCorrectOption(v string) *QuizQuestionUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCorrectOption(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuizQuestionUpdate) SetPosition(v int) *QuizQuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillablePosition(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuizQuestionUpdate) AddPosition(v int) *QuizQuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *QuizQuestionUpdate) SetQuiz(v *Quiz) *QuizQuestionUpdate {
	return _u.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_u *QuizQuestionUpdate) AddAnswerIDs(ids ...uuid.UUID) *QuizQuestionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_u *QuizQuestionUpdate) AddAnswers(v ...*QuizAnswer) *QuizQuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdate) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *QuizQuestionUpdate) ClearQuiz() *QuizQuestionUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuizAnswer entity.
func (_u *QuizQuestionUpdate) ClearAnswers() *QuizQuestionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuizAnswer entities by IDs.
func (_u *QuizQuestionUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *QuizQuestionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuizAnswer entities.
func (_u *QuizQuestionUpdate) RemoveAnswers(v ...*QuizAnswer) *QuizQuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := quizquestion.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_option": %w`, err)}
		}
	}
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.quiz"`)
	}
	return nil
}

func (_u *QuizQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(quizquestion.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(quizquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(quizquestion.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizQuestionUpdateOne is the builder for updating a single QuizQuestion entity.
type QuizQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizQuestionUpdateOne) SetQuizID(v uuid.UUID) *QuizQuestionUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableQuizID(v *uuid.UUID) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizQuestionUpdateOne) SetQuestionText(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableQuestionText(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdateOne) SetOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdateOne) AppendOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuizQuestionUpdateOne) SetCorrectOption(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCorrectOption(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuizQuestionUpdateOne) SetPosition(v int) *QuizQuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillablePosition(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuizQuestionUpdateOne) AddPosition(v int) *QuizQuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *QuizQuestionUpdateOne) SetQuiz(v *Quiz) *QuizQuestionUpdateOne {
	return _u.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_u *QuizQuestionUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *QuizQuestionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_u *QuizQuestionUpdateOne) AddAnswers(v ...*QuizAnswer) *QuizQuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdateOne) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *QuizQuestionUpdateOne) ClearQuiz() *QuizQuestionUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuizAnswer entity.
func (_u *QuizQuestionUpdateOne) ClearAnswers() *QuizQuestionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuizAnswer entities by IDs.
func (_u *QuizQuestionUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *QuizQuestionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuizAnswer entities.
func (_u *QuizQuestionUpdateOne) RemoveAnswers(v ...*QuizAnswer) *QuizQuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdateOne) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizQuestionUpdateOne) Select(field string, fields ...string) *QuizQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizQuestion entity.
func (_u *QuizQuestionUpdateOne) Save(ctx context.Context) (*QuizQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) SaveX(ctx context.Context) *QuizQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := quizquestion.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_option": %w`, err)}
		}
	}
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.quiz"`)
	}
	return nil
}

func (_u *QuizQuestionUpdateOne) sqlSave(ctx context.Context) (_node *QuizQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for _, f := range fields {
			if !quizquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizquestion.FieldID {
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
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(quizquestion.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(quizquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(quizquestion.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
