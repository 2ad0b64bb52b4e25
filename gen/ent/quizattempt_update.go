// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/predicate"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdate) SetQuizID(v uuid.UUID) *QuizAttemptUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableQuizID(v *uuid.UUID) *QuizAttemptUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *QuizAttemptUpdate) SetOwnerID(v string) *QuizAttemptUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableOwnerID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdate) SetTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTotalQuestions(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdate) AddTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizAttemptUpdate) SetCorrectAnswers(v int) *QuizAttemptUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableCorrectAnswers(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizAttemptUpdate) AddCorrectAnswers(v int) *QuizAttemptUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v float64) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *QuizAttemptUpdate) SetTimeTakenSeconds(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTimeTakenSeconds(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *QuizAttemptUpdate) AddTimeTakenSeconds(v int) *QuizAttemptUpdate {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// ClearTimeTakenSeconds clears the value of the "time_taken_seconds" field.
func (_u *QuizAttemptUpdate) ClearTimeTakenSeconds() *QuizAttemptUpdate {
	_u.mutation.ClearTimeTakenSeconds()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizAttemptUpdate) SetCompletedAt(v time.Time) *QuizAttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableCompletedAt(v *time.Time) *QuizAttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *QuizAttemptUpdate) SetQuiz(v *Quiz) *QuizAttemptUpdate {
	return _u.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_u *QuizAttemptUpdate) AddAnswerIDs(ids ...uuid.UUID) *QuizAttemptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_u *QuizAttemptUpdate) AddAnswers(v ...*QuizAnswer) *QuizAttemptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *QuizAttemptUpdate) ClearQuiz() *QuizAttemptUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuizAnswer entity.
func (_u *QuizAttemptUpdate) ClearAnswers() *QuizAttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuizAnswer entities by IDs.
func (_u *QuizAttemptUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *QuizAttemptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuizAnswer entities.
func (_u *QuizAttemptUpdate) RemoveAnswers(v ...*QuizAnswer) *QuizAttemptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := quizattempt.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.owner_id": %w`, err)}
		}
	}
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAttempt.quiz"`)
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(quizattempt.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizattempt.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(quizattempt.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeTakenSecondsCleared() {
		_spec.ClearField(quizattempt.FieldTimeTakenSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizattempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdateOne) SetQuizID(v uuid.UUID) *QuizAttemptUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableQuizID(v *uuid.UUID) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *QuizAttemptUpdateOne) SetOwnerID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableOwnerID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdateOne) SetTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTotalQuestions(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdateOne) AddTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizAttemptUpdateOne) SetCorrectAnswers(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableCorrectAnswers(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizAttemptUpdateOne) AddCorrectAnswers(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *QuizAttemptUpdateOne) SetTimeTakenSeconds(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTimeTakenSeconds(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *QuizAttemptUpdateOne) AddTimeTakenSeconds(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// ClearTimeTakenSeconds clears the value of the "time_taken_seconds" field.
func (_u *QuizAttemptUpdateOne) ClearTimeTakenSeconds() *QuizAttemptUpdateOne {
	_u.mutation.ClearTimeTakenSeconds()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizAttemptUpdateOne) SetCompletedAt(v time.Time) *QuizAttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *QuizAttemptUpdateOne) SetQuiz(v *Quiz) *QuizAttemptUpdateOne {
	return _u.SetQuizID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuizAnswer entity by IDs.
func (_u *QuizAttemptUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *QuizAttemptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuizAnswer entity.
func (_u *QuizAttemptUpdateOne) AddAnswers(v ...*QuizAnswer) *QuizAttemptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *QuizAttemptUpdateOne) ClearQuiz() *QuizAttemptUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuizAnswer entity.
func (_u *QuizAttemptUpdateOne) ClearAnswers() *QuizAttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuizAnswer entities by IDs.
func (_u *QuizAttemptUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *QuizAttemptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuizAnswer entities.
func (_u *QuizAttemptUpdateOne) RemoveAnswers(v ...*QuizAnswer) *QuizAttemptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := quizattempt.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.owner_id": %w`, err)}
		}
	}
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAttempt.quiz"`)
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(quizattempt.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizattempt.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(quizattempt.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeTakenSecondsCleared() {
		_spec.ClearField(quizattempt.FieldTimeTakenSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizattempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
