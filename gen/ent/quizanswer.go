// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// QuizAnswer is the model entity for the QuizAnswer schema.
type QuizAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID uuid.UUID `json:"attempt_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// SelectedOption holds the value of the "selected_option" field.
	SelectedOption string `json:"selected_option,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizAnswerQuery when eager-loading is set.
	Edges        QuizAnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizAnswerEdges holds the relations/edges for other nodes in the graph.
type QuizAnswerEdges struct {
	// Attempt holds the value of the attempt edge.
	Attempt *QuizAttempt `json:"attempt,omitempty"`
	// Question holds the value of the question edge.
	Question *QuizQuestion `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AttemptOrErr returns the Attempt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizAnswerEdges) AttemptOrErr() (*QuizAttempt, error) {
	if e.Attempt != nil {
		return e.Attempt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quizattempt.Label}
	}
	return nil, &NotLoadedError{edge: "attempt"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizAnswerEdges) QuestionOrErr() (*QuizQuestion, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: quizquestion.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizanswer.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case quizanswer.FieldSelectedOption:
			values[i] = new(sql.NullString)
		case quizanswer.FieldID, quizanswer.FieldAttemptID, quizanswer.FieldQuestionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAnswer fields.
func (_m *QuizAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizanswer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quizanswer.FieldAttemptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value != nil {
				_m.AttemptID = *value
			}
		case quizanswer.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case quizanswer.FieldSelectedOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_option", values[i])
			} else if value.Valid {
				_m.SelectedOption = value.String
			}
		case quizanswer.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempt queries the "attempt" edge of the QuizAnswer entity.
func (_m *QuizAnswer) QueryAttempt() *QuizAttemptQuery {
	return NewQuizAnswerClient(_m.config).QueryAttempt(_m)
}

// QueryQuestion queries the "question" edge of the QuizAnswer entity.
func (_m *QuizAnswer) QueryQuestion() *QuizQuestionQuery {
	return NewQuizAnswerClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this QuizAnswer.
// Note that you need to call QuizAnswer.Unwrap() before calling this method if this QuizAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAnswer) Update() *QuizAnswerUpdateOne {
	return NewQuizAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAnswer) Unwrap() *QuizAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("selected_option=")
	builder.WriteString(_m.SelectedOption)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAnswers is a parsable slice of QuizAnswer.
type QuizAnswers []*QuizAnswer
