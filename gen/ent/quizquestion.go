// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// QuizQuestion is the model entity for the QuizQuestion schema.
type QuizQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// QuizID holds the value of the "quiz_id" field.
	QuizID uuid.UUID `json:"quiz_id,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// CorrectOption holds the value of the "correct_option" field.
	CorrectOption string `json:"correct_option,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizQuestionQuery when eager-loading is set.
	Edges        QuizQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizQuestionEdges holds the relations/edges for other nodes in the graph.
type QuizQuestionEdges struct {
	// Quiz holds the value of the quiz edge.
	Quiz *Quiz `json:"quiz,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*QuizAnswer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuizOrErr returns the Quiz value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizQuestionEdges) QuizOrErr() (*Quiz, error) {
	if e.Quiz != nil {
		return e.Quiz, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quiz.Label}
	}
	return nil, &NotLoadedError{edge: "quiz"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e QuizQuestionEdges) AnswersOrErr() ([]*QuizAnswer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldOptions:
			values[i] = new([]byte)
		case quizquestion.FieldPosition:
			values[i] = new(sql.NullInt64)
		case quizquestion.FieldQuestionText, quizquestion.FieldCorrectOption:
			values[i] = new(sql.NullString)
		case quizquestion.FieldID, quizquestion.FieldQuizID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizQuestion fields.
func (_m *QuizQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quizquestion.FieldQuizID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value != nil {
				_m.QuizID = *value
			}
		case quizquestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case quizquestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case quizquestion.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = value.String
			}
		case quizquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *QuizQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuiz queries the "quiz" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QueryQuiz() *QuizQuery {
	return NewQuizQuestionClient(_m.config).QueryQuiz(_m)
}

// QueryAnswers queries the "answers" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QueryAnswers() *QuizAnswerQuery {
	return NewQuizQuestionClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this QuizQuestion.
// Note that you need to call QuizQuestion.Unwrap() before calling this method if this QuizQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizQuestion) Update() *QuizQuestionUpdateOne {
	return NewQuizQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizQuestion) Unwrap() *QuizQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("QuizQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quiz_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizID))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_option=")
	builder.WriteString(_m.CorrectOption)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// QuizQuestions is a parsable slice of QuizQuestion.
type QuizQuestions []*QuizQuestion
