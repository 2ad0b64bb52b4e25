// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizattempt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// QuizAttempt is the model entity for the QuizAttempt schema.
type QuizAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// QuizID holds the value of the "quiz_id" field.
	QuizID uuid.UUID `json:"quiz_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// TimeTakenSeconds holds the value of the "time_taken_seconds" field.
	TimeTakenSeconds *int `json:"time_taken_seconds,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizAttemptQuery when eager-loading is set.
	Edges        QuizAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizAttemptEdges holds the relations/edges for other nodes in the graph.
type QuizAttemptEdges struct {
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
func (e QuizAttemptEdges) QuizOrErr() (*Quiz, error) {
	if e.Quiz != nil {
		return e.Quiz, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quiz.Label}
	}
	return nil, &NotLoadedError{edge: "quiz"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e QuizAttemptEdges) AnswersOrErr() ([]*QuizAnswer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldScore:
			values[i] = new(sql.NullFloat64)
		case quizattempt.FieldTotalQuestions, quizattempt.FieldCorrectAnswers, quizattempt.FieldTimeTakenSeconds:
			values[i] = new(sql.NullInt64)
		case quizattempt.FieldOwnerID:
			values[i] = new(sql.NullString)
		case quizattempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case quizattempt.FieldID, quizattempt.FieldQuizID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAttempt fields.
func (_m *QuizAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quizattempt.FieldQuizID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value != nil {
				_m.QuizID = *value
			}
		case quizattempt.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case quizattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case quizattempt.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case quizattempt.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case quizattempt.FieldTimeTakenSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_seconds", values[i])
			} else if value.Valid {
				_m.TimeTakenSeconds = new(int)
				*_m.TimeTakenSeconds = int(value.Int64)
			}
		case quizattempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuiz queries the "quiz" edge of the QuizAttempt entity.
func (_m *QuizAttempt) QueryQuiz() *QuizQuery {
	return NewQuizAttemptClient(_m.config).QueryQuiz(_m)
}

// QueryAnswers queries the "answers" edge of the QuizAttempt entity.
func (_m *QuizAttempt) QueryAnswers() *QuizAnswerQuery {
	return NewQuizAttemptClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this QuizAttempt.
// Note that you need to call QuizAttempt.Unwrap() before calling this method if this QuizAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAttempt) Update() *QuizAttemptUpdateOne {
	return NewQuizAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAttempt) Unwrap() *QuizAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quiz_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	if v := _m.TimeTakenSeconds; v != nil {
		builder.WriteString("time_taken_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAttempts is a parsable slice of QuizAttempt.
type QuizAttempts []*QuizAttempt
