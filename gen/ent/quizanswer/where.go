// Code generated by ent, DO NOT EDIT.

package quizanswer

import (
	"studydeck/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAttemptID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// SelectedOption applies equality check predicate on the "selected_option" field. It's identical to SelectedOptionEQ.
func SelectedOption(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldIsCorrect, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldAttemptID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// SelectedOptionEQ applies the EQ predicate on the "selected_option" field.
func SelectedOptionEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// SelectedOptionNEQ applies the NEQ predicate on the "selected_option" field.
func SelectedOptionNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldSelectedOption, v))
}

// SelectedOptionIn applies the In predicate on the "selected_option" field.
func SelectedOptionIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldSelectedOption, vs...))
}

// SelectedOptionNotIn applies the NotIn predicate on the "selected_option" field.
func SelectedOptionNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldSelectedOption, vs...))
}

// SelectedOptionGT applies the GT predicate on the "selected_option" field.
func SelectedOptionGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldSelectedOption, v))
}

// SelectedOptionGTE applies the GTE predicate on the "selected_option" field.
func SelectedOptionGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldSelectedOption, v))
}

// SelectedOptionLT applies the LT predicate on the "selected_option" field.
func SelectedOptionLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldSelectedOption, v))
}

// SelectedOptionLTE applies the LTE predicate on the "selected_option" field.
func SelectedOptionLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldSelectedOption, v))
}

// SelectedOptionContains applies the Contains predicate on the "selected_option" field.
func SelectedOptionContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldSelectedOption, v))
}

// SelectedOptionHasPrefix applies the HasPrefix predicate on the "selected_option" field.
func SelectedOptionHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldSelectedOption, v))
}

// SelectedOptionHasSuffix applies the HasSuffix predicate on the "selected_option" field.
func SelectedOptionHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldSelectedOption, v))
}

// SelectedOptionEqualFold applies the EqualFold predicate on the "selected_option" field.
func SelectedOptionEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldSelectedOption, v))
}

// SelectedOptionContainsFold applies the ContainsFold predicate on the "selected_option" field.
func SelectedOptionContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldSelectedOption, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldIsCorrect, v))
}

// HasAttempt applies the HasEdge predicate on the "attempt" edge.
func HasAttempt() predicate.QuizAnswer {
	return predicate.QuizAnswer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptWith applies the HasEdge predicate on the "attempt" edge with a given conditions (other predicates).
func HasAttemptWith(preds ...predicate.QuizAttempt) predicate.QuizAnswer {
	return predicate.QuizAnswer(func(s *sql.Selector) {
		step := newAttemptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.QuizAnswer {
	return predicate.QuizAnswer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.QuizQuestion) predicate.QuizAnswer {
	return predicate.QuizAnswer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.NotPredicates(p))
}
