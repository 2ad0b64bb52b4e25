// Code generated by ent, DO NOT EDIT.

package quizquestion

import (
	"studydeck/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldID, id))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuizID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCorrectOption, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldPosition, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...uuid.UUID) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldQuestionText, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionContains applies the Contains predicate on the "correct_option" field.
func CorrectOptionContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldCorrectOption, v))
}

// CorrectOptionHasPrefix applies the HasPrefix predicate on the "correct_option" field.
func CorrectOptionHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldCorrectOption, v))
}

// CorrectOptionHasSuffix applies the HasSuffix predicate on the "correct_option" field.
func CorrectOptionHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldCorrectOption, v))
}

// CorrectOptionEqualFold applies the EqualFold predicate on the "correct_option" field.
func CorrectOptionEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldCorrectOption, v))
}

// CorrectOptionContainsFold applies the ContainsFold predicate on the "correct_option" field.
func CorrectOptionContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldCorrectOption, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldPosition, v))
}

// HasQuiz applies the HasEdge predicate on the "quiz" edge.
func HasQuiz() predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuizTable, QuizColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuizWith applies the HasEdge predicate on the "quiz" edge with a given conditions (other predicates).
func HasQuizWith(preds ...predicate.Quiz) predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := newQuizStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.QuizAnswer) predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.NotPredicates(p))
}
