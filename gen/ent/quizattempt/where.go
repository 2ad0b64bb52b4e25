// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"studydeck/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldID, id))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldQuizID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldOwnerID, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCorrectAnswers, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScore, v))
}

// TimeTakenSeconds applies equality check predicate on the "time_taken_seconds" field. It's identical to TimeTakenSecondsEQ.
func TimeTakenSeconds(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...uuid.UUID) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldQuizID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldOwnerID, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCorrectAnswers, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldScore, v))
}

// TimeTakenSecondsEQ applies the EQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsNEQ applies the NEQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNEQ(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsIn applies the In predicate on the "time_taken_seconds" field.
func TimeTakenSecondsIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsNotIn applies the NotIn predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNotIn(vs ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsGT applies the GT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsGTE applies the GTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLT applies the LT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLT(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLTE applies the LTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLTE(v int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsIsNil applies the IsNil predicate on the "time_taken_seconds" field.
func TimeTakenSecondsIsNil() predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIsNull(FieldTimeTakenSeconds))
}

// TimeTakenSecondsNotNil applies the NotNil predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNotNil() predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotNull(FieldTimeTakenSeconds))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCompletedAt, v))
}

// HasQuiz applies the HasEdge predicate on the "quiz" edge.
func HasQuiz() predicate.QuizAttempt {
	return predicate.QuizAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuizTable, QuizColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuizWith applies the HasEdge predicate on the "quiz" edge with a given conditions (other predicates).
func HasQuizWith(preds ...predicate.Quiz) predicate.QuizAttempt {
	return predicate.QuizAttempt(func(s *sql.Selector) {
		step := newQuizStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.QuizAttempt {
	return predicate.QuizAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.QuizAnswer) predicate.QuizAttempt {
	return predicate.QuizAttempt(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.NotPredicates(p))
}
