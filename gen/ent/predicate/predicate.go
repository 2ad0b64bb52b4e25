// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// Quiz is the predicate function for quiz builders.
type Quiz func(*sql.Selector)

// QuizAnswer is the predicate function for quizanswer builders.
type QuizAnswer func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// QuizQuestion is the predicate function for quizquestion builders.
type QuizQuestion func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)
