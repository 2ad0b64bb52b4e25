package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/constants"
)

func payloadFromJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestValidateSummaryPayload(t *testing.T) {
	ok := payloadFromJSON(t, `{"summary": "cells divide by mitosis"}`)
	assert.NoError(t, validateTaskPayload(constants.TaskSummary, ok))

	missing := payloadFromJSON(t, `{"text": "wrong key"}`)
	err := validateTaskPayload(constants.TaskSummary, missing)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	empty := payloadFromJSON(t, `{"summary": ""}`)
	assert.ErrorIs(t, validateTaskPayload(constants.TaskSummary, empty), ErrSchemaViolation)
}

func TestValidateFlashcardsPayload(t *testing.T) {
	ok := payloadFromJSON(t, `{"flashcards": [{"subject": "Mitosis", "definition": "Cell division"}]}`)
	assert.NoError(t, validateTaskPayload(constants.TaskFlashcards, ok))

	emptyList := payloadFromJSON(t, `{"flashcards": []}`)
	assert.ErrorIs(t, validateTaskPayload(constants.TaskFlashcards, emptyList), ErrSchemaViolation)

	badItem := payloadFromJSON(t, `{"flashcards": [{"subject": "Mitosis"}]}`)
	assert.ErrorIs(t, validateTaskPayload(constants.TaskFlashcards, badItem), ErrSchemaViolation)
}

func TestValidateQuizPayload(t *testing.T) {
	ok := payloadFromJSON(t, `{
		"quiz": {
			"title": "Cell Biology",
			"questions": [
				{"question_text": "What is mitosis?", "options": ["a", "b"], "correct_option": "a"}
			]
		}
	}`)
	assert.NoError(t, validateTaskPayload(constants.TaskQuiz, ok))

	noQuestions := payloadFromJSON(t, `{"quiz": {"title": "Empty", "questions": []}}`)
	assert.ErrorIs(t, validateTaskPayload(constants.TaskQuiz, noQuestions), ErrSchemaViolation)

	missingField := payloadFromJSON(t, `{"quiz": {"questions": [{"question_text": "q"}]}}`)
	assert.ErrorIs(t, validateTaskPayload(constants.TaskQuiz, missingField), ErrSchemaViolation)
}
