package llm

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"studydeck/constants"
)

// Per-task JSON Schemas (draft 2020-12 subset). The system prompt states the
// same contract in-band; these validate it locally because the provider's
// structured-output mode is not honored by every backing model.
const (
	summarySchemaJSON = `{
		"type": "object",
		"required": ["summary"],
		"properties": {
			"summary": {"type": "string", "minLength": 1}
		}
	}`

	flashcardsSchemaJSON = `{
		"type": "object",
		"required": ["flashcards"],
		"properties": {
			"flashcards": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["subject", "definition"],
					"properties": {
						"subject": {"type": "string"},
						"definition": {"type": "string"}
					}
				}
			}
		}
	}`

	quizSchemaJSON = `{
		"type": "object",
		"required": ["quiz"],
		"properties": {
			"quiz": {
				"type": "object",
				"required": ["questions"],
				"properties": {
					"title": {"type": "string"},
					"questions": {
						"type": "array",
						"minItems": 1,
						"items": {
							"type": "object",
							"required": ["question_text", "options", "correct_option"],
							"properties": {
								"question_text": {"type": "string"},
								"options": {
									"type": "array",
									"items": {"type": "string"}
								},
								"correct_option": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}`
)

var taskSchemas = map[constants.GenerationTask]*jsonschema.Schema{
	constants.TaskSummary:    jsonschema.MustCompileString("summary.json", summarySchemaJSON),
	constants.TaskFlashcards: jsonschema.MustCompileString("flashcards.json", flashcardsSchemaJSON),
	constants.TaskQuiz:       jsonschema.MustCompileString("quiz.json", quizSchemaJSON),
}

// validateTaskPayload checks a parsed payload against the task's contract.
// Violations classify as non-retryable content errors.
func validateTaskPayload(task constants.GenerationTask, payload map[string]any) error {
	schema, ok := taskSchemas[task]
	if !ok {
		return fmt.Errorf("no schema registered for task %q", task)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, task, err)
	}
	return nil
}
