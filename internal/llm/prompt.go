package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Character budgets for document text embedded in prompts. Analytical tasks
// get a larger window than conversational context.
const (
	DefaultMaxDocChars  = 10000
	DefaultMaxChatChars = 8000

	truncationMarker = "..."
)

// truncateText cuts text to at most max bytes, backing off to a rune
// boundary, and appends an explicit marker when anything was cut.
func truncateText(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationMarker
}

func summaryPrompts(text string, maxChars int) (system, user string) {
	system = `You are an expert at summarizing academic documents.
Your response MUST be ONLY a valid JSON object of the form: {"summary": "summary text"}
Do NOT include explanations, markdown, or any additional text. ONLY the JSON.`

	user = fmt.Sprintf(`Analyze the following text and produce a complete, concise summary.

REQUIRED RESPONSE FORMAT (JSON):
{"summary": "your summary here"}

TEXT TO SUMMARIZE:
%s

Respond ONLY with the JSON, with no text before or after it.`, truncateText(text, maxChars))
	return system, user
}

func flashcardsPrompts(text string, count, maxChars int) (system, user string) {
	system = "You are an expert at writing educational flashcards. Return only valid JSON."

	user = fmt.Sprintf(`Create EXACTLY %d study flashcards based on the text.
Return ONLY a JSON object with this structure:
{
  "flashcards": [
    {"subject": "topic 1", "definition": "definition 1"},
    {"subject": "topic 2", "definition": "definition 2"}
  ]
}

TEXT:
%s

IMPORTANT: Return ONLY the valid JSON, with no additional text.`, count, truncateText(text, maxChars))
	return system, user
}

func quizPrompts(text string, minQuestions, maxChars int) (system, user string) {
	system = "You are an expert at writing educational quizzes. Return only valid JSON."

	user = fmt.Sprintf(`Create a quiz with AT LEAST %d questions based on the text.
Return ONLY a JSON object with this structure:
{
  "quiz": {
    "title": "quiz title",
    "questions": [
      {
        "question_text": "question 1",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct_option": "the correct option"
      }
    ]
  }
}

TEXT:
%s

IMPORTANT: Return ONLY the valid JSON, with no additional text.`, minQuestions, truncateText(text, maxChars))
	return system, user
}

// ChatSystemPrompt embeds a bounded document excerpt plus the behavioral
// constraints for document Q&A.
func ChatSystemPrompt(documentText string, maxChars int) string {
	var b strings.Builder
	b.WriteString("You are an expert educational assistant. Answer questions about the following document.\n\n")
	b.WriteString("DOCUMENT:\n")
	b.WriteString(truncateText(documentText, maxChars))
	b.WriteString("\n\nINSTRUCTIONS:\n")
	b.WriteString("- Answer ONLY from the information in the document\n")
	b.WriteString("- If the information is not in the document, say so clearly\n")
	b.WriteString("- Be concise and clear\n")
	b.WriteString("- Keep summaries and explanations under 150 words\n")
	b.WriteString("- Keep a professional, educational tone\n")
	b.WriteString("- Answers must stay under 300 words\n")
	return b.String()
}
