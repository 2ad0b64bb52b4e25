package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 100))
	assert.Equal(t, "short", truncateText("short", 0), "non-positive budget disables truncation")

	got := truncateText(strings.Repeat("x", 50), 10)
	assert.Equal(t, strings.Repeat("x", 10)+truncationMarker, got)
}

func TestTruncateTextRespectsRuneBoundary(t *testing.T) {
	// "é" is two bytes; a budget of 3 lands mid-rune
	got := truncateText("aaéé", 3)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Equal(t, "aa"+truncationMarker, got)
}

func TestPromptsEmbedTruncatedDocument(t *testing.T) {
	doc := strings.Repeat("d", 200)

	_, user := summaryPrompts(doc, 50)
	assert.Contains(t, user, strings.Repeat("d", 50)+truncationMarker)
	assert.NotContains(t, user, strings.Repeat("d", 51))

	_, user = flashcardsPrompts(doc, FlashcardCount, 50)
	assert.Contains(t, user, "EXACTLY 5")
	assert.Contains(t, user, truncationMarker)

	_, user = quizPrompts(doc, MinQuizQuestions, 50)
	assert.Contains(t, user, "AT LEAST 5")
}

func TestChatSystemPrompt(t *testing.T) {
	prompt := ChatSystemPrompt(strings.Repeat("c", 100), 40)
	assert.Contains(t, prompt, "DOCUMENT:")
	assert.Contains(t, prompt, strings.Repeat("c", 40)+truncationMarker)
	assert.Contains(t, prompt, "ONLY from the information in the document")
}
