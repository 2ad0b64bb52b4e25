package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContentPrimaryWins(t *testing.T) {
	got := resolveContent("  answer  ", "ignored reasoning")
	assert.Equal(t, contentPrimary, got.kind)
	assert.Equal(t, "answer", got.text)
}

func TestResolveContentAlternateField(t *testing.T) {
	got := resolveContent("", `{"summary": "x"}`)
	assert.Equal(t, contentAlternate, got.kind)
	assert.Equal(t, `{"summary": "x"}`, got.text)
}

func TestResolveContentStripsSentinel(t *testing.T) {
	got := resolveContent("", `{"summary": "x"} `+deepseekSentinel+` trailing noise`)
	assert.Equal(t, contentAlternate, got.kind)
	assert.Equal(t, `{"summary": "x"}`, got.text)
}

func TestResolveContentEmpty(t *testing.T) {
	assert.Equal(t, contentEmpty, resolveContent("", "").kind)
	assert.Equal(t, contentEmpty, resolveContent("   ", "\n\t").kind)
	// reasoning that is nothing but the sentinel is empty too
	assert.Equal(t, contentEmpty, resolveContent("", deepseekSentinel).kind)
}

func TestParseJSONPayloadFencedAndBareAreIdentical(t *testing.T) {
	bare, err := parseJSONPayload(`{"summary": "short"}`)
	require.NoError(t, err)

	fenced, err := parseJSONPayload("```json\n{\"summary\": \"short\"}\n```")
	require.NoError(t, err)

	plainFence, err := parseJSONPayload("```\n{\"summary\": \"short\"}\n```")
	require.NoError(t, err)

	assert.Equal(t, bare, fenced)
	assert.Equal(t, bare, plainFence)
}

func TestParseJSONPayloadMalformed(t *testing.T) {
	_, err := parseJSONPayload("this is not json")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.False(t, Retryable(err), "content failures are not retryable")
}
