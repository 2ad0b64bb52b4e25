package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
		Timeout: 2 * time.Second,
	}, nil)
}

func completionBody(content string) string {
	msg, _ := json.Marshal(content)
	return fmt.Sprintf(`{
		"choices": [{"message": {"content": %s}}],
		"usage": {"prompt_tokens": 40, "completion_tokens": 60, "total_tokens": 100}
	}`, msg)
}

func TestGenerateSummaryHappyPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, completionBody(`{"summary": "the document explains cell division"}`))
	})

	summary, out, err := c.GenerateSummary(context.Background(), "document text")
	require.NoError(t, err)
	assert.Equal(t, "the document explains cell division", summary)
	assert.Equal(t, 100, out.Usage.TotalTokens)
	assert.Equal(t, "test-model", out.Model)
	assert.Greater(t, out.Elapsed, time.Duration(0))
}

func TestGenerateSummaryAcceptsFencedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionBody("```json\n{\"summary\": \"fenced\"}\n```"))
	})

	summary, _, err := c.GenerateSummary(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "fenced", summary)
}

func TestCompleteUsesReasoningFieldWhenContentEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"choices": [{"message": {
				"content": "",
				"reasoning": "{\"summary\": \"from reasoning\"} `+deepseekSentinel+` discarded"
			}}],
			"usage": {"total_tokens": 10}
		}`)
	})

	summary, _, err := c.GenerateSummary(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "from reasoning", summary)
}

func TestCompleteRetriesWithoutJSONModeOnProviderRejection(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "response_format") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "response_format is not supported"}}`)
			return
		}
		assert.Contains(t, string(body), "MUST be a single valid JSON object")
		fmt.Fprint(w, completionBody(`{"summary": "second attempt"}`))
	})

	summary, _, err := c.GenerateSummary(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "second attempt", summary)
	assert.Equal(t, 2, calls)
}

func TestCompleteClassifiesRateLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), GenerationRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.True(t, Retryable(err))
}

func TestCompleteClassifiesProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream exploded")
	})

	_, err := c.Complete(context.Background(), GenerationRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrProvider)
	assert.True(t, Retryable(err))
}

func TestCompleteSurfacesErrorInsideOKBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"error": {"message": "model is overloaded"}}`)
	})

	_, err := c.Complete(context.Background(), GenerationRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "model is overloaded")
}

func TestCompleteMalformedContentIsNotRetryable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionBody("I refuse to produce JSON today"))
	})

	_, _, err := c.GenerateSummary(context.Background(), "text")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.False(t, Retryable(err))
}

func TestGenerateSummarySchemaViolation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionBody(`{"wrong_key": "value"}`))
	})

	_, _, err := c.GenerateSummary(context.Background(), "text")
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.False(t, Retryable(err))
}

func TestGenerateFlashcardsDecodesTypedCards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionBody(`{"flashcards": [
			{"subject": "Osmosis", "definition": "Diffusion of water across a membrane"},
			{"subject": "Diffusion", "definition": "Movement from high to low concentration"}
		]}`))
	})

	cards, _, err := c.GenerateFlashcards(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Osmosis", cards[0].Subject)
	assert.Equal(t, "Movement from high to low concentration", cards[1].Definition)
}

func TestGenerateQuizDecodesTypedQuiz(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionBody(`{"quiz": {
			"title": "Membrane Transport",
			"questions": [
				{"question_text": "What drives osmosis?", "options": ["Pressure", "Concentration", "Heat", "Light"], "correct_option": "Concentration"}
			]
		}}`))
	})

	quiz, _, err := c.GenerateQuiz(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "Membrane Transport", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Concentration", quiz.Questions[0].CorrectOption)
	assert.Len(t, quiz.Questions[0].Options, 4)
}

func TestPing(t *testing.T) {
	t.Run("reachable provider passes even with junk content", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"choices": []}`)
		})
		assert.NoError(t, c.Ping(context.Background()))
	})

	t.Run("unreachable provider fails", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		assert.Error(t, c.Ping(context.Background()))
	})
}

func TestCompletePlainTextPath(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		fmt.Fprint(w, completionBody("a plain answer"))
	})

	out, err := c.Complete(context.Background(), GenerationRequest{
		SystemPrompt: "be brief",
		UserPrompt:   "question",
		History: []Turn{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
		MaxTokens: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "a plain answer", out.Text)
	assert.Nil(t, out.Payload)

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 4, "system, two history turns, user")
	assert.Equal(t, float64(1000), gotBody["max_tokens"])
	_, hasFormat := gotBody["response_format"]
	assert.False(t, hasFormat)
}
