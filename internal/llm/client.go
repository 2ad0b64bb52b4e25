// Package llm wraps an OpenAI-compatible chat/completions endpoint for the
// study generation tasks. It knows how to build a request, recover a usable
// payload from the provider's response, and classify failures into the
// retryable transport category or the non-retryable content category.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
)

// Config for the generation client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://openrouter.ai/api/v1
	Model       string        // analytical tasks
	ChatModel   string        // conversational turns; falls back to Model
	Temperature float32       // 0..2
	Timeout     time.Duration // per-call http timeout

	MaxDocChars  int // truncation budget for analytical prompts
	MaxChatChars int // truncation budget for the chat document excerpt

	// DisableJSONRetry turns off the one-shot fallback that re-sends a
	// structured request without response_format when the provider rejects
	// the structured-mode parameter.
	DisableJSONRetry bool
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek/deepseek-chat-v3.1:free"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxDocChars <= 0 {
		cfg.MaxDocChars = DefaultMaxDocChars
	}
	if cfg.MaxChatChars <= 0 {
		cfg.MaxChatChars = DefaultMaxChatChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg: cfg,
		// one long-lived client; safe for concurrent in-flight calls
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ChatModel returns the model used for conversational turns.
func (c *Client) ChatModel() string {
	if c.cfg.ChatModel != "" {
		return c.cfg.ChatModel
	}
	return c.cfg.Model
}

// MaxChatChars returns the configured chat excerpt budget.
func (c *Client) MaxChatChars() int { return c.cfg.MaxChatChars }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete issues a single completion call. On a structured-mode provider
// rejection it retries once without response_format, with the system prompt
// amended to demand strict JSON; no other retry happens at this layer.
func (c *Client) Complete(ctx context.Context, req GenerationRequest) (GenerationOutcome, error) {
	rid := uuid.New().String()
	start := time.Now()

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	c.logger.Info("llm.complete.start",
		"req_id", rid,
		"model", model,
		"json_mode", req.ExpectJSON,
		"prompt_len", len(req.UserPrompt),
		"history_turns", len(req.History),
	)

	raw, err := c.post(ctx, c.buildBody(model, req, req.ExpectJSON))
	if err != nil && req.ExpectJSON && errors.Is(err, ErrProvider) && !c.cfg.DisableJSONRetry {
		c.logger.Warn("llm.complete.json_mode_rejected", "req_id", rid, "error", err)
		amended := req
		amended.SystemPrompt = req.SystemPrompt + " IMPORTANT: Your response MUST be a single valid JSON object."
		raw, err = c.post(ctx, c.buildBody(model, amended, false))
	}
	if err != nil {
		c.logger.Error("llm.complete.transport_error",
			"req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return GenerationOutcome{}, err
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		c.logger.Error("llm.complete.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return GenerationOutcome{}, fmt.Errorf("%w: decode response: %v", ErrMalformedResponse, err)
	}
	if wire.Error != nil && wire.Error.Message != "" {
		// some providers report errors inside a 200 body
		c.logger.Error("llm.complete.provider_error", "req_id", rid, "message", wire.Error.Message)
		return GenerationOutcome{}, fmt.Errorf("%w: %s", ErrProvider, wire.Error.Message)
	}
	if len(wire.Choices) == 0 {
		c.logger.Error("llm.complete.no_choices", "req_id", rid)
		return GenerationOutcome{}, fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	msg := wire.Choices[0].Message
	content := resolveContent(msg.Content, msg.Reasoning)
	if content.kind == contentEmpty {
		c.logger.Error("llm.complete.empty_content", "req_id", rid)
		return GenerationOutcome{}, fmt.Errorf("%w: empty content in response", ErrMalformedResponse)
	}
	if content.kind == contentAlternate {
		c.logger.Warn("llm.complete.alternate_content_field", "req_id", rid, "chars", len(content.text))
	}

	outcome := GenerationOutcome{
		Usage:   wire.Usage,
		Elapsed: time.Since(start),
		Model:   model,
	}
	if req.ExpectJSON {
		payload, err := parseJSONPayload(content.text)
		if err != nil {
			c.logger.Error("llm.complete.parse_error", "req_id", rid, "error", err)
			return GenerationOutcome{}, err
		}
		outcome.Payload = payload
	} else {
		outcome.Text = content.text
	}

	c.logger.Info("llm.complete.ok",
		"req_id", rid,
		"model", model,
		"total_tokens", outcome.Usage.TotalTokens,
		"elapsed_ms", outcome.Elapsed.Milliseconds(),
	)
	return outcome, nil
}

func (c *Client) buildBody(model string, req GenerationRequest, jsonMode bool) map[string]any {
	msgs := make([]chatMessage, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, t := range req.History {
		msgs = append(msgs, chatMessage{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: req.UserPrompt})

	body := map[string]any{
		"model":       model,
		"temperature": c.cfg.Temperature,
		"messages":    msgs,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if jsonMode {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	return body
}

// post sends the request body and classifies transport failures.
func (c *Client) post(ctx context.Context, body map[string]any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("llm.post.body_close_error", "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRateLimited, resp.StatusCode, snippet(raw))
	case resp.StatusCode/100 != 2:
		return nil, fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, snippet(raw))
	}
	return raw, nil
}

func snippet(b []byte) string {
	const max = 256
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// GenerateSummary produces the document summary payload.
func (c *Client) GenerateSummary(ctx context.Context, text string) (string, GenerationOutcome, error) {
	system, user := summaryPrompts(text, c.cfg.MaxDocChars)
	out, err := c.Complete(ctx, GenerationRequest{
		SystemPrompt: system,
		UserPrompt:   user,
		ExpectJSON:   true,
	})
	if err != nil {
		return "", out, err
	}
	if err := validateTaskPayload(constants.TaskSummary, out.Payload); err != nil {
		return "", out, err
	}
	summary, _ := out.Payload["summary"].(string)
	return summary, out, nil
}

// GenerateFlashcards produces exactly FlashcardCount study cards.
func (c *Client) GenerateFlashcards(ctx context.Context, text string) ([]Flashcard, GenerationOutcome, error) {
	system, user := flashcardsPrompts(text, FlashcardCount, c.cfg.MaxDocChars)
	out, err := c.Complete(ctx, GenerationRequest{
		SystemPrompt: system,
		UserPrompt:   user,
		ExpectJSON:   true,
	})
	if err != nil {
		return nil, out, err
	}
	if err := validateTaskPayload(constants.TaskFlashcards, out.Payload); err != nil {
		return nil, out, err
	}
	var decoded struct {
		Flashcards []Flashcard `json:"flashcards"`
	}
	if err := redecode(out.Payload, &decoded); err != nil {
		return nil, out, err
	}
	return decoded.Flashcards, out, nil
}

// GenerateQuiz produces a quiz with at least MinQuizQuestions questions.
func (c *Client) GenerateQuiz(ctx context.Context, text string) (Quiz, GenerationOutcome, error) {
	system, user := quizPrompts(text, MinQuizQuestions, c.cfg.MaxDocChars)
	out, err := c.Complete(ctx, GenerationRequest{
		SystemPrompt: system,
		UserPrompt:   user,
		ExpectJSON:   true,
	})
	if err != nil {
		return Quiz{}, out, err
	}
	if err := validateTaskPayload(constants.TaskQuiz, out.Payload); err != nil {
		return Quiz{}, out, err
	}
	var decoded struct {
		Quiz Quiz `json:"quiz"`
	}
	if err := redecode(out.Payload, &decoded); err != nil {
		return Quiz{}, out, err
	}
	return decoded.Quiz, out, nil
}

// Ping issues a minimal completion to probe provider connectivity.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Complete(ctx, GenerationRequest{
		UserPrompt: "ping",
		MaxTokens:  1,
	})
	if err != nil && Retryable(err) {
		return err
	}
	// content-shaped failures still prove the provider is reachable
	return nil
}

// redecode converts a validated generic payload into its typed form.
func redecode(payload map[string]any, dst any) error {
	bs, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: re-encode payload: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(bs, dst); err != nil {
		return fmt.Errorf("%w: decode payload: %v", ErrMalformedResponse, err)
	}
	return nil
}
