package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Some reasoning models (DeepSeek via OpenRouter) leave the primary content
// field empty and deliver generated text in the reasoning field, terminated
// by a provider sentinel token.
const deepseekSentinel = "<｜begin▁of▁sentence｜>"

type contentKind int

const (
	contentEmpty contentKind = iota
	contentPrimary
	contentAlternate
)

// messageContent is the tagged union decided once at parse time: primary
// content field, alternate (reasoning) field, or empty.
type messageContent struct {
	kind contentKind
	text string
}

// resolveContent picks the content source for a response message.
func resolveContent(content, reasoning string) messageContent {
	if s := strings.TrimSpace(content); s != "" {
		return messageContent{kind: contentPrimary, text: s}
	}
	if s := strings.TrimSpace(reasoning); s != "" {
		if i := strings.Index(s, deepseekSentinel); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		if s != "" {
			return messageContent{kind: contentAlternate, text: s}
		}
	}
	return messageContent{kind: contentEmpty}
}

// stripFences removes Markdown code-fence wrapping (```json ... ``` or
// ``` ... ```) so fenced and bare JSON parse identically.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseJSONPayload decodes structured content into a generic mapping.
// A decode failure is a content error, distinct from transport failures.
func parseJSONPayload(content string) (map[string]any, error) {
	cleaned := stripFences(content)
	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return payload, nil
}
