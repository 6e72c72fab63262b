package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	perr "voicejournal/internal/platform/errors"
)

// Completion is the normalized shape of a chat completion response.
// Choices may be empty, callers must handle absence
type Completion struct {
	Choices []string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system and user prompt to the chat completions endpoint.
// maxTokens bounds the generated response length, <= 0 leaves it unset
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int) (Completion, error) {
	body := chatRequest{
		Model: c.cfg.CompletionModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if maxTokens > 0 {
		body.MaxTokens = maxTokens
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return Completion{}, perr.Wrap(err, perr.ErrorCodeUnknown, "openai: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/chat/completions"), bytes.NewReader(raw))
	if err != nil {
		return Completion{}, perr.Wrap(err, perr.ErrorCodeUnknown, "openai: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	var out chatResponse
	if err := c.do(ctx, req, &out); err != nil {
		return Completion{}, err
	}

	comp := Completion{Choices: make([]string, 0, len(out.Choices))}
	for _, ch := range out.Choices {
		comp.Choices = append(comp.Choices, ch.Message.Content)
	}
	return comp, nil
}
