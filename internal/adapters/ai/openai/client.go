// Package openai is a thin HTTP client for the two OpenAI endpoints the
// service consumes: audio transcription and chat completion
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voicejournal/internal/platform/config"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
)

// Config holds connectivity and model choices
type Config struct {
	APIKey             string
	BaseURL            string
	CompletionModel    string
	TranscriptionModel string
	Timeout            time.Duration
}

// FromConf reads client config from the environment with sane defaults
// prefix is typically OPENAI_
func FromConf(cfg config.Conf) Config {
	return Config{
		APIKey:             cfg.MustString("API_KEY"),
		BaseURL:            strings.TrimRight(cfg.MayString("BASE_URL", "https://api.openai.com"), "/"),
		CompletionModel:    cfg.MayString("MODEL", "gpt-4"),
		TranscriptionModel: cfg.MayString("TRANSCRIPTION_MODEL", "whisper-1"),
		Timeout:            cfg.MayDuration("TIMEOUT", 60*time.Second),
	}
}

// Client talks to the OpenAI HTTP API
type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

// New constructs a Client. The API key must be non empty
func New(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, perr.InvalidArgf("openai: missing api key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("component", "openai").Logger(),
	}, nil
}

// do sends a prepared request and decodes the JSON response into out.
// Non-2xx statuses and transport failures surface as collaborator errors
func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "openai: request cancelled")
		}
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "openai: request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("openai: close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "openai: read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("body", truncate(string(body), 512)).
			Msg("openai: non-2xx response")
		return perr.Collaboratorf("openai: status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "openai: decode response")
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s%s", c.cfg.BaseURL, path)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
