package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/evidenceml/blindspot/internal/config"
)

// Backend identifiers reported in response metadata and logs.
const (
	BackendLive = "live"
	BackendMock = "mock"
)

// Client selects a backend once at construction and never surfaces
// external-call failures to its caller: any live failure logs and
// falls through to the mock response for that call, so an analysis
// run always completes with some structured answer.
type Client struct {
	live    Provider
	mock    *Mock
	backend string
	timeout time.Duration
}

// New decides live vs mock from the configured credential. A missing
// key or a failed live initialization demotes the client to mock mode
// with a warning; it is never fatal.
func New(cfg *config.OpenAIConfig) *Client {
	c := &Client{
		mock:    NewMock(cfg.MockDelay),
		backend: BackendMock,
		timeout: cfg.Timeout,
	}

	if cfg.APIKey == "" {
		slog.Warn("no OpenAI API key configured, using mock model backend", "model", MockModel)
		return c
	}

	live, err := NewOpenAI(cfg)
	if err != nil {
		slog.Warn("failed to initialize OpenAI backend, using mock model backend", "error", err)
		return c
	}

	c.live = live
	c.backend = BackendLive
	slog.Info("model backend initialized", "backend", BackendLive, "model", cfg.Model)
	return c
}

// Backend reports which backend the client selected at construction.
func (c *Client) Backend() string {
	return c.backend
}

// Invoke runs the prompt against the selected backend. The returned
// response is always well-formed.
func (c *Client) Invoke(ctx context.Context, system, user string, opts ...Option) *Response {
	slog.Info("invoking model backend", "backend", c.backend, "prompt_chars", len(user))

	if c.live != nil {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.live.Analyze(callCtx, system, user, opts...)
		if err == nil {
			slog.Info("model call completed", "model", resp.Model, "tokens", resp.Usage.TotalTokens)
			return resp
		}
		slog.Error("live model call failed, falling back to mock response", "error", err)
	}

	resp, _ := c.mock.Analyze(ctx, system, user, opts...)
	slog.Info("model call completed", "model", resp.Model, "tokens", resp.Usage.TotalTokens)
	return resp
}
