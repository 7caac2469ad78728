package llm

import "context"

type Provider interface {
	// Analyze takes a system instruction and a user prompt and returns
	// the backend's raw analysis text
	Analyze(ctx context.Context, system, user string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model     string
	MaxTokens int64
}

// Response is the result of one model invocation. It is owned by the
// call site and not retained after extraction.
type Response struct {
	Content string
	// Model identifies the backend that produced the content, either a
	// concrete model name or MockModel.
	Model string
	Usage Usage
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxTokens = n
		}
	}
}
