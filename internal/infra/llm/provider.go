// Package llm wraps the OpenAI client behind a lazily initialized provider
// with an explicit "not configured" state, so a missing credential disables
// the summarize capability instead of crashing the process.
package llm

import (
	"context"
	"errors"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured signals that no API key was supplied. Callers must treat
// this differently from a failed provider call.
var ErrNotConfigured = errors.New("openai api key not configured")

// ChatClient is the minimal interface the domain needs to call a chat model.
// Any OpenAI-compatible backend can be adapted to it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Provider hands out a process-lifetime chat client. The client is built on
// first use and never replaced afterwards.
type Provider struct {
	apiKey  string
	baseURL string

	once   sync.Once
	client *openai.Client
}

// NewProvider constructs a Provider. An empty apiKey is legal and yields an
// unconfigured provider.
func NewProvider(apiKey, baseURL string) *Provider {
	return &Provider{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// Configured reports whether a credential is present.
func (p *Provider) Configured() bool {
	return p.apiKey != ""
}

// Client returns the shared chat client, building it on first call.
// It returns ErrNotConfigured when no credential is present.
func (p *Provider) Client() (ChatClient, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}
	p.once.Do(func() {
		cfg := openai.DefaultConfig(p.apiKey)
		if p.baseURL != "" {
			cfg.BaseURL = p.baseURL
		}
		p.client = openai.NewClientWithConfig(cfg)
	})
	return p.client, nil
}
