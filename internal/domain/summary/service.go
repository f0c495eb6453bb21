// Package summary sequences fetch, extraction and the completion call for a
// single request. Stages run strictly in order with no shared state between
// requests; every stage is a single attempt with no retries.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/yanqian/websummarizer/internal/domain/page"
	"github.com/yanqian/websummarizer/internal/infra/llm"
	apperrors "github.com/yanqian/websummarizer/pkg/errors"
	"github.com/yanqian/websummarizer/pkg/metrics"
)

const systemPrompt = "You are a helpful assistant that creates concise, informative summaries."

// Service exposes website summarization.
type Service interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor derives readable content from raw HTML.
type Extractor interface {
	Extract(rawHTML, pageURL string) page.Content
}

// ClientSource hands out the shared chat client and reports whether a
// provider credential is configured at all.
type ClientSource interface {
	Configured() bool
	Client() (llm.ChatClient, error)
}

type service struct {
	cfg       Config
	fetcher   Fetcher
	extractor Extractor
	clients   ClientSource
	logger    *slog.Logger

	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
}

// NewService is a wire provider for the summary domain.
func NewService(cfg Config, fetcher Fetcher, extractor Extractor, clients ClientSource, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		clients:   clients,
		logger:    logger.With("component", "summary.service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Result, error) {
	pageURL, err := validateURL(req.URL)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid url", err)
	}
	target := s.cfg.DefaultLength
	if req.SummaryLength != nil {
		target = *req.SummaryLength
	}
	if target <= 0 {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "summary_length must be positive", nil)
	}

	// Fail before any network call when no credential is present.
	client, err := s.clients.Client()
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeNotConfigured, "openai api key not configured", err)
	}

	start := time.Now()

	rawHTML, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeFetchFailed, fmt.Sprintf("failed to fetch %s", pageURL), err)
	}

	content := s.extractor.Extract(rawHTML, pageURL)

	summaryText, usage, err := s.complete(ctx, client, content.Body, target)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeLLMError, "failed to summarize content", err)
	}

	attrs := []any{
		"url", pageURL,
		"title", content.Title,
		"source_words", content.WordCount,
		"target_words", target,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if !usage.IsZero() {
		attrs = append(attrs, usage.Attrs()...)
	}
	s.logger.Info("page summarized", attrs...)

	return Result{
		URL:       content.URL,
		Title:     content.Title,
		Summary:   summaryText,
		WordCount: content.WordCount,
	}, nil
}

func (s *service) complete(ctx context.Context, client llm.ChatClient, content string, targetWords int) (string, metrics.TokenUsage, error) {
	if utf8.RuneCountInString(content) > s.cfg.MaxContentLen {
		// Character truncation may split a word; bounding cost wins here.
		content = string([]rune(content)[:s.cfg.MaxContentLen])
	}
	prompt := buildPrompt(content, targetWords)

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug("prompt built", "estimated_prompt_tokens", s.estimateTokens(prompt))
	}

	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// Rough token-to-word buffer for the requested summary length.
		MaxTokens:   targetWords * 2,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", metrics.TokenUsage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", metrics.TokenUsage{}, errors.New("completion returned no choices")
	}

	usage := metrics.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), usage, nil
}

func buildPrompt(content string, targetWords int) string {
	return fmt.Sprintf(
		"Please summarize the following website content in approximately %d words.\nFocus on the main points and key information:\n\n%s",
		targetWords, content,
	)
}

// estimateTokens gives a cl100k_base token count for debug logging. The
// naive MaxTokens budget above stays authoritative for the request itself.
func (s *service) estimateTokens(prompt string) int {
	s.encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			s.logger.Warn("tiktoken encoding unavailable", "error", err)
			return
		}
		s.encoder = enc
	})
	if s.encoder == nil {
		return 0
	}
	return len(s.encoder.Encode(prompt, nil, nil))
}

func validateURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("url host is required")
	}
	return parsed.String(), nil
}
