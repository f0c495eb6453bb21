package main

import (
	"github.com/yanqian/websummarizer/internal/domain/page"
	"github.com/yanqian/websummarizer/internal/domain/summary"
	"github.com/yanqian/websummarizer/internal/infra/config"
	"github.com/yanqian/websummarizer/internal/infra/fetch"
	"github.com/yanqian/websummarizer/internal/infra/llm"
)

func provideSummaryConfig(cfg *config.Config) summary.Config {
	return summary.Config{
		DefaultLength:  cfg.Summary.DefaultLength,
		MaxContentLen:  cfg.Summary.MaxContentLen,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		RequestTimeout: cfg.LLM.RequestTimeout,
	}
}

func provideLLMProvider(cfg *config.Config) *llm.Provider {
	return llm.NewProvider(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideFetcher(cfg *config.Config) *fetch.Fetcher {
	return fetch.NewFetcher(
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
	)
}

func provideExtractor(cfg *config.Config) *page.Extractor {
	if cfg.Extract.ReadabilityFallback {
		return page.NewExtractor(page.WithReadabilityFallback())
	}
	return page.NewExtractor()
}
