//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/websummarizer/internal/bootstrap"
	"github.com/yanqian/websummarizer/internal/domain/page"
	"github.com/yanqian/websummarizer/internal/domain/summary"
	"github.com/yanqian/websummarizer/internal/infra/config"
	"github.com/yanqian/websummarizer/internal/infra/fetch"
	"github.com/yanqian/websummarizer/internal/infra/llm"
	httpiface "github.com/yanqian/websummarizer/internal/interface/http"
	"github.com/yanqian/websummarizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSummaryConfig,
		provideLLMProvider,
		provideFetcher,
		provideExtractor,
		summary.NewService,
		wire.Bind(new(summary.Fetcher), new(*fetch.Fetcher)),
		wire.Bind(new(summary.Extractor), new(*page.Extractor)),
		wire.Bind(new(summary.ClientSource), new(*llm.Provider)),
		wire.Bind(new(httpiface.ProviderStatus), new(*llm.Provider)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
