package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/websummarizer/internal/domain/summary"
	"github.com/yanqian/websummarizer/internal/infra/config"
	apperrors "github.com/yanqian/websummarizer/pkg/errors"
)

func TestRouter_Root(t *testing.T) {
	recorder := performGET(t, "/", newRouterUnderTest(t, &stubService{}, true))
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder.Body.Bytes())
	require.Equal(t, "Website Summarizer API", body["message"])
	require.Equal(t, "/docs", body["docs"])
	require.Equal(t, "/api/v1/health", body["health"])
}

func TestRouter_Health(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
	}{
		{name: "configured", configured: true},
		{name: "unconfigured", configured: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			recorder := performGET(t, "/api/v1/health", newRouterUnderTest(t, &stubService{}, tt.configured))
			require.Equal(t, http.StatusOK, recorder.Code)

			body := decodeBody(t, recorder.Body.Bytes())
			require.Equal(t, "healthy", body["status"])
			require.Equal(t, tt.configured, body["openai_configured"])
		})
	}
}

func TestRouter_SummarizeSuccess(t *testing.T) {
	want := summary.Result{
		URL:       "https://example.com",
		Title:     "Example",
		Summary:   "short summary",
		WordCount: 42,
	}
	svc := &stubService{
		summarizeFn: func(ctx context.Context, req summary.Request) (summary.Result, error) {
			require.Equal(t, "https://example.com", req.URL)
			require.Nil(t, req.SummaryLength)
			return want, nil
		},
	}

	recorder := performPOST(t, "/api/v1/summarize", `{"url":"https://example.com"}`, newRouterUnderTest(t, svc, true))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got summary.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, want, got)
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRouter_SummarizeForwardsLength(t *testing.T) {
	svc := &stubService{
		summarizeFn: func(ctx context.Context, req summary.Request) (summary.Result, error) {
			require.NotNil(t, req.SummaryLength)
			require.Equal(t, 50, *req.SummaryLength)
			return summary.Result{}, nil
		},
	}

	recorder := performPOST(t, "/api/v1/summarize", `{"url":"https://example.com","summary_length":50}`, newRouterUnderTest(t, svc, true))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_SummarizeInvalidJSON(t *testing.T) {
	recorder := performPOST(t, "/api/v1/summarize", `{"url":123}`, newRouterUnderTest(t, &stubService{}, true))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder.Body.Bytes())
	require.NotEmpty(t, body["detail"])
}

func TestRouter_SummarizeErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "invalid input",
			err:        apperrors.Wrap(apperrors.CodeInvalidInput, "invalid url", nil),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid url",
		},
		{
			name:       "not configured",
			err:        apperrors.Wrap(apperrors.CodeNotConfigured, "openai api key not configured", nil),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "not configured",
		},
		{
			name:       "fetch failed",
			err:        apperrors.Wrap(apperrors.CodeFetchFailed, "failed to fetch https://example.com", nil),
			wantStatus: http.StatusBadGateway,
			wantDetail: "failed to fetch",
		},
		{
			name:       "provider failed",
			err:        apperrors.Wrap(apperrors.CodeLLMError, "failed to summarize content", nil),
			wantStatus: http.StatusBadGateway,
			wantDetail: "failed to summarize",
		},
		{
			name:       "unclassified",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "deadline",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				summarizeFn: func(ctx context.Context, req summary.Request) (summary.Result, error) {
					return summary.Result{}, tt.err
				},
			}

			recorder := performPOST(t, "/api/v1/summarize", `{"url":"https://example.com"}`, newRouterUnderTest(t, svc, true))
			require.Equal(t, tt.wantStatus, recorder.Code)

			body := decodeBody(t, recorder.Body.Bytes())
			detail, ok := body["detail"].(string)
			require.True(t, ok, "detail must be a string, body: %v", body)
			require.Contains(t, detail, tt.wantDetail)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, &stubService{}, true)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/summarize", nil)
	recorder := httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func newRouterUnderTest(t *testing.T, svc summary.Service, configured bool) *http.Server {
	t.Helper()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(svc, stubStatus(configured), logger)
	return NewRouter(cfg, handler)
}

func performGET(t *testing.T, path string, server *http.Server) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, req)
	return recorder
}

func performPOST(t *testing.T, path, body string, server *http.Server) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubService struct {
	summarizeFn func(ctx context.Context, req summary.Request) (summary.Result, error)
}

func (s *stubService) Summarize(ctx context.Context, req summary.Request) (summary.Result, error) {
	if s.summarizeFn == nil {
		return summary.Result{}, nil
	}
	return s.summarizeFn(ctx, req)
}

type stubStatus bool

func (s stubStatus) Configured() bool { return bool(s) }
