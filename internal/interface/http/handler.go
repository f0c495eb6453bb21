package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/websummarizer/internal/domain/summary"
	apperrors "github.com/yanqian/websummarizer/pkg/errors"
)

// ProviderStatus reports whether the completion provider is usable. The
// health endpoint exposes it without touching the provider itself.
type ProviderStatus interface {
	Configured() bool
}

// Handler wires the HTTP transport to the summary domain.
type Handler struct {
	summarySvc summary.Service
	provider   ProviderStatus
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(summarySvc summary.Service, provider ProviderStatus, logger *slog.Logger) *Handler {
	return &Handler{
		summarySvc: summarySvc,
		provider:   provider,
		logger:     logger.With("component", "http.handler"),
	}
}

// Root serves the static API pointers.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Website Summarizer API",
		"docs":    "/docs",
		"health":  "/api/v1/health",
	})
}

// Health reports liveness and whether a provider credential is present.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"openai_configured": h.provider.Configured(),
	})
}

// Summarize handles POST /api/v1/summarize.
func (h *Handler) Summarize(c *gin.Context) {
	var req summary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.summarySvc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusFor(err), apperrors.CodeOf(err), errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusFor maps domain failure classes to HTTP statuses: configuration
// problems are 503, upstream failures 502, bad input 400.
func statusFor(err error) int {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return http.StatusBadRequest
	case apperrors.IsCode(err, apperrors.CodeNotConfigured):
		return http.StatusServiceUnavailable
	case apperrors.IsCode(err, apperrors.CodeFetchFailed):
		return http.StatusBadGateway
	case apperrors.IsCode(err, apperrors.CodeLLMError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
