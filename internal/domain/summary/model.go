package summary

import "time"

// Config configures the summary pipeline.
type Config struct {
	// DefaultLength is the target word count used when the caller omits one.
	DefaultLength int
	// MaxContentLen caps the extracted content (in characters) fed to the model.
	MaxContentLen int
	Model         string
	Temperature   float32
	// RequestTimeout bounds the provider call.
	RequestTimeout time.Duration
}

// Request is the incoming summarization payload.
type Request struct {
	URL string `json:"url"`
	// SummaryLength is the desired summary length in words. Nil means the
	// configured default.
	SummaryLength *int `json:"summary_length,omitempty"`
}

// Result is the wire response for a successful summarization.
//
// WordCount counts the extracted source content, not the summary. That
// matches the behavior clients already depend on.
type Result struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
}
