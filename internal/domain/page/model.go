package page

// Content is the readable text extracted from a fetched page. It is built
// once per request and never mutated afterwards.
type Content struct {
	URL       string
	Title     string
	Body      string
	WordCount int
}
