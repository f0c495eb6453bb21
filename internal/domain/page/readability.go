package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// readabilityStrategy applies go-readability's article detection. It is more
// robust than the selector list on news-style layouts but changes which text
// is chosen, so it only runs when explicitly enabled.
type readabilityStrategy struct{}

func (readabilityStrategy) Extract(doc *goquery.Document, pageURL string) string {
	rawHTML, err := doc.Html()
	if err != nil {
		return ""
	}
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), parsed)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}
