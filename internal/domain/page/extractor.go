// Package page locates the main readable text inside arbitrary HTML.
//
// Extraction is heuristic: an ordered list of strategies is tried and the
// first one producing non-empty text wins. It degrades instead of failing;
// malformed HTML yields an empty (valid) result, never an error.
package page

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noTitleFallback is returned when the document has no <title> element.
const noTitleFallback = "No title found"

// strippedElements never contribute readable content and are removed before
// any strategy runs.
const strippedElements = "script,style,nav,footer,header"

// Strategy produces candidate body text from a parsed document, or an empty
// string when it has nothing to offer.
type Strategy interface {
	Extract(doc *goquery.Document, pageURL string) string
}

// Extractor derives Content from raw HTML using its strategy chain.
type Extractor struct {
	strategies []Strategy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithReadabilityFallback inserts a readability pass between the selector
// strategy and the body fallback.
func WithReadabilityFallback() Option {
	return func(e *Extractor) {
		e.strategies = []Strategy{selectorStrategy{}, readabilityStrategy{}, bodyStrategy{}}
	}
}

// NewExtractor builds an Extractor with the default strategy chain:
// known content selectors first, whole-body text as the fallback.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		strategies: []Strategy{selectorStrategy{}, bodyStrategy{}},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns the page title, normalized body text and
// its word count. The parser is lenient; broken markup is not an error.
func (e *Extractor) Extract(rawHTML, pageURL string) Content {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return Content{URL: pageURL, Title: noTitleFallback}
	}

	doc.Find(strippedElements).Remove()

	title := noTitleFallback
	if sel := doc.Find("title").First(); sel.Length() > 0 {
		title = strings.TrimSpace(sel.Text())
	}

	var body string
	for _, strategy := range e.strategies {
		if text := strategy.Extract(doc, pageURL); text != "" {
			body = text
			break
		}
	}
	body = Normalize(body)

	return Content{
		URL:       pageURL,
		Title:     title,
		Body:      body,
		WordCount: len(strings.Fields(body)),
	}
}

// contentSelectors is tried in order; the first selector matching any element
// decides the candidate region. The order is part of the extraction contract.
var contentSelectors = []string{
	"main",
	"article",
	".content",
	"#content",
	".post-content",
	".entry-content",
}

type selectorStrategy struct{}

func (selectorStrategy) Extract(doc *goquery.Document, _ string) string {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			// First matching element wins even when its text turns out
			// empty; later selectors are not consulted.
			return joinedText(sel)
		}
	}
	return ""
}

type bodyStrategy struct{}

func (bodyStrategy) Extract(doc *goquery.Document, _ string) string {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		return ""
	}
	return joinedText(sel)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses whitespace runs to single spaces and trims the result.
// It is idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// joinedText concatenates the descendant text nodes of sel, separated by
// single spaces, skipping whitespace-only nodes.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
