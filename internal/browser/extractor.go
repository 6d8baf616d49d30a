package browser

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// Article holds the extracted readable content from a page.
type Article struct {
	Title       string
	Byline      string
	Content     string // sanitized HTML
	TextContent string // plain text
	Excerpt     string
	SiteName    string
	URL         string
	FinalURL    string
	FetchTime   time.Duration
}

// Link represents a hyperlink found in the page content.
type Link struct {
	Index int
	Text  string
	URL   string
}

var sanitizer = bluemonday.UGCPolicy()

// Extract takes a FetchResult and extracts the readable article content.
// Non-HTML bodies are shown as preformatted text.
func Extract(result *FetchResult) (*Article, error) {
	if !IsHTML(result.ContentType) {
		return &Article{
			Title:       result.FinalURL,
			Content:     "<pre>" + html.EscapeString(string(result.Body)) + "</pre>",
			TextContent: string(result.Body),
			URL:         result.URL,
			FinalURL:    result.FinalURL,
			FetchTime:   result.Duration,
		}, nil
	}

	parsedURL, err := url.Parse(result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(result.Body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extracting article: %w", err)
	}

	title := article.Title
	if title == "" {
		title = result.FinalURL
	}

	return &Article{
		Title:       title,
		Byline:      article.Byline,
		Content:     sanitizer.Sanitize(article.Content),
		TextContent: article.TextContent,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		URL:         result.URL,
		FinalURL:    result.FinalURL,
		FetchTime:   result.Duration,
	}, nil
}
