package tool_placesearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// GuideFetcher scrapes a travel-guide page for a query and converts it
// to markdown the model can digest. Used only when the maps engine has
// nothing.
type GuideFetcher struct {
	// BaseURL is the guide site; the query is appended as ?q=.
	BaseURL    string
	HTTPClient *http.Client
}

const defaultGuideURL = "https://www.wikivoyage.org/w/index.php?search="

const maxGuideBytes = 512 * 1024

// NewGuideFetcher creates a fetcher against the default guide site.
func NewGuideFetcher() *GuideFetcher {
	return &GuideFetcher{
		BaseURL: defaultGuideURL,
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// Fetch retrieves the guide page for the query as cleaned markdown.
func (g *GuideFetcher) Fetch(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+url.QueryEscape(query), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "tripsmith/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch guide: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("guide request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGuideBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read guide: %v", err)
	}

	markdown, err := htmlToMarkdown(string(body))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("guide page had no usable content")
	}
	return markdown, nil
}

// htmlToMarkdown strips boilerplate markup and converts the remaining
// document to markdown.
func htmlToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse guide HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	cleaned, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize guide HTML: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to convert guide to markdown: %w", err)
	}

	markdown = strings.TrimSpace(markdown)
	markdown = strings.ReplaceAll(markdown, "\n\n\n", "\n\n")
	return markdown, nil
}
