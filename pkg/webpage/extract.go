package webpage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Content length is capped so downstream analyzers get a bounded prompt.
const maxContentLength = 5000

// Content holds what could be extracted from a web page.
type Content struct {
	Title       string
	Description string
	Body        string
	ContentType string // "webpage" when fetched, "external" when falling back
	URL         string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Fetch downloads the page at rawURL and extracts its title, meta description
// and leading paragraph text. Unreachable or unparseable pages degrade to a
// domain-derived title and description rather than an error; the suggestion
// capability must keep working for URLs it cannot scrape.
func Fetch(ctx context.Context, client *http.Client, rawURL string) *Content {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fallback(rawURL)
	}
	req.Header.Set("User-Agent", "smartlinks/1.0 (+link metadata fetcher)")

	resp, err := client.Do(req)
	if err != nil {
		return fallback(rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fallback(rawURL)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return fallback(rawURL)
	}

	content := &Content{ContentType: "webpage", URL: rawURL}
	var paragraphs []string
	extract(doc, content, &paragraphs)

	body := whitespaceRe.ReplaceAllString(strings.Join(paragraphs, " "), " ")
	body = strings.TrimSpace(body)
	if len(body) > maxContentLength {
		body = body[:maxContentLength] + "..."
	}
	content.Body = body

	if content.Title == "" && content.Description == "" && content.Body == "" {
		return fallback(rawURL)
	}
	return content
}

// extract walks the DOM picking up <title>, the description meta tag and the
// first three paragraphs.
func extract(n *html.Node, content *Content, paragraphs *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if content.Title == "" {
				content.Title = strings.TrimSpace(textOf(n))
			}
		case "meta":
			var name, value string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					name = strings.ToLower(attr.Val)
				case "content":
					value = attr.Val
				}
			}
			if name == "description" && content.Description == "" {
				content.Description = strings.TrimSpace(value)
			}
		case "p":
			if len(*paragraphs) < 3 {
				if text := strings.TrimSpace(textOf(n)); text != "" {
					*paragraphs = append(*paragraphs, text)
				}
			}
		case "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extract(c, content, paragraphs)
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// fallback builds minimal content from the URL's host for pages we cannot
// scrape.
func fallback(rawURL string) *Content {
	domain := Domain(rawURL)
	title := strings.NewReplacer(".com", "", ".", " ").Replace(domain)
	title = cases.Title(language.English).String(title)

	return &Content{
		Title:       title,
		Description: fmt.Sprintf("Link to %s", domain),
		Body:        fmt.Sprintf("External link to %s", domain),
		ContentType: "external",
		URL:         rawURL,
	}
}

// Domain returns the host of rawURL without a leading "www.".
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}
