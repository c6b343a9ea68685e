package browser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Article holds the readable part of a documentation page.
type Article struct {
	Path        string
	Title       string
	Content     string // cleaned HTML
	TextContent string // plain text
	Excerpt     string
}

// Link represents a hyperlink found in the page content.
type Link struct {
	Index int
	Text  string
	Href  string // as written in the page
	// Target is the resolved local document, empty for external links.
	Target string
}

// chromeSelectors match javadoc navigation and scripting that carry no
// documentation text.
var chromeSelectors = strings.Join([]string{
	"script",
	"style",
	"noscript",
	"nav",
	"header.flex-header",
	".top-nav",
	".sub-nav",
	".bottom-nav",
	".skip-nav",
	".nav-list-search",
	".legal-copy",
	"#navbar-top",
	"#navbar-bottom",
}, ", ")

// Extract strips the navigation chrome from a javadoc page and returns
// what remains of its body.
func Extract(path, html string) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	title := strings.TrimSpace(doc.Find("head > title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = DisplayName(path)
	}

	body := doc.Find("body")
	body.Find(chromeSelectors).Remove()

	content, err := body.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", path, err)
	}

	return &Article{
		Path:        path,
		Title:       title,
		Content:     "<body>" + content + "</body>",
		TextContent: strings.TrimSpace(body.Text()),
	}, nil
}

// ExtractReadable runs readability over the page, keeping only the main
// article text. It falls back to Extract when readability finds nothing.
func ExtractReadable(path, html string) (*Article, error) {
	pageURL := &url.URL{Scheme: "file", Path: path}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return Extract(path, html)
	}

	title := article.Title
	if title == "" {
		title = DisplayName(path)
	}

	return &Article{
		Path:        path,
		Title:       title,
		Content:     article.Content,
		TextContent: article.TextContent,
		Excerpt:     article.Excerpt,
	}, nil
}
