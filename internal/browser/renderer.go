package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth    = 80
	defaultMaxWidth = 100
	minContentWidth = 20

	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 1.0
	ZoomStep    = 0.1
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	cachedRendererStyle string
	rendererMu          sync.Mutex
)

// RenderOptions controls how a page is laid out in the terminal.
type RenderOptions struct {
	Width    int     // available columns
	MaxWidth int     // column cap at zoom 1.0
	Zoom     float64 // 1.0 is 100%
	Dark     bool
}

// RenderedPage holds the final terminal-ready output.
type RenderedPage struct {
	Path    string
	Title   string
	Content string // styled terminal text
	Links   []Link
	// CodeBlocks holds the raw text of each code sample, labelled [c1], [c2]...
	CodeBlocks []string
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	switch {
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

// ContentWidth returns the wrap width for opts. Zooming in narrows the
// text column the way a larger font would.
func ContentWidth(opts RenderOptions) int {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	w := int(float64(maxWidth) / ClampZoom(zoom))
	if avail := width - 4; w > avail {
		w = avail
	}
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}

// Render converts an Article's HTML content into styled terminal text.
func Render(article *Article, opts RenderOptions) *RenderedPage {
	contentWidth := ContentWidth(opts)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return &RenderedPage{
			Path:    article.Path,
			Title:   article.Title,
			Content: article.TextContent,
		}
	}

	conv := &mdConverter{source: article.Path}

	var md strings.Builder
	if article.Title != "" {
		md.WriteString("# " + article.Title + "\n\n")
	}
	if article.Excerpt != "" {
		md.WriteString("*" + article.Excerpt + "*\n\n")
	}
	md.WriteString("---\n\n")

	doc.Find("body").Children().Each(func(i int, s *goquery.Selection) {
		md.WriteString(conv.convertNode(s, 0))
	})

	style := "light"
	if opts.Dark {
		style = "dark"
	}
	rendered, glamErr := renderWithGlamour(md.String(), contentWidth, style)
	if glamErr != nil {
		rendered = md.String()
	}

	return &RenderedPage{
		Path:       article.Path,
		Title:      article.Title,
		Content:    rendered,
		Links:      conv.links,
		CodeBlocks: conv.code,
	}
}

// renderWithGlamour uses glamour to render markdown into styled terminal output.
func renderWithGlamour(markdown string, width int, style string) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if cachedRenderer == nil || cachedRendererWidth != width || cachedRendererStyle != style {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
		cachedRendererStyle = style
	}

	return cachedRenderer.Render(markdown)
}

// mdConverter converts goquery HTML nodes to markdown, numbering links.
type mdConverter struct {
	source string
	links  []Link
	code   []string
}

func (c *mdConverter) convertNode(s *goquery.Selection, depth int) string {
	var sb strings.Builder

	switch tag := goquery.NodeName(s); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		sb.WriteString(c.convertHeading(s, int(tag[1]-'0')))
	case "p":
		sb.WriteString(c.convertParagraph(s))
	case "a":
		sb.WriteString(c.convertLink(s) + "\n\n")
	case "ul":
		sb.WriteString(c.convertList(s, false, depth))
	case "ol":
		sb.WriteString(c.convertList(s, true, depth))
	case "dl":
		sb.WriteString(c.convertDefinitions(s))
	case "blockquote":
		sb.WriteString(c.convertBlockquote(s))
	case "pre":
		sb.WriteString(c.convertCodeBlock(s))
	case "code":
		sb.WriteString("`" + s.Text() + "`\n\n")
	case "hr":
		sb.WriteString("\n---\n\n")
	case "table":
		sb.WriteString(c.convertTable(s))
	case "br":
		sb.WriteString("  \n")
	case "div", "article", "section", "main", "header", "footer", "figure", "span", "details":
		// Containers with direct text (javadoc .block divs) are paragraphs.
		if s.Children().Length() == 0 || hasDirectText(s) {
			sb.WriteString(c.convertParagraph(s))
			s.ChildrenFiltered("ul, ol, dl, pre, table").Each(func(i int, child *goquery.Selection) {
				sb.WriteString(c.convertNode(child, depth))
			})
			return sb.String()
		}
		s.Children().Each(func(i int, child *goquery.Selection) {
			sb.WriteString(c.convertNode(child, depth))
		})
	case "summary", "caption":
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString("**" + text + "**\n\n")
		}
	default:
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

func hasDirectText(s *goquery.Selection) bool {
	found := false
	s.Contents().EachWithBreak(func(i int, child *goquery.Selection) bool {
		if goquery.NodeName(child) == "#text" && strings.TrimSpace(child.Text()) != "" {
			found = true
			return false
		}
		return true
	})
	return found
}

func (c *mdConverter) convertHeading(s *goquery.Selection, level int) string {
	text := strings.Join(strings.Fields(s.Text()), " ")
	if text == "" {
		return ""
	}
	return strings.Repeat("#", level) + " " + text + "\n\n"
}

func (c *mdConverter) convertParagraph(s *goquery.Selection) string {
	var sb strings.Builder
	c.convertInlineChildren(s, &sb)
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return ""
	}
	return text + "\n\n"
}

func (c *mdConverter) convertInlineChildren(s *goquery.Selection, sb *strings.Builder) {
	s.Contents().Each(func(i int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "#text":
			sb.WriteString(child.Text())
		case "a":
			sb.WriteString(c.convertLink(child))
		case "strong", "b":
			sb.WriteString("**")
			c.convertInlineChildren(child, sb)
			sb.WriteString("**")
		case "em", "i", "var":
			sb.WriteString("*")
			c.convertInlineChildren(child, sb)
			sb.WriteString("*")
		case "code", "tt":
			// Javadoc wraps links in <code>; keep the link numbering.
			if child.Find("a[href]").Length() > 0 {
				c.convertInlineChildren(child, sb)
			} else {
				sb.WriteString("`" + child.Text() + "`")
			}
		case "br":
			sb.WriteString("  \n")
		case "ul", "ol", "dl", "pre", "table":
			// Block content is handled by the caller.
		default:
			c.convertInlineChildren(child, sb)
		}
	})
}

func (c *mdConverter) convertLink(s *goquery.Selection) string {
	href, exists := s.Attr("href")
	text := strings.Join(strings.Fields(s.Text()), " ")
	if text == "" {
		text = href
	}

	target := ResolveLink(href, c.source)
	if !exists || (target == "" && !IsExternal(href)) {
		return text
	}

	index := len(c.links) + 1
	c.links = append(c.links, Link{
		Index:  index,
		Text:   text,
		Href:   href,
		Target: target,
	})

	return fmt.Sprintf("%s **[%d]**", text, index)
}

func (c *mdConverter) convertList(s *goquery.Selection, ordered bool, depth int) string {
	var sb strings.Builder
	indent := strings.Repeat("  ", depth)

	s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		prefix := indent + "- "
		if ordered {
			prefix = fmt.Sprintf("%s%d. ", indent, i+1)
		}

		var itemSb strings.Builder
		c.convertInlineChildren(li, &itemSb)
		sb.WriteString(prefix + strings.TrimSpace(itemSb.String()) + "\n")

		li.Children().Each(func(j int, child *goquery.Selection) {
			switch goquery.NodeName(child) {
			case "ul":
				sb.WriteString(c.convertList(child, false, depth+1))
			case "ol":
				sb.WriteString(c.convertList(child, true, depth+1))
			}
		})
	})

	return sb.String() + "\n"
}

// convertDefinitions renders javadoc tag lists (Parameters:, Returns:, ...).
func (c *mdConverter) convertDefinitions(s *goquery.Selection) string {
	var sb strings.Builder
	s.Children().Each(func(i int, child *goquery.Selection) {
		var item strings.Builder
		c.convertInlineChildren(child, &item)
		text := strings.TrimSpace(item.String())
		if text == "" {
			return
		}
		switch goquery.NodeName(child) {
		case "dt":
			sb.WriteString("**" + text + "**\n")
		default:
			sb.WriteString("  " + text + "\n")
		}
	})
	return sb.String() + "\n"
}

func (c *mdConverter) convertBlockquote(s *goquery.Selection) string {
	var sb strings.Builder
	s.Children().Each(func(i int, child *goquery.Selection) {
		content := c.convertNode(child, 0)
		for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
			sb.WriteString("> " + line + "\n")
		}
	})
	sb.WriteString("\n")
	return sb.String()
}

func (c *mdConverter) convertCodeBlock(s *goquery.Selection) string {
	code := s.Find("code")

	lang := ""
	if class, _ := code.Attr("class"); strings.Contains(class, "language-") {
		if fields := strings.Fields(strings.SplitN(class, "language-", 2)[1]); len(fields) > 0 {
			lang = fields[0]
		}
	}
	if lang == "" && s.HasClass("java") {
		lang = "java"
	}

	text := s.Text()
	if code.Length() > 0 {
		text = code.Text()
	}

	text = strings.TrimRight(text, "\n")
	c.code = append(c.code, text)

	return fmt.Sprintf("*[c%d]*\n\n```%s\n%s\n```\n\n", len(c.code), lang, text)
}

func (c *mdConverter) convertTable(s *goquery.Selection) string {
	var headers []string
	s.Find("thead th, thead td").Each(func(i int, th *goquery.Selection) {
		headers = append(headers, c.cellText(th))
	})

	var rows [][]string
	s.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if tr.ParentsFiltered("thead").Length() > 0 {
			return
		}
		var row []string
		tr.Find("td, th").Each(func(j int, td *goquery.Selection) {
			row = append(row, c.cellText(td))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	// Without a thead the first row is the header.
	if len(headers) == 0 && len(rows) > 0 {
		headers, rows = rows[0], rows[1:]
	}

	numCols := len(headers)
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	if numCols == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(pad(headers, numCols), " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", numCols) + "\n")
	for _, row := range rows {
		sb.WriteString("| " + strings.Join(pad(row, numCols), " | ") + " |\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (c *mdConverter) cellText(s *goquery.Selection) string {
	var sb strings.Builder
	c.convertInlineChildren(s, &sb)
	return strings.ReplaceAll(strings.Join(strings.Fields(sb.String()), " "), "|", `\|`)
}

func pad(cells []string, n int) []string {
	for len(cells) < n {
		cells = append(cells, "")
	}
	return cells
}
