package browser

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// RenderedPage holds the final terminal-ready output.
type RenderedPage struct {
	Title   string
	URL     string
	Content string // styled terminal text
	Links   []Link
}

// LinkByIndex returns the link numbered idx.
func (p *RenderedPage) LinkByIndex(idx int) (Link, bool) {
	if p == nil {
		return Link{}, false
	}
	for _, l := range p.Links {
		if l.Index == idx {
			return l, true
		}
	}
	return Link{}, false
}

// Renderer turns articles into terminal text. It keeps one glamour
// renderer per width, since building one is expensive.
type Renderer struct {
	style string

	mu    sync.Mutex
	term  *glamour.TermRenderer
	width int
}

// NewRenderer creates a Renderer using the named glamour style
// ("dark", "light", "notty", ...). An empty style selects one automatically.
func NewRenderer(style string) *Renderer {
	return &Renderer{style: style}
}

// Render converts an Article's HTML content into styled terminal text,
// falling back to plain text when markdown rendering fails.
func (r *Renderer) Render(article *Article, width int) *RenderedPage {
	contentWidth := clampWidth(width)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return &RenderedPage{
			Title:   article.Title,
			URL:     article.FinalURL,
			Content: wordwrap.String(article.TextContent, contentWidth),
		}
	}

	conv := &mdConverter{base: parseBase(article.FinalURL)}

	var md strings.Builder
	if article.Title != "" {
		md.WriteString("# " + article.Title + "\n\n")
	}
	if article.Byline != "" {
		md.WriteString("*" + article.Byline + "*\n\n")
	}
	md.WriteString("---\n\n")

	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		md.WriteString(conv.convertNode(s, 0))
	})

	rendered, err := r.glamourize(md.String(), contentWidth)
	if err != nil {
		return RenderFallback(article, width)
	}

	return &RenderedPage{
		Title:   article.Title,
		URL:     article.FinalURL,
		Content: rendered,
		Links:   conv.links,
	}
}

func (r *Renderer) glamourize(markdown string, width int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.term == nil || r.width != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if r.style == "" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(r.style))
		}
		term, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		r.term = term
		r.width = width
	}

	return r.term.Render(markdown)
}

// RenderFallback renders an article as wrapped plain text with numbered
// links and no styling.
func RenderFallback(article *Article, width int) *RenderedPage {
	contentWidth := clampWidth(width)

	page := &RenderedPage{Title: article.Title, URL: article.FinalURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		page.Content = wordwrap.String(article.TextContent, contentWidth)
		return page
	}

	conv := &mdConverter{base: parseBase(article.FinalURL), plain: true}

	var sb strings.Builder
	if article.Title != "" {
		sb.WriteString(strings.ToUpper(article.Title) + "\n")
		sb.WriteString(strings.Repeat("=", min(len(article.Title), contentWidth)) + "\n\n")
	}
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(conv.convertNode(s, 0))
	})

	text := strings.TrimSpace(sb.String())
	if text == "" {
		text = article.TextContent
	}
	page.Content = wordwrap.String(text, contentWidth)
	page.Links = conv.links
	return page
}

func clampWidth(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	return min(width-4, maxWidth)
}

func parseBase(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}

// mdConverter converts goquery HTML nodes to markdown, numbering links as
// it goes. In plain mode the markup characters are left out.
type mdConverter struct {
	base  *url.URL
	plain bool

	linkIndex int
	links     []Link
}

func (c *mdConverter) convertNode(s *goquery.Selection, depth int) string {
	var sb strings.Builder

	switch tag := goquery.NodeName(s); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := strings.TrimSpace(s.Text())
		if text != "" {
			if !c.plain {
				sb.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " ")
			}
			sb.WriteString(text + "\n\n")
		}
	case "p":
		var inline strings.Builder
		c.convertInline(s, &inline)
		if text := strings.TrimSpace(inline.String()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	case "a":
		sb.WriteString(c.convertLink(s) + "\n\n")
	case "ul", "ol":
		sb.WriteString(c.convertList(s, tag == "ol", depth))
	case "blockquote":
		s.Children().Each(func(_ int, child *goquery.Selection) {
			content := c.convertNode(child, 0)
			for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
				sb.WriteString("> " + line + "\n")
			}
		})
		sb.WriteString("\n")
	case "pre":
		sb.WriteString(c.convertCodeBlock(s))
	case "img":
		alt, _ := s.Attr("alt")
		if alt == "" {
			alt = "image"
		}
		sb.WriteString("[" + alt + "]\n\n")
	case "hr":
		sb.WriteString("---\n\n")
	case "table":
		sb.WriteString(c.convertTable(s))
	case "br":
		sb.WriteString("\n")
	case "div", "article", "section", "main", "header", "footer", "figure", "span", "nav", "aside":
		s.Children().Each(func(_ int, child *goquery.Selection) {
			sb.WriteString(c.convertNode(child, depth))
		})
	case "script", "style", "noscript":
	default:
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	}

	return sb.String()
}

func (c *mdConverter) convertInline(s *goquery.Selection, sb *strings.Builder) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		c.inlineNode(child, sb)
	})
}

func (c *mdConverter) inlineNode(n *goquery.Selection, sb *strings.Builder) {
	switch goquery.NodeName(n) {
	case "#text":
		sb.WriteString(n.Text())
	case "a":
		sb.WriteString(c.convertLink(n))
	case "strong", "b":
		c.wrapInline(n, sb, "**")
	case "em", "i":
		c.wrapInline(n, sb, "*")
	case "code":
		c.wrapInline(n, sb, "`")
	case "br":
		sb.WriteString("  \n")
	case "script", "style":
	default:
		c.convertInline(n, sb)
	}
}

func (c *mdConverter) wrapInline(s *goquery.Selection, sb *strings.Builder, mark string) {
	if c.plain {
		mark = ""
	}
	sb.WriteString(mark)
	c.convertInline(s, sb)
	sb.WriteString(mark)
}

func (c *mdConverter) convertLink(s *goquery.Selection) string {
	href, _ := s.Attr("href")
	text := strings.TrimSpace(s.Text())
	href = strings.TrimSpace(href)
	if text == "" {
		text = href
	}
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return text
	}

	target := c.resolve(href)
	c.linkIndex++
	c.links = append(c.links, Link{Index: c.linkIndex, Text: text, URL: target})

	if c.plain {
		return fmt.Sprintf("%s [%d]", text, c.linkIndex)
	}
	return fmt.Sprintf("[%s](%s) **[%d]**", text, target, c.linkIndex)
}

func (c *mdConverter) resolve(href string) string {
	if c.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return c.base.ResolveReference(ref).String()
}

func (c *mdConverter) convertList(s *goquery.Selection, ordered bool, depth int) string {
	var sb strings.Builder
	indent := strings.Repeat("  ", depth)

	s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		prefix := indent + "- "
		if ordered {
			prefix = fmt.Sprintf("%s%d. ", indent, i+1)
		}

		var item strings.Builder
		li.Contents().Each(func(_ int, child *goquery.Selection) {
			if tag := goquery.NodeName(child); tag != "ul" && tag != "ol" {
				c.inlineNode(child, &item)
			}
		})
		sb.WriteString(prefix + strings.TrimSpace(item.String()) + "\n")

		li.ChildrenFiltered("ul, ol").Each(func(_ int, nested *goquery.Selection) {
			sb.WriteString(c.convertList(nested, goquery.NodeName(nested) == "ol", depth+1))
		})
	})

	if depth == 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *mdConverter) convertCodeBlock(s *goquery.Selection) string {
	code := s.Find("code").First()
	text := s.Text()
	lang := ""
	if code.Length() > 0 {
		text = code.Text()
		class, _ := code.Attr("class")
		if _, after, ok := strings.Cut(class, "language-"); ok {
			if fields := strings.Fields(after); len(fields) > 0 {
				lang = fields[0]
			}
		}
	}

	if c.plain {
		return text + "\n\n"
	}
	return "```" + lang + "\n" + strings.TrimRight(text, "\n") + "\n```\n\n"
}

func (c *mdConverter) convertTable(s *goquery.Selection) string {
	var rows [][]string
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	var sb strings.Builder
	for i, row := range rows {
		for len(row) < cols {
			row = append(row, "")
		}
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
		if i == 0 && !c.plain {
			sb.WriteString("|" + strings.Repeat(" --- |", cols) + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
