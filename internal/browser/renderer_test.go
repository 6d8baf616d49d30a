package browser

import (
	"strings"
	"testing"
)

func TestRenderBasicHTML(t *testing.T) {
	article := &Article{
		Title:  "Test Page",
		Byline: "By Author",
		Content: `<h1>Test Page</h1>
<p>Hello world. This is a <strong>bold</strong> and <em>italic</em> test.</p>
<p>Here is a <a href="https://example.com">link to example</a> and <a href="/doc">Go docs</a>.</p>
<ul>
<li>Item one</li>
<li>Item <a href="https://golang.org/pkg">two</a></li>
</ul>
<pre><code class="language-go">func main() {
    fmt.Println("Hello")
}</code></pre>
<blockquote>This is a quote</blockquote>`,
		TextContent: "fallback text",
		FinalURL:    "https://golang.org/blog/post",
	}

	page := NewRenderer("notty").Render(article, 80)

	if len(page.Links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(page.Links))
	}
	if page.Content == "" {
		t.Error("Content should not be empty")
	}
	if page.Title != "Test Page" {
		t.Errorf("Expected title 'Test Page', got '%s'", page.Title)
	}
	if got := page.Links[1].URL; got != "https://golang.org/doc" {
		t.Errorf("relative link resolved to %q, want https://golang.org/doc", got)
	}
	for i, l := range page.Links {
		if l.Index != i+1 {
			t.Errorf("link %d has index %d", i, l.Index)
		}
	}
}

func TestRenderFallbackBasicHTML(t *testing.T) {
	article := &Article{
		Title:       "Fallback Test",
		Content:     `<p>Testing the <a href="https://test.com">fallback renderer</a>.</p><script>alert(1)</script>`,
		TextContent: "fallback text",
	}

	page := RenderFallback(article, 80)

	if len(page.Links) != 1 {
		t.Errorf("Expected 1 link, got %d", len(page.Links))
	}
	if !strings.Contains(page.Content, "fallback renderer [1]") {
		t.Errorf("expected numbered link in content, got:\n%s", page.Content)
	}
	if strings.Contains(page.Content, "alert") {
		t.Errorf("script text leaked into content:\n%s", page.Content)
	}
}

func TestRenderSkipsFragmentAndScriptLinks(t *testing.T) {
	article := &Article{
		Content: `<p><a href="#top">top</a> <a href="javascript:void(0)">js</a> <a href="https://ok.com">ok</a></p>`,
	}

	page := RenderFallback(article, 80)
	if len(page.Links) != 1 || page.Links[0].URL != "https://ok.com" {
		t.Errorf("links = %+v, want only https://ok.com", page.Links)
	}
}

func TestRenderEmptyArticle(t *testing.T) {
	article := &Article{
		Title:       "",
		Content:     "",
		TextContent: "some text",
	}

	page := NewRenderer("notty").Render(article, 80)
	if page == nil {
		t.Fatal("Page should not be nil")
	}

	fallback := RenderFallback(article, 0)
	if fallback.Content != "some text" {
		t.Errorf("fallback content = %q, want text content", fallback.Content)
	}
}

func TestRenderWithTable(t *testing.T) {
	article := &Article{
		Title: "Table Test",
		Content: `<table>
<thead><tr><th>Name</th><th>Value</th></tr></thead>
<tbody>
<tr><td>Foo</td><td>Bar</td></tr>
<tr><td>Baz</td><td>Qux</td></tr>
</tbody>
</table>`,
		TextContent: "table text",
	}

	page := RenderFallback(article, 80)
	for _, want := range []string{"| Name | Value |", "| Foo | Bar |", "| Baz | Qux |"} {
		if !strings.Contains(page.Content, want) {
			t.Errorf("content missing %q:\n%s", want, page.Content)
		}
	}
}

func TestLinkByIndex(t *testing.T) {
	page := &RenderedPage{Links: []Link{{Index: 1, URL: "a"}, {Index: 2, URL: "b"}}}

	if l, ok := page.LinkByIndex(2); !ok || l.URL != "b" {
		t.Errorf("LinkByIndex(2) = %+v, %v", l, ok)
	}
	if _, ok := page.LinkByIndex(3); ok {
		t.Error("LinkByIndex(3) should not be found")
	}

	var nilPage *RenderedPage
	if _, ok := nilPage.LinkByIndex(1); ok {
		t.Error("nil page should have no links")
	}
}
