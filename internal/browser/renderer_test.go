package browser

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderBasicHTML(t *testing.T) {
	article := &Article{
		Path:  filepath.FromSlash("/docs/java/lang/String.html"),
		Title: "String",
		Content: `<h1>Class String</h1>
<p>The <code>String</code> class represents <strong>character</strong> strings.
See <a href="Object.html">Object</a> and <a href="https://docs.oracle.com">Oracle</a>.</p>
<ul>
<li>Item one</li>
<li>Item two</li>
</ul>
<pre><code class="language-java">String s = "abc";</code></pre>
<blockquote>This is a quote</blockquote>`,
		TextContent: "fallback text",
	}

	page := Render(article, RenderOptions{Width: 80})
	fmt.Println("=== RENDERED CONTENT ===")
	fmt.Println(page.Content)

	if len(page.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(page.Links))
	}
	if page.Links[0].Target != filepath.FromSlash("/docs/java/lang/Object.html") {
		t.Errorf("Link 1 target = %q", page.Links[0].Target)
	}
	if page.Links[1].Target != "" {
		t.Errorf("External link should have no target, got %q", page.Links[1].Target)
	}
	if page.Content == "" {
		t.Error("Content should not be empty")
	}
	if page.Title != "String" {
		t.Errorf("Expected title 'String', got '%s'", page.Title)
	}
}

func TestRenderSkipsFragmentLinks(t *testing.T) {
	article := &Article{
		Path:    "/docs/A.html",
		Title:   "A",
		Content: `<p><a href="#method-summary">Methods</a> <a href="B.html#x">B</a></p>`,
	}

	page := Render(article, RenderOptions{Width: 80})
	if len(page.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(page.Links))
	}
	if page.Links[0].Index != 1 || page.Links[0].Text != "B" {
		t.Errorf("Unexpected link %+v", page.Links[0])
	}
}

func TestRenderEmptyArticle(t *testing.T) {
	page := Render(&Article{TextContent: "some text"}, RenderOptions{})
	if page == nil {
		t.Fatal("Page should not be nil")
	}
}

func TestRenderDarkAndLight(t *testing.T) {
	article := &Article{Title: "T", Content: `<p>Hello</p>`}

	light := Render(article, RenderOptions{Width: 80})
	dark := Render(article, RenderOptions{Width: 80, Dark: true})
	if !strings.Contains(light.Content, "Hello") || !strings.Contains(dark.Content, "Hello") {
		t.Error("Both styles should contain the paragraph text")
	}
}

func TestRenderWithTable(t *testing.T) {
	article := &Article{
		Path:  "/docs/pkg/package-summary.html",
		Title: "Table Test",
		Content: `<table>
<thead><tr><th>Class</th><th>Description</th></tr></thead>
<tbody>
<tr><td><a href="Foo.html">Foo</a></td><td>Bar</td></tr>
<tr><td>Baz</td><td>Qux</td></tr>
</tbody>
</table>`,
	}

	page := Render(article, RenderOptions{Width: 80})
	if page.Content == "" {
		t.Error("Content should not be empty")
	}
	if len(page.Links) != 1 {
		t.Errorf("Expected link inside table cell to be numbered, got %d links", len(page.Links))
	}
}

func TestRenderDefinitionList(t *testing.T) {
	article := &Article{
		Title:   "Method",
		Content: `<dl><dt>Parameters:</dt><dd><code>index</code> - the index</dd><dt>Returns:</dt><dd>the char</dd></dl>`,
	}

	page := Render(article, RenderOptions{Width: 80})
	for _, want := range []string{"Parameters:", "Returns:", "index"} {
		if !strings.Contains(page.Content, want) {
			t.Errorf("Content missing %q", want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		name string
		opts RenderOptions
		want int
	}{
		{"defaults", RenderOptions{}, 76},
		{"wide terminal caps at max", RenderOptions{Width: 200}, 100},
		{"zoom in narrows", RenderOptions{Width: 200, Zoom: 2}, 50},
		{"zoom out limited by terminal", RenderOptions{Width: 120, Zoom: 0.5}, 116},
		{"zoom clamped", RenderOptions{Width: 200, Zoom: 10}, 33},
		{"never below minimum", RenderOptions{Width: 10}, 20},
		{"custom max", RenderOptions{Width: 200, MaxWidth: 60}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentWidth(tt.opts); got != tt.want {
				t.Errorf("ContentWidth(%+v) = %d, want %d", tt.opts, got, tt.want)
			}
		})
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, MinZoom},
		{1.0, 1.0},
		{2.5, 2.5},
		{9, MaxZoom},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderCollectsCodeBlocks(t *testing.T) {
	article := &Article{
		Path:    "/docs/Example.html",
		Title:   "Example",
		Content: "<body><pre>int a = 1;\n</pre><p>text</p><pre><code>int b = 2;</code></pre></body>",
	}

	page := Render(article, RenderOptions{Width: 80})

	if len(page.CodeBlocks) != 2 {
		t.Fatalf("Expected 2 code blocks, got %d", len(page.CodeBlocks))
	}
	if page.CodeBlocks[0] != "int a = 1;" || page.CodeBlocks[1] != "int b = 2;" {
		t.Errorf("Unexpected code blocks %q", page.CodeBlocks)
	}
}
