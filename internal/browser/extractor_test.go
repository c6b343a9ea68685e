package browser

import (
	"strings"
	"testing"
)

const javadocPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>String (Java SE 17 &amp; JDK 17)</title>
<script>var pathtoroot = "../../";</script>
<style>body { color: red; }</style>
</head>
<body class="class-declaration-page">
<header role="banner" class="flex-header">
<nav role="navigation"><a href="../../index.html">Overview</a></nav>
</header>
<main role="main">
<h1 title="Class String" class="title">Class String</h1>
<div class="block">The <code>String</code> class represents character strings.</div>
</main>
<footer role="contentinfo"><p class="legal-copy">Copyright</p></footer>
</body>
</html>`

func TestExtract(t *testing.T) {
	article, err := Extract("/docs/java/lang/String.html", javadocPage)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if article.Title != "String (Java SE 17 & JDK 17)" {
		t.Errorf("Title = %q", article.Title)
	}
	if strings.Contains(article.Content, "Overview") {
		t.Error("Navigation chrome should be stripped")
	}
	if strings.Contains(article.Content, "pathtoroot") || strings.Contains(article.Content, "color: red") {
		t.Error("Scripts and styles should be stripped")
	}
	if strings.Contains(article.Content, "Copyright") {
		t.Error("Legal footer should be stripped")
	}
	if !strings.Contains(article.TextContent, "represents character strings") {
		t.Errorf("TextContent = %q", article.TextContent)
	}
	if !strings.HasPrefix(article.Content, "<body>") {
		t.Error("Content should be wrapped in a body element")
	}
}

func TestExtractTitleFallbacks(t *testing.T) {
	article, err := Extract("/docs/pkg/Foo.html", `<html><body><h1>Heading Title</h1></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if article.Title != "Heading Title" {
		t.Errorf("Title = %q, want heading text", article.Title)
	}

	article, err = Extract("/docs/pkg/Foo.html", `<p>no title</p>`)
	if err != nil {
		t.Fatal(err)
	}
	if article.Title != "Foo" {
		t.Errorf("Title = %q, want file name", article.Title)
	}
}

func TestExtractReadableFallsBack(t *testing.T) {
	article, err := ExtractReadable("/docs/Empty.html", `<html><body></body></html>`)
	if err != nil {
		t.Fatalf("ExtractReadable: %v", err)
	}
	if article.Path != "/docs/Empty.html" {
		t.Errorf("Path = %q", article.Path)
	}
	if article.Title != "Empty" {
		t.Errorf("Title = %q", article.Title)
	}
}
