package browser

import (
	"path/filepath"
	"testing"
)

func TestResolveLink(t *testing.T) {
	source := filepath.FromSlash("/docs/java/lang/String.html")

	tests := []struct {
		name string
		href string
		want string
	}{
		{"sibling", "Object.html", "/docs/java/lang/Object.html"},
		{"parent package", "../util/List.html", "/docs/java/util/List.html"},
		{"fragment dropped", "Object.html#toString()", "/docs/java/lang/Object.html"},
		{"escaped", "Map.Entry%20Impl.html", "/docs/java/lang/Map.Entry Impl.html"},
		{"absolute", "/other/Index.html", "/other/Index.html"},
		{"file scheme", "file:///docs/index.html", "/docs/index.html"},
		{"pure fragment", "#method-summary", ""},
		{"external", "https://docs.oracle.com/index.html", ""},
		{"mailto", "mailto:someone@example.com", ""},
		{"javascript", "javascript:void(0)", ""},
		{"not a document", "../../stylesheet.css", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			if want != "" {
				want = filepath.FromSlash(want)
			}
			if got := ResolveLink(tt.href, source); got != want {
				t.Errorf("ResolveLink(%q) = %q, want %q", tt.href, got, want)
			}
		})
	}
}

func TestIsExternal(t *testing.T) {
	tests := map[string]bool{
		"https://example.com": true,
		"mailto:a@b.c":        true,
		"Object.html":         false,
		"file:///x.html":      false,
		"#top":                false,
	}
	for href, want := range tests {
		if got := IsExternal(href); got != want {
			t.Errorf("IsExternal(%q) = %v, want %v", href, got, want)
		}
	}
}
