package browser

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveLink maps an href found in the document at sourcePath to a local
// document path. It returns "" for external links, pure fragments and
// anything that is not an HTML page.
func ResolveLink(href, sourcePath string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "":
	case "file":
		return documentPath(u.Path)
	default:
		return "" // http, https, mailto, javascript
	}
	if u.Host != "" || u.Path == "" {
		return ""
	}

	if filepath.IsAbs(u.Path) {
		return documentPath(u.Path)
	}
	return documentPath(filepath.Join(filepath.Dir(sourcePath), filepath.FromSlash(u.Path)))
}

func documentPath(p string) string {
	p = filepath.Clean(p)
	if !IsDocument(p) {
		return ""
	}
	return p
}

// IsExternal reports whether href points outside the local docs.
func IsExternal(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Scheme != "file"
}
