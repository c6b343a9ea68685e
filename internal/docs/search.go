package docs

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Search returns the documents under root whose file name contains query,
// ignoring case. A query with glob metacharacters is matched as a
// doublestar pattern against the path relative to root and the file name.
// Results keep tree order and are returned flat with Depth 0.
func Search(root *Node, query string) []*Node {
	query = strings.TrimSpace(query)
	if root == nil || query == "" {
		return nil
	}

	match := containsMatcher(query)
	if isGlob(query) {
		match = globMatcher(root.Path, query)
	}

	var results []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if !c.IsDoc {
				walk(c)
				continue
			}
			if match(c) {
				results = append(results, &Node{
					Name:  c.Name,
					Path:  c.Path,
					IsDoc: true,
				})
			}
		}
	}
	walk(root)
	return results
}

func isGlob(query string) bool {
	return strings.ContainsAny(query, "*?[{")
}

func containsMatcher(query string) func(*Node) bool {
	q := strings.ToLower(query)
	return func(n *Node) bool {
		return strings.Contains(strings.ToLower(filepath.Base(n.Path)), q)
	}
}

func globMatcher(rootPath, pattern string) func(*Node) bool {
	pattern = strings.ToLower(filepath.ToSlash(pattern))
	return func(n *Node) bool {
		rel, err := filepath.Rel(rootPath, n.Path)
		if err != nil {
			rel = n.Path
		}
		rel = strings.ToLower(filepath.ToSlash(rel))

		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		ok, err := doublestar.Match(pattern, strings.ToLower(filepath.Base(n.Path)))
		return err == nil && ok
	}
}
