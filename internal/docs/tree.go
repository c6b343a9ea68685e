// Package docs builds the navigable tree of HTML documentation pages
// under a docs root and searches it.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const docSuffix = ".html"

// Entry is one child of a directory as returned by ListChildren.
type Entry struct {
	Name  string
	Path  string // absolute
	IsDir bool
}

// Node is a directory or a document in the tree.
type Node struct {
	Name     string // display name, .html stripped for documents
	Path     string // absolute
	IsDoc    bool
	Depth    int
	Children []*Node
}

// ListChildren returns the entries of dir, directories first, each group
// sorted case-insensitively. Hidden entries are skipped.
func ListChildren(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, de.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{
			Name:  de.Name(),
			Path:  filepath.Join(dir, de.Name()),
			IsDir: isDir,
		})
	}

	slices.SortStableFunc(entries, compareEntries)
	return entries, nil
}

func compareEntries(a, b Entry) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// BuildTree reads root recursively. Only .html files become documents and
// directories without any document below them are left out.
func BuildTree(root string) (*Node, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening docs root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs root %s is not a directory", abs)
	}

	node := &Node{Name: filepath.Base(abs), Path: abs}
	if err := buildChildren(node, map[string]bool{abs: true}); err != nil {
		return nil, err
	}
	return node, nil
}

func buildChildren(parent *Node, visiting map[string]bool) error {
	entries, err := ListChildren(parent.Path)
	if err != nil {
		// An unreadable subdirectory only hides itself.
		if parent.Depth > 0 {
			return nil
		}
		return err
	}

	for _, e := range entries {
		switch {
		case e.IsDir:
			real, err := filepath.EvalSymlinks(e.Path)
			if err != nil || visiting[real] {
				continue
			}
			child := &Node{Name: e.Name, Path: e.Path, Depth: parent.Depth + 1}
			visiting[real] = true
			err = buildChildren(child, visiting)
			delete(visiting, real)
			if err != nil {
				return err
			}
			if len(child.Children) > 0 {
				parent.Children = append(parent.Children, child)
			}
		case strings.HasSuffix(e.Name, docSuffix):
			parent.Children = append(parent.Children, &Node{
				Name:  strings.TrimSuffix(e.Name, docSuffix),
				Path:  e.Path,
				IsDoc: true,
				Depth: parent.Depth + 1,
			})
		}
	}
	return nil
}

// Count returns the number of documents at or below n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsDoc {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}

// Find returns the node with the given path, or nil.
func Find(n *Node, path string) *Node {
	if n == nil {
		return nil
	}
	if n.Path == path {
		return n
	}
	for _, c := range n.Children {
		if found := Find(c, path); found != nil {
			return found
		}
	}
	return nil
}

// Flatten lists the rows visible in the sidebar: the children of n, and
// recursively the children of every directory whose path is in expanded.
func (n *Node) Flatten(expanded map[string]bool) []*Node {
	var rows []*Node
	var walk func(*Node)
	walk = func(parent *Node) {
		for _, c := range parent.Children {
			rows = append(rows, c)
			if !c.IsDoc && expanded[c.Path] {
				walk(c)
			}
		}
	}
	walk(n)
	return rows
}
