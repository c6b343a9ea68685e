package docs

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeTree creates files (and their parent directories) under a temp dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func names(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestListChildrenOrder(t *testing.T) {
	root := writeTree(t,
		"zeta.html",
		"Alpha.html",
		"beta/x.html",
		"Gamma/y.html",
		".hidden.html",
		"notes.txt",
	)

	entries, err := ListChildren(root)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.Name)
	}
	want := []string{"beta", "Gamma", "Alpha.html", "notes.txt", "zeta.html"}
	if !slices.Equal(got, want) {
		t.Errorf("ListChildren = %v, want %v", got, want)
	}
	if !entries[0].IsDir || entries[2].IsDir {
		t.Errorf("IsDir flags wrong: %+v", entries)
	}
}

func TestListChildrenMissing(t *testing.T) {
	if _, err := ListChildren(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestBuildTree(t *testing.T) {
	root := writeTree(t,
		"index.html",
		"java/lang/String.html",
		"java/lang/Object.html",
		"java/lang/package-list",
		"resources/style.css",
		"empty/readme.txt",
	)

	tree, err := BuildTree(root)
	if err != nil {
		t.Fatal(err)
	}

	if got := names(tree.Children); !slices.Equal(got, []string{"java", "index"}) {
		t.Errorf("root children = %v, want [java index]", got)
	}
	if Count(tree) != 3 {
		t.Errorf("Count = %d, want 3", Count(tree))
	}

	lang := Find(tree, filepath.Join(root, "java", "lang"))
	if lang == nil {
		t.Fatal("java/lang not found")
	}
	if got := names(lang.Children); !slices.Equal(got, []string{"Object", "String"}) {
		t.Errorf("lang children = %v", got)
	}
	if lang.Depth != 2 || !lang.Children[0].IsDoc || lang.Children[0].Depth != 3 {
		t.Errorf("depths wrong: lang=%d child=%d", lang.Depth, lang.Children[0].Depth)
	}
}

func TestBuildTreeNotADirectory(t *testing.T) {
	root := writeTree(t, "a.html")
	if _, err := BuildTree(filepath.Join(root, "a.html")); err == nil {
		t.Error("Expected error for file root")
	}
	if _, err := BuildTree(filepath.Join(root, "missing")); err == nil {
		t.Error("Expected error for missing root")
	}
}

func TestFlatten(t *testing.T) {
	root := writeTree(t,
		"a/one.html",
		"a/b/two.html",
		"top.html",
	)
	tree, err := BuildTree(root)
	if err != nil {
		t.Fatal(err)
	}

	if got := names(tree.Flatten(nil)); !slices.Equal(got, []string{"a", "top"}) {
		t.Errorf("collapsed = %v", got)
	}

	expanded := map[string]bool{filepath.Join(root, "a"): true}
	if got := names(tree.Flatten(expanded)); !slices.Equal(got, []string{"a", "b", "one", "top"}) {
		t.Errorf("a expanded = %v", got)
	}

	expanded[filepath.Join(root, "a", "b")] = true
	if got := names(tree.Flatten(expanded)); !slices.Equal(got, []string{"a", "b", "two", "one", "top"}) {
		t.Errorf("a and b expanded = %v", got)
	}
}

func TestCountNil(t *testing.T) {
	if Count(nil) != 0 {
		t.Error("Count(nil) should be 0")
	}
	if Find(nil, "x") != nil {
		t.Error("Find(nil) should be nil")
	}
}
