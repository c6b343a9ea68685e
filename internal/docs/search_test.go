package docs

import (
	"slices"
	"testing"
)

func TestSearch(t *testing.T) {
	root := writeTree(t,
		"java/lang/String.html",
		"java/lang/StringBuilder.html",
		"java/util/List.html",
		"java/util/ArrayList.html",
		"index.html",
	)
	tree, err := BuildTree(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"string", []string{"String", "StringBuilder"}},
		{"LIST", []string{"ArrayList", "List"}},
		{"  list  ", []string{"ArrayList", "List"}},
		{"nothing", nil},
		{"", nil},
		{"java/util/*.html", []string{"ArrayList", "List"}},
		{"**/string*.html", []string{"String", "StringBuilder"}},
		{"?ndex.html", []string{"index"}},
		{"{list,index}.html", []string{"List", "index"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := Search(tree, tt.query)
			if got := names(results); !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for _, r := range results {
				if !r.IsDoc || r.Depth != 0 {
					t.Errorf("result %+v should be a flat document", r)
				}
			}
		})
	}
}

func TestSearchNilRoot(t *testing.T) {
	if got := Search(nil, "x"); got != nil {
		t.Errorf("Search(nil) = %v", got)
	}
}
