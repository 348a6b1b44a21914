// Package markup removes diacritics from the text content of HTML documents
// while leaving tags, attributes, scripts and styles untouched.
package markup

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/juho05/diacritics"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultSelector selects the whole visible document.
const DefaultSelector = "body"

// Compile parses a comma separated group of CSS selectors for RemoveDiacritics.
func Compile(selector string) (cascadia.Matcher, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	return sel, nil
}

// RemoveDiacritics parses the HTML document in r, replaces the mapped characters in
// every text node below the elements matched by sel and writes the document to w.
// It returns the number of text nodes that were changed.
func RemoveDiacritics(r io.Reader, w io.Writer, m *diacritics.Mapper, sel cascadia.Matcher) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("remove diacritics from html: parse: %w", err)
	}
	changed := 0
	visited := make(map[*html.Node]bool)
	for _, n := range cascadia.QueryAll(doc, sel) {
		changed += transform(n, m, visited)
	}
	err = html.Render(w, doc)
	if err != nil {
		return changed, fmt.Errorf("remove diacritics from html: render: %w", err)
	}
	return changed, nil
}

func transform(n *html.Node, m *diacritics.Mapper, visited map[*html.Node]bool) int {
	if visited[n] {
		return 0
	}
	visited[n] = true
	switch n.Type {
	case html.TextNode:
		result := m.RemoveDiacritics(n.Data, nil)
		if result == n.Data {
			return 0
		}
		n.Data = result
		return 1
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return 0
		}
	}
	changed := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		changed += transform(c, m, visited)
	}
	return changed
}
