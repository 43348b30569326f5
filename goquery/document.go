// Package goquery implements page analysis on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescan"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page exposing the queries the extraction
// passes need. It is never mutated after Parse.
type Document struct {
	doc *goquery.Document
}

// AttrFilter requires an element to carry the named attribute with a raw
// value accepted by Match.
type AttrFilter struct {
	Name  string
	Match pagescan.Matcher
}

// Attr returns a filter on the named attribute.
func Attr(name string, match pagescan.Matcher) AttrFilter {
	return AttrFilter{Name: name, Match: match}
}

// Parse builds a Document from HTML.
// Scripting is disabled so that <noscript> content is parsed as markup
// rather than kept as raw text.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, pagescan.Errorf(pagescan.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// FindAll returns every element whose tag is one of tags and whose
// attributes satisfy all filters, in document order.
func (d *Document) FindAll(tags []string, filters ...AttrFilter) *goquery.Selection {
	return d.doc.Find(strings.Join(tags, ", ")).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, f := range filters {
			v, ok := s.Attr(f.Name)
			if !ok || !f.Match(v) {
				return false
			}
		}
		return true
	})
}

// FindFirst returns the first element FindAll would return.
// The selection is empty when nothing matches.
func (d *Document) FindFirst(tags []string, filters ...AttrFilter) *goquery.Selection {
	return d.FindAll(tags, filters...).First()
}

// TextNodes returns every text node in the document whose data satisfies
// match, in document order. Script and style content is included.
func (d *Document) TextNodes(match pagescan.Matcher) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && match(n.Data) {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range d.doc.Nodes {
		walk(n)
	}
	return nodes
}

// TextOf returns the visible text of the selected elements.
// Each text run is trimmed, empty runs are dropped and the rest are
// joined with sep.
func TextOf(s *goquery.Selection, sep string) string {
	var runs []string
	for _, n := range s.Nodes {
		collectRuns(n, n, &runs)
	}
	return strings.Join(runs, sep)
}

// nodeText is TextOf for a single node.
func nodeText(n *html.Node, sep string) string {
	var runs []string
	collectRuns(n, n, &runs)
	return strings.Join(runs, sep)
}

func collectRuns(root, n *html.Node, runs *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			*runs = append(*runs, t)
		}
		return
	case html.ElementNode:
		// Non-rendered content only counts when it is the element asked for.
		if n != root && isNonRendered(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRuns(root, c, runs)
	}
}

func isNonRendered(n *html.Node) bool {
	switch n.Data {
	case "script", "style", "template":
		return true
	}
	return false
}
