package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescan"
	"golang.org/x/net/html"
)

var _ pagescan.Analyzer = (*Analyzer)(nil)

// blockTags are the container elements identified by id.
var blockTags = []string{"section", "div"}

// Analyzer extracts landing page content with id, class and keyword
// heuristics. Each pass scans the whole document independently.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze parses the HTML and runs the title, features, pricing,
// testimonials, footer and links passes in that order.
func (a *Analyzer) Analyze(src string) (*pagescan.Report, error) {
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	return &pagescan.Report{
		Title:        a.title(doc),
		Features:     a.blocksByID(doc, pagescan.FeatureIDs),
		Pricing:      a.pricing(doc),
		Testimonials: a.blocksByID(doc, pagescan.TestimonialIDs),
		Footer:       a.footer(doc),
		Links:        a.links(doc),
	}, nil
}

// title returns the raw text of the first <title>, untrimmed.
func (a *Analyzer) title(doc *Document) string {
	sel := doc.FindFirst([]string{"title"})
	if sel.Length() == 0 {
		return pagescan.DefaultTitle
	}
	return sel.Text()
}

// blocksByID returns the text of every section or div whose id is one of ids.
func (a *Analyzer) blocksByID(doc *Document, ids []string) []string {
	var blocks []string
	doc.FindAll(blockTags, Attr("id", pagescan.OneOf(ids...))).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, TextOf(s, "\n"))
	})
	return blocks
}

// pricing prefers the first pricing block. Without one it reports the
// parent text of every text node mentioning a dollar sign, once per node.
func (a *Analyzer) pricing(doc *Document) []string {
	sel := doc.FindFirst(blockTags, Attr("id", pagescan.OneOf(pagescan.PricingIDs...)))
	if sel.Length() > 0 {
		return []string{TextOf(sel, "\n")}
	}

	var lines []string
	for _, n := range doc.TextNodes(hasDollar) {
		parent := n.Parent
		if parent == nil || parent.Type != html.ElementNode {
			continue
		}
		lines = append(lines, nodeText(parent, ""))
	}
	return lines
}

func hasDollar(s string) bool {
	return strings.Contains(s, "$")
}

// footer prefers the first <footer>. Without one it reports every div
// whose class mentions "footer", nested matches included.
func (a *Analyzer) footer(doc *Document) []string {
	sel := doc.FindFirst([]string{"footer"})
	if sel.Length() > 0 {
		return []string{TextOf(sel, "\n")}
	}

	var blocks []string
	doc.FindAll([]string{"div"}, Attr("class", pagescan.ContainsFold(pagescan.FooterClassKeyword))).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, TextOf(s, "\n"))
	})
	return blocks
}

// links returns anchors whose href or text mentions a link keyword.
// An empty href still counts as present.
func (a *Analyzer) links(doc *Document) []pagescan.Link {
	important := pagescan.ContainsAnyFold(pagescan.LinkKeywords...)

	var links []pagescan.Link
	doc.FindAll([]string{"a"}, Attr("href", pagescan.Any)).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		text := TextOf(s, "")
		if important(href) || important(text) {
			links = append(links, pagescan.Link{Text: text, Href: href})
		}
	})
	return links
}
