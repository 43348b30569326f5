package pagescan

// DefaultTitle is reported when a page has no <title> element.
const DefaultTitle = "No Title"

// Report holds the marketing content extracted from a landing page.
// Each block is the text of one matching element; nothing is deduplicated.
type Report struct {
	// Title is the raw text of the <title> element, or DefaultTitle.
	Title string

	Features     []string
	Pricing      []string
	Testimonials []string
	Footer       []string

	// Links are the anchors considered important, in document order.
	Links []Link
}

// Link is an anchor kept by the important links pass.
type Link struct {
	Text string
	Href string
}

// String renders the link as "<text>: <href>".
func (l Link) String() string {
	return l.Text + ": " + l.Href
}

// Analyzer extracts a Report from an HTML page.
type Analyzer interface {
	// Analyze parses the HTML and runs every extraction pass against it.
	// Malformed markup is not an error; the parser recovers from it.
	Analyze(html string) (*Report, error)
}
