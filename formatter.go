package pagescan

import "strings"

// Section headers of the text report. Downstream scrapers depend on the
// exact text, so these must not change.
const (
	HeaderFeatures     = "[Features / How it works]"
	HeaderPricing      = "[Pricing]"
	HeaderTestimonials = "[Testimonials]"
	HeaderFooter       = "[Footer]"
	HeaderLinks        = "[Important Links]"
)

// FormatReport renders a report as plain text.
// The source name appears in the banner line. Each section header is
// preceded by a blank line and every block ends with a newline, including
// empty blocks.
func FormatReport(source string, r *Report) string {
	var b strings.Builder

	b.WriteString("--- Analysis of " + source + " ---\n")
	b.WriteString("Title: " + r.Title + "\n")

	writeSection(&b, HeaderFeatures, r.Features)
	writeSection(&b, HeaderPricing, r.Pricing)
	writeSection(&b, HeaderTestimonials, r.Testimonials)
	writeSection(&b, HeaderFooter, r.Footer)

	lines := make([]string, len(r.Links))
	for i, l := range r.Links {
		lines[i] = l.String()
	}
	writeSection(&b, HeaderLinks, lines)

	return b.String()
}

func writeSection(b *strings.Builder, header string, blocks []string) {
	b.WriteString("\n" + header + "\n")
	for _, block := range blocks {
		b.WriteString(block)
		b.WriteByte('\n')
	}
}
