package pagescan

import "strings"

// Element ids and keywords used by the extraction passes.
var (
	FeatureIDs     = []string{"features", "how-it-works"}
	PricingIDs     = []string{"pricing"}
	TestimonialIDs = []string{"testimonials", "success"}

	// FooterClassKeyword is searched for in the raw class attribute of
	// divs when a page has no <footer> element.
	FooterClassKeyword = "footer"

	// LinkKeywords mark an anchor as important when found in its href or text.
	LinkKeywords = []string{"chrome", "extension", "privacy", "terms", "about", "blog", "support"}
)

// Matcher reports whether a string value satisfies a condition.
type Matcher func(string) bool

// Any matches every value.
func Any(string) bool { return true }

// OneOf matches values exactly equal to one of values. Comparison is case-sensitive.
func OneOf(values ...string) Matcher {
	return func(s string) bool {
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

// ContainsFold matches values containing sub, ignoring case.
func ContainsFold(sub string) Matcher {
	return ContainsAnyFold(sub)
}

// ContainsAnyFold matches values containing at least one of subs, ignoring case.
func ContainsAnyFold(subs ...string) Matcher {
	lowered := make([]string, len(subs))
	for i, sub := range subs {
		lowered[i] = strings.ToLower(sub)
	}
	return func(s string) bool {
		s = strings.ToLower(s)
		for _, sub := range lowered {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}
