package mock

import "github.com/fwojciec/pagescan"

var _ pagescan.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagescan.Analyzer.
type Analyzer struct {
	AnalyzeFn func(html string) (*pagescan.Report, error)
}

func (a *Analyzer) Analyze(html string) (*pagescan.Report, error) {
	return a.AnalyzeFn(html)
}
