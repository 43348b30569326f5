// Package slog provides logging decorators built on log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescan"
)

// Ensure LoggingAnalyzer implements pagescan.Analyzer.
var _ pagescan.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging of each analysis.
type LoggingAnalyzer struct {
	next   pagescan.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagescan.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs section counts.
func (a *LoggingAnalyzer) Analyze(html string) (report *pagescan.Report, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if report != nil {
			attrs = append(attrs,
				"title", report.Title,
				"features", len(report.Features),
				"pricing", len(report.Pricing),
				"testimonials", len(report.Testimonials),
				"footer", len(report.Footer),
				"links", len(report.Links),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		a.logger.Debug("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(html)
}
