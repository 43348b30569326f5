package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagescan"
)

// ScanCmd analyzes one HTML file and prints the report.
type ScanCmd struct {
	Path string
}

// Run executes the scan command.
// Nothing is written to stdout unless reading and parsing succeed.
func (c *ScanCmd) Run(deps *Dependencies) error {
	html, err := deps.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescan.ErrorMessage(err))
		return err
	}

	report, err := deps.Analyzer.Analyze(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescan.ErrorMessage(err))
		return err
	}

	_, err = io.WriteString(deps.Stdout, pagescan.FormatReport(c.Path, report))
	return err
}
