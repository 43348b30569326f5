package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagescan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	ReadFile func(path string) (string, error)
	Analyzer pagescan.Analyzer
}
