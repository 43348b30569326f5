package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescan"
	"github.com/fwojciec/pagescan/fs"
	"github.com/fwojciec/pagescan/goquery"
	pslog "github.com/fwojciec/pagescan/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescan"),
		kong.Description("Print the marketing content of a landing page HTML file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Nothing to analyze
	if len(args) == 0 {
		return nil
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Path == "" {
		return nil
	}

	// Wire dependencies
	var analyzer pagescan.Analyzer = goquery.NewAnalyzer()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		analyzer = pslog.NewLoggingAnalyzer(analyzer, logger)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		ReadFile: fs.ReadFile,
		Analyzer: analyzer,
	}

	cmd := &ScanCmd{Path: cli.Path}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool     `short:"v" help:"Log analysis details to stderr"`
	Path    string   `arg:"" optional:"" help:"HTML file to analyze"`
	Rest    []string `arg:"" optional:"" help:"Additional arguments are ignored"`
}
