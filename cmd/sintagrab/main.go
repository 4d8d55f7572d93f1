package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"sintagrab"
	"sintagrab/crawl"
	"sintagrab/csv"
	"sintagrab/goquery"
	"sintagrab/http"
	sintaslog "sintagrab/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `arg:"" required:"" help:"Profile URL (any listing page of the profile is fine)"`
	Cookies  string        `short:"c" optional:"" type:"existingfile" help:"Cookies JSON exported from the browser (bare array or {\"cookies\":[...]})"`
	MaxPages int           `default:"100" help:"Safety cap on pages fetched"`
	Delay    time.Duration `default:"600ms" help:"Pause between page fetches"`
	Timeout  time.Duration `short:"t" default:"25s" help:"Per-request timeout"`
	Output   string        `short:"o" default:"sinta_export.csv" help:"Output path (semicolon-delimited CSV)"`
	Verbose  bool          `short:"v" help:"Log each fetch to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sintagrab"),
		kong.Description("Extract publication records from a SINTA author profile into semicolon-delimited CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Validate all configuration before any network activity.
	base, err := crawl.NormalizeProfileURL(cli.URL)
	if err != nil {
		return err
	}

	var cookies []sintagrab.Cookie
	if cli.Cookies != "" {
		data, err := os.ReadFile(cli.Cookies)
		if err != nil {
			return fmt.Errorf("read cookies: %w", err)
		}
		if cookies, err = sintagrab.ParseCookies(data); err != nil {
			return err
		}
	}

	httpFetcher, err := http.NewFetcher(
		http.WithTimeout(cli.Timeout),
		http.WithCookies(cookies, base),
	)
	if err != nil {
		return err
	}
	defer httpFetcher.Close()

	var fetcher sintagrab.Fetcher = httpFetcher
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = sintaslog.NewLoggingFetcher(httpFetcher, logger)
	}

	fmt.Fprintf(stdout, "Normalized URL: %s\n", base)

	crawler := &crawl.Crawler{
		Fetcher:  fetcher,
		Parser:   goquery.NewParser(),
		MaxPages: cli.MaxPages,
		Pacer:    crawl.NewDelayPacer(cli.Delay),
	}

	result, runErr := crawler.Run(ctx, base, func(ev crawl.PageEvent) {
		fmt.Fprintf(stdout, "page %d: %d rows | HTTP %d\n", ev.Page, ev.Rows, ev.Status)
	})
	if result == nil {
		return runErr
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(stdout, "No data extracted.")
		if runErr != nil {
			return runErr
		}
		fmt.Fprintf(stdout, "Stopped: %s\n", result.Reason)
		return nil
	}

	// A transport failure mid-run still exports the rows gathered so far.
	if err := csv.WriteFile(cli.Output, result.Records); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(stdout, "Done. Rows before dedup: %d | After dedup: %d\n", result.RowsBefore, result.RowsAfter)
	fmt.Fprintf(stdout, "Stopped: %s\n", result.Reason)
	fmt.Fprintf(stdout, "Wrote %s\n", cli.Output)

	return runErr
}
