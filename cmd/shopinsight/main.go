package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/goquery"
	sihttp "github.com/fwojciec/shopinsight/http"
	"github.com/fwojciec/shopinsight/scrape"
	"github.com/fwojciec/shopinsight/shopify"
	sislog "github.com/fwojciec/shopinsight/slog"
	"github.com/fwojciec/shopinsight/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	Logger       *slog.Logger
	BrandService shopinsight.BrandService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopinsight"),
		kong.Description("Build brand profiles from Shopify storefronts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shopinsight --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	m.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHOPINSIGHT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BrandService = sislog.NewLoggingBrandService(sqlite.NewBrandService(m.DB), m.Logger)
	deps.Logger = m.Logger
	deps.Brands = m.BrandService
	deps.NewScraper = func(concurrency int) shopinsight.Scraper {
		return newScraper(m.Logger, cli.UserAgent, concurrency)
	}

	return kongCtx.Run(deps)
}

// newScraper returns a scraper that builds a fresh pipeline, and so a fresh
// HTTP session, for every run.
func newScraper(logger *slog.Logger, userAgent string, concurrency int) shopinsight.Scraper {
	factory := scrape.Factory(func() *scrape.Pipeline {
		fetcher := sislog.NewLoggingFetcher(sihttp.NewFetcher(sihttp.WithUserAgent(userAgent)), logger)
		return &scrape.Pipeline{
			Fetcher:     fetcher,
			Catalog:     sislog.NewLoggingCatalogService(shopify.NewCatalogService(fetcher, logger), logger),
			Classifier:  sislog.NewLoggingClassifier(goquery.NewClassifier(), logger),
			Normalizer:  goquery.NewNormalizer(),
			FAQs:        goquery.NewFAQExtractor(),
			Concurrency: concurrency,
		}
	})
	return sislog.NewLoggingScraper(factory, logger)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopinsight.db"
	}
	dir := filepath.Join(home, ".shopinsight")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "shopinsight.db")
}
