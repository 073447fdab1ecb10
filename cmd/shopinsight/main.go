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
	shopgin "github.com/fwojciec/shopinsight/gin"
	"github.com/fwojciec/shopinsight/goquery"
	shophttp "github.com/fwojciec/shopinsight/http"
	"github.com/fwojciec/shopinsight/insight"
	shopresty "github.com/fwojciec/shopinsight/resty"
	"github.com/fwojciec/shopinsight/rod"
	shopslog "github.com/fwojciec/shopinsight/slog"
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
	// Database path used when --db and SHOPINSIGHT_DB are unset.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher used for storefront pages. Set before calling Run() to
	// replace the HTTP and browser fetchers.
	Fetcher shopinsight.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if cerr := m.DB.Close(); err == nil {
			err = cerr
		}
	}
	return err
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
		kong.Description("Extract brand insights from Shopify storefronts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
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

	deps.Logger = newLogger(stderr, cli.Verbose)

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHOPINSIGHT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	deps.Brands = sqlite.NewBrandService(m.DB)

	// Only commands that reach out to storefronts need a fetcher.
	switch kongCtx.Command() {
	case "fetch <url>", "competitors <url>", "serve":
		if m.Fetcher == nil {
			fetcher, err := newFetcher(cli)
			if err != nil {
				return err
			}
			m.Fetcher = fetcher
		}
		deps.Insights = newBuilder(cli, m.Fetcher, deps.Brands, deps.Logger)
	}

	if kongCtx.Command() == "serve" {
		deps.Server = &shopgin.Server{
			Insights:       deps.Insights,
			Brands:         deps.Brands,
			AllowedOrigins: cli.Serve.Origins,
			Logger:         deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the page fetcher selected by the global flags.
func newFetcher(cli *CLI) (shopinsight.Fetcher, error) {
	if cli.Render {
		fetcher, err := rod.NewFetcher(rod.WithTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}

	opts := []shophttp.Option{shophttp.WithTimeout(cli.Timeout)}
	if cli.RPS > 0 {
		opts = append(opts, shophttp.WithLimiter(shophttp.NewDomainLimiter(cli.RPS)))
	}
	return shophttp.NewFetcher(opts...), nil
}

// newBuilder wires the insight aggregator around fetcher.
func newBuilder(cli *CLI, fetcher shopinsight.Fetcher, brands shopinsight.BrandService, logger *slog.Logger) *insight.Builder {
	logged := shopslog.NewLoggingFetcher(fetcher, logger)
	catalog := shopresty.NewCatalogService(
		shopresty.WithMaxPages(cli.MaxPages),
		shopresty.WithDeadline(cli.CatalogDeadline),
		shopresty.WithTimeout(cli.Timeout),
		shopresty.WithLogger(logger),
	)

	return &insight.Builder{
		Catalog:     shopslog.NewLoggingCatalogService(catalog, logger),
		Scraper:     goquery.NewScraper(goquery.NewPageLoader(logged, logger)),
		Competitors: goquery.NewCompetitorFinder(logged, goquery.WithLogger(logger)),
		Brands:      brands,
		Logger:      logger,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
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
