package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/fs"
	dochttp "github.com/fwojciec/apidoc/http"
	docprom "github.com/fwojciec/apidoc/prometheus"
	"github.com/fwojciec/apidoc/resolve"
	"github.com/fwojciec/apidoc/search"
	docslog "github.com/fwojciec/apidoc/slog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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
	// Catalog directory. When set it takes precedence over --data.
	DataDir string

	// Catalog loaded from the data directory.
	Catalog *fs.Catalog
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("apidoc"),
		kong.Description("Offline API documentation lookup."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'apidoc --help' to see available commands")
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
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dir := m.DataDir
	if dir == "" {
		dir = cli.Data
	}
	m.Catalog = fs.NewCatalog(dir)
	if err := m.Catalog.Open(); err != nil {
		if apidoc.ErrorCode(err) == apidoc.EUNAVAILABLE {
			fmt.Fprintln(stderr, "Hint: Set APIDOC_DATA or --data to the directory containing api_index.json")
		}
		return err
	}

	var pages apidoc.PageSource = m.Catalog
	if cli.Verbose {
		pages = docslog.NewLoggingPageSource(pages, deps.Logger)
	}

	var resolver apidoc.Resolver = &resolve.Resolver{
		Pages:  pages,
		Lookup: m.Catalog.Lookup(),
		Index:  m.Catalog.Index(),
	}
	var searcher apidoc.SearchService = search.NewEngine(m.Catalog.Index())

	if cli.Verbose {
		deps.Logger.Debug("catalog loaded",
			"dir", dir,
			"types", len(m.Catalog.Index().Types),
			"fingerprint", m.Catalog.Fingerprint(),
		)
		resolver = docslog.NewLoggingResolver(resolver, deps.Logger)
		searcher = docslog.NewLoggingSearchService(searcher, deps.Logger)
	}

	if kongCtx.Command() == "serve" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := docprom.NewMetrics(registry)
		resolver = docprom.NewResolver(resolver, metrics)
		searcher = docprom.NewSearchService(searcher, metrics)
		deps.Server = dochttp.NewServer(resolver, searcher, metrics.Handler(), deps.Logger)
		if cli.Serve.Rate > 0 {
			deps.Server.Limiter = dochttp.NewClientLimiter(cli.Serve.Rate, cli.Serve.Burst)
		}
	}

	deps.Resolver = resolver
	deps.Search = searcher

	return kongCtx.Run(deps)
}
