package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/definer"
	"github.com/fwojciec/definer/bluemonday"
	"github.com/fwojciec/definer/goquery"
	definerhttp "github.com/fwojciec/definer/http"
	"github.com/fwojciec/definer/lookup"
	definerprom "github.com/fwojciec/definer/prometheus"
	definerslog "github.com/fwojciec/definer/slog"
	"github.com/fwojciec/definer/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, used when neither --db nor DEFINER_DB is set.
	DBPath string

	// SQLite database used by the store.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher definer.Fetcher

	// Service is the cache layer; closed after the command runs so pending
	// counter updates land.
	Service *lookup.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Service != nil {
		_ = m.Service.Close()
	}
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
		kong.Name("definer"),
		kong.Description("Aggregate word definitions, etymologies and imagery from several dictionary sites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_db": m.DBPath},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'definer --help' to see available commands")
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

	logger, err := NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	deps.Logger = logger
	deps.Config = cli

	// Imagery is never served unfiltered: a bad keyword list is fatal.
	restrictor, err := definer.OpenRestrictor(cli.Restricted)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DEFINER_RESTRICTED to the path of a {\"blocked_keywords\": [...]} file")
		return fmt.Errorf("failed to load restricted keywords: %w", err)
	}

	var opts []goquery.Option
	if cli.BaseURL != "" {
		opts = append(opts, goquery.WithBaseURL(cli.BaseURL))
	}
	deps.Registry = goquery.NewRegistry(restrictor, opts...)

	fetcher := m.Fetcher
	if fetcher == nil {
		httpOpts := []definerhttp.Option{definerhttp.WithTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			httpOpts = append(httpOpts, definerhttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = definerhttp.NewFetcher(httpOpts...)
	}
	deps.Fetcher = definerslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	// Probing a single source needs neither the database nor the cache.
	if cmd == "probe" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DEFINER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	deps.Store = sqlite.NewStore(m.DB)
	deps.Metrics = definerprom.NewMetrics()

	aggregator, err := m.newAggregator(cli, deps)
	if err != nil {
		return err
	}

	m.Service = &lookup.Service{
		Aggregator: aggregator,
		Store:      deps.Store,
		Staleness:  cli.Staleness,
		Logger:     logger,
	}
	deps.Words = definerslog.NewLoggingWordService(
		definerprom.NewWordService(m.Service, deps.Metrics),
		logger,
	)

	return kongCtx.Run(deps)
}

// newAggregator wires every registered source, instrumented and logged,
// into the two lookup phases.
func (m *Main) newAggregator(cli *CLI, deps *Dependencies) (*lookup.Aggregator, error) {
	source := func(name string) (definer.Source, error) {
		s, err := deps.Registry.Get(name)
		if err != nil {
			return nil, err
		}
		return definerprom.NewSource(definerslog.NewLoggingSource(s, deps.Logger), deps.Metrics), nil
	}

	agg := &lookup.Aggregator{
		Fetcher:   deps.Fetcher,
		Limiter:   lookup.NewHostLimiter(cli.HostRate, 1),
		Sanitizer: bluemonday.NewSanitizer(),
		Timeout:   cli.Timeout,
	}

	type role struct {
		name   string
		target *definer.Source
	}
	roles := []role{
		{"vocabulary", &agg.Primary},
		{"macmillan", &agg.Secondary},
		{"wiktionary", &agg.Wiki},
		{"etymonline", &agg.Etymology},
		{"adobestock", &agg.Imagery},
	}
	if cli.Slang {
		roles = append(roles, role{"urbandictionary", &agg.Slang})
	}

	for _, role := range roles {
		s, err := source(role.name)
		if err != nil {
			return nil, err
		}
		*role.target = s
	}
	return agg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "definer.db"
	}
	dir := filepath.Join(home, ".definer")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "definer.db")
}
