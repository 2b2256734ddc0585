package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/definer"
	"github.com/fwojciec/definer/goquery"
	definerprom "github.com/fwojciec/definer/prometheus"
	"github.com/fwojciec/definer/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *CLI

	Fetcher  definer.Fetcher
	Registry *goquery.Registry
	Store    *sqlite.Store
	Words    definer.WordService
	Metrics  *definerprom.Metrics
}

// CLI defines the command-line interface structure for Kong.
// Every global option can also be set from the environment, or from a
// .env file in the working directory.
type CLI struct {
	DB         string        `name:"db" env:"DEFINER_DB" default:"${default_db}" help:"SQLite database path"`
	Restricted string        `env:"DEFINER_RESTRICTED" default:"restricted.json" help:"Restricted keyword list (JSON)"`
	Staleness  time.Duration `env:"DEFINER_STALENESS" default:"168h" help:"Age after which a cached word is rebuilt"`
	Timeout    time.Duration `env:"DEFINER_SOURCE_TIMEOUT" default:"10s" help:"Per-source request timeout"`
	HostRate   float64       `env:"DEFINER_HOST_RATE" default:"1" help:"Requests per second per source host (0 disables); limiter waits do not count against --timeout"`
	Slang      bool          `env:"DEFINER_SLANG" default:"true" negatable:"" help:"Include slang definitions"`
	UserAgent  string        `env:"DEFINER_USER_AGENT" help:"User-Agent sent to sources"`
	BaseURL    string        `env:"DEFINER_BASE_URL" hidden:"" help:"Send every source request to this origin"`
	LogLevel   string        `env:"DEFINER_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat  string        `env:"DEFINER_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format"`

	Serve  ServeCmd  `cmd:"" help:"Serve the lookup API over HTTP"`
	Lookup LookupCmd `cmd:"" help:"Look up a word and print it as JSON"`
	Probe  ProbeCmd  `cmd:"" help:"Run one source against one word"`
	Stats  StatsCmd  `cmd:"" help:"Show lookup and cache statistics for a word"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `env:"DEFINER_ADDR" default:":8000" help:"Listen address"`
	CORSOrigins []string `name:"cors-origin" env:"DEFINER_CORS_ORIGINS" help:"Allowed CORS origin (repeatable)"`
	ClientRate  float64  `env:"DEFINER_CLIENT_RATE" default:"5" help:"Requests per second per client IP (0 disables)"`
	ClientBurst int      `env:"DEFINER_CLIENT_BURST" default:"10" help:"Burst size per client IP"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Word   string `arg:"" help:"Word to look up"`
	Pretty bool   `short:"p" help:"Indent the JSON output"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	Source string `arg:"" help:"Source name (see --list)" optional:""`
	Word   string `arg:"" help:"Word to extract" optional:""`
	File   string `short:"f" type:"existingfile" help:"Extract from a saved HTML file instead of fetching"`
	List   bool   `short:"l" help:"List source names"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Word string `arg:"" help:"Word to report on"`
}
