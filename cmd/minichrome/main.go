package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vidyasagar/minichrome/internal/app"
	"github.com/vidyasagar/minichrome/internal/browser"
	"github.com/vidyasagar/minichrome/internal/logging"
	"github.com/vidyasagar/minichrome/internal/storage"
	"github.com/vidyasagar/minichrome/internal/theme"
)

var version = "0.1.0"

func main() {
	var (
		themeName   string
		configPath  string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	flag.StringVar(&configPath, "config", "", "config file (default: <config dir>/minichrome/config.json)")
	flag.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minichrome - a small terminal web browser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: minichrome [flags] [location]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  minichrome                     # start with the welcome screen\n")
		fmt.Fprintf(os.Stderr, "  minichrome example.com         # http:// is added when missing\n")
		fmt.Fprintf(os.Stderr, "  minichrome -theme nord go.dev\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment variables MINICHROME_THEME, MINICHROME_START_URL, MINICHROME_LOG_LEVEL, ...\n")
		fmt.Fprintf(os.Stderr, "override the config file; flags override both.\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("minichrome %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if flag.NArg() > 0 {
		cfg.StartURL = strings.Join(flag.Args(), " ")
	}

	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: %s\n", cfg.Theme, strings.Join(theme.List(), ", "))
		os.Exit(1)
	}

	log := newLogger(cfg)
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, th, log); err != nil {
		log.Error("exiting", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*storage.Config, error) {
	if path != "" {
		return storage.LoadConfigFrom(path)
	}
	return storage.LoadConfig()
}

// newLogger writes to the data directory; a TUI cannot log to stdout.
func newLogger(cfg *storage.Config) *zap.Logger {
	dir, err := storage.DataDir()
	if err != nil {
		return zap.NewNop()
	}
	lc := logging.DefaultConfig(dir)
	lc.Level = cfg.LogLevel
	lc.Development = cfg.LogDev
	return logging.NewOrNop(lc)
}

func run(cfg *storage.Config, th theme.Theme, log *zap.Logger) error {
	fetcher := browser.NewFetcher(browser.FetcherConfig{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
		RetryMax:  cfg.FetchRetries,
		Logger:    log.Named("fetch"),
	})
	loader, err := browser.NewLoader(fetcher, browser.NewRenderer(cfg.GlamourStyle), cfg.PageCacheSize, log.Named("loader"))
	if err != nil {
		return err
	}

	journal, err := storage.OpenJournal()
	if err != nil {
		return err
	}
	defer journal.Close()

	log.Info("starting",
		zap.String("version", version),
		zap.String("theme", th.Name),
		zap.String("config", cfg.Path()),
	)

	m := app.New(app.Options{
		Theme:         th,
		Keys:          app.DefaultKeyMap(),
		Loader:        loader,
		Journal:       journal,
		Config:        cfg,
		Logger:        log,
		StartURL:      cfg.StartURL,
		FrequentCount: cfg.FrequentCount,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
