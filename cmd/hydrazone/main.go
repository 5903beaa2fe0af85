package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/hydrazone/internal/api"
	"github.com/jroosing/hydrazone/internal/config"
	"github.com/jroosing/hydrazone/internal/database"
	"github.com/jroosing/hydrazone/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set HYDRAZONE_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		dbPath     = flag.String("db", "", "Override check journal path")
		noJournal  = flag.Bool("no-journal", false, "Disable the check journal")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *noJournal {
		cfg.Database.Path = ""
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("HydraZone starting",
		"api", cfg.API.Enabled,
		"host", cfg.API.Host,
		"port", cfg.API.Port,
		"journal", cfg.Database.Path,
		"origin", cfg.Parser.Origin,
	)

	if !cfg.API.Enabled {
		logger.Warn("api disabled, nothing to serve")
		return
	}

	var db *database.DB
	if cfg.Database.Path != "" {
		db, err = database.Open(cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open journal: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := serve(ctx, api.New(cfg, db, logger)); err != nil {
		logger.Error("server exited with error", "err", err)
		cancel()
		if db != nil {
			db.Close()
		}
		os.Exit(1)
	}
	logger.Info("HydraZone stopped")
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *api.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(ctx) }()

	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
