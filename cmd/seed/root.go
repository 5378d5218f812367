package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"kidsguard/internal/config"
	"kidsguard/internal/database"
	"kidsguard/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries what every subcommand needs once the root has set it up
type app struct {
	cfg    *config.Config
	db     *database.DB
	logger *slog.Logger
}

type rootFlags struct {
	dbType      string
	databaseURL string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	a := &app{}

	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed a kidsguard database with demo data",
		Long: "seed fills a kidsguard database with the sample catalog, sample children\n" +
			"and a synthesized monitoring history (sessions, progress and alerts).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd, flags)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&flags.dbType, "db-type", "", "Database type: sqlite, postgres or mysql (default from DATABASE_TYPE)")
	f.StringVar(&flags.databaseURL, "database-url", "", "Connection string or sqlite path (default from DATABASE_URL)")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from LOG_LEVEL)")

	root.AddCommand(
		newCatalogCmd(a),
		newChildrenCmd(a),
		newMonitoringCmd(a),
		newReportCmd(a),
		newScheduleCmd(a),
	)
	return root
}

// open loads configuration, applies flag overrides, connects and migrates
func (a *app) open(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.dbType != "" {
		cfg.DatabaseType = flags.dbType
	}
	if flags.databaseURL != "" {
		cfg.DatabaseURL = flags.databaseURL
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	a.cfg = cfg
	a.logger = logging.New("seed")

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.db = db

	a.logger.Debug("database ready", "type", cfg.DatabaseType)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
