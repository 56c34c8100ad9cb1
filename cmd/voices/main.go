// SilentVoices is a private, local-first recovery companion: daily
// check-ins, a routine checklist, a journal vault, milestone
// celebrations, and an optional Gemini-backed advisory companion.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"silentvoices/internal/advisory"
	"silentvoices/internal/config"
	"silentvoices/internal/engine"
	"silentvoices/internal/notify"
	"silentvoices/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. It is assigned in init rather
// than at declaration to avoid an initialization cycle (its RunE
// transitively references rootCmd via newAdvisor).
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "SilentVoices - local-first recovery companion",
		Long: `SilentVoices tracks a single recovery journey on your own machine:
daily check-ins, a routine checklist, an append-only journal vault,
milestone celebrations, and a heuristic early-warning risk signal.

All data stays in a local SQLite file. The optional Gemini companion
(pattern insight, guidance, affirmations) is best-effort: every call
falls back to a local default and nothing depends on it.

Run without arguments to open the interactive dashboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				// Keep the terminal quiet; warnings still surface.
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
}

// app bundles everything a command needs.
type app struct {
	cfg      *config.Config
	store    *store.RecordStore
	notifier *notify.Dispatcher
	engine   *engine.Engine
	advisor  advisory.Service
}

// openApp loads config, opens the record store, and restores the engine.
func openApp() (*app, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.DatabasePath = dbPath
	}

	st, err := store.Open(cfg.Storage.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	notifier := notify.NewDispatcher(cfg.NotifyTTL())
	eng := engine.New(st, notifier, logger, engine.WithRiskConfig(cfg.Risk))
	eng.Load()

	return &app{
		cfg:      cfg,
		store:    st,
		notifier: notifier,
		engine:   eng,
		advisor:  newAdvisor(cfg),
	}, nil
}

// newAdvisor picks the Gemini service when a key is configured and the
// offline always-fallback service otherwise.
func newAdvisor(cfg *config.Config) advisory.Service {
	if cfg.Advisory.APIKey == "" {
		return advisory.NewOffline()
	}
	svc, err := advisory.NewGemini(rootCmd.Context(), cfg.Advisory.APIKey, cfg.Advisory.Models, logger)
	if err != nil {
		logger.Warn("advisory unavailable, continuing offline", zap.Error(err))
		return advisory.NewOffline()
	}
	return svc
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		logger.Warn("failed to close record store", zap.Error(err))
	}
}

// printNotification echoes the active ephemeral message, if any.
func (a *app) printNotification() {
	if msg, ok := a.notifier.Active(); ok {
		fmt.Printf("\n🛡️  %s\n", msg)
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return filepath.Join(config.DefaultDir(), "config.yaml")
}

func init() {
	rootCmd = newRootCmd()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.silentvoices/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default ~/.silentvoices/silentvoices.db)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(routineCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(affirmCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
