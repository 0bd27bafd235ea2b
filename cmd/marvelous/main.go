// marvelous is the terminal dashboard of La Maison Marvelous, a
// wedding and photography business operating in France and Cameroun.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"marvelous/cmd/marvelous/ui"
	"marvelous/internal/config"
	"marvelous/internal/insight"
	"marvelous/internal/logging"
	"marvelous/internal/remote"
	"marvelous/internal/shell"
	"marvelous/internal/store"
	"marvelous/internal/view"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marvelous",
	Short: "La Maison Marvelous - tableau de bord",
	Long: `marvelous is the management dashboard of La Maison Marvelous:
projects and weddings, studio operations, HR, CRM, performance and
marketing for the France and Cameroun branches.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive dashboard has its own file logger.
		if cmd.CalledAs() == "marvelous" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
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

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(resolveConfigPath())
		version := "unknown"
		if err == nil {
			version = cfg.Version
		}
		fmt.Printf("marvelous %s\n", version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and service reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			logger.Error("config invalid", zap.Error(err))
			return err
		}
		logger.Info("config ok",
			zap.String("path", resolveConfigPath()),
			zap.Bool("supabase_configured", cfg.Supabase.URL != ""),
			zap.Bool("gemini_configured", cfg.Gemini.APIKey != ""),
		)

		if cfg.Supabase.URL != "" {
			client := remote.New(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout)
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Supabase.Timeout)
			defer cancel()
			if err := client.Ping(ctx); err != nil {
				logger.Warn("remote store unreachable, dashboard will use sample data", zap.Error(err))
			} else {
				logger.Info("remote store reachable", zap.String("url", cfg.Supabase.URL))
			}
		} else {
			logger.Info("remote store not configured, dashboard runs on sample data")
		}

		if cfg.Gemini.APIKey == "" {
			logger.Info("gemini not configured, generation features disabled")
		} else {
			logger.Info("gemini configured", zap.String("model", cfg.Gemini.Model))
		}
		return nil
	},
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func runDashboard() error {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	workspace := filepath.Dir(cfg.Storage.PreferencesPath)
	if err := logging.Initialize(workspace, cfg.Logging.DebugMode, cfg.LogLevel()); err != nil {
		return err
	}
	defer logging.Close()
	logging.Boot("starting %s %s", cfg.Name, cfg.Version)

	prefs, err := store.Open(cfg.Storage.PreferencesPath)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer prefs.Close()

	shellState := shell.New(prefs)
	client := remote.New(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout)
	controllers := view.NewControllers(client)

	var textService insight.TextService
	if cfg.Gemini.APIKey != "" {
		svc, err := insight.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logging.Boot("gemini unavailable: %v", err)
		} else {
			textService = svc
		}
	}
	insights := insight.NewController(textService)

	model := ui.NewModel(ui.Deps{
		Shell:       shellState,
		Controllers: controllers,
		Insights:    insights,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.marvelous/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging for subcommands")
	rootCmd.AddCommand(versionCmd, doctorCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
