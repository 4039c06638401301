package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/urbanpulse-cli/internal/config"
	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagDataFile  string
	flagLogLevel  string
	flagLogFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Diagnostics sink handed to every library call.
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "urbanpulse",
	Short: "UrbanPulse CLI: urbanization vs. peace and quality-of-life indicators",
	Long: `UrbanPulse loads the combined urbanization/quality-of-life dataset, averages every
country's indicators, and splits countries into Stable and Volatile urbanizers.
Results can be printed, summarized, exported, or served over HTTP.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.urbanpulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data", "", "dataset CSV path (overrides the default search)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text|json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DataRoot: ".", LogLevel: "info", LogFormat: "text", ListenAddr: ":8080"}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}
	if f.Changed("log-level") && flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if f.Changed("log-format") && flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v; using info\n", err)
		level = slog.LevelInfo
	}
	logger = logging.New(os.Stderr, cfg.LogFormat, level)
}

// loadRecords finds and parses the configured dataset.
func loadRecords() (string, []dataset.DataRecord, error) {
	path, err := dataset.Locate(cfg.Candidates())
	if err != nil {
		return "", nil, err
	}
	records, err := dataset.LoadFile(path, dataset.WithLogger(logger))
	if err != nil {
		return "", nil, err
	}
	return path, records, nil
}
