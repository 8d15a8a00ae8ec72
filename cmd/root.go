package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "autoviz/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	quiet   bool
	// Connector overrides (override config if set)
	flagMaxRows     int
	flagPostgresDSN string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "autoviz",
	Short: "autoviz: autonomous data profiling, insight extraction, and 3D visualization",
	Long: `autoviz ingests tabular data from files, URLs, or databases, autonomously
classifies its structure, recommends a visualization with confidence scores,
and extracts ranked statistical insights with plain-language summaries.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.autoviz/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "maximum rows to load, 0 = config default")
	rootCmd.PersistentFlags().StringVar(&flagPostgresDSN, "dsn", "", "PostgreSQL DSN for SQL sources (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{OutputDir: "visualizations", MaxRows: 100000, HTTPTimeoutSec: 30}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("max-rows") && flagMaxRows > 0 {
		cfg.MaxRows = flagMaxRows
	}
	if f.Changed("dsn") && flagPostgresDSN != "" {
		cfg.PostgresDSN = flagPostgresDSN
	}
}

func verbose() bool { return !quiet }
