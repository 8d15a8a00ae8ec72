package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "autoviz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("output_dir:          %s\n", cfg.OutputDir)
		fmt.Printf("max_rows:            %d\n", cfg.MaxRows)
		fmt.Printf("default_source_type: %s\n", orNone(cfg.DefaultSourceType))
		fmt.Printf("http_timeout_sec:    %d\n", cfg.HTTPTimeoutSec)
		fmt.Printf("postgres_dsn:        %s\n", orNone(redactDSN(cfg.PostgresDSN)))
		fmt.Printf("server_addr:         %s\n", cfg.ServerAddr)
		fmt.Printf("allowed_origins:     %s\n", strings.Join(cfg.AllowedOrigins, ", "))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "output_dir":
			cfg.OutputDir = value
		case "max_rows":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("max_rows must be a non-negative integer, got %q", value)
			}
			cfg.MaxRows = n
		case "default_source_type":
			switch value {
			case "", "csv", "json", "excel", "api", "sql":
				cfg.DefaultSourceType = value
			default:
				return fmt.Errorf("default_source_type must be one of csv, json, excel, api, sql, got %q", value)
			}
		case "http_timeout_sec":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("http_timeout_sec must be a positive integer, got %q", value)
			}
			cfg.HTTPTimeoutSec = n
		case "postgres_dsn":
			cfg.PostgresDSN = value
		case "server_addr":
			cfg.ServerAddr = value
		case "allowed_origins":
			var origins []string
			for _, o := range strings.Split(value, ",") {
				if o = strings.TrimSpace(o); o != "" {
					origins = append(origins, o)
				}
			}
			cfg.AllowedOrigins = origins
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// redactDSN hides the password portion of a DSN when printing.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	if at := strings.LastIndex(dsn, "@"); at > 0 {
		if colon := strings.Index(dsn, "://"); colon > 0 {
			creds := dsn[colon+3 : at]
			if c := strings.Index(creds, ":"); c >= 0 {
				return dsn[:colon+3] + creds[:c] + ":****" + dsn[at:]
			}
		}
	}
	return dsn
}
