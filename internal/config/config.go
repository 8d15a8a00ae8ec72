package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// OutputDir is where generated visualizations and reports land.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// MaxRows caps how many rows connectors materialize; 0 means unlimited.
	MaxRows int `mapstructure:"max_rows" yaml:"max_rows"`
	// DefaultSourceType forces a connector instead of auto-detection.
	DefaultSourceType string `mapstructure:"default_source_type" yaml:"default_source_type"`

	// HTTP connector settings
	HTTPTimeoutSec int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`

	// PostgreSQL connector settings
	PostgresDSN string `mapstructure:"postgres_dsn" yaml:"postgres_dsn"`

	// Server settings (autoviz serve)
	ServerAddr     string   `mapstructure:"server_addr" yaml:"server_addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.autoviz/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".autoviz")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTOVIZ")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "visualizations")
	v.SetDefault("max_rows", 100000)
	v.SetDefault("default_source_type", "")
	v.SetDefault("http_timeout_sec", 30)
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("server_addr", ":8420")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".autoviz")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
