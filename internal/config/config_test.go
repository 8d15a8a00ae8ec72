package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// A missing config file is not an error; defaults apply.
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutputDir != "visualizations" || c.MaxRows != 100000 {
		t.Fatalf("defaults = %+v", c)
	}
	if c.ServerAddr != ":8420" || c.HTTPTimeoutSec != 30 {
		t.Fatalf("defaults = %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		OutputDir:      "out",
		MaxRows:        42,
		HTTPTimeoutSec: 7,
		PostgresDSN:    "postgres://u@localhost/db",
		ServerAddr:     ":9000",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.OutputDir != "out" || out.MaxRows != 42 || out.ServerAddr != ":9000" {
		t.Fatalf("round trip = %+v", out)
	}
	if len(out.AllowedOrigins) != 1 || out.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("origins = %v", out.AllowedOrigins)
	}
}
