package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// point at a file that does not exist so only defaults apply
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ListenAddr != ":8080" {
		t.Fatalf("listen_addr = %q", c.ListenAddr)
	}
	if c.DefaultLimit != 100 {
		t.Fatalf("default_limit = %d", c.DefaultLimit)
	}
	if c.LogLevel != "info" || c.LogFormat != "text" {
		t.Fatalf("log defaults = %q/%q", c.LogLevel, c.LogFormat)
	}
	if c.SeedSample {
		t.Fatalf("seed_sample default should be false")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{
		ListenAddr:   ":9999",
		DataDir:      "/tmp/data",
		SeedSample:   true,
		DefaultLimit: 25,
		LogLevel:     "debug",
		LogFormat:    "json",
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ListenAddr != want.ListenAddr {
		t.Fatalf("listen_addr = %q, want %q", got.ListenAddr, want.ListenAddr)
	}
	if got.DataDir != want.DataDir || !got.SeedSample || got.DefaultLimit != 25 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.LogLevel != "debug" || got.LogFormat != "json" {
		t.Fatalf("log round trip = %q/%q", got.LogLevel, got.LogFormat)
	}
}
