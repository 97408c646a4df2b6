package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoadYamlFile(t *testing.T) {
	dir := t.TempDir()
	content := `data_dir: results
log_file: run.log
sample_size: 8
window_months: 6
timeout: 45s
`
	if err := os.WriteFile(filepath.Join(dir, ".costminer.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DataDir != "results" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "results")
	}
	if cfg.LogFile != "run.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "run.log")
	}
	if cfg.SampleSize != 8 {
		t.Errorf("SampleSize = %d, want 8", cfg.SampleSize)
	}
	if cfg.WindowMonths != 6 {
		t.Errorf("WindowMonths = %d, want 6", cfg.WindowMonths)
	}
	if cfg.TimeoutDuration() != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 45s", cfg.TimeoutDuration())
	}
}

func TestLoadYmlFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".costminer.yml"), []byte("data_dir: alt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataDir != "alt" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "alt")
	}
}

func TestLoadInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".costminer.yaml"), []byte("data_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config

	if got := cfg.DataDirOrDefault(); got != "data" {
		t.Errorf("DataDirOrDefault() = %q, want %q", got, "data")
	}
	if got := cfg.LogFileOrDefault(); got != "logs.txt" {
		t.Errorf("LogFileOrDefault() = %q, want %q", got, "logs.txt")
	}
	if got := cfg.SampleSizeOrDefault(); got != 4 {
		t.Errorf("SampleSizeOrDefault() = %d, want 4", got)
	}
	if got := cfg.TimeoutDuration(); got != 0 {
		t.Errorf("TimeoutDuration() = %v, want 0", got)
	}
}
