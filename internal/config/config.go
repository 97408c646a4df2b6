package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds costminer configuration loaded from .costminer.yaml.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	LogFile      string `yaml:"log_file"`
	SampleSize   int    `yaml:"sample_size"`
	WindowMonths int    `yaml:"window_months"`
	Timeout      string `yaml:"timeout"`
}

// DataDirOrDefault returns the directory interchange files live in.
func (c Config) DataDirOrDefault() string {
	if c.DataDir == "" {
		return "data"
	}
	return c.DataDir
}

// LogFileOrDefault returns the run log path.
func (c Config) LogFileOrDefault() string {
	if c.LogFile == "" {
		return "logs.txt"
	}
	return c.LogFile
}

// SampleSizeOrDefault returns the total stratified sample size.
func (c Config) SampleSizeOrDefault() int {
	if c.SampleSize <= 0 {
		return 4
	}
	return c.SampleSize
}

// TimeoutDuration parses the timeout string as a duration.
func (c Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Load searches for .costminer.yaml or .costminer.yml in the given
// directory and returns the parsed config. Returns an empty Config if
// no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".costminer.yaml"),
		filepath.Join(dir, ".costminer.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
