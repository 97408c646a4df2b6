package commands

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/search-rug/costminer/internal/config"
	"github.com/search-rug/costminer/internal/logging"
)

// loadConfig reads the working-directory config, tolerating a missing
// or broken file.
func loadConfig() config.Config {
	cfg, err := config.Load(".")
	if err != nil {
		slog.Warn("Failed to load config file", "error", err)
	}
	return cfg
}

// openRunLog resolves the run log path from the flag or config default.
func openRunLog(flagPath string, cfg config.Config) *logging.RunLog {
	path := flagPath
	if path == "" {
		path = cfg.LogFileOrDefault()
	}
	return logging.OpenRunLog(path)
}

// newRand builds the sampling entropy source. A zero seed falls back to
// the wall clock; fixing the seed makes a run reproducible.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// githubToken reads the API token from the environment.
func githubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// enhanceError wraps an error with context and suggestions for common
// GitHub API issues.
func enhanceError(action string, err error) error {
	msg := err.Error()

	var hint string
	switch {
	case strings.Contains(msg, "status 401"):
		hint = "Invalid GitHub credentials. Check the GITHUB_TOKEN environment variable"
	case strings.Contains(msg, "status 403") || strings.Contains(msg, "rate limit"):
		hint = "GitHub API rate limit hit. Set GITHUB_TOKEN to raise the limit (60/hr to 5000/hr)"
	case strings.Contains(msg, "status 404"):
		hint = "Repository not found or not accessible with the current token"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}
