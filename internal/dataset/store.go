package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a whole YAML collection into memory. The file is read
// wholesale; there is no streaming. A missing file is an error.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []T
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Save writes a whole YAML collection, creating parent directories as
// needed and replacing any previous contents.
func Save[T any](path string, records []T) error {
	return writeYAML(path, records)
}

// Append merges records onto the end of an existing collection and
// rewrites the file. A missing file starts an empty collection; there
// is no partial write path.
func Append[T any](path string, records []T) error {
	existing, err := Load[T](path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		existing = nil
	}
	return Save(path, append(existing, records...))
}

// SaveMap writes a label-keyed YAML mapping. yaml.v3 emits map keys in
// sorted order, which keeps sample files stable across runs.
func SaveMap[T any](path string, records map[string]T) error {
	return writeYAML(path, records)
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
