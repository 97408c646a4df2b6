// Package report assembles per-repository report bundles, associates
// follow-up survey links, and delivers outreach messages as issues.
package report

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/logging"
	"github.com/search-rug/costminer/internal/taxonomy"
)

// CheckDefinition is one glossary row in a report bundle.
type CheckDefinition struct {
	CheckID         string   `yaml:"check_id"`
	CheckName       string   `yaml:"check_name"`
	Description     string   `yaml:"description"`
	Recommendations []string `yaml:"recommendations"`
}

// linterSummary is the summary view written into a bundle.
type linterSummary struct {
	Repo              string            `yaml:"repo"`
	FailedChecks      []dataset.Finding `yaml:"failed_checks"`
	FailedChecksCount int               `yaml:"failed_checks_count"`
	FilesCount        int               `yaml:"files_count"`
}

var pathHostile = regexp.MustCompile(`[:/\\]+`)

// SanitizeRepoURL derives a filesystem-safe directory name from a
// repository URL.
func SanitizeRepoURL(repoURL string) string {
	return pathHostile.ReplaceAllString(repoURL, "_")
}

// GenerateBundle writes a self-contained report bundle for one
// repository under outputDir: a summary record, a glossary of the
// distinct checks present, a zip archive of both, and a metadata file
// with the repository URL and its survey link.
//
// A repository absent from the data and an already-existing output
// directory are both stage aborts: logged, nothing written, nil error.
func GenerateBundle(repo string, entries []dataset.Entry, outputDir string, runLog *logging.RunLog) error {
	var entry *dataset.Entry
	for i := range entries {
		if entries[i].Repo == repo {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		runLog.Printf("Repository %s not found in data.", repo)
		return nil
	}

	outputPath := filepath.Join(outputDir, SanitizeRepoURL(repo))
	if _, err := os.Stat(outputPath); err == nil {
		runLog.Printf("Output directory %s already exists.", outputPath)
		return nil
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	summaryPath := filepath.Join(outputPath, "linter_report.yml")
	summary := map[string][]linterSummary{
		"linter_report": {{
			Repo:              entry.Repo,
			FailedChecks:      entry.FailedChecks,
			FailedChecksCount: entry.FailedChecksCount,
			FilesCount:        entry.FilesCount,
		}},
	}
	if err := writeYAML(summaryPath, summary); err != nil {
		return err
	}

	definitionsPath := filepath.Join(outputPath, "check_definitions.yml")
	definitions := map[string][]CheckDefinition{
		"check_definitions": Glossary(entry.FailedChecks),
	}
	if err := writeYAML(definitionsPath, definitions); err != nil {
		return err
	}

	zipPath := filepath.Join(outputPath, "report.zip")
	if err := writeZip(zipPath, summaryPath, definitionsPath); err != nil {
		return err
	}

	formLink := "No form link available"
	if entry.FormLink != nil {
		formLink = *entry.FormLink
	}
	infoPath := filepath.Join(outputPath, "info.txt")
	info := fmt.Sprintf("Repository: %s\nForm Link: %s\n", repo, formLink)
	if err := os.WriteFile(infoPath, []byte(info), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", infoPath, err)
	}

	return nil
}

// Glossary builds the sorted list of check definitions for the distinct
// check identifiers among the findings.
func Glossary(findings []dataset.Finding) []CheckDefinition {
	ids := make(map[string]bool)
	for _, f := range findings {
		ids[f.CheckID] = true
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	definitions := make([]CheckDefinition, 0, len(sorted))
	for _, id := range sorted {
		definitions = append(definitions, CheckDefinition{
			CheckID:         id,
			CheckName:       taxonomy.Name(id),
			Description:     taxonomy.Description(id),
			Recommendations: taxonomy.Recommendations(id),
		})
	}
	return definitions
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeZip(zipPath string, files ...string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, path := range files {
		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}

		dst, err := zw.Create(filepath.Base(path))
		if err != nil {
			src.Close()
			return fmt.Errorf("archive %s: %w", path, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			return fmt.Errorf("archive %s: %w", path, err)
		}
		src.Close()
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish %s: %w", zipPath, err)
	}
	return nil
}
