package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yml")

	in := []RawEntry{
		{Repo: "https://github.com/a/one", Checks: RawChecks{FailedChecks: []Finding{
			{CheckID: "CKV_AWS_801", FilePath: "main.tf", Resource: "aws_dynamodb_table.t"},
		}}},
		{Repo: "https://github.com/a/two"},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := Load[RawEntry](path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("Load() len = %d, want 2", len(out))
	}
	if out[0].Repo != "https://github.com/a/one" {
		t.Errorf("Repo = %q", out[0].Repo)
	}
	if len(out[0].Checks.FailedChecks) != 1 {
		t.Fatalf("FailedChecks len = %d, want 1", len(out[0].Checks.FailedChecks))
	}
	if out[0].Checks.FailedChecks[0].CheckID != "CKV_AWS_801" {
		t.Errorf("CheckID = %q", out[0].Checks.FailedChecks[0].CheckID)
	}
	if len(out[1].Checks.FailedChecks) != 0 {
		t.Errorf("entry without checks should have no findings")
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "entries.yml")

	if err := Save(path, []RepoRecord{{Repo: "https://github.com/a/b"}}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[RepoRecord](filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoadPassesThroughUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.yml")
	content := `- repo: https://github.com/a/b
  checks:
    failed_checks:
      - check_id: CKV_AWS_804
        file_path: ec2.tf
        severity: LOW
        guideline: https://example.com/804
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := Load[RawEntry](path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	f := out[0].Checks.FailedChecks[0]
	if f.Extra["severity"] != "LOW" {
		t.Errorf("Extra[severity] = %v, want LOW", f.Extra["severity"])
	}
	if f.Extra["guideline"] != "https://example.com/804" {
		t.Errorf("Extra[guideline] = %v", f.Extra["guideline"])
	}

	// Verbatim pass-through on rewrite.
	if err := Save(path, out); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "severity: LOW") {
		t.Errorf("rewritten file lost pass-through field:\n%s", data)
	}
}

func TestAppendMergesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.yml")

	if err := Append(path, []string{"https://github.com/a/one"}); err != nil {
		t.Fatalf("Append() on missing file error: %v", err)
	}
	if err := Append(path, []string{"https://github.com/a/two"}); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	out, err := Load[string](path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0] != "https://github.com/a/one" || out[1] != "https://github.com/a/two" {
		t.Errorf("unexpected order: %v", out)
	}
}

func TestSaveMapSortsKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yml")

	in := map[string]Entry{
		"terraform_unaware_0":    {Repo: "https://github.com/a/x"},
		"cloudformation_aware_0": {Repo: "https://github.com/a/y"},
	}
	if err := SaveMap(path, in); err != nil {
		t.Fatalf("SaveMap() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if strings.Index(text, "cloudformation_aware_0") > strings.Index(text, "terraform_unaware_0") {
		t.Errorf("map keys not sorted:\n%s", text)
	}
}

func TestFindingClone(t *testing.T) {
	orig := Finding{
		CheckID:       "CKV_AWS_801",
		FileLineRange: []int{3, 9},
		Extra:         map[string]any{"severity": "LOW"},
	}

	clone := orig.Clone()
	clone.FileLineRange[0] = 99
	clone.Extra["severity"] = "HIGH"
	clone.Description = "changed"

	if orig.FileLineRange[0] != 3 {
		t.Errorf("Clone shares FileLineRange with original")
	}
	if orig.Extra["severity"] != "LOW" {
		t.Errorf("Clone shares Extra with original")
	}
	if orig.Description != "" {
		t.Errorf("Clone mutated original description")
	}
}
