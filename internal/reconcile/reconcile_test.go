package reconcile

import (
	"reflect"
	"testing"

	"github.com/search-rug/costminer/internal/dataset"
)

func entry(repo string) dataset.RawEntry {
	return dataset.RawEntry{Repo: repo}
}

func urls(entries []dataset.RawEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Repo)
	}
	return out
}

func TestReconcilePrunesExtended(t *testing.T) {
	d := &Datasets{
		BaselineTF: []dataset.RawEntry{entry("https://github.com/a/dup"), entry("https://github.com/a/only-bt")},
		ExtendedTF: []dataset.RawEntry{entry("https://github.com/a/other"), entry("https://github.com/a/dup")},
	}

	duplicates := Reconcile(d, nil)

	if len(duplicates) != 1 {
		t.Fatalf("duplicates len = %d, want 1", len(duplicates))
	}
	if duplicates[0].Repo != "https://github.com/a/dup" {
		t.Errorf("duplicate = %q", duplicates[0].Repo)
	}
	wantSources := []string{SourceBaselineTF, SourceExtendedTF}
	if !reflect.DeepEqual(duplicates[0].Sources, wantSources) {
		t.Errorf("Sources = %v, want %v", duplicates[0].Sources, wantSources)
	}

	// Baseline untouched, extended pruned.
	if len(d.BaselineTF) != 2 {
		t.Errorf("BaselineTF len = %d, want 2", len(d.BaselineTF))
	}
	if got := urls(d.ExtendedTF); !reflect.DeepEqual(got, []string{"https://github.com/a/other"}) {
		t.Errorf("ExtendedTF = %v", got)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	d := &Datasets{
		BaselineTF: []dataset.RawEntry{entry("https://github.com/a/dup")},
		ExtendedTF: []dataset.RawEntry{entry("https://github.com/a/dup")},
	}

	Reconcile(d, nil)
	second := Reconcile(d, nil)

	if len(second) != 0 {
		t.Errorf("second run found %d duplicates, want 0", len(second))
	}
	if len(d.ExtendedTF) != 0 {
		t.Errorf("ExtendedTF len = %d, want 0", len(d.ExtendedTF))
	}
	if len(d.BaselineTF) != 1 {
		t.Errorf("BaselineTF len = %d, want 1", len(d.BaselineTF))
	}
}

func TestReconcileBaselineOnlyDuplicateReportedNotPruned(t *testing.T) {
	d := &Datasets{
		BaselineTF: []dataset.RawEntry{entry("https://github.com/a/dup")},
		BaselineCF: []dataset.RawEntry{entry("https://github.com/a/dup")},
	}

	duplicates := Reconcile(d, nil)

	if len(duplicates) != 1 {
		t.Fatalf("duplicates len = %d, want 1", len(duplicates))
	}
	wantSources := []string{SourceBaselineTF, SourceBaselineCF}
	if !reflect.DeepEqual(duplicates[0].Sources, wantSources) {
		t.Errorf("Sources = %v, want %v", duplicates[0].Sources, wantSources)
	}
	if len(d.BaselineTF) != 1 || len(d.BaselineCF) != 1 {
		t.Errorf("baseline datasets were pruned: tf=%d cf=%d", len(d.BaselineTF), len(d.BaselineCF))
	}
}

func TestReconcileRemovesOnlyFirstMatch(t *testing.T) {
	d := &Datasets{
		BaselineTF: []dataset.RawEntry{entry("https://github.com/a/dup")},
		ExtendedTF: []dataset.RawEntry{
			entry("https://github.com/a/x"),
			entry("https://github.com/a/dup"),
			entry("https://github.com/a/y"),
		},
	}

	Reconcile(d, nil)

	want := []string{"https://github.com/a/x", "https://github.com/a/y"}
	if got := urls(d.ExtendedTF); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtendedTF = %v, want %v", got, want)
	}
}

func TestReconcileDuplicateAcrossBothExtended(t *testing.T) {
	d := &Datasets{
		ExtendedTF: []dataset.RawEntry{entry("https://github.com/a/dup")},
		ExtendedCF: []dataset.RawEntry{entry("https://github.com/a/dup")},
	}

	duplicates := Reconcile(d, nil)

	if len(duplicates) != 1 {
		t.Fatalf("duplicates len = %d, want 1", len(duplicates))
	}
	if len(d.ExtendedTF) != 0 || len(d.ExtendedCF) != 0 {
		t.Errorf("extended datasets not pruned: tf=%d cf=%d", len(d.ExtendedTF), len(d.ExtendedCF))
	}
}

func TestReconcileNoDuplicates(t *testing.T) {
	d := &Datasets{
		BaselineTF: []dataset.RawEntry{entry("https://github.com/a/one")},
		ExtendedCF: []dataset.RawEntry{entry("https://github.com/a/two")},
	}

	if duplicates := Reconcile(d, nil); duplicates != nil {
		t.Errorf("duplicates = %v, want nil", duplicates)
	}
}
