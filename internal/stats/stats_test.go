package stats

import (
	"reflect"
	"testing"

	"github.com/search-rug/costminer/internal/dataset"
)

func entry(repo string, tool dataset.Tool, origin dataset.Origin, awareness dataset.Awareness, checks, files int) dataset.Entry {
	findings := make([]dataset.Finding, checks)
	return dataset.Entry{
		Repo:              repo,
		Tool:              tool,
		Origin:            origin,
		CostAwareness:     awareness,
		FailedChecks:      findings,
		FailedChecksCount: checks,
		FilesCount:        files,
	}
}

func TestAwarenessByTool(t *testing.T) {
	entries := []dataset.Entry{
		entry("https://github.com/a/1", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Aware, 1, 1),
		entry("https://github.com/a/2", dataset.ToolTerraform, dataset.OriginExtended, dataset.Unaware, 1, 1),
		entry("https://github.com/a/3", dataset.ToolCloudFormation, dataset.OriginBaseline, dataset.Unaware, 1, 1),
		entry("https://github.com/a/4", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Unaware, 1, 1),
	}

	got := AwarenessByTool(entries)

	want := []ToolAwareness{
		{Tool: dataset.ToolTerraform, Aware: 1, Unaware: 2},
		{Tool: dataset.ToolCloudFormation, Aware: 0, Unaware: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AwarenessByTool = %+v, want %+v", got, want)
	}
}

func TestAwarenessByOrigin(t *testing.T) {
	entries := []dataset.Entry{
		entry("https://github.com/a/1", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Aware, 1, 1),
		entry("https://github.com/a/2", dataset.ToolTerraform, dataset.OriginExtended, dataset.Unaware, 1, 1),
		entry("https://github.com/a/3", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Unaware, 1, 1),
	}

	got := AwarenessByOrigin(entries)

	want := []OriginAwareness{
		{Tool: dataset.ToolTerraform, Origin: dataset.OriginBaseline, Aware: 1, Unaware: 1},
		{Tool: dataset.ToolTerraform, Origin: dataset.OriginExtended, Aware: 0, Unaware: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AwarenessByOrigin = %+v, want %+v", got, want)
	}
}

func TestAggregateTotals(t *testing.T) {
	entries := []dataset.Entry{
		entry("https://github.com/a/1", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Aware, 3, 2),
		entry("https://github.com/a/2", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Unaware, 5, 4),
		entry("https://github.com/a/3", dataset.ToolCloudFormation, dataset.OriginExtended, dataset.Unaware, 1, 1),
	}

	got := AggregateTotals(entries)

	want := []Totals{
		{Tool: dataset.ToolTerraform, Origin: dataset.OriginBaseline, TotalChecks: 8, UniqueFiles: 6, TotalRepos: 2},
		{Tool: dataset.ToolCloudFormation, Origin: dataset.OriginExtended, TotalChecks: 1, UniqueFiles: 1, TotalRepos: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateTotals = %+v, want %+v", got, want)
	}
}

func TestAggregatesAreStableAcrossReruns(t *testing.T) {
	entries := []dataset.Entry{
		entry("https://github.com/a/1", dataset.ToolCloudFormation, dataset.OriginExtended, dataset.Aware, 2, 2),
		entry("https://github.com/a/2", dataset.ToolTerraform, dataset.OriginBaseline, dataset.Unaware, 3, 1),
	}

	first := AggregateTotals(entries)
	second := AggregateTotals(entries)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running AggregateTotals changed the result")
	}
}

func TestEmptyInput(t *testing.T) {
	if got := AwarenessByTool(nil); len(got) != 0 {
		t.Errorf("AwarenessByTool(nil) = %v", got)
	}
	if got := AggregateTotals(nil); len(got) != 0 {
		t.Errorf("AggregateTotals(nil) = %v", got)
	}
	if got := Combinations(nil); len(got) != 0 {
		t.Errorf("Combinations(nil) = %v", got)
	}
}
