// Package stats computes the fixed aggregate tables over a combined
// dataset. All functions are pure reductions; group order is the
// first-occurrence order of each grouping key.
package stats

import (
	"github.com/search-rug/costminer/internal/dataset"
)

// ToolAwareness counts aware and unaware repositories for one tool.
type ToolAwareness struct {
	Tool    dataset.Tool `yaml:"tool"`
	Aware   int          `yaml:"aware"`
	Unaware int          `yaml:"unaware"`
}

// OriginAwareness counts aware and unaware repositories for one
// (tool, dataset) pair.
type OriginAwareness struct {
	Tool    dataset.Tool   `yaml:"tool"`
	Origin  dataset.Origin `yaml:"dataset"`
	Aware   int            `yaml:"aware"`
	Unaware int            `yaml:"unaware"`
}

// Totals aggregates finding and file counts for one (tool, dataset)
// pair.
type Totals struct {
	Tool        dataset.Tool   `yaml:"tool"`
	Origin      dataset.Origin `yaml:"dataset"`
	TotalChecks int            `yaml:"total_checks"`
	UniqueFiles int            `yaml:"unique_files"`
	TotalRepos  int            `yaml:"total_repos"`
}

// AwarenessByTool counts cost-awareness labels grouped by tool.
func AwarenessByTool(entries []dataset.Entry) []ToolAwareness {
	index := make(map[dataset.Tool]int)
	var result []ToolAwareness

	for _, entry := range entries {
		i, ok := index[entry.Tool]
		if !ok {
			i = len(result)
			index[entry.Tool] = i
			result = append(result, ToolAwareness{Tool: entry.Tool})
		}
		if entry.CostAwareness == dataset.Aware {
			result[i].Aware++
		} else {
			result[i].Unaware++
		}
	}
	return result
}

// AwarenessByOrigin counts cost-awareness labels grouped by
// (tool, dataset).
func AwarenessByOrigin(entries []dataset.Entry) []OriginAwareness {
	type key struct {
		tool   dataset.Tool
		origin dataset.Origin
	}
	index := make(map[key]int)
	var result []OriginAwareness

	for _, entry := range entries {
		k := key{entry.Tool, entry.Origin}
		i, ok := index[k]
		if !ok {
			i = len(result)
			index[k] = i
			result = append(result, OriginAwareness{Tool: entry.Tool, Origin: entry.Origin})
		}
		if entry.CostAwareness == dataset.Aware {
			result[i].Aware++
		} else {
			result[i].Unaware++
		}
	}
	return result
}

// AggregateTotals sums failed-check counts, unique-file counts, and
// repository counts grouped by (tool, dataset).
func AggregateTotals(entries []dataset.Entry) []Totals {
	type key struct {
		tool   dataset.Tool
		origin dataset.Origin
	}
	index := make(map[key]int)
	var result []Totals

	for _, entry := range entries {
		k := key{entry.Tool, entry.Origin}
		i, ok := index[k]
		if !ok {
			i = len(result)
			index[k] = i
			result = append(result, Totals{Tool: entry.Tool, Origin: entry.Origin})
		}
		result[i].TotalChecks += entry.FailedChecksCount
		result[i].UniqueFiles += entry.FilesCount
		result[i].TotalRepos++
	}
	return result
}
