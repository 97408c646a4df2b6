// Package enrich turns raw linter datasets into cleaned, labeled
// repository entries ready for aggregation, sampling, and reporting.
package enrich

import (
	"math/rand"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/taxonomy"
)

// Clean produces one enriched entry per repository that has at least
// one finding. Entries without findings (including malformed entries
// whose checks block is missing) are dropped. The tool and origin
// labels are stamped on every entry; awareness is looked up by
// repository URL in the classifier's aware output, defaulting to
// unaware. rng drives example selection.
func Clean(raw []dataset.RawEntry, tool dataset.Tool, origin dataset.Origin, aware []dataset.RepoRecord, rng *rand.Rand) []dataset.Entry {
	awareRepos := make(map[string]bool, len(aware))
	for _, r := range aware {
		awareRepos[r.Repo] = true
	}

	var cleaned []dataset.Entry
	for _, entry := range raw {
		findings := entry.Checks.FailedChecks
		if len(findings) == 0 {
			continue
		}

		for i := range findings {
			findings[i].CheckName = taxonomy.Name(findings[i].CheckID)
		}

		files := make(map[string]bool)
		for _, f := range findings {
			if f.FilePath != "" {
				files[f.FilePath] = true
			}
		}

		example := selectExample(findings, rng)
		example.Description = taxonomy.Description(example.CheckID)

		awareness := dataset.Unaware
		if awareRepos[entry.Repo] {
			awareness = dataset.Aware
		}

		cleaned = append(cleaned, dataset.Entry{
			Repo:              entry.Repo,
			Tool:              tool,
			Origin:            origin,
			FailedChecks:      findings,
			FailedChecksCount: len(findings),
			FilesCount:        len(files),
			ExampleCheck:      &example,
			CostAwareness:     awareness,
		})
	}
	return cleaned
}

// selectExample picks one representative finding. Findings that flag
// non-on-demand billing are preferred; the pick is uniform within the
// preferred set, or within all findings when none is preferred. The
// returned finding is a deep copy.
func selectExample(findings []dataset.Finding, rng *rand.Rand) dataset.Finding {
	var preferred []int
	for i, f := range findings {
		if taxonomy.IsBillingCheck(f.CheckID) {
			preferred = append(preferred, i)
		}
	}

	var pick int
	if len(preferred) > 0 {
		pick = preferred[rng.Intn(len(preferred))]
	} else {
		pick = rng.Intn(len(findings))
	}
	return findings[pick].Clone()
}

// Combine concatenates cleaned datasets in the given order into the
// combined collection used by every downstream stage.
func Combine(parts ...[]dataset.Entry) []dataset.Entry {
	var combined []dataset.Entry
	for _, p := range parts {
		combined = append(combined, p...)
	}
	return combined
}
