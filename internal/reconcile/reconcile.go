// Package reconcile removes cross-dataset duplicate repositories from
// the extended datasets, keeping the baseline datasets authoritative.
package reconcile

import (
	"strings"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/logging"
)

// Dataset source labels, in concatenated scan order.
const (
	SourceBaselineTF = "baseline_tf"
	SourceBaselineCF = "baseline_cf"
	SourceExtendedTF = "extended_tf"
	SourceExtendedCF = "extended_cf"
)

// Datasets holds the four raw linter datasets. Reconcile prunes the
// extended slices in place.
type Datasets struct {
	BaselineTF []dataset.RawEntry
	BaselineCF []dataset.RawEntry
	ExtendedTF []dataset.RawEntry
	ExtendedCF []dataset.RawEntry
}

// Duplicate records one repository URL seen more than once across the
// concatenated datasets, with every source it appears in.
type Duplicate struct {
	Repo    string
	Sources []string
}

// Reconcile scans BaselineTF, BaselineCF, ExtendedTF, ExtendedCF in
// that order and treats the second and later sightings of a URL as
// duplicates. For every duplicate present in an extended dataset, the
// first matching entry is removed from that dataset; baseline entries
// are never pruned. Running again on pruned data is a no-op.
func Reconcile(d *Datasets, runLog *logging.RunLog) []Duplicate {
	baselineTF := repoURLs(d.BaselineTF)
	baselineCF := repoURLs(d.BaselineCF)
	extendedTF := repoURLs(d.ExtendedTF)
	extendedCF := repoURLs(d.ExtendedCF)

	all := make([]string, 0, len(baselineTF)+len(baselineCF)+len(extendedTF)+len(extendedCF))
	all = append(all, baselineTF...)
	all = append(all, baselineCF...)
	all = append(all, extendedTF...)
	all = append(all, extendedCF...)

	seen := make(map[string]bool, len(all))
	flagged := make(map[string]bool)
	var duplicates []Duplicate
	for _, repo := range all {
		if seen[repo] {
			if !flagged[repo] {
				flagged[repo] = true
				duplicates = append(duplicates, Duplicate{Repo: repo})
			}
			continue
		}
		seen[repo] = true
	}

	if len(duplicates) == 0 {
		runLog.Printf("No duplicates found across datasets.")
		return nil
	}

	runLog.Printf("Duplicates found:")
	for i := range duplicates {
		dup := &duplicates[i]
		if contains(baselineTF, dup.Repo) {
			dup.Sources = append(dup.Sources, SourceBaselineTF)
		}
		if contains(baselineCF, dup.Repo) {
			dup.Sources = append(dup.Sources, SourceBaselineCF)
		}
		if contains(extendedTF, dup.Repo) {
			dup.Sources = append(dup.Sources, SourceExtendedTF)
		}
		if contains(extendedCF, dup.Repo) {
			dup.Sources = append(dup.Sources, SourceExtendedCF)
		}

		runLog.Printf("\t%s", dup.Repo)
		runLog.Printf("\t\tAppears in: %s", strings.Join(dup.Sources, ", "))

		if contains(extendedTF, dup.Repo) {
			d.ExtendedTF = removeFirst(d.ExtendedTF, dup.Repo)
		}
		if contains(extendedCF, dup.Repo) {
			d.ExtendedCF = removeFirst(d.ExtendedCF, dup.Repo)
		}
	}
	runLog.Printf("Duplicates removed from extended datasets.")

	return duplicates
}

func repoURLs(entries []dataset.RawEntry) []string {
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.Repo)
	}
	return urls
}

func contains(urls []string, repo string) bool {
	for _, u := range urls {
		if u == repo {
			return true
		}
	}
	return false
}

// removeFirst drops the first entry whose URL matches, leaving any
// later same-URL entries in place.
func removeFirst(entries []dataset.RawEntry, repo string) []dataset.RawEntry {
	for i, e := range entries {
		if e.Repo == repo {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}
