package stats

import (
	"sort"
	"strings"

	"github.com/search-rug/costminer/internal/dataset"
)

// Combination is one distinct set of triggered check identifiers with
// the repositories that triggered exactly that set.
type Combination struct {
	Checks []string `yaml:"checks"`
	Count  int      `yaml:"count"`
	Repos  []string `yaml:"repos"`
}

// Combinations groups entries by the exact set of check identifiers
// they triggered. Each entry contributes to exactly one group. Groups
// appear in first-occurrence order; the check lists and repository
// lists inside a group are sorted.
func Combinations(entries []dataset.Entry) []Combination {
	type group struct {
		checks []string
		count  int
		repos  map[string]bool
	}

	index := make(map[string]*group)
	var order []string

	for _, entry := range entries {
		ids := make(map[string]bool)
		for _, f := range entry.FailedChecks {
			ids[f.CheckID] = true
		}

		checks := make([]string, 0, len(ids))
		for id := range ids {
			checks = append(checks, id)
		}
		sort.Strings(checks)
		key := strings.Join(checks, "\x00")

		g, ok := index[key]
		if !ok {
			g = &group{checks: checks, repos: make(map[string]bool)}
			index[key] = g
			order = append(order, key)
		}
		g.count++
		g.repos[entry.Repo] = true
	}

	result := make([]Combination, 0, len(order))
	for _, key := range order {
		g := index[key]

		repos := make([]string, 0, len(g.repos))
		for repo := range g.repos {
			repos = append(repos, repo)
		}
		sort.Strings(repos)

		result = append(result, Combination{
			Checks: g.checks,
			Count:  g.count,
			Repos:  repos,
		})
	}
	return result
}
