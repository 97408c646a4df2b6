// Package sample draws a stratified random sample from a combined
// dataset, bucketed by (tool, awareness).
package sample

import (
	"fmt"
	"math/rand"

	"github.com/search-rug/costminer/internal/dataset"
)

// DefaultSize is the total sample size when the caller does not choose
// one.
const DefaultSize = 4

// minBucketSize is the population a bucket needs before it may be
// sampled from.
const minBucketSize = 10

// bucket is one stratification cell.
type bucket struct {
	tool      dataset.Tool
	awareness dataset.Awareness
}

// fixedBuckets is the full set of cells, in a stable order.
var fixedBuckets = []bucket{
	{dataset.ToolTerraform, dataset.Aware},
	{dataset.ToolTerraform, dataset.Unaware},
	{dataset.ToolCloudFormation, dataset.Aware},
	{dataset.ToolCloudFormation, dataset.Unaware},
}

// Result holds the drawn sample and the residual population. Samples is
// keyed by the synthetic "{tool}_{awareness}_{index}" label; Residual
// is the input minus the sampled entries, order preserved.
type Result struct {
	Samples  map[string]dataset.Entry
	Residual []dataset.Entry
}

// Draw selects size entries without replacement, spread fairly over the
// eligible (tool, awareness) buckets. Entries are eligible when their
// tool is terraform or cloudformation and they have more than one
// finding; buckets with fewer than ten eligible entries receive no
// samples. The draw is a partition of the input: sampled entries leave
// the residual by identity, not by re-filtering.
//
// ok is false when no bucket is eligible; the caller should treat that
// as a stage abort and leave its dataset untouched.
func Draw(entries []dataset.Entry, size int, rng *rand.Rand) (result Result, ok bool) {
	if size <= 0 {
		size = DefaultSize
	}

	// Bucket indices into the input so removal works by identity.
	indices := make(map[bucket][]int, len(fixedBuckets))
	for i, entry := range entries {
		if entry.Tool != dataset.ToolTerraform && entry.Tool != dataset.ToolCloudFormation {
			continue
		}
		if len(entry.FailedChecks) <= 1 {
			continue
		}
		b := bucket{entry.Tool, entry.CostAwareness}
		indices[b] = append(indices[b], i)
	}

	var eligible []bucket
	for _, b := range fixedBuckets {
		if len(indices[b]) >= minBucketSize {
			eligible = append(eligible, b)
		}
	}
	if len(eligible) == 0 {
		return Result{}, false
	}

	// Fair split: every eligible bucket gets the base amount, and the
	// remainder goes to buckets chosen uniformly without replacement.
	base := size / len(eligible)
	remainder := size % len(eligible)

	assigned := make(map[bucket]int, len(eligible))
	for _, b := range eligible {
		assigned[b] = base
	}
	for _, i := range rng.Perm(len(eligible))[:remainder] {
		assigned[eligible[i]]++
	}

	samples := make(map[string]dataset.Entry)
	sampled := make(map[int]bool)
	for _, b := range eligible {
		pool := indices[b]
		count := assigned[b]
		if count > len(pool) {
			count = len(pool)
		}

		for drawOrder, pi := range rng.Perm(len(pool))[:count] {
			idx := pool[pi]
			label := fmt.Sprintf("%s_%s_%d", b.tool, b.awareness, drawOrder)
			samples[label] = entries[idx]
			sampled[idx] = true
		}
	}

	residual := make([]dataset.Entry, 0, len(entries)-len(sampled))
	for i, entry := range entries {
		if !sampled[i] {
			residual = append(residual, entry)
		}
	}

	return Result{Samples: samples, Residual: residual}, true
}
