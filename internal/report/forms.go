package report

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/logging"
)

// formLinks maps a check-combination key to its pre-registered
// follow-up survey. Keys are the numeric suffixes of the triggered
// check identifiers, deduplicated, sorted numerically, and joined
// with underscores.
var formLinks = map[string]string{
	"61":                 "https://forms.gle/fbABPxtqeirbcQ8F8",
	"61_804":             "https://forms.gle/J5b8wJyYwJb83ZuH9",
	"805":                "https://forms.gle/LoLAimD3gZhBdEC58",
	"807":                "https://forms.gle/6gXNCmRDy8SeA5b48",
	"805_807":            "https://forms.gle/FUGYfN2QK4rV8cGv7",
	"61_801_803_804":     "https://forms.gle/KXtXmKRJL43yMVDV6",
	"61_801_802":         "https://forms.gle/9Xsv15EPdWmE8Sb88",
	"61_801_802_803_804": "https://forms.gle/MpX2wwJmneJC1r519",
	"803":                "https://forms.gle/KW2Str5yYF1mthrX9",
	"61_801_803":         "https://forms.gle/Fk6DAuKhkCNq1SAw9",
	"61_801_802_803":     "https://forms.gle/DGoaAQMtjDPCuir38",
	"61_801_802_804":     "https://forms.gle/2sCReoQ4PQ4pGEd69",
	"805_806":            "https://forms.gle/VwzA2JHcn3iDJeAw6",
	"805_806_807":        "https://forms.gle/WNqfyKohGbtPsHhB7",
	"806":                "https://forms.gle/SaqbendkYcZZvJhs8",
	"801":                "https://forms.gle/5AGovnZJWXanMEdR9",
	"801_802":            "https://forms.gle/VhsjYGBiQPCjyp219",
	"61_801":             "https://forms.gle/7NBiM3bJxCZEjxE29",
}

var checkSuffixPattern = regexp.MustCompile(`(\d+)$`)

// FormKey derives the combination key for an entry from the numeric
// suffixes of its triggered check identifiers.
func FormKey(entry dataset.Entry) string {
	suffixes := make(map[string]bool)
	for _, f := range entry.FailedChecks {
		if f.CheckID == "" {
			continue
		}
		if m := checkSuffixPattern.FindStringSubmatch(f.CheckID); m != nil {
			suffixes[m[1]] = true
		}
	}

	keys := make([]string, 0, len(suffixes))
	for s := range suffixes {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	return strings.Join(keys, "_")
}

// AssociateForms attaches the registered survey link to every entry, in
// place. A combination with no registered form gets a nil link and a
// logged miss.
func AssociateForms(entries []dataset.Entry, runLog *logging.RunLog) {
	for i := range entries {
		key := FormKey(entries[i])
		if link, ok := formLinks[key]; ok {
			entries[i].FormLink = &link
		} else {
			entries[i].FormLink = nil
			runLog.Printf("Form link not found for key: %s", key)
		}
	}
}
