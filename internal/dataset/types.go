package dataset

// Tool identifies the IaC technology a dataset was collected for.
type Tool string

const (
	ToolTerraform      Tool = "terraform"
	ToolCloudFormation Tool = "cloudformation"
)

// Origin identifies which study population a dataset belongs to.
// Baseline is authoritative on duplicate conflicts.
type Origin string

const (
	OriginBaseline Origin = "baseline"
	OriginExtended Origin = "extended"
)

// Awareness is the binary cost-awareness label derived from commit history.
type Awareness string

const (
	Aware   Awareness = "aware"
	Unaware Awareness = "unaware"
)

// Finding is one violation instance reported by the external linter.
// Fields the pipeline does not interpret are passed through verbatim
// via the inline Extra map.
type Finding struct {
	CheckID       string         `yaml:"check_id"`
	CheckName     string         `yaml:"check_name,omitempty"`
	Description   string         `yaml:"check_description,omitempty"`
	FilePath      string         `yaml:"file_path,omitempty"`
	Resource      string         `yaml:"resource,omitempty"`
	FileLineRange []int          `yaml:"file_line_range,omitempty"`
	Extra         map[string]any `yaml:",inline"`
}

// Clone returns a deep copy of the finding.
func (f Finding) Clone() Finding {
	c := f
	if f.FileLineRange != nil {
		c.FileLineRange = append([]int(nil), f.FileLineRange...)
	}
	if f.Extra != nil {
		c.Extra = make(map[string]any, len(f.Extra))
		for k, v := range f.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// RawChecks wraps the linter output attached to a raw repository entry.
type RawChecks struct {
	FailedChecks []Finding `yaml:"failed_checks"`
}

// RawEntry is one repository as produced by the external linter run.
// A missing or empty checks block is valid and means no findings.
type RawEntry struct {
	Repo   string    `yaml:"repo"`
	Checks RawChecks `yaml:"checks"`
}

// RepoRecord is one repository from an activity input list. Keywords is
// populated by the keyword classifier for repositories with evidence.
type RepoRecord struct {
	Repo     string         `yaml:"repo"`
	Keywords []string       `yaml:"keywords,omitempty"`
	Extra    map[string]any `yaml:",inline"`
}

// Entry is one cleaned, enriched repository in a combined dataset.
type Entry struct {
	Repo              string    `yaml:"repo"`
	Tool              Tool      `yaml:"tool"`
	Origin            Origin    `yaml:"dataset"`
	FailedChecks      []Finding `yaml:"failed_checks"`
	FailedChecksCount int       `yaml:"failed_checks_count"`
	FilesCount        int       `yaml:"files_count"`
	ExampleCheck      *Finding  `yaml:"example_check,omitempty"`
	CostAwareness     Awareness `yaml:"cost_awareness"`
	FormLink          *string   `yaml:"form_link"`
}
