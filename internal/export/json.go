// Package export renders merge results for machine consumption: a JSON
// report and a Mermaid diagram of the precedence graph.
package export

import (
	"time"

	"github.com/colmerge/colmerge/internal/order"
)

// MergeReport is the top-level JSON export structure.
type MergeReport struct {
	MergedAt      string         `json:"mergedAt"`
	SequenceCount int            `json:"sequenceCount"`
	LabelCount    int            `json:"labelCount"`
	RuleCount     int            `json:"ruleCount"`
	Merged        []string       `json:"merged"`
	Sources       []SourceExport `json:"sources,omitempty"`
}

// SourceExport describes one input sequence.
type SourceExport struct {
	Path   string   `json:"path,omitempty"`
	Labels []string `json:"labels"`
}

// BuildReport assembles a MergeReport for a merged order produced from the
// given sequences. paths may be nil when the sequences did not come from
// files; otherwise paths[i] names the origin of sequences[i].
func BuildReport(paths []string, sequences [][]string, rel *order.Relation, merged []string) *MergeReport {
	report := &MergeReport{
		MergedAt:      time.Now().UTC().Format(time.RFC3339),
		SequenceCount: len(sequences),
		LabelCount:    len(merged),
		RuleCount:     rel.RuleCount(),
		Merged:        merged,
	}

	for i, seq := range sequences {
		src := SourceExport{Labels: seq}
		if i < len(paths) {
			src.Path = paths[i]
		}
		report.Sources = append(report.Sources, src)
	}

	return report
}
