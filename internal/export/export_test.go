package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/colmerge/colmerge/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	sequences := [][]string{{"a", "b"}, {"b", "c"}}
	rel, err := order.BuildRelation(sequences)
	require.NoError(t, err)
	merged := order.Order(rel)

	report := BuildReport([]string{"a.csv", "b.csv"}, sequences, rel, merged)

	assert.Equal(t, 2, report.SequenceCount)
	assert.Equal(t, 3, report.LabelCount)
	assert.Equal(t, 3, report.RuleCount)
	assert.Equal(t, []string{"a", "b", "c"}, report.Merged)
	require.Len(t, report.Sources, 2)
	assert.Equal(t, "a.csv", report.Sources[0].Path)
	assert.Equal(t, []string{"b", "c"}, report.Sources[1].Labels)
	assert.NotEmpty(t, report.MergedAt)
}

func TestBuildReport_NoPaths(t *testing.T) {
	sequences := [][]string{{"x", "y"}}
	rel, err := order.BuildRelation(sequences)
	require.NoError(t, err)

	report := BuildReport(nil, sequences, rel, order.Order(rel))
	require.Len(t, report.Sources, 1)
	assert.Empty(t, report.Sources[0].Path)

	// Path must be omitted from the JSON when sequences are inline.
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"path"`)
}

func TestGenerateMermaid(t *testing.T) {
	got := GenerateMermaid([][]string{{"a", "b", "c"}, {"b", "d"}})

	assert.Contains(t, got, "graph LR\n")
	assert.Contains(t, got, `N0["a"]`)
	assert.Contains(t, got, `N1["b"]`)
	assert.Contains(t, got, `N2["c"]`)
	assert.Contains(t, got, `N3["d"]`)
	assert.Contains(t, got, "N0 --> N1")
	assert.Contains(t, got, "N1 --> N2")
	assert.Contains(t, got, "N1 --> N3")
}

func TestGenerateMermaid_DeduplicatesEdges(t *testing.T) {
	got := GenerateMermaid([][]string{{"a", "b"}, {"a", "b"}})

	assert.Equal(t, 1, strings.Count(got, "N0 --> N1"),
		"repeated adjacent pairs should produce one edge")
}
