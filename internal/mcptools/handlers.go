package mcptools

import (
	"context"
	"fmt"

	"github.com/colmerge/colmerge/internal/order"
	"github.com/colmerge/colmerge/internal/source"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MergeService handles MCP tool calls for the colmerge server mode.
type MergeService struct {
	opts source.Options
}

// NewMergeService creates a MergeService. opts govern how file inputs are
// parsed when a tool call passes paths instead of inline sequences.
func NewMergeService(opts source.Options) *MergeService {
	return &MergeService{opts: opts}
}

// collect resolves a tool call's input to label sequences, reading files
// when no inline sequences were given.
func (s *MergeService) collect(ctx context.Context, sequences [][]string, files []string) ([][]string, error) {
	switch {
	case len(sequences) > 0 && len(files) > 0:
		return nil, fmt.Errorf("pass either sequences or files, not both")
	case len(sequences) > 0:
		return sequences, nil
	case len(files) > 0:
		return source.ReadSequences(ctx, files, s.opts)
	default:
		return nil, fmt.Errorf("no sequences or files given")
	}
}

// MergeOrders merges the given sequences into one superset ordering.
// Precondition violations (contradictory or cyclic input) are reported in
// the output status rather than as transport errors.
func (s *MergeService) MergeOrders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MergeOrdersInput,
) (*mcp.CallToolResult, MergeOrdersOutput, error) {
	sequences, err := s.collect(ctx, input.Sequences, input.Files)
	if err != nil {
		return nil, MergeOrdersOutput{}, err
	}

	rel, err := order.BuildRelation(sequences)
	if err != nil {
		return nil, MergeOrdersOutput{Status: "failed", Message: err.Error()}, nil
	}

	merged := order.Order(rel)
	return nil, MergeOrdersOutput{
		Merged:     merged,
		LabelCount: len(merged),
		RuleCount:  rel.RuleCount(),
		Status:     "completed",
	}, nil
}

// ExplainOrder reports whether one label must precede another and, if so,
// the shortest chain of direct rules that forces it.
func (s *MergeService) ExplainOrder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExplainOrderInput,
) (*mcp.CallToolResult, ExplainOrderOutput, error) {
	if input.From == "" || input.To == "" {
		return nil, ExplainOrderOutput{}, fmt.Errorf("both from and to labels are required")
	}

	sequences, err := s.collect(ctx, input.Sequences, input.Files)
	if err != nil {
		return nil, ExplainOrderOutput{}, err
	}

	rel, err := order.BuildRelation(sequences)
	if err != nil {
		return nil, ExplainOrderOutput{}, err
	}

	known := make(map[string]bool)
	for _, label := range rel.Labels() {
		known[label] = true
	}
	for _, label := range []string{input.From, input.To} {
		if !known[label] {
			return nil, ExplainOrderOutput{}, fmt.Errorf("unknown label %q", label)
		}
	}

	out := ExplainOrderOutput{}
	switch {
	case rel.Precedes(input.From, input.To):
		out.Precedes = true
		out.Chain = shortestChain(sequences, input.From, input.To)
	case rel.Precedes(input.To, input.From):
		out.Reversed = true
		out.Chain = shortestChain(sequences, input.To, input.From)
	}
	return nil, out, nil
}

// RelationStats summarizes the closed relation built from the input.
func (s *MergeService) RelationStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RelationStatsInput,
) (*mcp.CallToolResult, RelationStatsOutput, error) {
	sequences, err := s.collect(ctx, input.Sequences, input.Files)
	if err != nil {
		return nil, RelationStatsOutput{}, err
	}

	rel, err := order.BuildRelation(sequences)
	if err != nil {
		return nil, RelationStatsOutput{}, err
	}

	labels := rel.Labels()
	successors := make(map[string]int, len(labels))
	for _, label := range labels {
		successors[label] = len(rel.Successors(label))
	}

	n := len(labels)
	return nil, RelationStatsOutput{
		LabelCount: n,
		RuleCount:  rel.RuleCount(),
		// Acyclic relations order each related pair one way only, so the
		// rule count equals the number of related unordered pairs.
		UnrelatedPairs: n*(n-1)/2 - rel.RuleCount(),
		Successors:     successors,
	}, nil
}

// shortestChain finds the shortest run of adjacent-pair rules connecting
// from to to, via BFS over the per-sequence adjacency graph. Same-sequence
// chains cover all of a sequence's pairwise rules, so a path exists for
// every closed relation entry.
func shortestChain(sequences [][]string, from, to string) []string {
	next := make(map[string][]string)
	for _, seq := range sequences {
		for i := 1; i < len(seq); i++ {
			next[seq[i-1]] = append(next[seq[i-1]], seq[i])
		}
	}

	parent := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]
		if label == to {
			break
		}
		for _, succ := range next[label] {
			if _, visited := parent[succ]; visited {
				continue
			}
			parent[succ] = label
			queue = append(queue, succ)
		}
	}

	if _, ok := parent[to]; !ok {
		return nil
	}

	var chain []string
	for label := to; label != ""; label = parent[label] {
		chain = append(chain, label)
	}
	// Reverse into precedence direction.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
