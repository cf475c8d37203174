package export

import (
	"fmt"
	"strings"
)

// GenerateMermaid renders the direct precedence graph of the input
// sequences as a Mermaid "graph LR" diagram. Each sequence contributes its
// adjacent pairs as edges; same-sequence chains imply the rest, and the
// transitive closure is far too dense to diagram.
func GenerateMermaid(sequences [][]string) string {
	// Build label → ID mapping for Mermaid (alphanumeric only), in
	// first-seen order.
	nodeIDs := make(map[string]string)
	var nodes []string
	nextID := 0
	getID := func(label string) string {
		if id, ok := nodeIDs[label]; ok {
			return id
		}
		id := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[label] = id
		nodes = append(nodes, label)
		return id
	}

	type edge struct{ from, to string }
	seen := make(map[edge]bool)
	var edges []edge

	for _, seq := range sequences {
		for i, label := range seq {
			getID(label)
			if i == 0 {
				continue
			}
			e := edge{from: seq[i-1], to: label}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, label := range nodes {
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", nodeIDs[label], label))
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", nodeIDs[e.from], nodeIDs[e.to]))
	}

	return sb.String()
}
