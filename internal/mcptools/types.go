package mcptools

// --- MCP Tool Types for the colmerge server mode (--serve-mcp) ---
// These tools let MCP clients merge header orderings through structured
// calls instead of shelling out to the binary.

// MergeOrdersInput is the input for the merge_orders MCP tool. Exactly one
// of Sequences or Files must be set.
type MergeOrdersInput struct {
	Sequences [][]string `json:"sequences,omitempty" jsonschema:"ordered label sequences to merge"`
	Files     []string   `json:"files,omitempty" jsonschema:"paths of files to read sequences from"`
}

// MergeOrdersOutput is the result of the merge_orders MCP tool.
type MergeOrdersOutput struct {
	Merged     []string `json:"merged,omitempty"`
	LabelCount int      `json:"labelCount"`
	RuleCount  int      `json:"ruleCount"`
	Status     string   `json:"status"` // "completed" or "failed"
	Message    string   `json:"message,omitempty"`
}

// ExplainOrderInput is the input for the explain_order MCP tool.
type ExplainOrderInput struct {
	Sequences [][]string `json:"sequences,omitempty" jsonschema:"ordered label sequences defining the relation"`
	Files     []string   `json:"files,omitempty" jsonschema:"paths of files to read sequences from"`
	From      string     `json:"from" jsonschema:"label expected to come first"`
	To        string     `json:"to" jsonschema:"label expected to come later"`
}

// ExplainOrderOutput is the result of the explain_order MCP tool.
type ExplainOrderOutput struct {
	// Precedes is true when From must appear before To.
	Precedes bool `json:"precedes"`

	// Reversed is true when the relation orders To before From instead.
	Reversed bool `json:"reversed"`

	// Chain is the shortest run of direct rules connecting the two labels,
	// in precedence direction. Empty when the labels are unrelated.
	Chain []string `json:"chain,omitempty"`
}

// RelationStatsInput is the input for the relation_stats MCP tool.
type RelationStatsInput struct {
	Sequences [][]string `json:"sequences,omitempty" jsonschema:"ordered label sequences defining the relation"`
	Files     []string   `json:"files,omitempty" jsonschema:"paths of files to read sequences from"`
}

// RelationStatsOutput is the result of the relation_stats MCP tool.
type RelationStatsOutput struct {
	LabelCount     int            `json:"labelCount"`
	RuleCount      int            `json:"ruleCount"`
	UnrelatedPairs int            `json:"unrelatedPairs"`
	Successors     map[string]int `json:"successors"` // label -> how many labels it must precede
}
