package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidInput reports a violation of the merge preconditions: an empty
// input, a duplicate label within one sequence, or an ordering that is
// cyclic or contradictory across sequences.
var ErrInvalidInput = errors.New("invalid input")

// Relation is the transitively-closed "precedes" relation over the labels
// of a set of input sequences. It is built once by BuildRelation and
// immutable afterward.
type Relation struct {
	precedes map[string]map[string]bool
	labels   []string // first-seen order across all sequences
	rules    int
}

// BuildRelation derives a Relation from the given sequences.
//
// For every sequence, every pair of positions i<j records a direct rule
// "seq[i] precedes seq[j]" — all pairs, not just neighbors. The rules are
// then closed transitively so that chains connecting only through different
// sequences become visible. Direct rules are already pairwise complete per
// sequence, so the closure only has cross-sequence stitching left to do;
// it runs to a fixpoint regardless rather than relying on that.
func BuildRelation(sequences [][]string) (*Relation, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("%w: no sequences given", ErrInvalidInput)
	}

	r := &Relation{precedes: make(map[string]map[string]bool)}

	for si, seq := range sequences {
		if len(seq) == 0 {
			return nil, fmt.Errorf("%w: sequence %d is empty", ErrInvalidInput, si)
		}

		seen := make(map[string]bool, len(seq))
		for _, label := range seq {
			if seen[label] {
				return nil, fmt.Errorf("%w: sequence %d contains %q more than once", ErrInvalidInput, si, label)
			}
			seen[label] = true
			if _, ok := r.precedes[label]; !ok {
				r.precedes[label] = make(map[string]bool)
				r.labels = append(r.labels, label)
			}
		}

		// Direct rules for every pair of positions, so a length-1 sequence
		// contributes no rules but its label is still registered above.
		for i, earlier := range seq {
			for _, later := range seq[i+1:] {
				r.precedes[earlier][later] = true
			}
		}
	}

	r.close()

	// A label preceding itself proves a cycle or a contradictory pair:
	// A-before-B plus B-before-A closes to A-before-A.
	var cyclic []string
	for _, label := range r.labels {
		if r.precedes[label][label] {
			cyclic = append(cyclic, label)
		}
	}
	if len(cyclic) > 0 {
		sort.Strings(cyclic)
		return nil, fmt.Errorf("%w: ordering is cyclic or contradictory through %s",
			ErrInvalidInput, strings.Join(cyclic, ", "))
	}

	for _, succs := range r.precedes {
		r.rules += len(succs)
	}

	return r, nil
}

// close expands the relation to its transitive closure. Each pass works
// from a snapshot of the successor sets taken at the start of the pass, so
// the result does not depend on map iteration order; passes repeat until a
// fixpoint.
func (r *Relation) close() {
	for {
		snapshot := make(map[string][]string, len(r.precedes))
		for label, succs := range r.precedes {
			keys := make([]string, 0, len(succs))
			for s := range succs {
				keys = append(keys, s)
			}
			snapshot[label] = keys
		}

		changed := false
		for label, succs := range snapshot {
			set := r.precedes[label]
			for _, mid := range succs {
				for _, far := range snapshot[mid] {
					if !set[far] {
						set[far] = true
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

// Precedes reports whether a must appear before b.
func (r *Relation) Precedes(a, b string) bool {
	return r.precedes[a][b]
}

// Labels returns every distinct label observed in the input, in first-seen
// order. The caller owns the returned slice.
func (r *Relation) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// RuleCount returns the number of ordered pairs recorded after closure.
func (r *Relation) RuleCount() int {
	return r.rules
}

// Successors returns the labels that label must precede, sorted for stable
// reporting. Unknown labels yield nil.
func (r *Relation) Successors(label string) []string {
	succs, ok := r.precedes[label]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(succs))
	for s := range succs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
