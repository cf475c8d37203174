// Package order merges partial orderings of unique labels into one total
// order. BuildRelation derives a transitively-closed precedence relation
// from the input sequences; Order sorts the label set under a comparator
// built from that relation; Merge composes the two.
//
// The typical use is combining CSV header lists collected from different
// sources into one consistent superset ordering.
package order

import "slices"

// Merge combines several ordered sequences of unique labels into a single
// sequence that contains every distinct label exactly once and preserves
// every pairwise precedence implied, directly or transitively, by the
// inputs.
//
// The input must be non-empty, each sequence must be non-empty and free of
// duplicates, and the union of implied orderings must be acyclic and
// non-contradictory; otherwise an error wrapping ErrInvalidInput is
// returned and no partial result is produced.
func Merge(sequences [][]string) ([]string, error) {
	rel, err := BuildRelation(sequences)
	if err != nil {
		return nil, err
	}
	return Order(rel), nil
}

// Order produces the merged sequence for a built relation: a stable sort
// of the label set under the relation's three-way comparator, followed by
// a repair pass for the pairs the sort alone cannot honor. Labels with no
// recorded relation either way compare equal, so the stable sort keeps
// them in first-seen enumeration order: deterministic for identical input,
// otherwise unspecified. A topological sort would group unrelated labels
// differently and must not be substituted here.
func Order(rel *Relation) []string {
	merged := rel.Labels()
	slices.SortStableFunc(merged, rel.Compare)
	repairOrder(rel, merged)
	return merged
}

// repairOrder restores recorded precedences the stable sort left violated.
// The comparator describes only a partial order: incomparability is not
// transitive, so unrelated labels sitting between two related ones can
// keep the sort from ever comparing that pair. Each step finds the
// leftmost position holding a label that some later label must precede and
// moves the first such later label directly in front of it. Picking the
// first offender means no label it passes over is required to precede it,
// so a step never creates a new violation and the loop terminates.
func repairOrder(rel *Relation, merged []string) {
	for {
		j, i := findViolation(rel, merged)
		if j < 0 {
			return
		}
		label := merged[i]
		copy(merged[j+1:i+1], merged[j:i])
		merged[j] = label
	}
}

// findViolation returns the leftmost position j holding a label that a
// later label, at the returned position i, must precede. Returns -1, -1
// when every recorded relation is honored.
func findViolation(rel *Relation, merged []string) (int, int) {
	for j, earlier := range merged {
		for i := j + 1; i < len(merged); i++ {
			if rel.Precedes(merged[i], earlier) {
				return j, i
			}
		}
	}
	return -1, -1
}

// Compare is a three-way comparator over the relation: negative when a
// must precede b, positive when b must precede a, zero when the relation
// records neither.
func (r *Relation) Compare(a, b string) int {
	switch {
	case r.Precedes(a, b):
		return -1
	case r.Precedes(b, a):
		return 1
	default:
		return 0
	}
}
