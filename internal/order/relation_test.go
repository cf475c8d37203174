package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRelation_PairwiseComplete(t *testing.T) {
	rel, err := BuildRelation([][]string{{"a", "b", "c", "d"}})
	require.NoError(t, err)

	// A 4-element sequence yields 6 direct rules, every pair of positions,
	// not just the 3 adjacent ones.
	assert.Equal(t, 6, rel.RuleCount())
	assert.True(t, rel.Precedes("a", "d"))
	assert.True(t, rel.Precedes("b", "d"))
	assert.False(t, rel.Precedes("d", "a"))
}

func TestBuildRelation_CrossSequenceClosure(t *testing.T) {
	// "a before b" comes from one sequence and "b before c" from another;
	// only the closure can make "a before c" visible.
	rel, err := BuildRelation([][]string{{"a", "b"}, {"b", "c"}})
	require.NoError(t, err)

	assert.True(t, rel.Precedes("a", "c"),
		"closure should stitch chains that connect through different sequences")
	assert.Equal(t, 3, rel.RuleCount())
}

func TestBuildRelation_LongChainClosure(t *testing.T) {
	rel, err := BuildRelation([][]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}})
	require.NoError(t, err)

	assert.True(t, rel.Precedes("a", "e"),
		"closure should reach a fixpoint, not stop after one pass")
	assert.Equal(t, []string{"b", "c", "d", "e"}, rel.Successors("a"))
}

func TestBuildRelation_SingletonSequence(t *testing.T) {
	rel, err := BuildRelation([][]string{{"a", "b"}, {"solo"}})
	require.NoError(t, err)

	// A length-1 sequence contributes no rules but its label still joins
	// the label set.
	assert.Contains(t, rel.Labels(), "solo")
	assert.Empty(t, rel.Successors("solo"))
	assert.Equal(t, 1, rel.RuleCount())
}

func TestBuildRelation_LabelsFirstSeenOrder(t *testing.T) {
	rel, err := BuildRelation([][]string{{"b", "c"}, {"a", "c"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, rel.Labels())

	// Mutating the returned slice must not affect the relation.
	labels := rel.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"b", "c", "a"}, rel.Labels())
}

func TestBuildRelation_EmptyInput(t *testing.T) {
	_, err := BuildRelation(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildRelation_EmptySequence(t *testing.T) {
	_, err := BuildRelation([][]string{{"a", "b"}, {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "sequence 1")
}

func TestBuildRelation_DuplicateLabelInSequence(t *testing.T) {
	_, err := BuildRelation([][]string{{"a", "b", "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestBuildRelation_ContradictoryPair(t *testing.T) {
	_, err := BuildRelation([][]string{{"a", "b"}, {"b", "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "cyclic or contradictory")
}

func TestBuildRelation_CycleAcrossSequences(t *testing.T) {
	_, err := BuildRelation([][]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "a, b, c",
		"error should name every label on the cycle")
}

func TestRelation_Successors_UnknownLabel(t *testing.T) {
	rel, err := BuildRelation([][]string{{"a", "b"}})
	require.NoError(t, err)
	assert.Nil(t, rel.Successors("nope"))
}
