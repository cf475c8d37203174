//go:build e2e

package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/colmerge/colmerge/internal/export"
	"github.com/colmerge/colmerge/internal/order"
	"github.com/colmerge/colmerge/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipeline_MixedFormats runs the full load-build-merge-report chain over
// CSV and line-list inputs created on the fly.
func TestPipeline_MixedFormats(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.tsv"),
		filepath.Join(dir, "c.txt"),
	}
	require.NoError(t, os.WriteFile(paths[0], []byte("sku,title,price\n"), 0o644))
	require.NoError(t, os.WriteFile(paths[1], []byte("sku\tprice\tstock\n"), 0o644))
	require.NoError(t, os.WriteFile(paths[2], []byte("title\nvendor\n"), 0o644))

	ctx := context.Background()
	sequences, err := source.ReadSequences(ctx, paths, source.Options{})
	require.NoError(t, err)

	rel, err := order.BuildRelation(sequences)
	require.NoError(t, err)
	merged := order.Order(rel)

	assert.Equal(t, []string{"sku", "title", "price", "stock", "vendor"}, merged)

	report := export.BuildReport(paths, sequences, rel, merged)
	assert.Equal(t, 3, report.SequenceCount)
	assert.Equal(t, 5, report.LabelCount)
	assert.Equal(t, merged, report.Merged)
}

// TestPipeline_ContradictionFailsFast checks that a contradictory pair of
// inputs is rejected before any output is produced.
func TestPipeline_ContradictionFailsFast(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}
	require.NoError(t, os.WriteFile(paths[0], []byte("first,second\n"), 0o644))
	require.NoError(t, os.WriteFile(paths[1], []byte("second,first\n"), 0o644))

	sequences, err := source.ReadSequences(context.Background(), paths, source.Options{})
	require.NoError(t, err)

	_, err = order.Merge(sequences)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidInput)
}
