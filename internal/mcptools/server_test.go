package mcptools

import (
	"context"
	"testing"
	"time"

	"github.com/colmerge/colmerge/internal/source"
	"github.com/stretchr/testify/require"
)

func TestRunMCPServer_ShutdownOnContextCancel(t *testing.T) {
	svc := NewMergeService(source.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- RunMCPServer(ctx, svc, "127.0.0.1:0")
	}()

	// Give the listener a moment to start, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err, "graceful shutdown should not surface as an error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
