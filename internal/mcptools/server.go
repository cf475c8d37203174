package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewMergeMCPServer creates an MCP server with the order-merge tools registered.
func NewMergeMCPServer(svc *MergeService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "colmerge",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_orders",
		Description: "Merge several ordered label sequences (e.g. CSV header lists) into one superset ordering that preserves every pairwise precedence implied by the inputs, with duplicates removed.",
	}, svc.MergeOrders)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain_order",
		Description: "Report whether one label must precede another under the merged relation, and the shortest chain of direct rules forcing it.",
	}, svc.ExplainOrder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "relation_stats",
		Description: "Summarize the transitively-closed precedence relation: label count, rule count, unrelated pairs, and per-label successor counts.",
	}, svc.RelationStats)

	return server
}

// RunMCPServer starts an HTTP server exposing the order-merge MCP tools.
func RunMCPServer(ctx context.Context, svc *MergeService, addr string) error {
	server := NewMergeMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
