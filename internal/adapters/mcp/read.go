package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"redpoint/internal/application/commands"
	"redpoint/internal/ports"
)

// RegisterReadTools adds all read-only redpoint tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, sess *Session) {
	s.AddTool(getCountTool(), getCountHandler(sess))
	s.AddTool(treeTool(), treeHandler(sess))
	s.AddTool(snapshotTool(), snapshotHandler(sess))
	s.AddTool(pathsTool(), pathsHandler(sess))
}

// --- get_count ---

func getCountTool() mcp.Tool {
	return mcp.NewTool("get_count",
		mcp.WithDescription("Read the redpoint count of a node. Unknown paths report 0."),
		mcp.WithString("path",
			mcp.Description("Node path (e.g. AllRoot/Root/ModelA)"),
			mcp.Required(),
		),
		mcp.WithBoolean("include_children",
			mcp.Description("Return the aggregated total instead of the node's own count (default true)"),
		),
	)
}

func getCountHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		includeChildren := req.GetBool("include_children", true)

		var result *commands.GetResult
		err := sess.Do(func(r ports.Redpoints) error {
			var err error
			result, err = commands.NewGetCountCommand(r, path).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		count := result.Total
		if !includeChildren {
			count = result.OwnCount
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s  %d", result.Path, count)), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the redpoint tree with the total of every node."),
	)
}

func treeHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var dump string
		err := sess.Do(func(r ports.Redpoints) error {
			var err error
			dump, err = commands.NewDumpTreeCommand(r).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(dump), nil
	}
}

// --- snapshot ---

func snapshotTool() mcp.Tool {
	return mcp.NewTool("snapshot",
		mcp.WithDescription("List every node path with its current total."),
	)
}

func snapshotHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var snap []commands.PathCount
		err := sess.Do(func(r ports.Redpoints) error {
			var err error
			snap, err = commands.NewSnapshotCommand(r).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return formatEntities(snap, formatPathCount)
	}
}

// --- paths ---

func pathsTool() mcp.Tool {
	return mcp.NewTool("paths",
		mcp.WithDescription("List every known node path."),
	)
}

func pathsHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var paths []string
		sess.Do(func(r ports.Redpoints) error {
			paths = r.Paths()
			return nil
		})
		return formatEntities(paths, func(p string) string { return p })
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatPathCount(pc commands.PathCount) string {
	return fmt.Sprintf("%s  %d", pc.Path, pc.Total)
}
