package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"redpoint/internal/application/commands"
	"redpoint/internal/ports"
)

// RegisterWriteTools adds all mutating redpoint tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, sess *Session) {
	s.AddTool(setCountTool(), setCountHandler(sess))
	s.AddTool(applyTool(), applyHandler(sess))
	s.AddTool(insertNodeTool(), insertNodeHandler(sess))
	s.AddTool(refreshTool(), refreshHandler(sess))
}

// --- set_count ---

func setCountTool() mcp.Tool {
	return mcp.NewTool("set_count",
		mcp.WithDescription("Set the own redpoint count of a node. Negative counts are clamped to 0; ancestors are recalculated unless propagate is false."),
		mcp.WithString("path",
			mcp.Description("Node path (e.g. AllRoot/Root/ModelA/ModelA_Sub_1)"),
			mcp.Required(),
		),
		mcp.WithNumber("count",
			mcp.Description("New own count"),
			mcp.Required(),
		),
		mcp.WithBoolean("propagate",
			mcp.Description("Recalculate and notify ancestors (default true)"),
		),
	)
}

func setCountHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		count := req.GetInt("count", 0)
		propagate := req.GetBool("propagate", true)

		var result *commands.SetResult
		err := sess.Do(func(r ports.Redpoints) error {
			cmd := commands.NewSetCountCommand(r, path, count)
			cmd.Propagate = propagate
			var err error
			result, err = cmd.Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- apply ---

func applyTool() mcp.Tool {
	return mcp.NewTool("apply",
		mcp.WithDescription("Apply several path=count assignments in order, one per line."),
		mcp.WithString("assignments",
			mcp.Description("Newline separated path=count pairs"),
			mcp.Required(),
		),
	)
}

func applyHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var assignments []string
		for _, line := range strings.Split(req.GetString("assignments", ""), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				assignments = append(assignments, line)
			}
		}

		var results []*commands.SetResult
		err := sess.Do(func(r ports.Redpoints) error {
			var err error
			results, err = commands.NewApplyCommand(r, assignments).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, func(res *commands.SetResult) string { return res.Message })
	}
}

// --- insert_node ---

func insertNodeTool() mcp.Tool {
	return mcp.NewTool("insert_node",
		mcp.WithDescription("Add a node and any missing ancestors to the live tree. Existing paths are left unchanged."),
		mcp.WithString("path",
			mcp.Description("Node path starting at the root"),
			mcp.Required(),
		),
	)
}

func insertNodeHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		var result *commands.InsertResult
		err := sess.Do(func(r ports.Redpoints) error {
			var err error
			result, err = commands.NewInsertNodeCommand(r, path).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- refresh_all ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh_all",
		mcp.WithDescription("Recalculate every total and notify every observer."),
	)
}

func refreshHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		err := sess.Do(func(r ports.Redpoints) error {
			return r.RefreshAll()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Refreshed."), nil
	}
}
