// Package mcp exposes the solver as a Model Context Protocol tool so agent
// clients can call it. The tool is served over streamable HTTP.
package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rhuss/mathsolver/pkg/api"
	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/transport"
)

// ToolName is the name of the solve tool.
const ToolName = "solve_math"

// SolveInput is the argument object of the solve tool.
type SolveInput struct {
	Question string `json:"question" jsonschema:"the math problem to solve, in plain text"`
}

// NewServer creates an MCP server with the solve tool backed by solver.
// The default transport middleware chain wraps the solver.
func NewServer(solver transport.QuestionSolver, version string) *mcp.Server {
	solver = transport.Default()(solver)

	server := mcp.NewServer(
		&mcp.Implementation{Name: "mathsolver", Version: version},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Solves a math problem step-by-step using a chain of AI and computational services",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, struct{}, error) {
		return solve(ctx, solver, input), struct{}{}, nil
	})

	return server
}

// solve runs one question through solver and converts the outcome to a
// tool result. Failures are reported in-band with IsError; server errors
// carry only the generic message.
func solve(ctx context.Context, solver transport.QuestionSolver, input SolveInput) *mcp.CallToolResult {
	debug.Log("mcp", "tool call", "tool", ToolName, "question_length", len(input.Question))

	resp, err := solver.SolveQuestion(ctx, &api.SolveRequest{Question: input.Question})
	if err != nil {
		debug.Log("mcp", "tool call failed", "tool", ToolName, "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: transport.PublicError(err).Message}},
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: resp.Result}},
	}
}

// Handler serves server over the streamable HTTP transport.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
