// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the fuzzyrank MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Fuzzy TOPSIS Ranking Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: rank_alternatives ---
	s.AddTool(mcp.NewTool("rank_alternatives",
		mcp.WithDescription("Rank decision alternatives with fuzzy TOPSIS from linguistic expert ratings."),
		mcp.WithString("problem", mcp.Description("Decision problem as a YAML or JSON document with experts, criteria, alternatives, weights and assessments."), mcp.Required()),
		mcp.WithBoolean("strict", mcp.Description("Reject problems with unknown labels, mismatched shapes or too few entries instead of default-filling them.")),
		mcp.WithBoolean("steps", mcp.Description("Include every intermediate matrix of the computation.")),
	), h.handleRankAlternatives)

	// --- 2. Tool: linguistic_scale ---
	s.AddTool(mcp.NewTool("linguistic_scale",
		mcp.WithDescription("List the linguistic labels accepted in weights and assessments with their triangular fuzzy numbers."),
	), h.handleLinguisticScale)

	// --- 3. Tool: resize_problem ---
	s.AddTool(mcp.NewTool("resize_problem",
		mcp.WithDescription("Resize a decision problem, default-filling new cells and dropping cells outside the new bounds."),
		mcp.WithString("problem", mcp.Description("Decision problem as a YAML or JSON document. Omit to start from an empty problem.")),
		mcp.WithNumber("experts", mcp.Description("New number of experts (0 or omitted keeps the current count).")),
		mcp.WithNumber("criteria", mcp.Description("New number of criteria (0 or omitted keeps the current count).")),
		mcp.WithNumber("alternatives", mcp.Description("New number of alternatives (0 or omitted keeps the current count).")),
	), h.handleResizeProblem)

	return s
}

// StartMCPServer starts the fuzzyrank MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
