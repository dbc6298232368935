package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fuzzyrank/fuzzyrank/core"
	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/outwriter"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleRankAlternatives(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Strict = request.GetBool("strict", cfg.Strict)
	steps := request.GetBool("steps", false)

	doc := request.GetString("problem", "")
	if strings.TrimSpace(doc) == "" {
		return mcp.NewToolResultError("problem is required"), nil
	}
	in, err := problem.Decode(strings.NewReader(doc))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	run, err := core.RankProblem(ctx, cfg, h.mgr, in)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid decision problem: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(outwriter.NewRankingDocument(run, steps), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLinguisticScale(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(outwriter.BuildScale(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleResizeProblem(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.Input
	if doc := request.GetString("problem", ""); strings.TrimSpace(doc) != "" {
		var err error
		if in, err = problem.Decode(strings.NewReader(doc)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	experts := request.GetInt("experts", 0)
	criteria := request.GetInt("criteria", 0)
	alternatives := request.GetInt("alternatives", 0)
	if experts < 0 || criteria < 0 || alternatives < 0 {
		return mcp.NewToolResultError("counts cannot be negative"), nil
	}
	experts = keepIfZero(experts, in.NumExperts)
	criteria = keepIfZero(criteria, in.NumCriteria)
	alternatives = keepIfZero(alternatives, in.NumAlternatives)
	if err := algo.CheckSize(experts, criteria, alternatives, h.baseCfg.Limits); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	if err := problem.Save(&sb, algo.Resize(in, experts, criteria, alternatives)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// keepIfZero returns current when the requested count n is zero.
func keepIfZero(n, current int) int {
	if n == 0 {
		return current
	}
	return n
}
