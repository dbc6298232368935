package cmd

import (
	"github.com/fuzzyrank/fuzzyrank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the fuzzyrank MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents rank decision problems
through the rank_alternatives, linguistic_scale and resize_problem tools.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}
