package tools

import (
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/Javier162380/abn-amro-mcp/llmutils"
)

// ToolResult is the envelope returned by every tool invocation.
// Failure is conveyed through Success=false plus a human-readable message,
// never through an error crossing the MCP boundary.
type ToolResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps tool output in a successful envelope.
func OK(data any) *ToolResult {
	return &ToolResult{
		Success: true,
		Data:    data,
	}
}

// Failure wraps an error in a failed envelope with the tool's message prefix.
func Failure(prefix string, err error) *ToolResult {
	return &ToolResult{
		Success: false,
		Error:   prefix + ": " + err.Error(),
	}
}

// JSON renders the envelope with 2-space indentation.
func (r *ToolResult) JSON() string {
	return llmutils.ToJSONIndent2(r)
}

// Response renders the envelope into a single MCP text content block.
func (r *ToolResult) Response() *mcp.ToolResponse {
	return mcp.NewToolResponse(mcp.NewTextContent(r.JSON()))
}
