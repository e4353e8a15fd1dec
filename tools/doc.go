// Package tools defines the Tool interface for mortgage-calculation tools,
// including registration, parameter schema, MCP integration, and the uniform
// result envelope every tool returns. Tools let an MCP client invoke the
// ABN AMRO mortgage APIs in a structured, validated way.
package tools
