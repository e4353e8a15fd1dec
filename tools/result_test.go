package tools_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Javier162380/abn-amro-mcp/tools"
)

func Test_ToolResult_JSON(t *testing.T) {
	res := tools.OK(map[string]any{"limit": 450000})
	exp := `{
  "success": true,
  "data": {
    "limit": 450000
  }
}`
	assert.Equal(t, exp, res.JSON())

	res = tools.Failure("Failed to calculate interest rate", errors.New("API request failed with status 500: boom"))
	exp = `{
  "success": false,
  "error": "Failed to calculate interest rate: API request failed with status 500: boom"
}`
	assert.Equal(t, exp, res.JSON())
}

func Test_ToolResult_Response(t *testing.T) {
	resp := tools.OK(nil).Response()
	assert.Len(t, resp.Content, 1)
	assert.Contains(t, resp.Content[0].TextContent.Text, `"success": true`)
}
