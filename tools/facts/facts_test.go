package facts_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Javier162380/abn-amro-mcp/tools"
	"github.com/Javier162380/abn-amro-mcp/tools/facts"
)

func Test_DeductionTool(t *testing.T) {
	tool := facts.NewDeduction()
	assert.Equal(t, facts.DeductionToolName, tool.Name())

	res, err := tool.Run(context.Background(), &facts.EmptyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 37.48, res.Percentage)
	assert.Contains(t, res.Description, "37.48%")

	resp, err := tool.RunMCP(context.Background(), &facts.EmptyRequest{})
	require.NoError(t, err)
	var envelope tools.ToolResult
	require.NoError(t, json.Unmarshal([]byte(resp.Content[0].TextContent.Text), &envelope))
	assert.True(t, envelope.Success)
}

func Test_GuaranteeTool(t *testing.T) {
	tool := facts.NewGuarantee()
	assert.Equal(t, facts.GuaranteeToolName, tool.Name())

	res, err := tool.Run(context.Background(), &facts.EmptyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 450000.0, res.Limit)
	assert.Contains(t, res.Description, "450000")
}

func Test_TransferTaxTool(t *testing.T) {
	tool := facts.NewTransferTax()
	assert.Equal(t, facts.TransferTaxToolName, tool.Name())

	tcases := []struct {
		price float64
		tax   float64
	}{
		{price: 0, tax: 0},
		{price: 300000, tax: 0},
		{price: 525000, tax: 0},
		{price: 525001, tax: 525001 * 0.02},
		{price: 600000, tax: 12000},
	}

	for _, tc := range tcases {
		res, err := tool.Run(context.Background(), &facts.TransferTaxRequest{HousePrice: tc.price})
		require.NoError(t, err)
		assert.Equal(t, tc.tax, res.TaxQuota, "housePrice=%v", tc.price)
		assert.Equal(t, tc.price, res.HousePrice)
		require.NotNil(t, res.RequestParameters)
		assert.Equal(t, tc.price, res.RequestParameters.HousePrice)
	}
}

func Test_TransferTaxTool_Validation(t *testing.T) {
	tool := facts.NewTransferTax()

	_, err := tool.Run(context.Background(), &facts.TransferTaxRequest{HousePrice: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")

	// validation failures are wrapped into the envelope over MCP
	resp, err := tool.RunMCP(context.Background(), &facts.TransferTaxRequest{HousePrice: -1})
	require.NoError(t, err)
	var envelope tools.ToolResult
	require.NoError(t, json.Unmarshal([]byte(resp.Content[0].TextContent.Text), &envelope))
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "Failed to calculate property transfer tax: ")
}

func Test_TransferTaxTool_Call(t *testing.T) {
	tool := facts.NewTransferTax()

	out, err := tool.Call(context.Background(), `{"housePrice": 600000}`)
	require.NoError(t, err)

	var envelope tools.ToolResult
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, 12000.0, data["taxQuota"])
}
