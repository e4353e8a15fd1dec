package maxmortgage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Javier162380/abn-amro-mcp/internal/hypotheken"
	"github.com/Javier162380/abn-amro-mcp/tools"
	"github.com/Javier162380/abn-amro-mcp/tools/maxmortgage"
)

func newTool(t *testing.T, handler http.HandlerFunc) *maxmortgage.Tool {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := hypotheken.NewClient().WithBaseURL(server.URL).WithHTTPClient(server.Client())
	return maxmortgage.New(client)
}

func Test_Tool(t *testing.T) {
	var gotQuery string

	tool := newTool(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{
			"value": {"maximumMortgage": 385000, "monthlyPayment": 1650.25, "interest": 3.92},
			"messages": ["Indicative calculation"]
		}`))
	})

	assert.Equal(t, maxmortgage.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "maximum")

	partner := 30000.0
	req := &maxmortgage.Request{MainIncome: 50000, PartnerIncome: &partner}

	res, err := tool.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "mainIncome=50000&partnerIncome=30000", gotQuery)
	assert.Equal(t, 385000.0, *res.MaximumMortgage)
	assert.Equal(t, 1650.25, *res.MonthlyPayment)
	assert.Equal(t, 3.92, *res.Interest)
	assert.Equal(t, []any{"Indicative calculation"}, res.Messages)
	assert.Empty(t, cmp.Diff(req, res.RequestParameters))
}

func Test_Tool_NoPartnerIncome(t *testing.T) {
	var gotQuery string
	tool := newTool(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	})

	res, err := tool.Run(context.Background(), &maxmortgage.Request{MainIncome: 50000})
	require.NoError(t, err)
	assert.Equal(t, "mainIncome=50000", gotQuery, "partnerIncome must be omitted when not supplied")

	// a loose upstream payload yields nulls, not a fault
	assert.Nil(t, res.MaximumMortgage)
	assert.Nil(t, res.MonthlyPayment)
	assert.Nil(t, res.Interest)
	assert.Empty(t, res.Messages)
}

func Test_Tool_Validation(t *testing.T) {
	tool := newTool(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be sent upstream for invalid input")
	})

	_, err := tool.Run(context.Background(), &maxmortgage.Request{MainIncome: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")

	negative := -5.0
	_, err = tool.Run(context.Background(), &maxmortgage.Request{MainIncome: 50000, PartnerIncome: &negative})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
}

func Test_Tool_RunMCP_Envelope(t *testing.T) {
	tool := newTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	})

	resp, err := tool.RunMCP(context.Background(), &maxmortgage.Request{MainIncome: 50000})
	require.NoError(t, err, "tool errors never cross the MCP boundary")

	require.Len(t, resp.Content, 1)
	var envelope tools.ToolResult
	require.NoError(t, json.Unmarshal([]byte(resp.Content[0].TextContent.Text), &envelope))
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "Failed to calculate maximum mortgage: ")
	assert.Contains(t, envelope.Error, "429")
	assert.Contains(t, envelope.Error, "rate limited")
}

func Test_Tool_Parameters(t *testing.T) {
	tool := maxmortgage.New(hypotheken.NewClient())

	bs, err := json.Marshal(tool.Parameters())
	require.NoError(t, err)

	var params map[string]any
	require.NoError(t, json.Unmarshal(bs, &params))

	props := params["properties"].(map[string]any)
	assert.Contains(t, props, "mainIncome")
	assert.Contains(t, props, "partnerIncome")

	required := params["required"].([]any)
	assert.Equal(t, []any{"mainIncome"}, required)
}
