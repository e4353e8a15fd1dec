// Package maxmortgage implements the calculate-maximum-mortgage tool over
// the ABN AMRO mortgage orientation API.
package maxmortgage

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/Javier162380/abn-amro-mcp/internal/hypotheken"
	"github.com/Javier162380/abn-amro-mcp/llmutils"
	"github.com/Javier162380/abn-amro-mcp/schema"
	"github.com/Javier162380/abn-amro-mcp/tools"
)

const ToolName = "calculate-maximum-mortgage"

const errPrefix = "Failed to calculate maximum mortgage"

// Request is the tool input. An absent partner income means no partner,
// not a zero income.
type Request struct {
	MainIncome    float64  `json:"mainIncome" yaml:"mainIncome" jsonschema:"title=Main Income,description=Gross yearly income of the main applicant in euros" validate:"gte=0"`
	PartnerIncome *float64 `json:"partnerIncome,omitempty" yaml:"partnerIncome,omitempty" jsonschema:"title=Partner Income,description=Gross yearly income of the partner in euros" validate:"omitempty,gte=0"`
}

// Validate checks the request before any request is sent upstream.
func (r *Request) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.WithMessage(err, "invalid request")
	}
	return nil
}

// Result is the normalized estimation outcome.
type Result struct {
	MaximumMortgage *float64 `json:"maximumMortgage"`
	MonthlyPayment  *float64 `json:"monthlyPayment"`
	Interest        *float64 `json:"interest"`
	Messages        []any    `json:"messages"`

	RequestParameters *Request `json:"requestParameters"`
}

// Tool calls the quick mortgage calculation API.
type Tool struct {
	name        string
	description string

	client   *hypotheken.Client
	callback tools.Callback
}

var _ tools.Tool[Request, Result] = (*Tool)(nil)
var _ tools.MCPTool[Request] = (*Tool)(nil)

func New(client *hypotheken.Client) *Tool {
	return &Tool{
		name:        ToolName,
		description: "Estimates the maximum ABN AMRO mortgage for the given gross yearly incomes.",
		client:      client,
	}
}

func (t *Tool) WithCallback(cb tools.Callback) *Tool {
	t.callback = cb
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(Request{}))
	return sc.Parameters
}

// Run validates the request, calls the upstream API and maps the payload
// into the normalized result.
func (t *Tool) Run(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	apiRes, err := t.client.QuickMortgageCalculation(ctx, req.MainIncome, req.PartnerIncome)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Messages:          make([]any, 0, len(apiRes.Messages)),
		RequestParameters: req,
	}
	res.Messages = append(res.Messages, apiRes.Messages...)
	if v := apiRes.Value; v != nil {
		res.MaximumMortgage = v.MaximumMortgage
		res.MonthlyPayment = v.MonthlyPayment
		res.Interest = v.Interest
	}
	return res, nil
}

// RunMCP wraps Run into the result envelope. It never returns an error:
// any failure is conveyed through success=false.
func (t *Tool) RunMCP(ctx context.Context, req *Request) (*mcp.ToolResponse, error) {
	input := llmutils.ToJSON(req)
	if t.callback != nil {
		t.callback.OnToolStart(ctx, t, input)
	}

	res, err := t.Run(ctx, req)
	if err != nil {
		if t.callback != nil {
			t.callback.OnToolError(ctx, t, input, err)
		}
		return tools.Failure(errPrefix, err).Response(), nil
	}

	out := tools.OK(res)
	if t.callback != nil {
		t.callback.OnToolEnd(ctx, t, input, out.JSON())
	}
	return out.Response(), nil
}

// RegisterMCP registers the tool with an MCP server.
func (t *Tool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(args Request) (*mcp.ToolResponse, error) {
		return t.RunMCP(context.Background(), &args)
	})
}

// Call executes the tool with raw JSON input and returns the envelope as
// a JSON string.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req Request
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	res, err := t.Run(ctx, &req)
	if err != nil {
		return tools.Failure(errPrefix, err).JSON(), nil
	}
	return tools.OK(res).JSON(), nil
}
