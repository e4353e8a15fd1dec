// Package facts implements the fixed-fact tools: mortgage interest
// deduction rate, national mortgage guarantee (NHG) limit, and property
// transfer tax. These tools perform no network I/O.
package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/Javier162380/abn-amro-mcp/llmutils"
	"github.com/Javier162380/abn-amro-mcp/schema"
	"github.com/Javier162380/abn-amro-mcp/tools"
)

const (
	DeductionToolName   = "get-mortgage-interest-deduction"
	GuaranteeToolName   = "get-national-mortgage-guarantee"
	TransferTaxToolName = "calculate-property-transfer-tax"
)

// EmptyRequest is the input of the constant-fact tools.
type EmptyRequest struct{}

type DeductionResult struct {
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

type GuaranteeResult struct {
	Limit       float64 `json:"limit"`
	Description string  `json:"description"`
}

// TransferTaxRequest is the input of the transfer-tax tool.
type TransferTaxRequest struct {
	HousePrice float64 `json:"housePrice" yaml:"housePrice" jsonschema:"title=House Price,description=The purchase price of the house in euros" validate:"gte=0"`
}

func (r *TransferTaxRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.WithMessage(err, "invalid request")
	}
	return nil
}

type TransferTaxResult struct {
	HousePrice  float64 `json:"housePrice"`
	TaxQuota    float64 `json:"taxQuota"`
	Description string  `json:"description"`

	RequestParameters *TransferTaxRequest `json:"requestParameters"`
}

// DeductionTool returns the fixed mortgage interest deduction rate.
type DeductionTool struct{}

var _ tools.Tool[EmptyRequest, DeductionResult] = (*DeductionTool)(nil)
var _ tools.MCPTool[EmptyRequest] = (*DeductionTool)(nil)

func NewDeduction() *DeductionTool {
	return &DeductionTool{}
}

func (t *DeductionTool) Name() string {
	return DeductionToolName
}

func (t *DeductionTool) Description() string {
	return "Returns the maximum percentage at which mortgage interest is deductible in the Netherlands."
}

func (t *DeductionTool) Parameters() any {
	return emptyParameters()
}

func (t *DeductionTool) Run(ctx context.Context, req *EmptyRequest) (*DeductionResult, error) {
	return &DeductionResult{
		Percentage:  MortgageInterestDeductionRate,
		Description: fmt.Sprintf("Mortgage interest is deductible at a maximum rate of %.2f%%.", MortgageInterestDeductionRate),
	}, nil
}

func (t *DeductionTool) RunMCP(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	res, _ := t.Run(ctx, req)
	return tools.OK(res).Response(), nil
}

func (t *DeductionTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.Name(), t.Description(), func(args EmptyRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(context.Background(), &args)
	})
}

func (t *DeductionTool) Call(ctx context.Context, input string) (string, error) {
	res, _ := t.Run(ctx, &EmptyRequest{})
	return tools.OK(res).JSON(), nil
}

// GuaranteeTool returns the fixed NHG cost limit.
type GuaranteeTool struct{}

var _ tools.Tool[EmptyRequest, GuaranteeResult] = (*GuaranteeTool)(nil)
var _ tools.MCPTool[EmptyRequest] = (*GuaranteeTool)(nil)

func NewGuarantee() *GuaranteeTool {
	return &GuaranteeTool{}
}

func (t *GuaranteeTool) Name() string {
	return GuaranteeToolName
}

func (t *GuaranteeTool) Description() string {
	return "Returns the cost limit of the national mortgage guarantee (NHG) in euros."
}

func (t *GuaranteeTool) Parameters() any {
	return emptyParameters()
}

func (t *GuaranteeTool) Run(ctx context.Context, req *EmptyRequest) (*GuaranteeResult, error) {
	return &GuaranteeResult{
		Limit:       NationalMortgageGuaranteeLimit,
		Description: fmt.Sprintf("The national mortgage guarantee (NHG) applies to mortgages up to %.0f euros.", NationalMortgageGuaranteeLimit),
	}, nil
}

func (t *GuaranteeTool) RunMCP(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	res, _ := t.Run(ctx, req)
	return tools.OK(res).Response(), nil
}

func (t *GuaranteeTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.Name(), t.Description(), func(args EmptyRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(context.Background(), &args)
	})
}

func (t *GuaranteeTool) Call(ctx context.Context, input string) (string, error) {
	res, _ := t.Run(ctx, &EmptyRequest{})
	return tools.OK(res).JSON(), nil
}

// TransferTaxTool computes the property transfer tax for a house price.
type TransferTaxTool struct{}

const transferTaxErrPrefix = "Failed to calculate property transfer tax"

var _ tools.Tool[TransferTaxRequest, TransferTaxResult] = (*TransferTaxTool)(nil)
var _ tools.MCPTool[TransferTaxRequest] = (*TransferTaxTool)(nil)

func NewTransferTax() *TransferTaxTool {
	return &TransferTaxTool{}
}

func (t *TransferTaxTool) Name() string {
	return TransferTaxToolName
}

func (t *TransferTaxTool) Description() string {
	return "Calculates the property transfer tax for a house price, applying the starter exemption limit."
}

func (t *TransferTaxTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(TransferTaxRequest{}))
	return sc.Parameters
}

func (t *TransferTaxTool) Run(ctx context.Context, req *TransferTaxRequest) (*TransferTaxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var tax float64
	if req.HousePrice > TransferTaxExemptionLimit {
		tax = req.HousePrice * TransferTaxRate
	}

	return &TransferTaxResult{
		HousePrice:        req.HousePrice,
		TaxQuota:          tax,
		Description:       fmt.Sprintf("Houses up to %.0f euros are exempt from property transfer tax; above that a rate of %.0f%% applies.", TransferTaxExemptionLimit, TransferTaxRate*100),
		RequestParameters: req,
	}, nil
}

func (t *TransferTaxTool) RunMCP(ctx context.Context, req *TransferTaxRequest) (*mcp.ToolResponse, error) {
	res, err := t.Run(ctx, req)
	if err != nil {
		return tools.Failure(transferTaxErrPrefix, err).Response(), nil
	}
	return tools.OK(res).Response(), nil
}

func (t *TransferTaxTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.Name(), t.Description(), func(args TransferTaxRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(context.Background(), &args)
	})
}

func (t *TransferTaxTool) Call(ctx context.Context, input string) (string, error) {
	var req TransferTaxRequest
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	res, err := t.Run(ctx, &req)
	if err != nil {
		return tools.Failure(transferTaxErrPrefix, err).JSON(), nil
	}
	return tools.OK(res).JSON(), nil
}

func emptyParameters() any {
	sc, _ := schema.New(reflect.TypeOf(EmptyRequest{}))
	return sc.Parameters
}
