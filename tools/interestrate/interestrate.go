// Package interestrate implements the calculate-interest-rate tool over
// the ABN AMRO interest-rate calculation API.
package interestrate

import (
	"context"
	"encoding/json"
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/Javier162380/abn-amro-mcp/internal/hypotheken"
	"github.com/Javier162380/abn-amro-mcp/llmutils"
	"github.com/Javier162380/abn-amro-mcp/schema"
	"github.com/Javier162380/abn-amro-mcp/tools"
)

const ToolName = "calculate-interest-rate"

const errPrefix = "Failed to calculate interest rate"

// Request is the tool input. Defaults: no discounts, active periods only.
type Request struct {
	Product         hypotheken.Product       `json:"product" yaml:"product" jsonschema:"title=Product,description=The mortgage product,enum=BUDGET,enum=WONING" validate:"required,oneof=BUDGET WONING"`
	RepaymentType   hypotheken.RepaymentType `json:"repaymentType" yaml:"repaymentType" jsonschema:"title=Repayment Type,description=The mortgage repayment scheme,enum=ANNUITAIR,enum=LINEAIR,enum=AFLOSSINGSVRIJ" validate:"required,oneof=ANNUITAIR LINEAIR AFLOSSINGSVRIJ"`
	Discounts       []hypotheken.Discount    `json:"discounts,omitempty" yaml:"discounts,omitempty" jsonschema:"title=Discounts,description=Discounts to apply to the calculation"`
	IncludeInactive bool                     `json:"includeInactive,omitempty" yaml:"includeInactive,omitempty" jsonschema:"title=Include Inactive,description=Include inactive rate periods in the response"`
}

// Validate checks the request against the input schema and applies
// defaults. It must pass before any request is sent upstream.
func (r *Request) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.WithMessage(err, "invalid request")
	}
	for i := range r.Discounts {
		if err := r.Discounts[i].Validate(); err != nil {
			return errors.WithMessagef(err, "invalid discount at index %d", i)
		}
	}
	if r.Discounts == nil {
		r.Discounts = []hypotheken.Discount{}
	}
	return nil
}

// Result is the normalized calculation outcome.
type Result struct {
	BridgingCredit *BridgingCredit `json:"bridgingCredit"`
	Periods        []Period        `json:"periods"`

	// legacy provider fields, passed through when present
	InterestRate     *float64 `json:"interestRate,omitempty"`
	EffectiveRate    *float64 `json:"effectiveRate,omitempty"`
	BaseRate         *float64 `json:"baseRate,omitempty"`
	AppliedDiscounts any      `json:"appliedDiscounts,omitempty"`
	CalculationDate  *string  `json:"calculationDate,omitempty"`

	RequestParameters *Request `json:"requestParameters"`
}

type BridgingCredit struct {
	Rate          *float64 `json:"rate"`
	RateSheetDate *string  `json:"rateSheetDate"`
	Options       any      `json:"options"`
}

type Period struct {
	Duration         int     `json:"duration"`
	DurationInYears  float64 `json:"durationInYears"`
	Inactive         bool    `json:"inactive"`
	Type             *string `json:"type"`
	ReflectionPeriod any     `json:"reflectionPeriod"`
	Rates            Rates   `json:"rates"`
}

type Rates struct {
	NHG         *RateEntry  `json:"nhg"`
	LoanToValue []RateEntry `json:"loanToValue"`
}

type RateEntry struct {
	Range any      `json:"range"`
	Rate  *float64 `json:"rate"`
}

// Tool calls the interest-rate calculation API.
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
		description: "Calculates the ABN AMRO mortgage interest rate for a product and repayment type, with optional discounts.",
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

	apiReq := &hypotheken.CalculationRequest{
		Product:       req.Product,
		RepaymentType: req.RepaymentType,
		Discounts:     req.Discounts,
	}
	apiRes, err := t.client.CalculateInterestRate(ctx, apiReq, req.IncludeInactive)
	if err != nil {
		return nil, err
	}

	return mapResponse(req, apiRes), nil
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

func mapResponse(req *Request, api *hypotheken.InterestRateResponse) *Result {
	res := &Result{
		Periods:           make([]Period, 0, len(api.InterestRatePeriods)),
		InterestRate:      api.InterestRate,
		EffectiveRate:     api.EffectiveRate,
		BaseRate:          api.BaseRate,
		AppliedDiscounts:  api.AppliedDiscounts,
		CalculationDate:   api.CalculationDate,
		RequestParameters: req,
	}

	res.BridgingCredit = &BridgingCredit{}
	if bc := api.BridgingCreditInterestRate; bc != nil {
		res.BridgingCredit.Rate = bc.Rate
		res.BridgingCredit.RateSheetDate = bc.RateSheetDate
		res.BridgingCredit.Options = bc.Options
	}

	for _, p := range api.InterestRatePeriods {
		period := Period{
			Duration:         p.Duration,
			DurationInYears:  durationInYears(p.Duration),
			Inactive:         p.Inactive,
			Type:             p.Type,
			ReflectionPeriod: p.ReflectionPeriod,
			Rates: Rates{
				LoanToValue: make([]RateEntry, 0, len(p.InterestRates)),
			},
		}
		for _, r := range p.InterestRates {
			switch r.Type {
			case hypotheken.RateTypeNHG:
				// first NHG entry wins; the provider is not expected to
				// return duplicates
				if period.Rates.NHG == nil {
					period.Rates.NHG = &RateEntry{Range: r.Range, Rate: r.Rate}
				}
			case hypotheken.RateTypeLoanToValue:
				period.Rates.LoanToValue = append(period.Rates.LoanToValue, RateEntry{Range: r.Range, Rate: r.Rate})
			}
		}
		res.Periods = append(res.Periods, period)
	}

	return res
}

// durationInYears converts months to years with one-decimal rounding.
func durationInYears(months int) float64 {
	return math.Round(float64(months)/12*10) / 10
}
