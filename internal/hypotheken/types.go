package hypotheken

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Product is the mortgage product type accepted by the interest-rate API.
type Product string

const (
	ProductBudget Product = "BUDGET"
	ProductWoning Product = "WONING"
)

// RepaymentType is the mortgage repayment scheme.
type RepaymentType string

const (
	RepaymentAnnuitair      RepaymentType = "ANNUITAIR"
	RepaymentLineair        RepaymentType = "LINEAIR"
	RepaymentAflossingsvrij RepaymentType = "AFLOSSINGSVRIJ"
)

// DiscountType tags a discount variant. The set is closed: the upstream
// API accepts exactly these two.
type DiscountType string

const (
	DiscountBankAccount    DiscountType = "BANK_ACCOUNT"
	DiscountSustainability DiscountType = "SUSTAINABILITY"
)

// SustainabilityLabel is the energy label of a sustainability discount.
type SustainabilityLabel string

const (
	LabelB         SustainabilityLabel = "B"
	LabelAOrHigher SustainabilityLabel = "A_OR_HIGHER"
)

// Discount is a tagged union over the closed set of discount variants:
// a bank-account discount carries no label, a sustainability discount
// carries exactly one of the known energy labels.
type Discount struct {
	Type  DiscountType        `json:"type" yaml:"type" jsonschema:"title=Type,description=Discount type,enum=BANK_ACCOUNT,enum=SUSTAINABILITY"`
	Label SustainabilityLabel `json:"label,omitempty" yaml:"label,omitempty" jsonschema:"title=Label,description=Energy label for a SUSTAINABILITY discount,enum=B,enum=A_OR_HIGHER"`
}

// Validate rejects variants outside the closed union.
func (d Discount) Validate() error {
	switch d.Type {
	case DiscountBankAccount:
		if d.Label != "" {
			return errors.Errorf("label is not allowed for %s discount", d.Type)
		}
	case DiscountSustainability:
		switch d.Label {
		case LabelB, LabelAOrHigher:
		default:
			return errors.Errorf("unknown sustainability label: %q", string(d.Label))
		}
	default:
		return errors.Errorf("unknown discount type: %q", string(d.Type))
	}
	return nil
}

// MarshalJSON serializes the variant exhaustively; unknown variants never
// reach the wire.
func (d Discount) MarshalJSON() ([]byte, error) {
	switch d.Type {
	case DiscountBankAccount:
		return json.Marshal(struct {
			Type DiscountType `json:"type"`
		}{Type: d.Type})
	case DiscountSustainability:
		return json.Marshal(struct {
			Type  DiscountType        `json:"type"`
			Label SustainabilityLabel `json:"label"`
		}{Type: d.Type, Label: d.Label})
	}
	return nil, errors.Errorf("unknown discount type: %q", string(d.Type))
}

// Rate entry type tags used by the interest-rate API.
const (
	RateTypeNHG         = "NHG"
	RateTypeLoanToValue = "LOAN_TO_VALUE"
)

// CalculationRequest is the interest-rate calculation request body.
// The inactive flag travels as a query parameter, never in the body.
type CalculationRequest struct {
	Product       Product       `json:"product"`
	RepaymentType RepaymentType `json:"repaymentType"`
	Discounts     []Discount    `json:"discounts"`
}

// InterestRateResponse is the interest-rate calculation payload.
// The provider schema is loose; every field is absent-tolerant.
type InterestRateResponse struct {
	BridgingCreditInterestRate *BridgingCredit `json:"bridgingCreditInterestRate,omitempty"`
	InterestRatePeriods        []Period        `json:"interestRatePeriods,omitempty"`

	// legacy fields some provider versions still return
	InterestRate     *float64 `json:"interestRate,omitempty"`
	EffectiveRate    *float64 `json:"effectiveRate,omitempty"`
	BaseRate         *float64 `json:"baseRate,omitempty"`
	AppliedDiscounts any      `json:"appliedDiscounts,omitempty"`
	CalculationDate  *string  `json:"calculationDate,omitempty"`
}

type BridgingCredit struct {
	Rate          *float64 `json:"rate"`
	RateSheetDate *string  `json:"rateSheetDate"`
	Options       any      `json:"options"`
}

type Period struct {
	Duration         int        `json:"duration"`
	Inactive         bool       `json:"inactive"`
	Type             *string    `json:"type"`
	ReflectionPeriod any        `json:"reflectionPeriod"`
	InterestRates    []RateItem `json:"interestRates"`
}

type RateItem struct {
	Type  string   `json:"type"`
	Range any      `json:"range"`
	Rate  *float64 `json:"rate"`
}

// OrientationResponse is the quick mortgage calculation payload.
type OrientationResponse struct {
	Value    *OrientationValue `json:"value,omitempty"`
	Messages []any             `json:"messages,omitempty"`
}

type OrientationValue struct {
	MaximumMortgage *float64 `json:"maximumMortgage"`
	MonthlyPayment  *float64 `json:"monthlyPayment"`
	Interest        *float64 `json:"interest"`
}
