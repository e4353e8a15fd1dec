package facts

const (
	// MortgageInterestDeductionRate is the maximum percentage at which
	// mortgage interest is deductible in the Netherlands.
	MortgageInterestDeductionRate = 37.48

	// NationalMortgageGuaranteeLimit is the NHG cost limit in euros.
	NationalMortgageGuaranteeLimit = 450_000.0

	// TransferTaxExemptionLimit is the house price in euros up to which the
	// starter exemption from property transfer tax applies.
	TransferTaxExemptionLimit = 525_000.0

	// TransferTaxRate applies above the exemption limit.
	TransferTaxRate = 0.02
)
