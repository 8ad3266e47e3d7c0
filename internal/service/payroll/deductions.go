package payroll

import (
	"github.com/shopspring/decimal"
)

// taxBracket is one progressive withholding band: pay base plus rate on the
// excess over the band's lower bound.
type taxBracket struct {
	Over decimal.Decimal
	Base decimal.Decimal
	Rate decimal.Decimal
}

// DeductionPolicy is the single source of truth for the four statutory
// deductions. All rates and bounds live here so a policy change cannot fork
// into divergent formulas at different call sites.
type DeductionPolicy struct {
	TaxBrackets []taxBracket

	SocialFloorGross decimal.Decimal // below this gross, the flat floor applies
	SocialFloor      decimal.Decimal
	SocialCapGross   decimal.Decimal // at or above this gross, the flat cap applies
	SocialCap        decimal.Decimal
	SocialRate       decimal.Decimal // applied to gross truncated to the nearest 1000

	HealthFloorGross decimal.Decimal
	HealthFloor      decimal.Decimal
	HealthCapGross   decimal.Decimal
	HealthCap        decimal.Decimal
	HealthRate       decimal.Decimal

	HousingLowGross decimal.Decimal // at or below this gross, the low rate applies
	HousingLowRate  decimal.Decimal
	HousingRate     decimal.Decimal
	HousingCap      decimal.Decimal
}

// DefaultDeductionPolicy returns the statutory table in force.
func DefaultDeductionPolicy() DeductionPolicy {
	return DeductionPolicy{
		TaxBrackets: []taxBracket{
			{Over: decimal.NewFromInt(666667), Base: decimal.NewFromFloat(183541.80), Rate: decimal.NewFromFloat(0.35)},
			{Over: decimal.NewFromInt(166667), Base: decimal.NewFromFloat(33541.80), Rate: decimal.NewFromFloat(0.30)},
			{Over: decimal.NewFromInt(66667), Base: decimal.NewFromFloat(8541.80), Rate: decimal.NewFromFloat(0.25)},
			{Over: decimal.NewFromInt(33333), Base: decimal.NewFromInt(1875), Rate: decimal.NewFromFloat(0.20)},
			{Over: decimal.NewFromInt(20833), Base: decimal.Zero, Rate: decimal.NewFromFloat(0.15)},
		},

		SocialFloorGross: decimal.NewFromInt(4000),
		SocialFloor:      decimal.NewFromInt(180),
		SocialCapGross:   decimal.NewFromInt(30000),
		SocialCap:        decimal.NewFromInt(1350),
		SocialRate:       decimal.NewFromFloat(0.045),

		// The 5% mid-range rate is the only one continuous with both flat
		// bounds: 10000 * 5% = 500 and 100000 * 5% = 5000.
		HealthFloorGross: decimal.NewFromInt(10000),
		HealthFloor:      decimal.NewFromInt(500),
		HealthCapGross:   decimal.NewFromInt(100000),
		HealthCap:        decimal.NewFromInt(5000),
		HealthRate:       decimal.NewFromFloat(0.05),

		HousingLowGross: decimal.NewFromInt(1500),
		HousingLowRate:  decimal.NewFromFloat(0.01),
		HousingRate:     decimal.NewFromFloat(0.02),
		HousingCap:      decimal.NewFromInt(200),
	}
}

// Deductions is the four-way statutory breakdown for one gross pay amount.
type Deductions struct {
	WithholdingTax  decimal.Decimal
	SocialInsurance decimal.Decimal
	HealthInsurance decimal.Decimal
	HousingFund     decimal.Decimal
	Total           decimal.Decimal
}

// Compute applies all four deductions to gross pay. Each deduction is rounded
// to 2 decimal places before summing.
func (p DeductionPolicy) Compute(gross decimal.Decimal) Deductions {
	d := Deductions{
		WithholdingTax:  p.withholdingTax(gross).Round(2),
		SocialInsurance: p.socialInsurance(gross).Round(2),
		HealthInsurance: p.healthInsurance(gross).Round(2),
		HousingFund:     p.housingFund(gross).Round(2),
	}
	d.Total = d.WithholdingTax.
		Add(d.SocialInsurance).
		Add(d.HealthInsurance).
		Add(d.HousingFund).
		Round(2)
	return d
}

// withholdingTax applies the progressive bracket table. Brackets are ordered
// highest first; the first whose lower bound the gross exceeds wins.
func (p DeductionPolicy) withholdingTax(gross decimal.Decimal) decimal.Decimal {
	for _, b := range p.TaxBrackets {
		if gross.GreaterThan(b.Over) {
			return b.Base.Add(gross.Sub(b.Over).Mul(b.Rate))
		}
	}
	return decimal.Zero
}

func (p DeductionPolicy) socialInsurance(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThan(p.SocialFloorGross) {
		return p.SocialFloor
	}
	if gross.GreaterThanOrEqual(p.SocialCapGross) {
		return p.SocialCap
	}

	// Contribution base is the gross truncated to the nearest 1000.
	thousand := decimal.NewFromInt(1000)
	base := gross.Div(thousand).Floor().Mul(thousand)

	contribution := base.Mul(p.SocialRate)
	if contribution.GreaterThan(p.SocialCap) {
		return p.SocialCap
	}
	return contribution
}

func (p DeductionPolicy) healthInsurance(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(p.HealthFloorGross) {
		return p.HealthFloor
	}
	if gross.GreaterThanOrEqual(p.HealthCapGross) {
		return p.HealthCap
	}
	return gross.Mul(p.HealthRate)
}

func (p DeductionPolicy) housingFund(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(p.HousingLowGross) {
		return gross.Mul(p.HousingLowRate)
	}

	contribution := gross.Mul(p.HousingRate)
	if contribution.GreaterThan(p.HousingCap) {
		return p.HousingCap
	}
	return contribution
}
