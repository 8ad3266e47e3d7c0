package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func gross(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestWithholdingTaxBrackets(t *testing.T) {
	policy := DefaultDeductionPolicy()

	tests := []struct {
		name  string
		gross float64
		want  string
	}{
		{"zero gross", 0, "0.00"},
		{"below first threshold", 15000, "0.00"},
		{"exactly at first threshold", 20833, "0.00"},
		{"second bracket", 25000, "625.05"},
		{"top of second bracket", 33333, "1875.00"},
		{"third bracket", 50000, "5208.40"},
		{"fourth bracket", 100000, "16875.05"},
		{"fifth bracket", 200000, "43541.70"},
		{"top bracket", 700000, "195208.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Compute(gross(tt.gross)).WithholdingTax
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestSocialInsurance(t *testing.T) {
	policy := DefaultDeductionPolicy()

	tests := []struct {
		name  string
		gross float64
		want  string
	}{
		{"below floor gross pays flat floor", 3999, "180.00"},
		{"at floor gross", 4000, "180.00"},
		{"mid range truncates to thousands", 17500, "765.00"},
		{"just under cap gross", 29999, "1305.00"},
		{"at cap gross pays flat cap", 30000, "1350.00"},
		{"far above cap", 90000, "1350.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Compute(gross(tt.gross)).SocialInsurance
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestHealthInsurance(t *testing.T) {
	policy := DefaultDeductionPolicy()

	tests := []struct {
		name  string
		gross float64
		want  string
	}{
		{"low gross pays flat floor", 8000, "500.00"},
		{"floor boundary", 10000, "500.00"},
		{"mid range is five percent", 17500, "875.00"},
		{"just under cap", 99999, "5000.00"},
		{"cap boundary", 100000, "5000.00"},
		{"above cap", 250000, "5000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Compute(gross(tt.gross)).HealthInsurance
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// The mid-range rate must meet both flat bounds exactly, otherwise the
// contribution would jump at the boundaries.
func TestHealthInsuranceContinuousAtBounds(t *testing.T) {
	policy := DefaultDeductionPolicy()

	atFloor := policy.Compute(gross(10000)).HealthInsurance
	justAbove := policy.Compute(gross(10000.2)).HealthInsurance
	assert.Equal(t, "500.00", atFloor.StringFixed(2))
	assert.Equal(t, "500.01", justAbove.StringFixed(2))

	justBelow := policy.Compute(gross(99999.8)).HealthInsurance
	atCap := policy.Compute(gross(100000)).HealthInsurance
	assert.Equal(t, "4999.99", justBelow.StringFixed(2))
	assert.Equal(t, "5000.00", atCap.StringFixed(2))
}

func TestHousingFund(t *testing.T) {
	policy := DefaultDeductionPolicy()

	tests := []struct {
		name  string
		gross float64
		want  string
	}{
		{"low gross pays one percent", 1000, "10.00"},
		{"low boundary", 1500, "15.00"},
		{"two percent above boundary", 5000, "100.00"},
		{"capped at two hundred", 15000, "200.00"},
		{"far above cap", 80000, "200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Compute(gross(tt.gross)).HousingFund
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeTotalsAllFour(t *testing.T) {
	policy := DefaultDeductionPolicy()

	d := policy.Compute(gross(17500))

	assert.Equal(t, "0.00", d.WithholdingTax.StringFixed(2))
	assert.Equal(t, "765.00", d.SocialInsurance.StringFixed(2))
	assert.Equal(t, "875.00", d.HealthInsurance.StringFixed(2))
	assert.Equal(t, "200.00", d.HousingFund.StringFixed(2))
	assert.Equal(t, "1840.00", d.Total.StringFixed(2))

	sum := d.WithholdingTax.Add(d.SocialInsurance).Add(d.HealthInsurance).Add(d.HousingFund)
	assert.True(t, sum.Equal(d.Total))
}
