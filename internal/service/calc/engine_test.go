package calc

import (
	"math"
	"testing"

	"FinHub/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValuePinnedScenario(t *testing.T) {
	res := FutureValue(100000, 10, 5, 12)

	assert.InDelta(t, 164530.89, res.Result["future_value"], 0.01)
	assert.InDelta(t, 64530.89, res.Result["total_interest"], 0.01)
	assert.Equal(t, 100000.0, res.Result["principal"])
	assert.Equal(t, 12, res.Result["compounds_per_year"])
	assert.NotEmpty(t, res.Summary)
}

func TestFutureValueInterestMatchesGrowth(t *testing.T) {
	cases := []struct {
		principal, rate, years float64
		n                      int
	}{
		{50000, 7.5, 10, 4},
		{1000, 0, 3, 1},
		{250000, 12, 2.5, 12},
		{999.99, 100, 1, 365},
	}
	for _, tc := range cases {
		res := FutureValue(tc.principal, tc.rate, tc.years, tc.n)
		fv := res.Result["future_value"].(float64)
		principal := res.Result["principal"].(float64)
		interest := res.Result["total_interest"].(float64)
		assert.InDelta(t, fv-principal, interest, 0.011, "interest must equal growth for %+v", tc)
	}
}

func TestFutureValueZeroRate(t *testing.T) {
	res := FutureValue(12345, 0, 7, 12)
	assert.Equal(t, 12345.0, res.Result["future_value"])
	assert.Equal(t, 0.0, res.Result["total_interest"])
}

func TestLoanEMIPinnedScenario(t *testing.T) {
	res := LoanEMI(500000, 9, 120)
	assert.InDelta(t, 6333.79, res.Result["monthly_emi"], 0.01)
}

func TestLoanEMIZeroRateIsStraightLine(t *testing.T) {
	res := LoanEMI(120000, 0, 24)
	assert.Equal(t, 5000.0, res.Result["monthly_emi"])
	assert.Equal(t, 120000.0, res.Result["total_payment"])
	assert.Equal(t, 0.0, res.Result["total_interest"])
}

func TestLoanEMITotalsConsistent(t *testing.T) {
	res := LoanEMI(750000, 8.5, 180)
	emi := res.Result["monthly_emi"].(float64)
	total := res.Result["total_payment"].(float64)
	interest := res.Result["total_interest"].(float64)

	// total_payment and total_interest derive from the unrounded EMI,
	// so compare against it with rounding slack.
	assert.InDelta(t, emi*180, total, 1.0)
	assert.InDelta(t, total-750000, interest, 0.011)
	assert.Greater(t, interest, 0.0)
}

func TestSavingsPlanZeroRate(t *testing.T) {
	res := SavingsPlan(10000, 2000, 0, 5)
	assert.Equal(t, 20000.0, res.Result["future_value"])
	assert.Equal(t, 20000.0, res.Result["total_contributions"])
	assert.Equal(t, 0.0, res.Result["total_interest"])
}

func TestSavingsPlanAccumulation(t *testing.T) {
	res := SavingsPlan(100000, 50000, 8, 10)

	fvInitial := 100000 * math.Pow(1.08, 10)
	fvContrib := 50000 * (math.Pow(1.08, 10) - 1) / 0.08
	want := fvInitial + fvContrib

	assert.InDelta(t, want, res.Result["future_value"], 0.011)
	assert.Equal(t, 600000.0, res.Result["total_contributions"])
	assert.InDelta(t, want-600000, res.Result["total_interest"], 0.011)
}

func TestMortgageZeroDownZeroRate(t *testing.T) {
	res := Mortgage(2400000, 0, 0, 20, 1.0, 0.5)

	// 240 straight-line months on the full price.
	assert.Equal(t, 10000.0, res.Result["monthly_principal_interest"])
	assert.Equal(t, 2000.0, res.Result["monthly_tax"])
	assert.Equal(t, 1000.0, res.Result["monthly_insurance"])
	assert.Equal(t, 13000.0, res.Result["total_monthly_payment"])
	assert.Equal(t, 0.0, res.Result["total_interest"])
}

func TestMortgageComponents(t *testing.T) {
	res := Mortgage(5000000, 1000000, 8.5, 20, 1.0, 0.5)

	require.Equal(t, 4000000.0, res.Result["loan_amount"])

	pi := res.Result["monthly_principal_interest"].(float64)
	tax := res.Result["monthly_tax"].(float64)
	ins := res.Result["monthly_insurance"].(float64)
	total := res.Result["total_monthly_payment"].(float64)

	assert.InDelta(t, pi+tax+ins, total, 0.011)
	assert.InDelta(t, 5000000*1.0/100/12, tax, 0.011)
	assert.InDelta(t, 5000000*0.5/100/12, ins, 0.011)

	interest := res.Result["total_interest"].(float64)
	assert.InDelta(t, pi*240-4000000, interest, 3.0)
}

func TestInvestmentReturnBreakdown(t *testing.T) {
	res := InvestmentReturn(100000, 12, 10)

	breakdown := res.Result["yearly_breakdown"].([]models.YearValue)
	require.Len(t, breakdown, 10)

	// Last breakdown entry equals the overall future value.
	fv := res.Result["future_value"].(float64)
	assert.InDelta(t, fv, breakdown[9].Value, 0.011)

	for i, yv := range breakdown {
		assert.Equal(t, i+1, yv.Year)
		if i > 0 {
			assert.Greater(t, yv.Value, breakdown[i-1].Value)
		}
	}
}

func TestInvestmentReturnCAGREqualsRate(t *testing.T) {
	res := InvestmentReturn(50000, 9, 7)
	assert.InDelta(t, 9.0, res.Result["cagr"], 0.011)

	totalReturn := res.Result["total_return"].(float64)
	pct := res.Result["return_percentage"].(float64)
	assert.InDelta(t, totalReturn/50000*100, pct, 0.011)
}

func TestYearlyBreakdownRegenerable(t *testing.T) {
	a := YearlyBreakdown(75000, 11.5, 8)
	b := YearlyBreakdown(75000, 11.5, 8)
	require.Equal(t, a, b)
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	// Exactly representable halves, so no binary-float surprises.
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, -0.13, round2(-0.125))
	assert.Equal(t, 0.38, round2(0.375))
}
