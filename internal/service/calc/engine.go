package calc

import (
	"fmt"
	"math"

	"FinHub/internal/domain/models"
	"FinHub/pkg/util"
)

// Pure calculator engine. Inputs are range-validated upstream (principal>0,
// rate in [0,100], tenure>0); the engine itself has no error path.
// Monetary and percentage outputs are rounded to 2 decimals with
// round-half-away-from-zero (math.Round).

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FutureValue computes compound growth: FV = P(1 + r/n)^(nt).
func FutureValue(principal, rate, years float64, compoundsPerYear int) models.CalcResult {
	r := rate / 100
	n := float64(compoundsPerYear)

	futureValue := principal * math.Pow(1+r/n, n*years)
	totalInterest := futureValue - principal

	result := map[string]interface{}{
		"principal":          round2(principal),
		"future_value":       round2(futureValue),
		"total_interest":     round2(totalInterest),
		"rate":               rate,
		"time_years":         years,
		"compounds_per_year": compoundsPerYear,
	}

	summary := fmt.Sprintf(
		"An investment of ₹%s at %g%% annual interest compounded %d times per year for %g years will grow to ₹%s. Total interest earned: ₹%s",
		util.FormatAmount(principal), rate, compoundsPerYear, years,
		util.FormatAmount(futureValue), util.FormatAmount(totalInterest),
	)

	return models.CalcResult{Result: result, Summary: summary}
}

// LoanEMI computes the equated monthly installment:
// EMI = P·r·(1+r)^n / ((1+r)^n − 1), with r the monthly rate.
// At r=0 the installment degrades to straight-line P/n.
func LoanEMI(principal, rate float64, tenureMonths int) models.CalcResult {
	r := rate / 100 / 12
	n := float64(tenureMonths)

	var emi float64
	if r == 0 {
		emi = principal / n
	} else {
		pow := math.Pow(1+r, n)
		emi = principal * r * pow / (pow - 1)
	}

	totalPayment := emi * n
	totalInterest := totalPayment - principal

	result := map[string]interface{}{
		"loan_amount":    round2(principal),
		"monthly_emi":    round2(emi),
		"total_payment":  round2(totalPayment),
		"total_interest": round2(totalInterest),
		"rate":           rate,
		"tenure_months":  tenureMonths,
	}

	summary := fmt.Sprintf(
		"For a loan of ₹%s at %g%% annual interest for %d months, your monthly EMI will be ₹%s. Total payment: ₹%s (Interest: ₹%s)",
		util.FormatAmount(principal), rate, tenureMonths,
		util.FormatAmount(emi), util.FormatAmount(totalPayment), util.FormatAmount(totalInterest),
	)

	return models.CalcResult{Result: result, Summary: summary}
}

// SavingsPlan computes accumulation from an initial amount plus constant
// annual contributions. At r=0 the annuity term degrades to C·years.
func SavingsPlan(initial, annualContribution, rate float64, years int) models.CalcResult {
	r := rate / 100
	y := float64(years)

	fvInitial := initial * math.Pow(1+r, y)

	var fvContributions float64
	if r == 0 {
		fvContributions = annualContribution * y
	} else {
		fvContributions = annualContribution * (math.Pow(1+r, y) - 1) / r
	}

	totalValue := fvInitial + fvContributions
	totalContributions := initial + annualContribution*y
	totalInterest := totalValue - totalContributions

	result := map[string]interface{}{
		"initial_savings":     round2(initial),
		"annual_contribution": round2(annualContribution),
		"total_contributions": round2(totalContributions),
		"future_value":        round2(totalValue),
		"total_interest":      round2(totalInterest),
		"rate":                rate,
		"years":               years,
	}

	summary := fmt.Sprintf(
		"Starting with ₹%s and saving ₹%s annually at %g%% for %d years, you'll accumulate ₹%s. Total interest earned: ₹%s",
		util.FormatAmount(initial), util.FormatAmount(annualContribution), rate, years,
		util.FormatAmount(totalValue), util.FormatAmount(totalInterest),
	)

	return models.CalcResult{Result: result, Summary: summary}
}

// Mortgage computes the monthly payment including property tax and
// insurance, both expressed as annual percentages of the home price.
func Mortgage(homePrice, downPayment, rate float64, tenureYears int, propertyTaxRate, insuranceRate float64) models.CalcResult {
	loanAmount := homePrice - downPayment
	r := rate / 100 / 12
	n := float64(tenureYears * 12)

	var monthlyPI float64
	if r == 0 {
		monthlyPI = loanAmount / n
	} else {
		pow := math.Pow(1+r, n)
		monthlyPI = loanAmount * r * pow / (pow - 1)
	}

	monthlyTax := homePrice * propertyTaxRate / 100 / 12
	monthlyInsurance := homePrice * insuranceRate / 100 / 12

	totalMonthly := monthlyPI + monthlyTax + monthlyInsurance
	totalPayment := monthlyPI * n
	totalInterest := totalPayment - loanAmount

	result := map[string]interface{}{
		"home_price":                 round2(homePrice),
		"down_payment":               round2(downPayment),
		"loan_amount":                round2(loanAmount),
		"monthly_principal_interest": round2(monthlyPI),
		"monthly_tax":                round2(monthlyTax),
		"monthly_insurance":          round2(monthlyInsurance),
		"total_monthly_payment":      round2(totalMonthly),
		"total_interest":             round2(totalInterest),
		"rate":                       rate,
		"tenure_years":               tenureYears,
	}

	summary := fmt.Sprintf(
		"For a ₹%s property with ₹%s down payment, your monthly payment will be ₹%s (P&I: ₹%s, Tax: ₹%s, Insurance: ₹%s)",
		util.FormatAmount(homePrice), util.FormatAmount(downPayment), util.FormatAmount(totalMonthly),
		util.FormatAmount(monthlyPI), util.FormatAmount(monthlyTax), util.FormatAmount(monthlyInsurance),
	)

	return models.CalcResult{Result: result, Summary: summary}
}

// InvestmentReturn computes constant-rate growth with a year-by-year
// breakdown. CAGR equals the input rate for single-rate growth but is
// computed and reported separately for display parity.
func InvestmentReturn(principal, rate float64, years int) models.CalcResult {
	r := rate / 100
	y := float64(years)

	futureValue := principal * math.Pow(1+r, y)
	totalReturn := futureValue - principal
	returnPercentage := totalReturn / principal * 100
	cagr := (math.Pow(futureValue/principal, 1/y) - 1) * 100

	result := map[string]interface{}{
		"principal":         round2(principal),
		"future_value":      round2(futureValue),
		"total_return":      round2(totalReturn),
		"return_percentage": round2(returnPercentage),
		"cagr":              round2(cagr),
		"rate":              rate,
		"years":             years,
		"yearly_breakdown":  YearlyBreakdown(principal, rate, years),
	}

	summary := fmt.Sprintf(
		"An investment of ₹%s at %g%% annual return for %d years will grow to ₹%s. Total return: ₹%s (%.1f%%)",
		util.FormatAmount(principal), rate, years,
		util.FormatAmount(futureValue), util.FormatAmount(totalReturn), returnPercentage,
	)

	return models.CalcResult{Result: result, Summary: summary}
}

// YearlyBreakdown regenerates the value sequence for years 1..years.
// Deterministic for identical inputs; no shared state between calls.
func YearlyBreakdown(principal, rate float64, years int) []models.YearValue {
	r := rate / 100
	values := make([]models.YearValue, 0, years)
	for year := 1; year <= years; year++ {
		value := principal * math.Pow(1+r, float64(year))
		values = append(values, models.YearValue{Year: year, Value: round2(value)})
	}
	return values
}
