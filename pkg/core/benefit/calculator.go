// Package benefit implements the Benefit Calculator: it turns labeled
// formula components into four dollarized benefit categories per initiative
// and applies a scenario multiplier profile on top.
package benefit

import (
	"math"

	"initiative_valuation/pkg/core/cases"
)

// Component labels recognized by the category formulas. Lookup is by exact
// label; anything absent resolves to the documented default.
const (
	LabelHoursSaved       = "Hours Saved"
	LabelLoadedHourlyRate = "Loaded Hourly Rate"
	LabelBenefitsLoading  = "Benefits Loading"
	LabelAdoptionRate     = "Adoption Rate"
	LabelDataMaturity     = "Data Maturity"

	LabelRevenueUpliftPct = "Revenue Uplift %"
	LabelRevenueAtRisk    = "Revenue at Risk"
	LabelRealization      = "Realization Factor"

	LabelRiskReductionPct = "Risk Reduction %"
	LabelRiskExposure     = "Risk Exposure"

	LabelAnnualRevenue = "Annual Revenue"
	LabelDaysImproved  = "Days Improved"
	LabelCostOfCapital = "Cost of Capital"
)

// Formula defaults for optional components.
const (
	DefaultBenefitsLoading     = 1.35
	DefaultAdoptionRate        = 0.9
	DefaultDataMaturity        = 0.75
	DefaultRevenueRealization  = 0.95
	DefaultRiskRealization     = 0.8
	DefaultCashFlowRealization = 0.85
	DefaultCostOfCapital       = 0.08
)

// RecalculateBenefits recomputes the four benefit categories, total annual
// value, probability of success, and expected value for every initiative in
// the cohort under the given scenario profile. Inputs are not mutated; a new
// slice is returned.
func RecalculateBenefits(items []cases.BenefitQuantification, profile Profile) []cases.BenefitQuantification {
	out := make([]cases.BenefitQuantification, 0, len(items))
	for _, item := range items {
		out = append(out, recalculateOne(item, profile))
	}
	return out
}

func recalculateOne(item cases.BenefitQuantification, profile Profile) cases.BenefitQuantification {
	result := item

	result.CostBenefit = CostBenefit(item.CostComponents) * profile.BenefitMultiplier
	result.RevenueBenefit = RevenueBenefit(item.RevenueComponents) * profile.BenefitMultiplier
	result.RiskBenefit = RiskBenefit(item.RiskComponents) * profile.BenefitMultiplier
	result.CashFlowBenefit = CashFlowBenefit(item.CashFlowComponents) * profile.BenefitMultiplier

	result.TotalAnnualValue = result.CostBenefit + result.RevenueBenefit + result.RiskBenefit + result.CashFlowBenefit
	result.ProbabilityOfSuccess = math.Min(1, item.ProbabilityOfSuccess*profile.ProbabilityMultiplier)
	result.ExpectedValue = result.TotalAnnualValue * result.ProbabilityOfSuccess

	return result
}

// CostBenefit dollarizes labor savings:
// hours saved x loaded hourly rate x benefits loading x adoption x data maturity.
// A category with fewer than two components is incomplete and yields 0.
func CostBenefit(components []cases.FormulaComponent) float64 {
	if len(components) < 2 {
		return 0
	}
	hours := cases.Lookup(components, LabelHoursSaved, 0)
	rate := cases.Lookup(components, LabelLoadedHourlyRate, 0)
	loading := cases.Lookup(components, LabelBenefitsLoading, DefaultBenefitsLoading)
	adoption := cases.Lookup(components, LabelAdoptionRate, DefaultAdoptionRate)
	maturity := cases.Lookup(components, LabelDataMaturity, DefaultDataMaturity)
	return hours * rate * loading * adoption * maturity
}

// RevenueBenefit dollarizes revenue protection/uplift:
// uplift fraction x revenue at risk x realization x data maturity.
func RevenueBenefit(components []cases.FormulaComponent) float64 {
	if len(components) < 2 {
		return 0
	}
	uplift := cases.Lookup(components, LabelRevenueUpliftPct, 0)
	atRisk := cases.Lookup(components, LabelRevenueAtRisk, 0)
	realization := cases.Lookup(components, LabelRealization, DefaultRevenueRealization)
	maturity := cases.Lookup(components, LabelDataMaturity, DefaultDataMaturity)
	return uplift * atRisk * realization * maturity
}

// RiskBenefit dollarizes avoided risk exposure:
// reduction fraction x exposure x realization x data maturity.
func RiskBenefit(components []cases.FormulaComponent) float64 {
	if len(components) < 2 {
		return 0
	}
	reduction := cases.Lookup(components, LabelRiskReductionPct, 0)
	exposure := cases.Lookup(components, LabelRiskExposure, 0)
	realization := cases.Lookup(components, LabelRealization, DefaultRiskRealization)
	maturity := cases.Lookup(components, LabelDataMaturity, DefaultDataMaturity)
	return reduction * exposure * realization * maturity
}

// CashFlowBenefit models the time-value gain from accelerating collection:
// one day of revenue x days improved, carried at the cost of capital, scaled
// by realization and data maturity.
func CashFlowBenefit(components []cases.FormulaComponent) float64 {
	if len(components) < 2 {
		return 0
	}
	annualRevenue := cases.Lookup(components, LabelAnnualRevenue, 0)
	daysImproved := cases.Lookup(components, LabelDaysImproved, 0)
	costOfCapital := cases.Lookup(components, LabelCostOfCapital, DefaultCostOfCapital)
	realization := cases.Lookup(components, LabelRealization, DefaultCashFlowRealization)
	maturity := cases.Lookup(components, LabelDataMaturity, DefaultDataMaturity)
	return (annualRevenue / 365) * daysImproved * costOfCapital * realization * maturity
}
