// Package projection implements the Financial Projection Engine: discounted
// cash flow rollups of a cohort's expected benefits across scenario profiles
// and a multi-year horizon.
package projection

import (
	"math"

	"initiative_valuation/pkg/core/benefit"
	"initiative_valuation/pkg/core/cases"
)

// Engine defaults. The benefit stream is modeled as a flat annuity of the
// cohort's annual expected value.
const (
	DefaultHorizonYears = 3
	DefaultDiscountRate = 0.10

	// Upfront investment is estimated as a fixed fraction of the first-year
	// benefit. This also feeds the approximate IRR, which is derived from
	// the annuity-to-investment ratio rather than solved iteratively.
	InvestmentRatio = 0.20
)

// ScenarioResult is the rollup for one named multiplier profile.
type ScenarioResult struct {
	Scenario      string  `json:"scenario"`
	AnnualBenefit float64 `json:"annual_benefit"`
	NPV           float64 `json:"npv"`
	// Payback is not derived at scenario granularity; it is reported as 0
	// and only computed on the multi-year projection.
	PaybackMonths float64 `json:"payback_months"`
}

// ScenarioAnalysis compares the cohort across all scenario profiles.
type ScenarioAnalysis struct {
	Scenarios []ScenarioResult `json:"scenarios"`
}

// MultiYearProjection is the cohort-level DCF summary over the horizon.
type MultiYearProjection struct {
	HorizonYears      int     `json:"horizon_years"`
	AnnualBenefit     float64 `json:"annual_benefit"`
	Investment        float64 `json:"investment"`
	NPV               float64 `json:"npv"`
	IRRApproxPercent  float64 `json:"irr_approx_percent"`
	PaybackMonths     float64 `json:"payback_months"`
	CumulativeBenefit float64 `json:"cumulative_benefit"`
}

// GenerateScenarioAnalysis reruns the Benefit Calculator under each named
// profile and rolls the cohort's expected value into an annual benefit and
// NPV per scenario.
func GenerateScenarioAnalysis(benefits []cases.BenefitQuantification) ScenarioAnalysis {
	analysis := ScenarioAnalysis{}
	for _, profile := range benefit.Profiles() {
		recalculated := benefit.RecalculateBenefits(benefits, profile)
		annual := totalExpectedValue(recalculated)
		analysis.Scenarios = append(analysis.Scenarios, ScenarioResult{
			Scenario:      profile.Name,
			AnnualBenefit: annual,
			NPV:           NPV(annual, DefaultDiscountRate, DefaultHorizonYears),
			PaybackMonths: 0,
		})
	}
	return analysis
}

// GenerateMultiYearProjection computes the cohort DCF summary over the
// default horizon from already-recalculated benefits.
func GenerateMultiYearProjection(benefits []cases.BenefitQuantification) MultiYearProjection {
	annual := totalExpectedValue(benefits)
	investment := annual * InvestmentRatio

	return MultiYearProjection{
		HorizonYears:      DefaultHorizonYears,
		AnnualBenefit:     annual,
		Investment:        investment,
		NPV:               NPV(annual, DefaultDiscountRate, DefaultHorizonYears),
		IRRApproxPercent:  ApproxIRR(annual, investment),
		PaybackMonths:     PaybackMonths(investment, annual),
		CumulativeBenefit: annual * DefaultHorizonYears,
	}
}

// NPV discounts a flat annual benefit across the horizon at the given rate.
func NPV(annualBenefit, rate float64, years int) float64 {
	npv := 0.0
	for t := 1; t <= years; t++ {
		npv += annualBenefit / math.Pow(1+rate, float64(t))
	}
	return npv
}

// ApproxIRR derives an approximate internal rate of return, in percent, from
// the ratio of the annual benefit to the estimated investment. It is a
// deliberate simplification: no iterative root-finding is performed.
func ApproxIRR(annualBenefit, investment float64) float64 {
	if investment == 0 {
		return 0
	}
	return annualBenefit / investment * 100
}

// PaybackMonths is the number of months of benefit needed to recoup the
// investment, zero-guarded for an empty cohort.
func PaybackMonths(investment, annualBenefit float64) float64 {
	if annualBenefit == 0 {
		return 0
	}
	return investment / (annualBenefit / 12)
}

func totalExpectedValue(benefits []cases.BenefitQuantification) float64 {
	total := 0.0
	for _, b := range benefits {
		total += b.ExpectedValue
	}
	return total
}
