package benefit

import (
	"math"
	"testing"

	"initiative_valuation/pkg/core/cases"
)

const tolerance = 0.0001

func TestCostBenefitWorkedExample(t *testing.T) {
	// 100 hours saved at $60 loaded rate with default multipliers:
	// 100 * 60 * 1.35 * 0.9 * 0.75 = 5467.50
	components := []cases.FormulaComponent{
		{Label: "Hours Saved", Value: 100},
		{Label: "Loaded Hourly Rate", Value: 60},
	}
	got := CostBenefit(components)
	if math.Abs(got-5467.50) > tolerance {
		t.Errorf("Expected 5467.50, got %f", got)
	}
}

func TestCostBenefitExplicitMultipliers(t *testing.T) {
	// Explicit components override the defaults:
	// 100 * 60 * 1.2 * 1.0 * 1.0 = 7200
	components := []cases.FormulaComponent{
		{Label: "Hours Saved", Value: 100},
		{Label: "Loaded Hourly Rate", Value: 60},
		{Label: "Benefits Loading", Value: 1.2},
		{Label: "Adoption Rate", Value: 1.0},
		{Label: "Data Maturity", Value: 1.0},
	}
	got := CostBenefit(components)
	if math.Abs(got-7200) > tolerance {
		t.Errorf("Expected 7200, got %f", got)
	}
}

func TestIncompleteCategoryYieldsZero(t *testing.T) {
	// Fewer than two components means the formula has nothing to work with.
	// The category resolves to 0, never an error.
	single := []cases.FormulaComponent{{Label: "Hours Saved", Value: 500}}
	if got := CostBenefit(single); got != 0 {
		t.Errorf("Expected 0 for single component, got %f", got)
	}
	if got := RevenueBenefit(nil); got != 0 {
		t.Errorf("Expected 0 for nil components, got %f", got)
	}
	if got := RiskBenefit([]cases.FormulaComponent{}); got != 0 {
		t.Errorf("Expected 0 for empty components, got %f", got)
	}
}

func TestRevenueBenefit(t *testing.T) {
	// 0.05 uplift * 2,000,000 at risk * 0.95 * 0.75 = 71,250
	components := []cases.FormulaComponent{
		{Label: "Revenue Uplift %", Value: 0.05},
		{Label: "Revenue at Risk", Value: 2_000_000},
	}
	got := RevenueBenefit(components)
	if math.Abs(got-71_250) > tolerance {
		t.Errorf("Expected 71250, got %f", got)
	}
}

func TestRiskBenefit(t *testing.T) {
	// 0.3 reduction * 500,000 exposure * 0.8 * 0.75 = 90,000
	components := []cases.FormulaComponent{
		{Label: "Risk Reduction %", Value: 0.3},
		{Label: "Risk Exposure", Value: 500_000},
	}
	got := RiskBenefit(components)
	if math.Abs(got-90_000) > tolerance {
		t.Errorf("Expected 90000, got %f", got)
	}
}

func TestCashFlowBenefit(t *testing.T) {
	// (3,650,000 / 365) * 10 days * 0.08 * 0.85 * 0.75 = 5100
	components := []cases.FormulaComponent{
		{Label: "Annual Revenue", Value: 3_650_000},
		{Label: "Days Improved", Value: 10},
	}
	got := CashFlowBenefit(components)
	if math.Abs(got-5100) > tolerance {
		t.Errorf("Expected 5100, got %f", got)
	}
}

func TestRecalculateBenefitsInvariants(t *testing.T) {
	items := []cases.BenefitQuantification{
		{
			UseCaseID: "uc1", ProbabilityOfSuccess: 0.7,
			CostComponents: []cases.FormulaComponent{
				{Label: "Hours Saved", Value: 1000},
				{Label: "Loaded Hourly Rate", Value: 80},
			},
			RiskComponents: []cases.FormulaComponent{
				{Label: "Risk Reduction %", Value: 0.2},
				{Label: "Risk Exposure", Value: 400_000},
			},
		},
	}

	out := RecalculateBenefits(items, Base)
	if len(out) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(out))
	}
	b := out[0]

	sum := b.CostBenefit + b.RevenueBenefit + b.RiskBenefit + b.CashFlowBenefit
	if math.Abs(b.TotalAnnualValue-sum) > tolerance {
		t.Errorf("TotalAnnualValue %f != category sum %f", b.TotalAnnualValue, sum)
	}
	if b.ExpectedValue > b.TotalAnnualValue+tolerance {
		t.Errorf("ExpectedValue %f exceeds TotalAnnualValue %f", b.ExpectedValue, b.TotalAnnualValue)
	}
	if math.Abs(b.ExpectedValue-b.TotalAnnualValue*0.7) > tolerance {
		t.Errorf("ExpectedValue %f != total * probability", b.ExpectedValue)
	}
}

func TestProbabilityCappedAtOne(t *testing.T) {
	items := []cases.BenefitQuantification{
		{
			ProbabilityOfSuccess: 0.95,
			CostComponents: []cases.FormulaComponent{
				{Label: "Hours Saved", Value: 10},
				{Label: "Loaded Hourly Rate", Value: 50},
			},
		},
	}
	out := RecalculateBenefits(items, Optimistic)
	// 0.95 * 1.1 = 1.045, capped at 1.0
	if out[0].ProbabilityOfSuccess != 1.0 {
		t.Errorf("Expected probability capped at 1.0, got %f", out[0].ProbabilityOfSuccess)
	}
	if math.Abs(out[0].ExpectedValue-out[0].TotalAnnualValue) > tolerance {
		t.Errorf("At probability 1.0 expected value should equal total")
	}
}

func TestScenarioOrdering(t *testing.T) {
	items := []cases.BenefitQuantification{
		{
			ProbabilityOfSuccess: 0.6,
			CostComponents: []cases.FormulaComponent{
				{Label: "Hours Saved", Value: 2000},
				{Label: "Loaded Hourly Rate", Value: 70},
			},
		},
	}

	total := func(p Profile) float64 {
		out := RecalculateBenefits(items, p)
		return out[0].ExpectedValue
	}

	conservative := total(Conservative)
	base := total(Base)
	optimistic := total(Optimistic)

	if conservative > base || base > optimistic {
		t.Errorf("Scenario ordering violated: conservative %f, base %f, optimistic %f",
			conservative, base, optimistic)
	}
}

func TestInputsNotMutated(t *testing.T) {
	items := []cases.BenefitQuantification{
		{
			ProbabilityOfSuccess: 0.5,
			CostComponents: []cases.FormulaComponent{
				{Label: "Hours Saved", Value: 100},
				{Label: "Loaded Hourly Rate", Value: 60},
			},
		},
	}
	_ = RecalculateBenefits(items, Optimistic)

	if items[0].TotalAnnualValue != 0 || items[0].ExpectedValue != 0 {
		t.Errorf("Input record was mutated in place")
	}
	if items[0].ProbabilityOfSuccess != 0.5 {
		t.Errorf("Input probability was mutated: %f", items[0].ProbabilityOfSuccess)
	}
}

func TestProfileByName(t *testing.T) {
	if ProfileByName("conservative") != Conservative {
		t.Errorf("Expected conservative profile")
	}
	if ProfileByName("nonsense") != Base {
		t.Errorf("Unknown profile should fall back to base")
	}
}
