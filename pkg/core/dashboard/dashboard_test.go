package dashboard

import (
	"math"
	"testing"

	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/priority"
)

func TestEmptyCohort(t *testing.T) {
	// An empty cohort must yield an all-zero dashboard without tripping any
	// division guards.
	d := GenerateExecutiveDashboard(nil, nil, nil)

	if len(d.TopInitiatives) != 0 {
		t.Errorf("Expected no top initiatives, got %d", len(d.TopInitiatives))
	}
	if d.TotalAnnualValue != 0 || d.TotalExpectedValue != 0 || d.ValuePerMillionTokens != 0 {
		t.Errorf("Expected all-zero totals, got %+v", d)
	}
	if math.IsNaN(d.ValuePerMillionTokens) || math.IsInf(d.ValuePerMillionTokens, 0) {
		t.Errorf("Efficiency metric must be finite")
	}
}

func TestTopInitiativesRankedAndCapped(t *testing.T) {
	var benefits []cases.BenefitQuantification
	var priorities []priority.Score
	ids := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, id := range ids {
		benefits = append(benefits, cases.BenefitQuantification{
			UseCaseID: id, Name: id, TotalAnnualValue: float64(i+1) * 10_000,
		})
		priorities = append(priorities, priority.Score{
			UseCaseID: id, Name: id, PriorityScore: float64(i + 1),
		})
	}

	d := GenerateExecutiveDashboard(benefits, nil, priorities)
	if len(d.TopInitiatives) != TopN {
		t.Fatalf("Expected %d top initiatives, got %d", TopN, len(d.TopInitiatives))
	}
	if d.TopInitiatives[0].UseCaseID != "g" || d.TopInitiatives[0].Rank != 1 {
		t.Errorf("Expected g ranked first, got %+v", d.TopInitiatives[0])
	}
	if d.TopInitiatives[0].AnnualValue != 70_000 {
		t.Errorf("Expected annual value joined from benefits, got %f", d.TopInitiatives[0].AnnualValue)
	}
	// Input priorities slice order is left alone.
	if priorities[0].UseCaseID != "a" {
		t.Errorf("Input priorities were reordered")
	}
}

func TestBenefitCategoryTotals(t *testing.T) {
	benefits := []cases.BenefitQuantification{
		{UseCaseID: "a", CostBenefit: 100, RevenueBenefit: 50, RiskBenefit: 25, CashFlowBenefit: 10, TotalAnnualValue: 185, ExpectedValue: 148},
		{UseCaseID: "b", CostBenefit: 200, RevenueBenefit: 0, RiskBenefit: 75, CashFlowBenefit: 40, TotalAnnualValue: 315, ExpectedValue: 252},
	}
	d := GenerateExecutiveDashboard(benefits, nil, nil)

	if d.TotalCostBenefit != 300 || d.TotalRevenueBenefit != 50 || d.TotalRiskBenefit != 100 || d.TotalCashFlowBenefit != 50 {
		t.Errorf("Unexpected category totals: %+v", d)
	}
	if d.TotalAnnualValue != 500 || d.TotalExpectedValue != 400 {
		t.Errorf("Unexpected value totals: %+v", d)
	}
}

func TestValuePerMillionTokens(t *testing.T) {
	benefits := []cases.BenefitQuantification{
		{UseCaseID: "a", ExpectedValue: 240_000},
	}
	readiness := []cases.ReadinessModel{
		{UseCaseID: "a", MonthlyTokenVolume: 1_000_000},
	}
	d := GenerateExecutiveDashboard(benefits, readiness, nil)

	// 240000 expected value over 12M annual tokens = 20000 per 1M tokens.
	if math.Abs(d.ValuePerMillionTokens-20_000) > 0.01 {
		t.Errorf("Expected 20000 per million tokens, got %f", d.ValuePerMillionTokens)
	}

	// Zero token volume is guarded.
	d = GenerateExecutiveDashboard(benefits, nil, nil)
	if d.ValuePerMillionTokens != 0 {
		t.Errorf("Expected 0 for zero token volume, got %f", d.ValuePerMillionTokens)
	}
}
