// Package dashboard assembles the executive summary view: a ranked top
// initiative list, cohort-level benefit totals, and a token-efficiency
// metric. It composes the other components' outputs and adds no algorithm
// of its own beyond sorting and summation.
package dashboard

import (
	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/priority"
)

// TopN is the number of initiatives surfaced in the ranked list.
const TopN = 5

// TopInitiative is one row of the ranked list.
type TopInitiative struct {
	Rank          int     `json:"rank"`
	UseCaseID     string  `json:"use_case_id"`
	Name          string  `json:"name"`
	AnnualValue   float64 `json:"annual_value"`
	TokenVolume   float64 `json:"token_volume"`
	PriorityScore float64 `json:"priority_score"`
}

// ExecutiveDashboard is the aggregate summary handed to presentation.
type ExecutiveDashboard struct {
	TopInitiatives []TopInitiative `json:"top_initiatives"`

	TotalCostBenefit     float64 `json:"total_cost_benefit"`
	TotalRevenueBenefit  float64 `json:"total_revenue_benefit"`
	TotalRiskBenefit     float64 `json:"total_risk_benefit"`
	TotalCashFlowBenefit float64 `json:"total_cash_flow_benefit"`
	TotalAnnualValue     float64 `json:"total_annual_value"`
	TotalExpectedValue   float64 `json:"total_expected_value"`

	TotalMonthlyTokenVolume float64 `json:"total_monthly_token_volume"`
	// Annual expected value per million tokens of annual volume; 0 when the
	// cohort consumes no tokens.
	ValuePerMillionTokens float64 `json:"value_per_million_tokens"`
}

// GenerateExecutiveDashboard combines priorities, benefits, and readiness
// into the summary totals. An empty cohort yields a zero dashboard.
func GenerateExecutiveDashboard(benefits []cases.BenefitQuantification, readiness []cases.ReadinessModel, priorities []priority.Score) ExecutiveDashboard {
	benefitByUseCase := make(map[string]cases.BenefitQuantification, len(benefits))
	for _, b := range benefits {
		benefitByUseCase[b.UseCaseID] = b
	}
	readinessByUseCase := make(map[string]cases.ReadinessModel, len(readiness))
	for _, r := range readiness {
		readinessByUseCase[r.UseCaseID] = r
	}

	ranked := make([]priority.Score, len(priorities))
	copy(ranked, priorities)
	priority.SortByPriority(ranked)

	var dash ExecutiveDashboard
	for i, score := range ranked {
		if i >= TopN {
			break
		}
		top := TopInitiative{
			Rank:          i + 1,
			UseCaseID:     score.UseCaseID,
			Name:          score.Name,
			PriorityScore: score.PriorityScore,
		}
		if b, ok := benefitByUseCase[score.UseCaseID]; ok {
			top.AnnualValue = b.TotalAnnualValue
		}
		if r, ok := readinessByUseCase[score.UseCaseID]; ok {
			top.TokenVolume = r.MonthlyTokenVolume
		}
		dash.TopInitiatives = append(dash.TopInitiatives, top)
	}

	for _, b := range benefits {
		dash.TotalCostBenefit += b.CostBenefit
		dash.TotalRevenueBenefit += b.RevenueBenefit
		dash.TotalRiskBenefit += b.RiskBenefit
		dash.TotalCashFlowBenefit += b.CashFlowBenefit
		dash.TotalAnnualValue += b.TotalAnnualValue
		dash.TotalExpectedValue += b.ExpectedValue
	}
	for _, r := range readiness {
		dash.TotalMonthlyTokenVolume += r.MonthlyTokenVolume
	}

	annualTokens := dash.TotalMonthlyTokenVolume * 12
	if annualTokens > 0 {
		dash.ValuePerMillionTokens = dash.TotalExpectedValue / (annualTokens / 1_000_000)
	}

	return dash
}
