// Package readiness implements the Readiness Scorer: it aggregates the four
// implementation-readiness dimension ratings into a composite score and
// derives usage-volume token cost estimates.
package readiness

import (
	"math"

	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/money"
)

// Blended inference price per token, annualized against monthly volume.
// $15 per million tokens across input and output.
const CostPerToken = 15.0 / 1_000_000

// RecalculateReadiness recomputes the composite score, monthly token volume,
// and annualized token cost for every initiative. Inputs are not mutated.
func RecalculateReadiness(items []cases.ReadinessModel) []cases.ReadinessModel {
	out := make([]cases.ReadinessModel, 0, len(items))
	for _, item := range items {
		result := item
		result.CompositeScore = CompositeScore(item)
		result.MonthlyTokenVolume = MonthlyTokenVolume(item)
		result.AnnualTokenCost = money.Format(AnnualTokenCost(result.MonthlyTokenVolume))
		out = append(out, result)
	}
	return out
}

// CompositeScore is the arithmetic mean of the four dimension ratings,
// rounded to one decimal place. Dimension inputs are clamped to [0, 10] so a
// bad import can never push the composite out of range.
func CompositeScore(item cases.ReadinessModel) float64 {
	sum := clampDimension(item.DataAvailability) +
		clampDimension(item.TechInfrastructure) +
		clampDimension(item.OrgCapacity) +
		clampDimension(item.Governance)
	return math.Round(sum/4*10) / 10
}

// MonthlyTokenVolume is runs per month times total tokens per run.
func MonthlyTokenVolume(item cases.ReadinessModel) float64 {
	return item.RunsPerMonth * (item.InputTokensPerRun + item.OutputTokensPerRun)
}

// AnnualTokenCost annualizes the inference spend implied by a monthly token
// volume at the blended per-token rate.
func AnnualTokenCost(monthlyTokenVolume float64) float64 {
	return monthlyTokenVolume * CostPerToken * 12
}

func clampDimension(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
