// Package pipeline runs the full recompute pass: benefits, readiness,
// priorities, projections, recovery mapping, and the executive dashboard, in
// dependency order. Every surface that needs derived figures goes through
// Run; nothing re-derives any of the component algorithms on its own.
package pipeline

import (
	"initiative_valuation/pkg/core/benefit"
	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/dashboard"
	"initiative_valuation/pkg/core/priority"
	"initiative_valuation/pkg/core/projection"
	"initiative_valuation/pkg/core/readiness"
	"initiative_valuation/pkg/core/recovery"
)

// Results bundles every derived output of one recompute pass. All fields are
// freshly constructed; the input deck is never mutated.
type Results struct {
	Benefits  []cases.BenefitQuantification
	Readiness []cases.ReadinessModel

	Priorities []priority.Score

	ScenarioAnalysis    projection.ScenarioAnalysis
	MultiYearProjection projection.MultiYearProjection

	RecoveryRows    []recovery.Row
	RecoverySummary recovery.Summary

	Dashboard dashboard.ExecutiveDashboard
}

// Run executes a complete recompute of the deck under the given scenario
// profile. The whole cohort is processed in one pass; priority value scores
// are cohort-relative and would silently shift if subsets were scored
// separately.
func Run(deck *cases.AssessmentDeck, profile benefit.Profile) Results {
	benefits := benefit.RecalculateBenefits(deck.Benefits, profile)
	ready := readiness.RecalculateReadiness(deck.Readiness)
	priorities := priority.RecalculatePriorities(benefits, ready)
	rows, summary := recovery.MapFrictionToRecovery(deck.FrictionPoints, deck.UseCases, benefits)

	return Results{
		Benefits:            benefits,
		Readiness:           ready,
		Priorities:          priorities,
		ScenarioAnalysis:    projection.GenerateScenarioAnalysis(deck.Benefits),
		MultiYearProjection: projection.GenerateMultiYearProjection(benefits),
		RecoveryRows:        rows,
		RecoverySummary:     summary,
		Dashboard:           dashboard.GenerateExecutiveDashboard(benefits, ready, priorities),
	}
}
