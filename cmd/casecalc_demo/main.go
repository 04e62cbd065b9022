package main

import (
	"fmt"

	"initiative_valuation/pkg/core/benefit"
	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/money"
	"initiative_valuation/pkg/core/pipeline"
)

// Demo run over a small built-in cohort, no input file or database needed.
func main() {
	fmt.Println("🚀 Initiative Valuation Demo")

	deck := sampleDeck()
	results := pipeline.Run(deck, benefit.Base)

	fmt.Printf("\nCohort of %d initiatives against %d friction points\n",
		len(deck.Benefits), len(deck.FrictionPoints))

	for _, p := range results.Priorities {
		fmt.Printf("  %-28s priority %.2f  %s, %s\n", p.Name, p.PriorityScore, p.Tier, p.RecommendedPhase)
	}

	for _, s := range results.ScenarioAnalysis.Scenarios {
		fmt.Printf("  %-12s annual %10s  NPV %10s\n",
			s.Scenario, money.Format(s.AnnualBenefit), money.Format(s.NPV))
	}

	m := results.MultiYearProjection
	fmt.Printf("  %d-year NPV %s, IRR ~%.0f%%, payback %.1f months\n",
		m.HorizonYears, money.Format(m.NPV), m.IRRApproxPercent, m.PaybackMonths)

	for _, row := range results.RecoveryRows {
		fmt.Printf("  %-40s %s recovered of %s (%s)\n",
			row.FrictionDescription, money.Format(row.RecoveryAmount),
			money.Format(row.FrictionCost), row.Status)
	}
}

func sampleDeck() *cases.AssessmentDeck {
	return &cases.AssessmentDeck{
		Name: "demo",
		FrictionPoints: []cases.FrictionPoint{
			{ID: "f1", Description: "Manual invoice triage", EstimatedAnnualCost: "$250K"},
			{ID: "f2", Description: "Slow customer onboarding", EstimatedAnnualCost: "$1.2M"},
			{ID: "f3", Description: "Untracked compliance reviews", EstimatedAnnualCost: "$400K"},
		},
		UseCases: []cases.UseCase{
			{ID: "uc1", Name: "Invoice Copilot", TargetFriction: "Manual invoice triage"},
			{ID: "uc2", Name: "Onboarding Assistant", TargetFriction: "Slow customer onboarding"},
		},
		Benefits: []cases.BenefitQuantification{
			{
				UseCaseID: "uc1", Name: "Invoice Copilot", ProbabilityOfSuccess: 0.8,
				CostComponents: []cases.FormulaComponent{
					{Label: "Hours Saved", Value: 4000},
					{Label: "Loaded Hourly Rate", Value: 75},
				},
			},
			{
				UseCaseID: "uc2", Name: "Onboarding Assistant", ProbabilityOfSuccess: 0.65,
				CostComponents: []cases.FormulaComponent{
					{Label: "Hours Saved", Value: 9000},
					{Label: "Loaded Hourly Rate", Value: 90},
				},
				RevenueComponents: []cases.FormulaComponent{
					{Label: "Revenue Uplift %", Value: 0.04},
					{Label: "Revenue at Risk", Value: 8_000_000},
				},
			},
		},
		Readiness: []cases.ReadinessModel{
			{
				UseCaseID: "uc1", DataAvailability: 8, TechInfrastructure: 7,
				OrgCapacity: 6, Governance: 7, TimeToValueMonths: 4,
				RunsPerMonth: 12000, InputTokensPerRun: 2500, OutputTokensPerRun: 600,
			},
			{
				UseCaseID: "uc2", DataAvailability: 5, TechInfrastructure: 6,
				OrgCapacity: 4, Governance: 5, TimeToValueMonths: 9,
				RunsPerMonth: 4000, InputTokensPerRun: 6000, OutputTokensPerRun: 1500,
			},
		},
	}
}
