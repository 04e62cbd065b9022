package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"initiative_valuation/pkg/core/benefit"
	"initiative_valuation/pkg/core/money"
	"initiative_valuation/pkg/core/pipeline"
	"initiative_valuation/pkg/core/store"
	"initiative_valuation/pkg/core/utils"
)

func main() {
	profileName := flag.String("profile", "base", "scenario profile: conservative, base, optimistic")
	save := flag.Bool("save", false, "persist the raw deck to the database (requires DATABASE_URL)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: casecalc [-profile name] [-save] <deck.json|deck.yaml>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	deck, err := utils.LoadDeck(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error loading deck: %v", err)
	}

	profile := benefit.ProfileByName(*profileName)
	results := pipeline.Run(deck, profile)
	printReport(deck.Name, profile.Name, results)

	if *save {
		ctx := context.Background()
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer store.Close()

		snapshotID, err := store.NewDeckRepo().Save(ctx, deck)
		if err != nil {
			log.Fatalf("Error saving deck: %v", err)
		}
		fmt.Printf("\nDeck saved (snapshot %s)\n", snapshotID)
	}
}

func printReport(name, profileName string, r pipeline.Results) {
	fmt.Printf("📊 Assessment: %s (profile: %s)\n", name, profileName)

	fmt.Println("\n--- Executive Dashboard ---")
	d := r.Dashboard
	fmt.Printf("Total annual value:   %s\n", money.Format(d.TotalAnnualValue))
	fmt.Printf("Total expected value: %s\n", money.Format(d.TotalExpectedValue))
	fmt.Printf("  cost %s | revenue %s | risk %s | cash flow %s\n",
		money.Format(d.TotalCostBenefit), money.Format(d.TotalRevenueBenefit),
		money.Format(d.TotalRiskBenefit), money.Format(d.TotalCashFlowBenefit))
	fmt.Printf("Monthly token volume: %.0f (value per 1M tokens: %s)\n",
		d.TotalMonthlyTokenVolume, money.Format(d.ValuePerMillionTokens))

	fmt.Println("\nTop initiatives:")
	for _, top := range d.TopInitiatives {
		fmt.Printf("  %d. %-30s %8s  priority %.2f\n",
			top.Rank, top.Name, money.Format(top.AnnualValue), top.PriorityScore)
	}

	fmt.Println("\n--- Priorities ---")
	for _, p := range r.Priorities {
		fmt.Printf("  %-30s value %.1f  readiness %.1f  ttv %.2f  -> %.2f  %s, %s\n",
			p.Name, p.ValueScore, p.ReadinessScore, p.TTVScore, p.PriorityScore, p.Tier, p.RecommendedPhase)
	}

	fmt.Println("\n--- Scenario Analysis ---")
	for _, s := range r.ScenarioAnalysis.Scenarios {
		fmt.Printf("  %-12s annual %10s  NPV %10s\n",
			s.Scenario, money.Format(s.AnnualBenefit), money.Format(s.NPV))
	}

	m := r.MultiYearProjection
	fmt.Printf("\n--- %d-Year Projection ---\n", m.HorizonYears)
	fmt.Printf("  NPV %s  IRR ~%.0f%%  payback %.1f months  cumulative %s\n",
		money.Format(m.NPV), m.IRRApproxPercent, m.PaybackMonths, money.Format(m.CumulativeBenefit))

	fmt.Println("\n--- Friction Recovery ---")
	for _, row := range r.RecoveryRows {
		fmt.Printf("  %-40s cost %10s  recovered %10s (%5.1f%%)  status %s\n",
			row.FrictionDescription, money.Format(row.FrictionCost),
			money.Format(row.RecoveryAmount), row.RecoveryPercent, row.Status)
	}
	s := r.RecoverySummary
	fmt.Printf("  Overall: %s of %s recovered (%.1f%%), %d mapped / %d unmapped / %d fully recovered\n",
		money.Format(s.TotalRecovery), money.Format(s.TotalFrictionCost), s.RecoveryRatePercent,
		s.MappedCount, s.UnmappedCount, s.FullyRecoveredCount)
}
