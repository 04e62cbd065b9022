// Package recovery implements the Friction Recovery Mapper: it reconciles
// each organizational friction point against the single initiative targeting
// it and quantifies how much of the friction's cost basis the initiative's
// expected value recovers.
package recovery

import (
	"fmt"
	"sort"
	"strings"

	"initiative_valuation/pkg/core/cases"
	"initiative_valuation/pkg/core/money"
)

// Status classifications for a recovery row.
const (
	StatusUnmapped = "unmapped"
	StatusFull     = "full"
	StatusPartial  = "partial"
	StatusLow      = "low"
)

// Row pairs one friction point with at most one matched initiative.
// RecoveryAmount never exceeds FrictionCost; value beyond the friction basis
// surfaces as AdditionalValue instead.
type Row struct {
	FrictionID          string  `json:"friction_id"`
	FrictionDescription string  `json:"friction_description"`
	UseCaseID           string  `json:"use_case_id"`
	UseCaseName         string  `json:"use_case_name"`
	FrictionCost        float64 `json:"friction_cost"`
	ExpectedValue       float64 `json:"expected_value"`
	RecoveryAmount      float64 `json:"recovery_amount"`
	RecoveryPercent     float64 `json:"recovery_percent"`
	UnrecoveredCost     float64 `json:"unrecovered_cost"`
	AdditionalValue     float64 `json:"additional_value"`
	Status              string  `json:"status"`
	Explanation         string  `json:"explanation"`
}

// Summary aggregates all recovery rows for one assessment.
type Summary struct {
	TotalFrictionCost    float64 `json:"total_friction_cost"`
	TotalRecovery        float64 `json:"total_recovery"`
	TotalUnrecovered     float64 `json:"total_unrecovered"`
	TotalAdditionalValue float64 `json:"total_additional_value"`
	RecoveryRatePercent  float64 `json:"recovery_rate_percent"`
	MappedCount          int     `json:"mapped_count"`
	UnmappedCount        int     `json:"unmapped_count"`
	FullyRecoveredCount  int     `json:"fully_recovered_count"`
}

// MapFrictionToRecovery produces one Row per friction point plus aggregate
// totals. Rows come back sorted descending by friction cost.
func MapFrictionToRecovery(frictions []cases.FrictionPoint, useCases []cases.UseCase, benefits []cases.BenefitQuantification) ([]Row, Summary) {
	benefitByUseCase := make(map[string]cases.BenefitQuantification, len(benefits))
	for _, b := range benefits {
		benefitByUseCase[b.UseCaseID] = b
	}

	rows := make([]Row, 0, len(frictions))
	for _, friction := range frictions {
		rows = append(rows, buildRow(friction, matchInitiative(friction, useCases), benefitByUseCase))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FrictionCost > rows[j].FrictionCost
	})

	return rows, summarize(rows)
}

// matchInitiative resolves the single initiative addressing a friction point.
// The join key is exact string equality between the initiative's target
// friction text and the friction description; the first match wins and there
// is no fuzzy fallback. Keeping this behind one function is deliberate: the
// join can later move to an identifier-based key without touching the rest
// of the pipeline.
func matchInitiative(friction cases.FrictionPoint, useCases []cases.UseCase) *cases.UseCase {
	for i := range useCases {
		if useCases[i].TargetFriction == friction.Description {
			return &useCases[i]
		}
	}
	return nil
}

func buildRow(friction cases.FrictionPoint, matched *cases.UseCase, benefitByUseCase map[string]cases.BenefitQuantification) Row {
	row := Row{
		FrictionID:          friction.ID,
		FrictionDescription: friction.Description,
		FrictionCost:        money.Parse(friction.EstimatedAnnualCost),
		Status:              StatusUnmapped,
		Explanation:         "No initiative targets this friction point.",
	}
	if matched == nil {
		return row
	}

	b, hasBenefit := benefitByUseCase[matched.ID]

	row.UseCaseID = matched.ID
	row.UseCaseName = matched.Name
	if hasBenefit {
		row.ExpectedValue = b.ExpectedValue
	}

	row.RecoveryAmount = row.ExpectedValue
	if row.RecoveryAmount > row.FrictionCost {
		row.RecoveryAmount = row.FrictionCost
	}
	if row.FrictionCost > 0 {
		row.RecoveryPercent = row.RecoveryAmount / row.FrictionCost * 100
	}
	row.UnrecoveredCost = row.FrictionCost - row.RecoveryAmount
	if row.UnrecoveredCost < 0 {
		row.UnrecoveredCost = 0
	}
	row.AdditionalValue = row.ExpectedValue - row.FrictionCost
	if row.AdditionalValue < 0 {
		row.AdditionalValue = 0
	}

	row.Status = classify(row.RecoveryPercent)
	row.Explanation = explain(row, b)
	return row
}

func classify(recoveryPercent float64) string {
	switch {
	case recoveryPercent >= 100:
		return StatusFull
	case recoveryPercent >= 50:
		return StatusPartial
	default:
		return StatusLow
	}
}

// explain names the non-cost benefit categories behind any additional value.
// Cost benefit is the primary recovery mechanism, so it alone never counts
// as a source of value beyond the friction basis.
func explain(row Row, b cases.BenefitQuantification) string {
	if row.AdditionalValue <= 0 {
		return "Recovery only; no additional benefit beyond the friction cost."
	}

	var sources []string
	if b.RevenueBenefit > 0 {
		sources = append(sources, "revenue uplift")
	}
	if b.RiskBenefit > 0 {
		sources = append(sources, "risk reduction")
	}
	if b.CashFlowBenefit > 0 {
		sources = append(sources, "cash flow acceleration")
	}
	if len(sources) == 0 {
		return "Recovery only; no additional benefit beyond the friction cost."
	}

	return fmt.Sprintf("%s of additional value beyond the friction cost, driven by %s.",
		money.Format(row.AdditionalValue), strings.Join(sources, ", "))
}

func summarize(rows []Row) Summary {
	var s Summary
	for _, row := range rows {
		s.TotalFrictionCost += row.FrictionCost
		s.TotalRecovery += row.RecoveryAmount
		s.TotalUnrecovered += row.UnrecoveredCost
		s.TotalAdditionalValue += row.AdditionalValue
		if row.Status == StatusUnmapped {
			s.UnmappedCount++
			continue
		}
		s.MappedCount++
		if row.Status == StatusFull {
			s.FullyRecoveredCount++
		}
	}
	if s.TotalFrictionCost > 0 {
		s.RecoveryRatePercent = s.TotalRecovery / s.TotalFrictionCost * 100
	}
	return s
}
