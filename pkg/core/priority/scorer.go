// Package priority implements the Priority Scorer: a weighted combination of
// cohort-relative value, readiness, and time-to-value that yields a single
// 0-10 priority score, a quadrant tier, and a recommended rollout phase per
// initiative.
package priority

import (
	"math"
	"sort"

	"initiative_valuation/pkg/core/cases"
)

// Score weights. Value dominates, readiness second, time-to-value least.
const (
	WeightValue     = 0.5
	WeightReadiness = 0.3
	WeightTTV       = 0.2
)

// Defaults applied when an initiative has no matching readiness record.
const (
	DefaultReadinessScore    = 5.0
	DefaultTimeToValueMonths = 12.0
)

// TTVHorizonMonths is the window over which the time-to-value score decays
// linearly from 1 to 0. Anything slower than the horizon scores 0.
const TTVHorizonMonths = 24.0

// Priority tiers: quadrants of the (value score, readiness score) plane split
// at the 0-10 midpoint.
const (
	TierChampions  = "Champions"
	TierStrategic  = "Strategic"
	TierQuickWins  = "Quick Wins"
	TierFoundation = "Foundation"
)

// Score is the per-initiative output of the Priority Scorer.
type Score struct {
	UseCaseID string `json:"use_case_id"`
	Name      string `json:"name"`

	ValueScore     float64 `json:"value_score"`     // 0-10, cohort-relative
	ReadinessScore float64 `json:"readiness_score"` // 0-10, copied from readiness
	TTVScore       float64 `json:"ttv_score"`       // 0-1, faster is higher

	PriorityScore    float64 `json:"priority_score"` // 0-10, weighted blend
	Tier             string  `json:"tier"`
	RecommendedPhase string  `json:"recommended_phase"`
}

// RecalculatePriorities produces one Score per initiative in the benefits
// cohort. The value score is normalized against the cohort maximum expected
// value, so the whole cohort must be passed in one call; scoring a subset
// silently shifts every value score.
func RecalculatePriorities(benefits []cases.BenefitQuantification, readiness []cases.ReadinessModel) []Score {
	maxEV := 0.0
	for _, b := range benefits {
		if b.ExpectedValue > maxEV {
			maxEV = b.ExpectedValue
		}
	}

	byUseCase := make(map[string]cases.ReadinessModel, len(readiness))
	for _, r := range readiness {
		byUseCase[r.UseCaseID] = r
	}

	scores := make([]Score, 0, len(benefits))
	for _, b := range benefits {
		valueScore := 0.0
		if maxEV > 0 {
			valueScore = clamp(b.ExpectedValue/maxEV*10, 0, 10)
		}

		readinessScore := DefaultReadinessScore
		ttvMonths := DefaultTimeToValueMonths
		if r, ok := byUseCase[b.UseCaseID]; ok {
			readinessScore = clamp(r.CompositeScore, 0, 10)
			if r.TimeToValueMonths > 0 {
				ttvMonths = r.TimeToValueMonths
			}
		}
		ttvScore := TTVScore(ttvMonths)

		priorityScore := WeightValue*valueScore + WeightReadiness*readinessScore + WeightTTV*(ttvScore*10)
		priorityScore = math.Round(priorityScore*100) / 100

		scores = append(scores, Score{
			UseCaseID:        b.UseCaseID,
			Name:             b.Name,
			ValueScore:       valueScore,
			ReadinessScore:   readinessScore,
			TTVScore:         ttvScore,
			PriorityScore:    priorityScore,
			Tier:             Tier(valueScore, readinessScore),
			RecommendedPhase: RecommendedPhase(priorityScore),
		})
	}
	return scores
}

// TTVScore maps time-to-value in months onto [0, 1], decreasing linearly
// across the horizon. 0 months scores 1; the horizon or slower scores 0.
func TTVScore(months float64) float64 {
	return clamp(1-months/TTVHorizonMonths, 0, 1)
}

// Tier buckets an initiative into its quadrant of the value/readiness plane.
func Tier(valueScore, readinessScore float64) string {
	highValue := valueScore >= 5
	highReadiness := readinessScore >= 5
	switch {
	case highValue && highReadiness:
		return TierChampions
	case highValue:
		return TierStrategic
	case highReadiness:
		return TierQuickWins
	default:
		return TierFoundation
	}
}

// RecommendedPhase maps the priority score onto a rollout phase: the higher
// the score, the earlier the phase.
func RecommendedPhase(priorityScore float64) string {
	switch {
	case priorityScore >= 7.5:
		return "Phase 1 (0-6 months)"
	case priorityScore >= 5:
		return "Phase 2 (6-12 months)"
	case priorityScore >= 2.5:
		return "Phase 3 (12-18 months)"
	default:
		return "Phase 4 (18+ months)"
	}
}

// SortByPriority orders scores descending by priority score. The sort is
// stable: equal scores keep their relative input order.
func SortByPriority(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].PriorityScore > scores[j].PriorityScore
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
