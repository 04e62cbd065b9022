// Package cases defines the raw assessment records the valuation engine
// operates on. Records are analyst-entered, persisted outside the core, and
// recomputed in full on every calculate pass; nothing in this package carries
// derived state that survives between calls.
package cases

// FormulaComponent is a single labeled input to a benefit formula,
// e.g. {"Hours Saved", 120}. A category is computed from an ordered set
// of these; lookup is by exact label.
type FormulaComponent struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Lookup returns the value of the component with the given label, or the
// fallback when no component carries it. Missing inputs never fail a
// calculation; they resolve to documented defaults.
func Lookup(components []FormulaComponent, label string, fallback float64) float64 {
	for _, c := range components {
		if c.Label == label {
			return c.Value
		}
	}
	return fallback
}

// BenefitQuantification holds the four benefit formula component sets for one
// initiative plus the dollar figures the Benefit Calculator derives from them.
// The derived fields are overwritten wholesale on every recalculation.
type BenefitQuantification struct {
	UseCaseID string `json:"use_case_id" yaml:"use_case_id"`
	Name      string `json:"name" yaml:"name"`

	CostComponents     []FormulaComponent `json:"cost_components" yaml:"cost_components"`
	RevenueComponents  []FormulaComponent `json:"revenue_components" yaml:"revenue_components"`
	RiskComponents     []FormulaComponent `json:"risk_components" yaml:"risk_components"`
	CashFlowComponents []FormulaComponent `json:"cash_flow_components" yaml:"cash_flow_components"`

	ProbabilityOfSuccess float64 `json:"probability_of_success" yaml:"probability_of_success"`

	// Derived (overwritten by the Benefit Calculator)
	CostBenefit      float64 `json:"cost_benefit" yaml:"-"`
	RevenueBenefit   float64 `json:"revenue_benefit" yaml:"-"`
	RiskBenefit      float64 `json:"risk_benefit" yaml:"-"`
	CashFlowBenefit  float64 `json:"cash_flow_benefit" yaml:"-"`
	TotalAnnualValue float64 `json:"total_annual_value" yaml:"-"`
	ExpectedValue    float64 `json:"expected_value" yaml:"-"`
}

// ReadinessModel holds the four 0-10 dimension ratings and usage-volume
// inputs for one initiative, plus the composite score and token cost
// estimates the Readiness Scorer derives.
type ReadinessModel struct {
	UseCaseID string `json:"use_case_id" yaml:"use_case_id"`

	DataAvailability   float64 `json:"data_availability" yaml:"data_availability"`
	TechInfrastructure float64 `json:"tech_infrastructure" yaml:"tech_infrastructure"`
	OrgCapacity        float64 `json:"org_capacity" yaml:"org_capacity"`
	Governance         float64 `json:"governance" yaml:"governance"`

	TimeToValueMonths float64 `json:"time_to_value_months" yaml:"time_to_value_months"`

	RunsPerMonth       float64 `json:"runs_per_month" yaml:"runs_per_month"`
	InputTokensPerRun  float64 `json:"input_tokens_per_run" yaml:"input_tokens_per_run"`
	OutputTokensPerRun float64 `json:"output_tokens_per_run" yaml:"output_tokens_per_run"`

	// Derived (overwritten by the Readiness Scorer)
	CompositeScore     float64 `json:"composite_score" yaml:"-"`
	MonthlyTokenVolume float64 `json:"monthly_token_volume" yaml:"-"`
	AnnualTokenCost    string  `json:"annual_token_cost" yaml:"-"`
}

// UseCase is one proposed AI initiative. TargetFriction is the free-text
// description of the friction point it addresses and doubles as the
// recovery-mapping join key.
type UseCase struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	TargetFriction string `json:"target_friction" yaml:"target_friction"`
}

// FrictionPoint is a described organizational inefficiency with an estimated
// annualized cost. The cost is carried as a currency string ("$1.2M") and
// parsed on demand; Description is the recovery-mapping join key.
type FrictionPoint struct {
	ID                  string `json:"id" yaml:"id"`
	Description         string `json:"description" yaml:"description"`
	EstimatedAnnualCost string `json:"estimated_annual_cost" yaml:"estimated_annual_cost"`
}

// AssessmentDeck is a full raw input set for one assessment: everything the
// engine needs for a complete recompute.
type AssessmentDeck struct {
	Name           string                  `json:"name" yaml:"name"`
	FrictionPoints []FrictionPoint         `json:"friction_points" yaml:"friction_points"`
	UseCases       []UseCase               `json:"use_cases" yaml:"use_cases"`
	Benefits       []BenefitQuantification `json:"benefits" yaml:"benefits"`
	Readiness      []ReadinessModel        `json:"readiness" yaml:"readiness"`
}
