package benefit

// Profile is one named scenario multiplier configuration. BenefitMultiplier
// scales each raw category amount; ProbabilityMultiplier scales probability
// of success (capped at 1 downstream).
type Profile struct {
	Name                  string
	BenefitMultiplier     float64
	ProbabilityMultiplier float64
}

// The three scenario profiles are process-wide constants; nothing mutates
// them after init. Ordering invariant: for identical raw inputs,
// Conservative totals <= Base totals <= Optimistic totals.
var (
	Conservative = Profile{Name: "conservative", BenefitMultiplier: 0.7, ProbabilityMultiplier: 0.9}
	Base         = Profile{Name: "base", BenefitMultiplier: 1.0, ProbabilityMultiplier: 1.0}
	Optimistic   = Profile{Name: "optimistic", BenefitMultiplier: 1.25, ProbabilityMultiplier: 1.1}
)

// Profiles lists the three scenarios in conservative-to-optimistic order.
func Profiles() []Profile {
	return []Profile{Conservative, Base, Optimistic}
}

// ProfileByName resolves a profile from its name, falling back to Base for
// anything unrecognized.
func ProfileByName(name string) Profile {
	switch name {
	case Conservative.Name:
		return Conservative
	case Optimistic.Name:
		return Optimistic
	default:
		return Base
	}
}
