package check

// MaxGoverningAttributes is the maximum number of attributes a skill can list
const MaxGoverningAttributes = 3

// SpecializationBonus is added to the point pool when a specialization is used
const SpecializationBonus = 2

// Label is the display classification of an outcome
type Label string

const (
	// LabelSuccess is a plain success
	LabelSuccess Label = "success"

	// LabelFailure is a plain failure
	LabelFailure Label = "failure"

	// LabelCriticalSuccess is shown for a natural 1 or two 1's on a skill check
	LabelCriticalSuccess Label = "critical_success"

	// LabelCriticalFailure is shown for a natural 20 or two 20's on a skill check
	LabelCriticalFailure Label = "critical_failure"
)

// IsCritical reports whether the label is one of the critical labels
func (l Label) IsCritical() bool {
	return l == LabelCriticalSuccess || l == LabelCriticalFailure
}

// SkillDefinition describes a trained skill
type SkillDefinition struct {
	// Name of the skill
	Name string

	// Category is free-form; a closed subset checks with a single die
	Category string

	// GoverningAttributes maps positionally onto the rolled dice
	GoverningAttributes []Attribute

	// SkillValue is the trained proficiency and seeds the point pool
	SkillValue int

	// Specialization names the optional specialization, empty when there is none
	Specialization string
}

// HasSpecialization reports whether the skill carries a specialization
func (s *SkillDefinition) HasSpecialization() bool {
	return s.Specialization != ""
}

// IsSingleRoll reports whether the skill is checked with one die
func (s *SkillDefinition) IsSingleRoll() bool {
	return IsSingleRollCategory(s.Category)
}

// AttributeDetail records how one governing attribute fared
type AttributeDetail struct {
	Attribute     Attribute
	RolledValue   int
	RequiredValue int
	Passed        bool
}

// SkillCheckOutcome is the result of a skill check
type SkillCheckOutcome struct {
	// Rolls are the dice the check was resolved with
	Rolls []int

	// RemainingPoints is the pool left after covering all deficits, -1 on failure
	RemainingPoints int

	// Succeeded is the arithmetic result, independent of criticals
	Succeeded bool

	// QualityLevel is 0-6, always 0 on failure
	QualityLevel int

	// IsCriticalSuccess is set when at least two dice show a 1
	IsCriticalSuccess bool

	// IsCriticalFailure is set when at least two dice show a 20
	IsCriticalFailure bool

	// Details holds one entry per governing attribute in order
	Details []AttributeDetail
}

// Label classifies the outcome for display. A critical failure wins over a
// critical success, and both win over the arithmetic result.
func (o *SkillCheckOutcome) Label() Label {
	return label(o.Succeeded, o.IsCriticalSuccess, o.IsCriticalFailure)
}

// RollOutcome is the result of an attribute check
type RollOutcome struct {
	RolledValue       int
	Target            int
	Succeeded         bool
	IsCriticalSuccess bool
	IsCriticalFailure bool

	// Margin is target minus roll, reported regardless of success
	Margin int
}

// Label classifies the outcome for display using the same precedence as skill checks
func (o *RollOutcome) Label() Label {
	return label(o.Succeeded, o.IsCriticalSuccess, o.IsCriticalFailure)
}

func label(succeeded, criticalSuccess, criticalFailure bool) Label {
	switch {
	case criticalFailure:
		return LabelCriticalFailure
	case criticalSuccess:
		return LabelCriticalSuccess
	case succeeded:
		return LabelSuccess
	default:
		return LabelFailure
	}
}
