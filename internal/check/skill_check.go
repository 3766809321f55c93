package check

// DieFaces is the number of faces on the die every check uses
const DieFaces = 20

// DiceCount returns how many dice a check of the skill draws
func DiceCount(skill *SkillDefinition) int {
	if skill == nil {
		return 0
	}
	if skill.IsSingleRoll() {
		return 1
	}
	return len(skill.GoverningAttributes)
}

// ResolveSkillCheck resolves a skill check against pre-drawn dice.
//
// Each governing attribute is checked against the die at its position, or
// the first die for single-roll categories and for positions the caller did
// not supply. Every point a die exceeds its attribute is paid from the pool
// of skill value plus the optional specialization bonus; the check fails once
// the pool goes negative. Two or more 1's or 20's anywhere in the sequence
// flag a critical, which is reported alongside the arithmetic.
func ResolveSkillCheck(skill *SkillDefinition, attributes AttributeSet, useSpecialization bool, rolls []int) (*SkillCheckOutcome, error) {
	if skill == nil {
		return nil, ErrNilSkill
	}
	if len(skill.GoverningAttributes) == 0 {
		return nil, ErrNoGoverningAttributes
	}

	ones, twenties := 0, 0
	for _, roll := range rolls {
		switch roll {
		case 1:
			ones++
		case DieFaces:
			twenties++
		}
	}

	pool := skill.SkillValue
	if useSpecialization && skill.HasSpecialization() {
		pool += SpecializationBonus
	}

	singleRoll := skill.IsSingleRoll()
	details := make([]AttributeDetail, 0, len(skill.GoverningAttributes))
	for i, attribute := range skill.GoverningAttributes {
		rolled := dieFor(rolls, i, singleRoll)
		required := attributes.Get(attribute)

		deficit := rolled - required
		if deficit > 0 {
			pool -= deficit
		}

		details = append(details, AttributeDetail{
			Attribute:     attribute,
			RolledValue:   rolled,
			RequiredValue: required,
			Passed:        deficit <= 0,
		})
	}

	outcome := &SkillCheckOutcome{
		Rolls:             append([]int{}, rolls...),
		RemainingPoints:   -1,
		Succeeded:         pool >= 0,
		IsCriticalSuccess: ones >= 2,
		IsCriticalFailure: twenties >= 2,
		Details:           details,
	}
	if outcome.Succeeded {
		outcome.RemainingPoints = pool
		outcome.QualityLevel = QualityLevel(pool)
	}

	return outcome, nil
}

// dieFor picks the die checked against the attribute at position i.
// With no dice at all the attribute is checked against the worst face.
func dieFor(rolls []int, i int, singleRoll bool) int {
	if len(rolls) == 0 {
		return DieFaces
	}
	if singleRoll || i >= len(rolls) {
		return rolls[0]
	}
	return rolls[i]
}
