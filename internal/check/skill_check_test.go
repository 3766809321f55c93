package check_test

import (
	"testing"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSkillCheck(t *testing.T) {
	allTwelve := check.NewAttributeSet(12)

	tests := []struct {
		name          string
		skill         *check.SkillDefinition
		attributes    check.AttributeSet
		useSpec       bool
		rolls         []int
		wantSucceeded bool
		wantPoints    int
		wantQuality   int
		wantPassed    []bool
		wantRolled    []int
	}{
		{
			name: "zero skill value single attribute roll under",
			skill: &check.SkillDefinition{
				Name:                "Zechen",
				GoverningAttributes: []check.Attribute{check.AttributeConstitution},
			},
			attributes:    allTwelve,
			rolls:         []int{5},
			wantSucceeded: true,
			wantPoints:    0,
			wantQuality:   0,
			wantPassed:    []bool{true},
			wantRolled:    []int{5},
		},
		{
			name: "zero skill value single attribute roll over",
			skill: &check.SkillDefinition{
				Name:                "Zechen",
				GoverningAttributes: []check.Attribute{check.AttributeConstitution},
			},
			attributes:    allTwelve,
			rolls:         []int{15},
			wantSucceeded: false,
			wantPoints:    -1,
			wantQuality:   0,
			wantPassed:    []bool{false},
			wantRolled:    []int{15},
		},
		{
			name: "three attributes one deficit",
			skill: &check.SkillDefinition{
				Name:                "Sinnesschärfe",
				Category:            "Körpertalente",
				GoverningAttributes: []check.Attribute{check.AttributeWisdom, check.AttributeIntuition, check.AttributeIntuition},
				SkillValue:          10,
			},
			attributes:    allTwelve,
			rolls:         []int{13, 12, 11},
			wantSucceeded: true,
			wantPoints:    9,
			wantQuality:   3,
			wantPassed:    []bool{false, true, true},
			wantRolled:    []int{13, 12, 11},
		},
		{
			name: "specialization adds two points",
			skill: &check.SkillDefinition{
				Name:                "Klettern",
				GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength},
				SkillValue:          1,
				Specialization:      "Fassadenklettern",
			},
			attributes:    allTwelve,
			useSpec:       true,
			rolls:         []int{15, 10, 10},
			wantSucceeded: true,
			wantPoints:    0,
			wantQuality:   0,
			wantPassed:    []bool{false, true, true},
			wantRolled:    []int{15, 10, 10},
		},
		{
			name: "specialization request without specialization is a no-op",
			skill: &check.SkillDefinition{
				Name:                "Klettern",
				GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength},
				SkillValue:          1,
			},
			attributes:    allTwelve,
			useSpec:       true,
			rolls:         []int{15, 10, 10},
			wantSucceeded: false,
			wantPoints:    -1,
			wantQuality:   0,
			wantPassed:    []bool{false, true, true},
			wantRolled:    []int{15, 10, 10},
		},
		{
			name: "missing attribute counts as zero",
			skill: &check.SkillDefinition{
				Name:                "Magiekunde",
				GoverningAttributes: []check.Attribute{check.AttributeWisdom},
				SkillValue:          4,
			},
			attributes:    check.AttributeSet{},
			rolls:         []int{4},
			wantSucceeded: true,
			wantPoints:    0,
			wantQuality:   0,
			wantPassed:    []bool{false},
			wantRolled:    []int{4},
		},
		{
			name: "single roll category reuses the first die",
			skill: &check.SkillDefinition{
				Name:                "Schwerter",
				Category:            "Kampftalente",
				GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength},
				SkillValue:          5,
			},
			attributes:    allTwelve,
			rolls:         []int{14, 1, 1},
			wantSucceeded: false,
			wantPoints:    -1,
			wantQuality:   0,
			wantPassed:    []bool{false, false, false},
			wantRolled:    []int{14, 14, 14},
		},
		{
			name: "short roll sequence falls back to the first die",
			skill: &check.SkillDefinition{
				Name:                "Überreden",
				GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeIntuition, check.AttributeCharisma},
				SkillValue:          7,
			},
			attributes:    allTwelve,
			rolls:         []int{14},
			wantSucceeded: true,
			wantPoints:    1,
			wantQuality:   1,
			wantPassed:    []bool{false, false, false},
			wantRolled:    []int{14, 14, 14},
		},
		{
			name: "empty roll sequence checks against the worst face",
			skill: &check.SkillDefinition{
				Name:                "Tanzen",
				GoverningAttributes: []check.Attribute{check.AttributeAgility},
				SkillValue:          10,
			},
			attributes:    allTwelve,
			rolls:         nil,
			wantSucceeded: true,
			wantPoints:    2,
			wantQuality:   1,
			wantPassed:    []bool{false},
			wantRolled:    []int{20},
		},
		{
			name: "high pool reaches the top quality level",
			skill: &check.SkillDefinition{
				Name:                "Reiten",
				GoverningAttributes: []check.Attribute{check.AttributeCharisma, check.AttributeAgility, check.AttributeStrength},
				SkillValue:          18,
			},
			attributes:    allTwelve,
			rolls:         []int{3, 4, 5},
			wantSucceeded: true,
			wantPoints:    18,
			wantQuality:   6,
			wantPassed:    []bool{true, true, true},
			wantRolled:    []int{3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := check.ResolveSkillCheck(tt.skill, tt.attributes, tt.useSpec, tt.rolls)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSucceeded, outcome.Succeeded)
			assert.Equal(t, tt.wantPoints, outcome.RemainingPoints)
			assert.Equal(t, tt.wantQuality, outcome.QualityLevel)
			require.Len(t, outcome.Details, len(tt.skill.GoverningAttributes))

			for i, detail := range outcome.Details {
				assert.Equal(t, tt.skill.GoverningAttributes[i], detail.Attribute)
				assert.Equal(t, tt.wantRolled[i], detail.RolledValue)
				assert.Equal(t, tt.attributes.Get(detail.Attribute), detail.RequiredValue)
				assert.Equal(t, tt.wantPassed[i], detail.Passed)
			}
		})
	}
}

func TestResolveSkillCheck_Criticals(t *testing.T) {
	skill := &check.SkillDefinition{
		Name:                "Körperbeherrschung",
		GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeIntuition, check.AttributeAgility},
		SkillValue:          0,
	}
	attributes := check.NewAttributeSet(10)

	t.Run("two ones flag a critical success even when the check fails", func(t *testing.T) {
		outcome, err := check.ResolveSkillCheck(skill, attributes, false, []int{1, 1, 19})
		require.NoError(t, err)

		assert.True(t, outcome.IsCriticalSuccess)
		assert.False(t, outcome.IsCriticalFailure)
		assert.False(t, outcome.Succeeded)
		assert.Equal(t, -1, outcome.RemainingPoints)
		assert.Equal(t, check.LabelCriticalSuccess, outcome.Label())
	})

	t.Run("two twenties flag a critical failure", func(t *testing.T) {
		outcome, err := check.ResolveSkillCheck(skill, attributes, false, []int{20, 3, 20})
		require.NoError(t, err)

		assert.True(t, outcome.IsCriticalFailure)
		assert.False(t, outcome.IsCriticalSuccess)
		assert.Equal(t, check.LabelCriticalFailure, outcome.Label())
	})

	t.Run("a single one is not critical", func(t *testing.T) {
		outcome, err := check.ResolveSkillCheck(skill, attributes, false, []int{1, 5, 6})
		require.NoError(t, err)

		assert.False(t, outcome.IsCriticalSuccess)
		assert.True(t, outcome.Succeeded)
		assert.Equal(t, check.LabelSuccess, outcome.Label())
	})

	t.Run("critical failure wins when both conditions hold", func(t *testing.T) {
		outcome, err := check.ResolveSkillCheck(skill, attributes, false, []int{1, 1, 20, 20})
		require.NoError(t, err)

		assert.True(t, outcome.IsCriticalSuccess)
		assert.True(t, outcome.IsCriticalFailure)
		assert.Equal(t, check.LabelCriticalFailure, outcome.Label())
	})

	t.Run("criticals count dice beyond the governing attributes", func(t *testing.T) {
		single := &check.SkillDefinition{
			Name:                "Bosparano",
			Category:            "Sprachen und Schriften",
			GoverningAttributes: []check.Attribute{check.AttributeWisdom},
		}
		outcome, err := check.ResolveSkillCheck(single, attributes, false, []int{1, 1})
		require.NoError(t, err)

		assert.True(t, outcome.IsCriticalSuccess)
	})
}

func TestResolveSkillCheck_InvalidInput(t *testing.T) {
	_, err := check.ResolveSkillCheck(nil, check.NewAttributeSet(12), false, []int{3})
	assert.ErrorIs(t, err, check.ErrNilSkill)

	_, err = check.ResolveSkillCheck(&check.SkillDefinition{Name: "Leer"}, check.NewAttributeSet(12), false, []int{3})
	assert.ErrorIs(t, err, check.ErrNoGoverningAttributes)
}

func TestResolveSkillCheck_DoesNotRetainInputs(t *testing.T) {
	skill := &check.SkillDefinition{
		Name:                "Wildnisleben",
		GoverningAttributes: []check.Attribute{check.AttributeIntuition, check.AttributeAgility, check.AttributeConstitution},
		SkillValue:          6,
	}
	attributes := check.NewAttributeSet(11)
	rolls := []int{12, 9, 14}

	first, err := check.ResolveSkillCheck(skill, attributes, false, rolls)
	require.NoError(t, err)
	second, err := check.ResolveSkillCheck(skill, attributes, false, rolls)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, check.NewAttributeSet(11), attributes)
	assert.Equal(t, []int{12, 9, 14}, rolls)

	rolls[0] = 1
	assert.Equal(t, 12, first.Rolls[0])
}

func TestDiceCount(t *testing.T) {
	attrs := []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength}

	assert.Equal(t, 3, check.DiceCount(&check.SkillDefinition{Category: "Körpertalente", GoverningAttributes: attrs}))
	assert.Equal(t, 1, check.DiceCount(&check.SkillDefinition{Category: "Kampftalente", GoverningAttributes: attrs}))
	assert.Equal(t, 1, check.DiceCount(&check.SkillDefinition{Category: "Liturgical Knowledge", GoverningAttributes: attrs}))
	assert.Equal(t, 2, check.DiceCount(&check.SkillDefinition{GoverningAttributes: attrs[:2]}))
	assert.Equal(t, 0, check.DiceCount(nil))
}
