package check_test

import (
	"testing"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttribute(t *testing.T) {
	a, err := check.ParseAttribute(" kk ")
	require.NoError(t, err)
	assert.Equal(t, check.AttributeStrength, a)

	_, err = check.ParseAttribute("STR")
	assert.ErrorIs(t, err, check.ErrUnknownAttribute)
}

func TestParseAttributeList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []check.Attribute
		wantErr error
	}{
		{
			name:  "three attributes",
			input: "MU,KL,IN",
			want:  []check.Attribute{check.AttributeCourage, check.AttributeWisdom, check.AttributeIntuition},
		},
		{
			name:  "spaces and repeats are allowed",
			input: " ge , ge,kk",
			want:  []check.Attribute{check.AttributeAgility, check.AttributeAgility, check.AttributeStrength},
		},
		{
			name:    "empty list",
			input:   " , ",
			wantErr: check.ErrNoGoverningAttributes,
		},
		{
			name:    "too many attributes",
			input:   "MU,KL,IN,CH",
			wantErr: check.ErrTooManyGoverningAttributes,
		},
		{
			name:    "unknown symbol",
			input:   "MU,XX",
			wantErr: check.ErrUnknownAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := check.ParseAttributeList(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributeSet(t *testing.T) {
	set := check.NewAttributeSet(12)
	assert.Len(t, set, len(check.Attributes))

	clone := set.Clone()
	clone[check.AttributeCourage] = 15
	assert.Equal(t, 12, set.Get(check.AttributeCourage))

	var empty check.AttributeSet
	assert.Equal(t, 0, empty.Get(check.AttributeWisdom))
}

func TestSingleRollCategories(t *testing.T) {
	tests := []struct {
		name string
		want check.SingleRollCategory
		ok   bool
	}{
		{name: "Kampftalente", want: check.CategoryCombatTalents, ok: true},
		{name: "combat talents", want: check.CategoryCombatTalents, ok: true},
		{name: "Sprachen  und Schriften", want: check.CategoryLanguagesAndScripts, ok: true},
		{name: "LANGUAGES & SCRIPTS", want: check.CategoryLanguagesAndScripts, ok: true},
		{name: "Liturgiekenntnis", want: check.CategoryLiturgicalKnowledge, ok: true},
		{name: "Körpertalente", want: check.CategoryNone, ok: false},
		{name: "", want: check.CategoryNone, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := check.ParseSingleRollCategory(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, check.IsSingleRollCategory(tt.name))
		})
	}

	assert.Equal(t, "Kampftalente", check.CategoryCombatTalents.String())
}
