package check

import (
	"strings"

	"golang.org/x/text/cases"
)

// SingleRollCategory is a skill category that is checked with one die
// no matter how many attributes govern the skill
type SingleRollCategory int

const (
	// CategoryNone marks every category that rolls one die per attribute
	CategoryNone SingleRollCategory = iota

	// CategoryCombatTalents (Kampftalente)
	CategoryCombatTalents

	// CategoryLanguagesAndScripts (Sprachen und Schriften)
	CategoryLanguagesAndScripts

	// CategoryLiturgicalKnowledge (Liturgiekenntnis)
	CategoryLiturgicalKnowledge
)

// String returns the canonical German category name
func (c SingleRollCategory) String() string {
	switch c {
	case CategoryCombatTalents:
		return "Kampftalente"
	case CategoryLanguagesAndScripts:
		return "Sprachen und Schriften"
	case CategoryLiturgicalKnowledge:
		return "Liturgiekenntnis"
	default:
		return ""
	}
}

// singleRollNames holds every known spelling, keyed by its case folded form
var singleRollNames = buildSingleRollNames(map[SingleRollCategory][]string{
	CategoryCombatTalents: {
		"Kampftalente",
		"Combat Talents",
		"Combat",
	},
	CategoryLanguagesAndScripts: {
		"Sprachen und Schriften",
		"Sprachen & Schriften",
		"Languages & Scripts",
		"Languages and Scripts",
	},
	CategoryLiturgicalKnowledge: {
		"Liturgiekenntnis",
		"Liturgiekenntnisse",
		"Liturgical Knowledge",
	},
})

func buildSingleRollNames(names map[SingleRollCategory][]string) map[string]SingleRollCategory {
	lookup := make(map[string]SingleRollCategory)
	for category, spellings := range names {
		for _, spelling := range spellings {
			lookup[foldCategory(spelling)] = category
		}
	}
	return lookup
}

func foldCategory(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// ParseSingleRollCategory maps a free-form category name onto the closed
// single-roll set. The second return value is false for all other categories.
func ParseSingleRollCategory(name string) (SingleRollCategory, bool) {
	category, ok := singleRollNames[foldCategory(name)]
	return category, ok
}

// IsSingleRollCategory reports whether skills of the category roll one die
func IsSingleRollCategory(name string) bool {
	_, ok := ParseSingleRollCategory(name)
	return ok
}
