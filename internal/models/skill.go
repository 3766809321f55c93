package models

import (
	"github.com/KirkDiggler/talentprobe/internal/check"
)

// Skill is a talent as it appears on a character sheet and in talent.json
type Skill struct {
	// Name is the talent name, unique per character
	Name string `json:"name"`

	// Category groups the talent, e.g. "Körpertalente" or "Kampftalente"
	Category string `json:"category"`

	// Attributes are the governing attributes in check order
	Attributes []check.Attribute `json:"attr"`

	// Value is the trained talent value (TaW)
	Value int `json:"value"`

	// Specialization is the optional specialization name
	Specialization string `json:"spec,omitempty"`
}

// Definition converts the sheet entry into the shape the resolver checks
func (s *Skill) Definition() *check.SkillDefinition {
	return &check.SkillDefinition{
		Name:                s.Name,
		Category:            s.Category,
		GoverningAttributes: append([]check.Attribute{}, s.Attributes...),
		SkillValue:          s.Value,
		Specialization:      s.Specialization,
	}
}

// Clone returns an independent copy of the skill
func (s *Skill) Clone() *Skill {
	clone := *s
	clone.Attributes = append([]check.Attribute{}, s.Attributes...)
	return &clone
}

// CloneSkills copies a skill list so characters never share entries
func CloneSkills(skills []*Skill) []*Skill {
	clones := make([]*Skill, 0, len(skills))
	for _, skill := range skills {
		if skill == nil {
			continue
		}
		clones = append(clones, skill.Clone())
	}
	return clones
}
