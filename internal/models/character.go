package models

import (
	"strings"
	"time"

	"github.com/KirkDiggler/talentprobe/internal/check"
)

// Character is a hero owned by a Discord user
type Character struct {
	// ID is the unique identifier for the character
	ID string

	// OwnerID is the Discord user ID of the player the character belongs to
	OwnerID string

	// Name is the display name, unique per owner
	Name string

	// Attributes holds the eight base attributes
	Attributes check.AttributeSet

	// Skills is the talent sheet
	Skills []*Skill

	// CreatedAt is when the character was created
	CreatedAt time.Time

	// UpdatedAt is when the character was last changed
	UpdatedAt time.Time
}

// FindSkill looks a talent up by name, ignoring case
func (c *Character) FindSkill(name string) *Skill {
	name = strings.TrimSpace(name)
	for _, skill := range c.Skills {
		if strings.EqualFold(skill.Name, name) {
			return skill
		}
	}
	return nil
}

// RosterEntry is one character in an exported roster
type RosterEntry struct {
	Attributes check.AttributeSet `json:"attributes"`
	Skills     []*Skill           `json:"skills"`
}

// Roster is the export document: character name to sheet
type Roster map[string]*RosterEntry
