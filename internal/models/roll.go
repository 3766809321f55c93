package models

import (
	"time"
)

// RollKind tells skill checks and attribute checks apart in the log
type RollKind string

const (
	// RollKindSkill is a talent check
	RollKindSkill RollKind = "skill"

	// RollKindAttribute is a single attribute check
	RollKindAttribute RollKind = "attribute"
)

// RollLogEntry is one line of a player's dice log
type RollLogEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// OwnerID is the Discord user ID of the player who rolled
	OwnerID string

	// CharacterName is the character the check was made for
	CharacterName string

	// Kind is the type of check
	Kind RollKind

	// Title names what was rolled, e.g. "Klettern (Spez) [Körpertalente]"
	Title string

	// Rolls are the dice drawn for the check
	Rolls []int

	// Result is the formatted outcome text
	Result string

	// Details holds one formatted line per checked attribute
	Details []string

	// Succeeded is the arithmetic result of the check
	Succeeded bool

	// Critical is set when the outcome was labelled critical
	Critical bool

	// Timestamp is when the roll was made
	Timestamp time.Time
}
