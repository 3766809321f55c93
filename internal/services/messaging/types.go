package messaging

import (
	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/models"
)

// Outcome texts shown to players
const (
	TextCriticalSuccess = "✅ Kritischer Erfolg"
	TextCriticalFailure = "❌ Kritischer Patzer"

	markPassed = "✔"
	markFailed = "✘"
)

// ErrorKind identifies a user-facing error situation
type ErrorKind string

const (
	ErrorKindNoActiveCharacter ErrorKind = "no_active_character"
	ErrorKindCharacterExists   ErrorKind = "character_exists"
	ErrorKindCharacterNotFound ErrorKind = "character_not_found"
	ErrorKindInvalidName       ErrorKind = "invalid_name"
	ErrorKindUnknownAttribute  ErrorKind = "unknown_attribute"
	ErrorKindInvalidValue      ErrorKind = "invalid_value"
	ErrorKindSkillNotFound     ErrorKind = "skill_not_found"
	ErrorKindSkillExists       ErrorKind = "skill_exists"
	ErrorKindInvalidSkill      ErrorKind = "invalid_skill"
	ErrorKindInvalidImport     ErrorKind = "invalid_import"
	ErrorKindUnknown           ErrorKind = "unknown"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed for picking flavor lines; zero seeds from the clock
	Seed int64
}

// GetSkillCheckMessageInput contains parameters for formatting a talent check
type GetSkillCheckMessageInput struct {
	Skill              *check.SkillDefinition
	Outcome            *check.SkillCheckOutcome
	UsedSpecialization bool
}

// GetSkillCheckMessageOutput contains the formatted talent check
type GetSkillCheckMessageOutput struct {
	// Label names the check, e.g. "Klettern [MU/GE/KK] – Körpertalente"
	Label string

	// Result is the outcome line
	Result string

	// Details holds one line per governing attribute
	Details []string

	// Flavor is an optional remark for critical outcomes
	Flavor string

	// LogTitle and LogResult are what the roll log records
	LogTitle  string
	LogResult string
}

// GetAttributeCheckMessageInput contains parameters for formatting an attribute check
type GetAttributeCheckMessageInput struct {
	Attribute check.Attribute
	Outcome   *check.RollOutcome
}

// GetAttributeCheckMessageOutput contains the formatted attribute check
type GetAttributeCheckMessageOutput struct {
	Label     string
	Result    string
	Details   []string
	Flavor    string
	LogTitle  string
	LogResult string
}

// GetRollLogMessageInput contains parameters for rendering a roll log
type GetRollLogMessageInput struct {
	Entries []*models.RollLogEntry
}

// GetRollLogMessageOutput contains the rendered roll log
type GetRollLogMessageOutput struct {
	Message string
}

// GetCharacterSheetMessageInput contains parameters for rendering a character sheet
type GetCharacterSheetMessageInput struct {
	Character *models.Character

	// IncludeSkills adds the talent list below the attributes
	IncludeSkills bool
}

// GetCharacterSheetMessageOutput contains the rendered character sheet
type GetCharacterSheetMessageOutput struct {
	Title string

	// Attributes is a single line with all eight attributes
	Attributes string

	// SkillsByCategory holds one rendered block per category in name order
	SkillsByCategory []*SkillBlock
}

// SkillBlock is the talent list of one category
type SkillBlock struct {
	Category string
	Lines    []string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Kind ErrorKind

	// Subject is woven into the message when set, e.g. the talent name
	Subject string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
}
