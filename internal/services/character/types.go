package character

import (
	"github.com/KirkDiggler/talentprobe/internal/catalog"
	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/common/clock"
	"github.com/KirkDiggler/talentprobe/internal/common/uuid"
	"github.com/KirkDiggler/talentprobe/internal/dice"
	"github.com/KirkDiggler/talentprobe/internal/models"
	characterRepo "github.com/KirkDiggler/talentprobe/internal/repositories/character"
	rollLogRepo "github.com/KirkDiggler/talentprobe/internal/repositories/roll_log"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
)

const (
	// DefaultAttributeValue is what every attribute of a new character starts at
	DefaultAttributeValue = 12

	// ExportFileName is the name of the exported roster file
	ExportFileName = "dsa_characters.json"
)

// Config holds configuration for the character service
type Config struct {
	// DefaultAttributeValue seeds the attributes of new characters; zero uses 12
	DefaultAttributeValue int

	// Catalog provides the talents a new character starts with
	Catalog *catalog.Catalog

	// Repository dependencies
	CharacterRepo characterRepo.Repository
	RollLogRepo   rollLogRepo.Repository

	// Service dependencies
	Messaging     messaging.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateCharacterInput contains parameters for creating a character
type CreateCharacterInput struct {
	OwnerID string
	Name    string
}

// CreateCharacterOutput contains the created character
type CreateCharacterOutput struct {
	Character *models.Character
}

// DeleteCharacterInput contains parameters for deleting a character
type DeleteCharacterInput struct {
	OwnerID string
	Name    string
}

// DeleteCharacterOutput contains the result of deleting a character
type DeleteCharacterOutput struct {
	// ActiveCharacterName is the character selected afterwards, empty when none is left
	ActiveCharacterName string
}

// ListCharactersInput contains parameters for listing characters
type ListCharactersInput struct {
	OwnerID string
}

// ListCharactersOutput contains an owner's characters
type ListCharactersOutput struct {
	Characters          []*models.Character
	ActiveCharacterName string
}

// SelectCharacterInput contains parameters for selecting a character
type SelectCharacterInput struct {
	OwnerID string
	Name    string
}

// SelectCharacterOutput contains the selected character
type SelectCharacterOutput struct {
	Character *models.Character
}

// GetActiveCharacterInput contains parameters for getting the selected character
type GetActiveCharacterInput struct {
	OwnerID string
}

// GetActiveCharacterOutput contains the selected character
type GetActiveCharacterOutput struct {
	Character *models.Character
}

// UpdateAttributeInput contains parameters for setting an attribute
type UpdateAttributeInput struct {
	OwnerID string

	// Attribute is the abbreviation, e.g. "MU"
	Attribute string
	Value     int
}

// UpdateAttributeOutput contains the updated character
type UpdateAttributeOutput struct {
	Character *models.Character
	Attribute check.Attribute
}

// UpdateSkillValueInput contains parameters for setting a talent value
type UpdateSkillValueInput struct {
	OwnerID   string
	SkillName string
	Value     int
}

// UpdateSkillValueOutput contains the updated talent
type UpdateSkillValueOutput struct {
	Character *models.Character
	Skill     *models.Skill
}

// AddSkillInput contains parameters for adding a custom talent
type AddSkillInput struct {
	OwnerID  string
	Name     string
	Category string

	// Attributes is a comma separated list, e.g. "MU,KL,IN"
	Attributes     string
	Specialization string
}

// AddSkillOutput contains the added talent
type AddSkillOutput struct {
	Character *models.Character
	Skill     *models.Skill
}

// RollSkillInput contains parameters for a talent check
type RollSkillInput struct {
	OwnerID           string
	SkillName         string
	UseSpecialization bool
}

// RollSkillOutput contains the result of a talent check
type RollSkillOutput struct {
	Character *models.Character
	Skill     *models.Skill
	Outcome   *check.SkillCheckOutcome
	Message   *messaging.GetSkillCheckMessageOutput

	// UsedSpecialization is set when the bonus was requested and the talent has one
	UsedSpecialization bool
}

// RollAttributeInput contains parameters for an attribute check
type RollAttributeInput struct {
	OwnerID   string
	Attribute string
}

// RollAttributeOutput contains the result of an attribute check
type RollAttributeOutput struct {
	Character *models.Character
	Attribute check.Attribute
	Outcome   *check.RollOutcome
	Message   *messaging.GetAttributeCheckMessageOutput
}

// GetRollLogInput contains parameters for reading the roll log
type GetRollLogInput struct {
	OwnerID string

	// Limit caps the number of entries; zero returns everything kept
	Limit int
}

// GetRollLogOutput contains roll log entries, newest first
type GetRollLogOutput struct {
	Entries []*models.RollLogEntry
}

// ClearRollLogInput contains parameters for clearing the roll log
type ClearRollLogInput struct {
	OwnerID string
}

// ExportCharactersInput contains parameters for exporting a roster
type ExportCharactersInput struct {
	OwnerID string
}

// ExportCharactersOutput contains the exported roster document
type ExportCharactersOutput struct {
	FileName string
	Data     []byte
}

// ImportCharactersInput contains parameters for importing a roster
type ImportCharactersInput struct {
	OwnerID string
	Data    []byte
}

// ImportCharactersOutput contains the imported roster
type ImportCharactersOutput struct {
	Characters          []*models.Character
	ActiveCharacterName string
}
