package character

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/talentprobe/internal/services/character Service

import (
	"context"
)

// Service defines the interface for managing characters and rolling their checks
type Service interface {
	// CreateCharacter creates a character with default attributes and the catalog talents, and selects it
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// DeleteCharacter removes a character; when it was selected the first remaining one takes over
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// ListCharacters returns an owner's characters and the selected one
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// SelectCharacter makes a character the one checks are rolled for
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)

	// GetActiveCharacter returns the selected character
	GetActiveCharacter(ctx context.Context, input *GetActiveCharacterInput) (*GetActiveCharacterOutput, error)

	// UpdateAttribute sets one attribute of the selected character
	UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error)

	// UpdateSkillValue sets the talent value of one of the selected character's talents
	UpdateSkillValue(ctx context.Context, input *UpdateSkillValueInput) (*UpdateSkillValueOutput, error)

	// AddSkill adds a custom talent to the selected character
	AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error)

	// RollSkill rolls a talent check for the selected character and logs it
	RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error)

	// RollAttribute rolls an attribute check for the selected character and logs it
	RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error)

	// GetRollLog returns the newest roll log entries
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)

	// ClearRollLog empties the roll log
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) error

	// ExportCharacters serializes an owner's roster
	ExportCharacters(ctx context.Context, input *ExportCharactersInput) (*ExportCharactersOutput, error)

	// ImportCharacters replaces an owner's roster with an exported one
	ImportCharacters(ctx context.Context, input *ImportCharactersInput) (*ImportCharactersOutput, error)
}
