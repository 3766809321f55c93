package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/talentprobe/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/talentprobe/internal/models"
)

// Repository defines the interface for character data persistence
type Repository interface {
	// SaveCharacter persists a character and indexes it under its owner by name
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) error

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// GetCharacterByName retrieves one of an owner's characters by name
	GetCharacterByName(ctx context.Context, input *GetCharacterByNameInput) (*models.Character, error)

	// ListCharacters retrieves all characters of an owner sorted by name
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes one of an owner's characters
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error

	// SetActiveCharacter marks the character the owner is currently playing
	SetActiveCharacter(ctx context.Context, input *SetActiveCharacterInput) error

	// GetActiveCharacter retrieves the character the owner is currently playing
	GetActiveCharacter(ctx context.Context, input *GetActiveCharacterInput) (*models.Character, error)

	// ReplaceCharacters swaps an owner's whole roster in one transaction
	ReplaceCharacters(ctx context.Context, input *ReplaceCharactersInput) error
}
