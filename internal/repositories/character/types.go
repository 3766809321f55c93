package character

import "github.com/KirkDiggler/talentprobe/internal/models"

// SaveCharacterInput contains parameters for saving a character
type SaveCharacterInput struct {
	Character *models.Character
}

// GetCharacterInput contains parameters for retrieving a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterByNameInput contains parameters for retrieving a character by name
type GetCharacterByNameInput struct {
	OwnerID string
	Name    string
}

// ListCharactersInput contains parameters for listing an owner's characters
type ListCharactersInput struct {
	OwnerID string
}

// ListCharactersOutput contains the result of listing an owner's characters
type ListCharactersOutput struct {
	Characters []*models.Character
}

// DeleteCharacterInput contains parameters for deleting a character
type DeleteCharacterInput struct {
	OwnerID string
	Name    string
}

// SetActiveCharacterInput contains parameters for selecting a character
type SetActiveCharacterInput struct {
	OwnerID     string
	CharacterID string
}

// GetActiveCharacterInput contains parameters for retrieving the selected character
type GetActiveCharacterInput struct {
	OwnerID string
}

// ReplaceCharactersInput contains parameters for replacing a roster
type ReplaceCharactersInput struct {
	OwnerID    string
	Characters []*models.Character

	// ActiveCharacterID is selected after the swap; empty clears the selection
	ActiveCharacterID string
}
