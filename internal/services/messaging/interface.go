package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/talentprobe/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSkillCheckMessage formats the outcome of a talent check
	GetSkillCheckMessage(ctx context.Context, input *GetSkillCheckMessageInput) (*GetSkillCheckMessageOutput, error)

	// GetAttributeCheckMessage formats the outcome of an attribute check
	GetAttributeCheckMessage(ctx context.Context, input *GetAttributeCheckMessageInput) (*GetAttributeCheckMessageOutput, error)

	// GetRollLogMessage renders a player's roll log
	GetRollLogMessage(ctx context.Context, input *GetRollLogMessageInput) (*GetRollLogMessageOutput, error)

	// GetCharacterSheetMessage renders a character's attributes and talents
	GetCharacterSheetMessage(ctx context.Context, input *GetCharacterSheetMessageInput) (*GetCharacterSheetMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
