package roll_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/talentprobe/internal/repositories/roll_log Repository

import (
	"context"
)

// Repository defines the interface for roll log persistence
type Repository interface {
	// AddEntry prepends an entry to the owner's log, dropping the oldest past the cap
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntries retrieves the newest entries of an owner's log, newest first
	GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error)

	// ClearEntries removes an owner's whole log
	ClearEntries(ctx context.Context, input *ClearEntriesInput) error
}
