package roll_log

import "github.com/KirkDiggler/talentprobe/internal/models"

// AddEntryInput contains parameters for adding a roll log entry
type AddEntryInput struct {
	Entry *models.RollLogEntry
}

// GetEntriesInput contains parameters for reading a roll log
type GetEntriesInput struct {
	OwnerID string

	// Limit caps the number of entries returned; zero returns the whole log
	Limit int
}

// GetEntriesOutput contains the entries of a roll log
type GetEntriesOutput struct {
	Entries []*models.RollLogEntry
}

// ClearEntriesInput contains parameters for clearing a roll log
type ClearEntriesInput struct {
	OwnerID string
}
