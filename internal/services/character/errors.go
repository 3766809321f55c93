package character

// ServiceError is a custom error type for character-related errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrCharacterExists         ServiceError = "character already exists"
	ErrCharacterNotFound       ServiceError = "character not found"
	ErrInvalidName             ServiceError = "name cannot be empty"
	ErrNoActiveCharacter       ServiceError = "no active character"
	ErrUnknownAttribute        ServiceError = "unknown attribute"
	ErrInvalidAttributeValue   ServiceError = "attribute value cannot be negative"
	ErrInvalidSkillValue       ServiceError = "skill value cannot be negative"
	ErrInvalidSkill            ServiceError = "skill needs a name and governing attributes"
	ErrSkillNotFound           ServiceError = "skill not found"
	ErrSkillExists             ServiceError = "skill already exists"
	ErrInvalidImport           ServiceError = "invalid character import"
	ErrNilConfig               ServiceError = "config cannot be nil"
	ErrNilCatalog              ServiceError = "talent catalog cannot be nil"
	ErrNilCharacterRepo        ServiceError = "character repository cannot be nil"
	ErrNilRollLogRepo          ServiceError = "roll log repository cannot be nil"
	ErrNilMessagingService     ServiceError = "messaging service cannot be nil"
	ErrNilDiceRoller           ServiceError = "dice roller cannot be nil"
	ErrNilClock                ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator        ServiceError = "UUID generator cannot be nil"
	ErrInvalidDefaultAttribute ServiceError = "default attribute value cannot be negative"
)
