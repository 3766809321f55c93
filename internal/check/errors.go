package check

// CheckError is a custom error type for check resolution errors
type CheckError string

// Error implements the error interface
func (e CheckError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoGoverningAttributes      CheckError = "skill must be governed by at least one attribute"
	ErrTooManyGoverningAttributes CheckError = "skill can be governed by at most three attributes"
	ErrUnknownAttribute           CheckError = "unknown attribute"
	ErrNilSkill                   CheckError = "skill cannot be nil"
)
