package check

// ResolveAttributeCheck resolves a check of a single attribute against one die.
// A roll at or below the target succeeds; a natural 1 or 20 is critical.
func ResolveAttributeCheck(target, roll int) *RollOutcome {
	return &RollOutcome{
		RolledValue:       roll,
		Target:            target,
		Succeeded:         roll <= target,
		IsCriticalSuccess: roll == 1,
		IsCriticalFailure: roll == DieFaces,
		Margin:            target - roll,
	}
}
