package check

// MaxQualityLevel is the highest quality level a check can reach
const MaxQualityLevel = 6

// QualityLevel maps remaining points onto the 0-6 quality scale.
// Every full band of three points above zero adds one level.
func QualityLevel(remainingPoints int) int {
	if remainingPoints < 1 {
		return 0
	}

	level := (remainingPoints + 2) / 3
	if level > MaxQualityLevel {
		return MaxQualityLevel
	}
	return level
}
