package report

// AIGrade maps an AI risk assessment score to its grade band. Bounds are
// inclusive; a zero score means the assessment has not been started.
func AIGrade(score int) string {
	switch {
	case score == 0:
		return "Not Yet Started"
	case score <= 34:
		return "F - Fail"
	case score <= 45:
		return "D - Below Average"
	case score <= 56:
		return "C - Average"
	case score <= 67:
		return "B - Good"
	default:
		return "A - Excellent"
	}
}

// OfflineGrade maps an offline software validation score to its risk level.
func OfflineGrade(score int) string {
	switch {
	case score == 0:
		return "Not Yet Started"
	case score <= 10:
		return "Low"
	case score <= 25:
		return "Medium"
	case score <= 35:
		return "High"
	default:
		return "Very High"
	}
}
