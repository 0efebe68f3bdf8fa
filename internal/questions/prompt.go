package questions

import "fmt"

const (
	LevelEntry  = "entry-level (fresher)"
	LevelJunior = "junior-level"
	LevelMid    = "mid-level (practical, not deep system design)"
)

// Level maps years of experience to the label used in prompts.
// Boundaries belong to the lower band: 1 is entry-level, 3 is junior-level.
func Level(years float64) string {
	switch {
	case years <= 1:
		return LevelEntry
	case years <= 3:
		return LevelJunior
	default:
		return LevelMid
	}
}

// BuildPrompt asks for count open-ended questions about technology, pitched at
// the candidate's level, as a bare numbered list.
func BuildPrompt(technology string, years float64, count int) string {
	level := Level(years)

	return fmt.Sprintf(
		"You are an interviewer preparing questions for a %[1]s candidate.\n"+
			"Generate %[2]d open-ended, beginner-friendly technical interview questions about this technology: %[3]s.\n"+
			"Focus on core concepts and practical basics that a %[1]s candidate should know.\n"+
			"Output as a numbered list (1., 2., ...). Do NOT provide answers or extra commentary.",
		level, count, technology,
	)
}
