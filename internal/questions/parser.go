package questions

import (
	"regexp"
	"strings"
)

var (
	headingRe  = regexp.MustCompile(`^([A-Za-z0-9 _\-+.#]+)\s*[:\-]\s*$`)
	numberedRe = regexp.MustCompile(`^\d+\.\s*(.+)$`)

	questionStarters = []string{"what", "how", "explain", "describe", "why", "when", "give"}
)

// Parse extracts questions from free-form model output.
//
// Headings such as "Python:" or "Go -" set the technology for the lines that
// follow. Numbered lines ("1. ...") and lines that look like questions are
// kept; everything else is noise. Questions seen before any heading have an
// empty Technology.
func Parse(raw string) []Question {
	var (
		out     []Question
		current string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			current = strings.TrimSpace(m[1])
			continue
		}

		var text string
		switch m := numberedRe.FindStringSubmatch(line); {
		case m != nil:
			text = m[1]
		case looksLikeQuestion(line):
			text = line
		default:
			continue
		}

		text = strings.TrimRight(strings.TrimSpace(text), ".")
		if text == "" {
			continue
		}

		out = append(out, Question{Technology: current, Text: text})
	}

	return out
}

func looksLikeQuestion(line string) bool {
	if strings.HasSuffix(line, "?") {
		return true
	}

	lower := strings.ToLower(line)
	for _, starter := range questionStarters {
		if strings.HasPrefix(lower, starter) {
			return true
		}
	}
	return false
}
