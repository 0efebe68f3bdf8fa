// Package questions turns a candidate's technology stack into an ordered list
// of interview questions, asking the model first and falling back to built-in
// templates whenever the model output is unusable.
package questions

// Question is a single interview question about one technology.
// An empty Technology means the parser saw no heading for it.
type Question struct {
	Technology string `json:"technology"`
	Text       string `json:"text"`
}

const (
	MinPerTechnology     = 3
	MaxPerTechnology     = 5
	DefaultPerTechnology = MinPerTechnology
)

// ClampCount keeps a per-technology question count within the supported range.
func ClampCount(n int) int {
	switch {
	case n < MinPerTechnology:
		return MinPerTechnology
	case n > MaxPerTechnology:
		return MaxPerTechnology
	default:
		return n
	}
}
