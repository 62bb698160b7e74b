package state

// Score is the outcome of a completed quiz.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage returns correct/total as a whole percentage, rounding half up.
// A zero total yields 0.
func (s Score) Percentage() int {
	return Percent(s.Correct, s.Total)
}

// Percent computes round-half-up(correct/total*100) in integer arithmetic.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*200 + total) / (2 * total)
}
