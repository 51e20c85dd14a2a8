package scoring

// Tally is the outcome of one completed practice session.
type Tally struct {
	CorrectCount    int `json:"correct_count"`
	TotalCount      int `json:"total_count"`
	AccuracyPercent int `json:"accuracy_percent"`
}

// Score tallies an ordered sequence of per-question outcomes from a single
// practice run. Pure; no side effects.
func Score(outcomes []bool) Tally {
	correct := 0
	for _, ok := range outcomes {
		if ok {
			correct++
		}
	}
	return Tally{
		CorrectCount:    correct,
		TotalCount:      len(outcomes),
		AccuracyPercent: accuracyPercent(correct, len(outcomes)),
	}
}

// accuracyPercent computes round-half-up(100*correct/total), 0 when total
// is 0 so an empty session never divides by zero.
func accuracyPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(correct)*100/float64(total) + 0.5)
}
