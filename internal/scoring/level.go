package scoring

import "studytrack-service/internal/models"

// Display-only derived values. Everything here is stateless and re-derived
// on each stats request; nothing is persisted.

// RecentAnswerWindow caps how many of the newest answers feed the
// recent-performance figure.
const RecentAnswerWindow = 20

// Level bands over lifetime totalQuestionsAnswered.
var levelThresholds = []struct {
	Label string
	Min   int
	Max   int // exclusive; 0 means unbounded
}{
	{"Beginner", 0, 50},
	{"Intermediate", 50, 200},
	{"Advanced", 200, 500},
	{"Expert", 500, 0},
}

// LevelFor maps a lifetime answered-question count to a progress level label
// and a linear progress-within-band percentage. The Expert band has no upper
// bound, so its progress is pinned at 100.
func LevelFor(totalAnswered int) (string, int) {
	for _, band := range levelThresholds {
		if band.Max == 0 || totalAnswered < band.Max {
			if band.Max == 0 {
				return band.Label, 100
			}
			span := band.Max - band.Min
			return band.Label, (totalAnswered - band.Min) * 100 / span
		}
	}
	return "Beginner", 0
}

// RecentPerformance is the accuracy over the most recent answers, at most
// RecentAnswerWindow of them. Answers are expected newest-first, the order
// the answer log is queried in.
func RecentPerformance(answers []models.UserAnswer) int {
	if len(answers) > RecentAnswerWindow {
		answers = answers[:RecentAnswerWindow]
	}
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	return accuracyPercent(correct, len(answers))
}
