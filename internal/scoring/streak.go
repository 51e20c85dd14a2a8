package scoring

import (
	"time"

	"studytrack-service/internal/models"
)

// DateLayout is the sortable civil-date form used for LastStudyDate and
// StudySession.Date. No time-of-day, no timezone.
const DateLayout = "2006-01-02"

// Today returns the current civil date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// AdvanceProgress merges a just-completed session into the user's progress
// record and returns the next record. prev is nil for first-time users.
//
// Streak rules, keyed on prev.LastStudyDate relative to today:
//   - no prior record:        streak starts at 1
//   - same day:               streak frozen (a second session today does not
//     increment), totals still accumulate
//   - exactly yesterday:      streak extends by 1
//   - anything else:          streak resets to 1; this branch also absorbs
//     unset dates, gaps, unparsable values, and future dates from clock skew
//
// LongestStreak is then max(prev longest, new streak), LastStudyDate becomes
// today, and both lifetime totals grow by the session tally in every branch.
func AdvanceProgress(prev *models.UserProgress, userID, today string, tally Tally) models.UserProgress {
	if prev == nil {
		return models.UserProgress{
			UserID:                 userID,
			CurrentStreak:          1,
			LongestStreak:          1,
			LastStudyDate:          today,
			TotalQuestionsAnswered: tally.TotalCount,
			CorrectAnswers:         tally.CorrectCount,
		}
	}

	streak := 1
	switch daysBetween(prev.LastStudyDate, today) {
	case 0:
		streak = prev.CurrentStreak
	case 1:
		streak = prev.CurrentStreak + 1
	}

	longest := prev.LongestStreak
	if streak > longest {
		longest = streak
	}

	return models.UserProgress{
		UserID:                 prev.UserID,
		CurrentStreak:          streak,
		LongestStreak:          longest,
		LastStudyDate:          today,
		TotalQuestionsAnswered: prev.TotalQuestionsAnswered + tally.TotalCount,
		CorrectAnswers:         prev.CorrectAnswers + tally.CorrectCount,
		CreatedAt:              prev.CreatedAt,
	}
}

// daysBetween returns the whole-day distance from one civil date to another.
// Any unparsable or empty input maps to -1, which callers treat the same as
// a gap (streak reset).
func daysBetween(from, to string) int {
	a, errA := time.Parse(DateLayout, from)
	b, errB := time.Parse(DateLayout, to)
	if errA != nil || errB != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}
