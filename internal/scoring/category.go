package scoring

import (
	"sort"

	"studytrack-service/internal/models"
)

// CategorySummary is one row of the per-category performance breakdown.
type CategorySummary struct {
	Category        string `json:"category"`
	Total           int    `json:"total"`
	Correct         int    `json:"correct"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// CategoryBreakdown attributes each answer to a category by looking up its
// question in the supplied catalog slice and returns per-category totals,
// correct counts and accuracy, ordered by total volume descending.
//
// Answers referencing a question absent from the catalog slice are silently
// skipped: the catalog fetch is independently capped, so it may not include
// every historical question. Ties keep the order in which a category was
// first seen in the answer log.
func CategoryBreakdown(answers []models.UserAnswer, questions []models.Question) []CategorySummary {
	byID := make(map[string]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	index := make(map[string]int)
	var summaries []CategorySummary
	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		i, seen := index[q.Category]
		if !seen {
			i = len(summaries)
			index[q.Category] = i
			summaries = append(summaries, CategorySummary{Category: q.Category})
		}
		summaries[i].Total++
		if ans.IsCorrect {
			summaries[i].Correct++
		}
	}

	for i := range summaries {
		summaries[i].AccuracyPercent = accuracyPercent(summaries[i].Correct, summaries[i].Total)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})
	return summaries
}
