package models

import "time"

type Option struct {
	Label string `bson:"label" json:"label"`
	Text  string `bson:"text" json:"text"`
}

// OptionLabels are the four allowed answer labels, in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Content       string    `bson:"content" json:"content"`
	Options       []Option  `bson:"options" json:"options"`
	CorrectOption string    `bson:"correct_option" json:"correct_option"`
	Explanation   string    `bson:"explanation" json:"explanation"`
	Category      string    `bson:"category" json:"category"`
	KnowledgeArea string    `bson:"knowledge_area" json:"knowledge_area"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// HasValidCorrectOption reports whether CorrectOption is one of the four
// enumerated labels.
func (q *Question) HasValidCorrectOption() bool {
	for _, label := range OptionLabels {
		if q.CorrectOption == label {
			return true
		}
	}
	return false
}

// IsCorrect grades a selected option label against the catalog entry.
func (q *Question) IsCorrect(selected string) bool {
	return selected != "" && selected == q.CorrectOption
}
