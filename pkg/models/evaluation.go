package models

// Rating is the grade the AI gives to a practice sentence
type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs_improvement"
)

// IsValid reports whether r is one of the known ratings
func (r Rating) IsValid() bool {
	switch r {
	case RatingExcellent, RatingGood, RatingNeedsImprovement:
		return true
	default:
		return false
	}
}

// Evaluation is the structured verdict on a sentence written by the user
type Evaluation struct {
	IsCorrect  bool    `json:"isCorrect"`
	Rating     Rating  `json:"rating"`
	Feedback   string  `json:"feedback"`
	Suggestion *string `json:"suggestion"`
}
