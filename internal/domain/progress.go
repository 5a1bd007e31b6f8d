package domain

// UserProgress is a snapshot of a learner's aggregate progress, supplied
// by the caller when requesting recommendations.
type UserProgress struct {
	TotalWords      int      `json:"totalWords"`
	MasteredWords   int      `json:"masteredWords"`
	WeakAreas       []string `json:"weakAreas"`
	AverageAccuracy float64  `json:"averageAccuracy"`
}

// MasteryRatio returns MasteredWords/TotalWords, or 0 when TotalWords is 0.
func (p UserProgress) MasteryRatio() float64 {
	if p.TotalWords <= 0 {
		return 0
	}
	return float64(p.MasteredWords) / float64(p.TotalWords)
}

// Recommendation is one actionable learning suggestion.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Content  string             `json:"content"`
	Priority Priority           `json:"priority"`
	Reason   string             `json:"reason"`
}

// RecommendationSet is the result of one recommendation generation,
// ordered by priority (high before medium before low).
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Source          ResultSource     `json:"source"`
}
