package stats

import "github.com/google/uuid"

type SubjectAttemptCount struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Attempts    int       `json:"attempts"`
}

type ChapterBestScore struct {
	ChapterID   uuid.UUID `json:"chapter_id"`
	ChapterName string    `json:"chapter_name"`
	BestScore   int       `json:"best_score"`
}

// MonthlyAttempts holds parallel slices in ascending YYYY-MM order, shaped
// for chart axes.
type MonthlyAttempts struct {
	Months []string `json:"months"`
	Counts []int    `json:"counts"`
}
