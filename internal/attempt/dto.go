package attempt

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAttemptDTO struct {
	// Answers maps question id -> selected option label ("option1".."option4").
	Answers map[string]string `json:"answers"`
}

type AttemptResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Message        string `json:"message"`
}

type AttemptSummary struct {
	QuizID         uuid.UUID `json:"quiz_id"`
	ChapterName    string    `json:"chapter_name"`
	TotalScored    int       `json:"total_scored"`
	TotalQuestions int       `json:"total_questions"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
