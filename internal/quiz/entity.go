package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/chapter"
)

type Quiz struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter      chapter.Chapter `gorm:"foreignKey:ChapterID" json:"-"`
	DateOfQuiz   time.Time       `gorm:"type:date;not null" json:"date_of_quiz"`
	TimeDuration string          `gorm:"not null" json:"time_duration"`
	Remarks      string          `json:"remarks,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

// CorrectOption is the answer key. It never serializes; quiz-taking clients
// only ever see the View projection.
type Question struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID            uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionTitle     string    `gorm:"not null" json:"question_title"`
	QuestionStatement string    `gorm:"type:text;not null" json:"question_statement"`
	Option1           string    `gorm:"not null" json:"option1"`
	Option2           string    `gorm:"not null" json:"option2"`
	Option3           string    `json:"option3,omitempty"`
	Option4           string    `json:"option4,omitempty"`
	CorrectOption     string    `gorm:"not null" json:"-"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OptionValue returns the text stored in the named option slot, or "" for an
// unknown label or an empty slot.
func (q *Question) OptionValue(label string) string {
	switch label {
	case "option1":
		return q.Option1
	case "option2":
		return q.Option2
	case "option3":
		return q.Option3
	case "option4":
		return q.Option4
	default:
		return ""
	}
}
