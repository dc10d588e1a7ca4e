package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/quiz"
	"github.com/saulo-duarte/quiz-master/internal/user"
)

// Score is one recorded quiz attempt. Rows are append-only: nothing in the
// system updates or deletes them, so the table doubles as the attempt history.
type Score struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID             uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz               quiz.Quiz `gorm:"foreignKey:QuizID" json:"-"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User               user.User `gorm:"foreignKey:UserID" json:"-"`
	TimeStampOfAttempt time.Time `gorm:"not null;index" json:"time_stamp_of_attempt"`
	TotalScored        int       `gorm:"not null" json:"total_scored"`
}
