package chapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/subject"
)

type Chapter struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject     subject.Subject `gorm:"foreignKey:SubjectID" json:"-"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
