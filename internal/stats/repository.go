package stats

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// SubjectAttemptCounts counts Score rows per subject reachable through
	// quiz -> chapter -> subject. Inner joins: subjects without attempts
	// are omitted, not zero-filled. A nil userID means system-wide.
	SubjectAttemptCounts(userID *uuid.UUID) ([]SubjectAttemptCount, error)
	ChapterBestScores() ([]ChapterBestScore, error)
	AttemptTimestamps(userID uuid.UUID) ([]time.Time, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SubjectAttemptCounts(userID *uuid.UUID) ([]SubjectAttemptCount, error) {
	counts := []SubjectAttemptCount{}
	q := r.db.Table("scores").
		Select(`subjects.id AS subject_id, subjects.name AS subject_name, COUNT(scores.id) AS attempts`).
		Joins("JOIN quizzes ON quizzes.id = scores.quiz_id").
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Group("subjects.id, subjects.name").
		Order("subjects.name ASC")

	if userID != nil {
		q = q.Where("scores.user_id = ?", *userID)
	}

	if err := q.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) ChapterBestScores() ([]ChapterBestScore, error) {
	scores := []ChapterBestScore{}
	err := r.db.Table("scores").
		Select(`chapters.id AS chapter_id, chapters.name AS chapter_name, MAX(scores.total_scored) AS best_score`).
		Joins("JOIN quizzes ON quizzes.id = scores.quiz_id").
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Group("chapters.id, chapters.name").
		Order("chapters.name ASC").
		Scan(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *repository) AttemptTimestamps(userID uuid.UUID) ([]time.Time, error) {
	var timestamps []time.Time
	err := r.db.Table("scores").
		Where("user_id = ?", userID).
		Order("time_stamp_of_attempt ASC").
		Pluck("time_stamp_of_attempt", &timestamps).Error
	if err != nil {
		return nil, err
	}
	return timestamps, nil
}
