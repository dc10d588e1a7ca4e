package chapter

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Chapter) error
	FindAll() ([]Chapter, error)
	FindBySubjectID(subjectID uuid.UUID) ([]Chapter, error)
	FindByID(id uuid.UUID) (*Chapter, error)
	Update(c *Chapter) error
	Delete(id uuid.UUID) error
	CountQuizzes(id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Chapter) error {
	return r.db.Create(c).Error
}

func (r *repository) FindAll() ([]Chapter, error) {
	var chapters []Chapter
	if err := r.db.Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *repository) FindBySubjectID(subjectID uuid.UUID) ([]Chapter, error) {
	var chapters []Chapter
	if err := r.db.Where("subject_id = ?", subjectID).Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Chapter, error) {
	var c Chapter
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(c *Chapter) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Chapter{}, "id = ?", id).Error
}

func (r *repository) CountQuizzes(id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Table("quizzes").Where("chapter_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
