package subject

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(s *Subject) error
	FindAll() ([]Subject, error)
	FindByID(id uuid.UUID) (*Subject, error)
	Update(s *Subject) error
	Delete(id uuid.UUID) error
	CountChapters(id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Subject) error {
	return r.db.Create(s).Error
}

func (r *repository) FindAll() ([]Subject, error) {
	var subjects []Subject
	if err := r.db.Order("name ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Subject, error) {
	var s Subject
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(s *Subject) error {
	return r.db.Save(s).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Subject{}, "id = ?", id).Error
}

func (r *repository) CountChapters(id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Table("chapters").Where("subject_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
