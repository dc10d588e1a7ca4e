package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id uuid.UUID) (*Quiz, error)
	FindAll() ([]Quiz, error)
	Update(q *Quiz) error
	Delete(id uuid.UUID) error
	CountScores(id uuid.UUID) (int64, error)
	ListCatalog() ([]CatalogItem, error)
	CatalogItemByID(id uuid.UUID) (*CatalogItem, error)

	AddQuestion(q *Question) error
	GetQuestionByID(id uuid.UUID) (*Question, error)
	UpdateQuestion(q *Question) error
	DeleteQuestion(id uuid.UUID) error
	ListQuestionsByQuiz(quizID uuid.UUID) ([]Question, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.Preload("Questions").First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.Preload("Questions").Order("date_of_quiz ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Update(q *Quiz) error {
	return r.db.Omit("Questions").Save(q).Error
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Question{}, "quiz_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}

func (r *quizRepository) CountScores(id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Table("scores").Where("quiz_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

const catalogSelect = `quizzes.id AS quiz_id,
	subjects.name AS subject_name,
	chapters.name AS chapter_name,
	quizzes.date_of_quiz AS date_of_quiz,
	quizzes.time_duration AS time_duration,
	(SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id) AS question_count`

func (r *quizRepository) ListCatalog() ([]CatalogItem, error) {
	items := []CatalogItem{}
	err := r.db.Table("quizzes").
		Select(catalogSelect).
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Order("quizzes.date_of_quiz ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *quizRepository) CatalogItemByID(id uuid.UUID) (*CatalogItem, error) {
	var item CatalogItem
	result := r.db.Table("quizzes").
		Select(catalogSelect).
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Where("quizzes.id = ?", id).
		Scan(&item)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *quizRepository) AddQuestion(q *Question) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetQuestionByID(id uuid.UUID) (*Question, error) {
	var question Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *quizRepository) UpdateQuestion(q *Question) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *quizRepository) ListQuestionsByQuiz(quizID uuid.UUID) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
