package attempt

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreRepository never exposes update or delete: Score rows are immutable
// once written.
type ScoreRepository interface {
	// AnswerKey loads the quiz's question id -> correct_option mapping.
	// Server-side only; nothing here ever reaches a response body.
	AnswerKey(tx *gorm.DB, quizID uuid.UUID) (map[uuid.UUID]string, error)
	Insert(tx *gorm.DB, score *Score) error
	UserHistory(userID uuid.UUID) ([]AttemptSummary, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) AnswerKey(tx *gorm.DB, quizID uuid.UUID) (map[uuid.UUID]string, error) {
	if tx == nil {
		tx = r.db
	}

	var rows []struct {
		ID            uuid.UUID
		CorrectOption string
	}
	if err := tx.Table("questions").
		Select("id, correct_option").
		Where("quiz_id = ?", quizID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	key := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		key[row.ID] = row.CorrectOption
	}
	return key, nil
}

func (r *scoreRepository) Insert(tx *gorm.DB, score *Score) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(score).Error
}

func (r *scoreRepository) UserHistory(userID uuid.UUID) ([]AttemptSummary, error) {
	summaries := []AttemptSummary{}
	err := r.db.Table("scores").
		Select(`scores.quiz_id AS quiz_id,
			chapters.name AS chapter_name,
			scores.total_scored AS total_scored,
			(SELECT COUNT(*) FROM questions WHERE questions.quiz_id = scores.quiz_id) AS total_questions,
			scores.time_stamp_of_attempt AS attempted_at`).
		Joins("JOIN quizzes ON quizzes.id = scores.quiz_id").
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Where("scores.user_id = ?", userID).
		Order("scores.time_stamp_of_attempt DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
