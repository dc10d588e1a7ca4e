package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/config"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrUnauthorized = auth.ErrUnauthorized
	ErrInvalidID    = errors.New("invalid id format")
)

type AttemptService interface {
	SubmitAttempt(ctx context.Context, quizID string, answers map[string]string) (*AttemptResult, error)
	UserHistory(ctx context.Context) ([]AttemptSummary, error)
}

type attemptService struct {
	repo ScoreRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo ScoreRepository) AttemptService {
	return &attemptService{
		repo: repo,
		db:   db,
	}
}

// SubmitAttempt scores a submission and records exactly one Score row.
// A submitted answer counts iff its label string-equals the stored
// correct_option; unanswered questions score as incorrect and unknown
// question ids are ignored. Existing rows are never touched, so retaking a
// quiz appends a second attempt. Key load and insert share one transaction:
// either the caller gets a result with a durable row behind it, or an error.
func (s *attemptService) SubmitAttempt(ctx context.Context, quizID string, answers map[string]string) (*AttemptResult, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt submission without authentication")
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	qid, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var result *AttemptResult
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		key, err := s.repo.AnswerKey(tx, qid)
		if err != nil {
			log.WithError(err).Error("Failed to load answer key")
			return err
		}
		if len(key) == 0 {
			return ErrQuizNotFound
		}

		score := scoreAnswers(key, answers)

		row := &Score{
			ID:                 uuid.New(),
			QuizID:             qid,
			UserID:             userID,
			TimeStampOfAttempt: time.Now().UTC(),
			TotalScored:        score,
		}
		if err := s.repo.Insert(tx, row); err != nil {
			log.WithError(err).Error("Failed to record attempt")
			return err
		}

		result = &AttemptResult{
			Score:          score,
			TotalQuestions: len(key),
			Message:        fmt.Sprintf("You scored %d out of %d", score, len(key)),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.WithField("quiz_id", qid).WithField("user_id", userID).
		WithField("score", result.Score).Info("Attempt recorded")
	return result, nil
}

func scoreAnswers(key map[uuid.UUID]string, answers map[string]string) int {
	score := 0
	for questionID, selected := range answers {
		qid, err := uuid.Parse(questionID)
		if err != nil {
			continue
		}
		correct, ok := key[qid]
		if !ok {
			continue
		}
		if selected == correct {
			score++
		}
	}
	return score
}

// UserHistory returns the caller's attempts, most recent first. A user with
// no attempts gets an empty slice, not an error.
func (s *attemptService) UserHistory(ctx context.Context) ([]AttemptSummary, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	summaries, err := s.repo.UserHistory(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load attempt history")
		return nil, err
	}
	return summaries, nil
}
