package stats

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/config"
)

var ErrUnauthorized = auth.ErrUnauthorized

type Service interface {
	SubjectAttemptCounts(ctx context.Context) ([]SubjectAttemptCount, error)
	ChapterBestScores(ctx context.Context) ([]ChapterBestScore, error)
	UserSubjectAttemptCounts(ctx context.Context) ([]SubjectAttemptCount, error)
	UserMonthlyAttempts(ctx context.Context) (*MonthlyAttempts, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SubjectAttemptCounts(ctx context.Context) ([]SubjectAttemptCount, error) {
	log := config.WithContext(ctx)

	counts, err := s.repo.SubjectAttemptCounts(nil)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate attempts per subject")
		return nil, err
	}
	return counts, nil
}

func (s *service) ChapterBestScores(ctx context.Context) ([]ChapterBestScore, error) {
	log := config.WithContext(ctx)

	scores, err := s.repo.ChapterBestScores()
	if err != nil {
		log.WithError(err).Error("Failed to aggregate best scores per chapter")
		return nil, err
	}
	return scores, nil
}

func (s *service) UserSubjectAttemptCounts(ctx context.Context) ([]SubjectAttemptCount, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	counts, err := s.repo.SubjectAttemptCounts(&userID)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate user attempts per subject")
		return nil, err
	}
	return counts, nil
}

// UserMonthlyAttempts buckets the caller's attempts by calendar year-month.
// The grouping runs in Go rather than SQL because month formatting is the one
// place postgres and sqlite disagree.
func (s *service) UserMonthlyAttempts(ctx context.Context) (*MonthlyAttempts, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	timestamps, err := s.repo.AttemptTimestamps(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load attempt timestamps")
		return nil, err
	}

	byMonth := make(map[string]int)
	for _, ts := range timestamps {
		byMonth[ts.Format("2006-01")]++
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	counts := make([]int, 0, len(months))
	for _, month := range months {
		counts = append(counts, byMonth[month])
	}

	return &MonthlyAttempts{Months: months, Counts: counts}, nil
}
