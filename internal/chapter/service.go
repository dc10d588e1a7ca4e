package chapter

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/config"
	"github.com/saulo-duarte/quiz-master/internal/subject"
)

var (
	ErrChapterNotFound   = errors.New("chapter not found")
	ErrChapterHasQuizzes = errors.New("chapter still has quizzes")
	ErrSubjectNotFound   = subject.ErrSubjectNotFound
	ErrInvalidID         = errors.New("invalid id format")
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, dto CreateChapterDTO) (*Chapter, error)
	List(ctx context.Context, subjectID string) ([]Chapter, error)
	GetByID(ctx context.Context, id string) (*Chapter, error)
	Update(ctx context.Context, id string, dto UpdateChapterDTO) (*Chapter, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	subjectService subject.Service
}

func NewService(repo Repository, subjectService subject.Service) Service {
	return &service{repo: repo, subjectService: subjectService}
}

func (s *service) Create(ctx context.Context, dto CreateChapterDTO) (*Chapter, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	if _, err := s.subjectService.GetByID(ctx, dto.SubjectID); err != nil {
		return nil, err
	}

	chapter := &Chapter{
		ID:          uuid.New(),
		SubjectID:   uuid.MustParse(dto.SubjectID),
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(chapter); err != nil {
		log.WithError(err).Error("Failed to create chapter")
		return nil, err
	}

	log.WithField("chapter_id", chapter.ID).Info("Chapter created")
	return chapter, nil
}

// List returns every chapter, or only those under subjectID when one is given.
// Backs the cascading subject -> chapter form select.
func (s *service) List(ctx context.Context, subjectID string) ([]Chapter, error) {
	if subjectID == "" {
		return s.repo.FindAll()
	}

	parsed, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindBySubjectID(parsed)
}

func (s *service) GetByID(ctx context.Context, id string) (*Chapter, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	chapter, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateChapterDTO) (*Chapter, error) {
	log := config.WithContext(ctx)

	chapter, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		chapter.Name = *dto.Name
	}
	if dto.Description != nil {
		chapter.Description = *dto.Description
	}

	if err := s.repo.Update(chapter); err != nil {
		log.WithError(err).Error("Failed to update chapter")
		return nil, err
	}
	return chapter, nil
}

// Delete refuses while quizzes still reference the chapter.
func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	chapter, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountQuizzes(chapter.ID)
	if err != nil {
		log.WithError(err).Error("Failed to count quizzes")
		return err
	}
	if count > 0 {
		return ErrChapterHasQuizzes
	}

	if err := s.repo.Delete(chapter.ID); err != nil {
		log.WithError(err).Error("Failed to delete chapter")
		return err
	}

	log.WithField("chapter_id", chapter.ID).Info("Chapter deleted")
	return nil
}
