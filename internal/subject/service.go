package subject

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/config"
)

var (
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrSubjectHasChapters = errors.New("subject still has chapters")
	ErrInvalidID          = errors.New("invalid id format")
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, dto CreateSubjectDTO) (*Subject, error)
	List(ctx context.Context) ([]Subject, error)
	GetByID(ctx context.Context, id string) (*Subject, error)
	Update(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateSubjectDTO) (*Subject, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	subject := &Subject{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(subject); err != nil {
		log.WithError(err).Error("Failed to create subject")
		return nil, err
	}

	log.WithField("subject_id", subject.ID).Info("Subject created")
	return subject, nil
}

func (s *service) List(ctx context.Context) ([]Subject, error) {
	return s.repo.FindAll()
}

func (s *service) GetByID(ctx context.Context, id string) (*Subject, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	subject, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error) {
	log := config.WithContext(ctx)

	subject, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		subject.Name = *dto.Name
	}
	if dto.Description != nil {
		subject.Description = *dto.Description
	}

	if err := s.repo.Update(subject); err != nil {
		log.WithError(err).Error("Failed to update subject")
		return nil, err
	}
	return subject, nil
}

// Delete refuses while chapters still reference the subject, so the catalog
// hierarchy can never be orphaned by an admin action.
func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	subject, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountChapters(subject.ID)
	if err != nil {
		log.WithError(err).Error("Failed to count chapters")
		return err
	}
	if count > 0 {
		return ErrSubjectHasChapters
	}

	if err := s.repo.Delete(subject.ID); err != nil {
		log.WithError(err).Error("Failed to delete subject")
		return err
	}

	log.WithField("subject_id", subject.ID).Info("Subject deleted")
	return nil
}
