package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenDuration = 24 * time.Hour

var validate = validator.New()

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (string, *UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", dto.DateOfBirth)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:            uuid.New(),
		Email:         dto.Email,
		Password:      string(hashed),
		FullName:      dto.FullName,
		DateOfBirth:   dob,
		Qualification: dto.Qualification,
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return toResponse(u), nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (string, *UserResponse, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role(), tokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return "", nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return token, toResponse(u), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}
