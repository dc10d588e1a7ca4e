package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/chapter"
	"github.com/saulo-duarte/quiz-master/internal/config"
)

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuizHasScores        = errors.New("quiz has recorded attempts")
	ErrInvalidCorrectOption = errors.New("correct_option must reference a non-empty option")
	ErrChapterNotFound      = chapter.ErrChapterNotFound
	ErrInvalidID            = errors.New("invalid id format")
)

var validate = validator.New()

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	UpdateQuiz(ctx context.Context, quizID string, dto UpdateQuizDTO) (*Quiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
	ListAll(ctx context.Context) ([]Quiz, error)
	ListCatalog(ctx context.Context) ([]CatalogItem, error)
	GetQuizForTaking(ctx context.Context, quizID string) (*QuizTakingView, error)

	AddQuestion(ctx context.Context, quizID string, dto QuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, questionID string, dto QuestionDTO) (*Question, error)
	RemoveQuestion(ctx context.Context, questionID string) error
	ListQuestions(ctx context.Context, quizID string) ([]Question, error)
}

type quizService struct {
	repo           QuizRepository
	chapterService chapter.Service
}

func NewService(repo QuizRepository, chapterService chapter.Service) QuizService {
	return &quizService{
		repo:           repo,
		chapterService: chapterService,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	if _, err := s.chapterService.GetByID(ctx, dto.ChapterID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dto.DateOfQuiz)
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ID:           uuid.New(),
		ChapterID:    uuid.MustParse(dto.ChapterID),
		DateOfQuiz:   date,
		TimeDuration: dto.TimeDuration,
		Remarks:      dto.Remarks,
	}

	if err := s.repo.Create(quiz); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created")
	return quiz, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, quizID string, dto UpdateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}

	if dto.DateOfQuiz != nil {
		date, err := time.Parse("2006-01-02", *dto.DateOfQuiz)
		if err != nil {
			return nil, err
		}
		quiz.DateOfQuiz = date
	}
	if dto.TimeDuration != nil {
		quiz.TimeDuration = *dto.TimeDuration
	}
	if dto.Remarks != nil {
		quiz.Remarks = *dto.Remarks
	}

	if err := s.repo.Update(quiz); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz refuses while Score rows reference the quiz: the attempt log is
// append-only and must survive catalog editing. A quiz without attempts is
// removed together with its questions.
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)

	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return err
	}

	scores, err := s.repo.CountScores(quiz.ID)
	if err != nil {
		log.WithError(err).Error("Failed to count scores")
		return err
	}
	if scores > 0 {
		return ErrQuizHasScores
	}

	if err := s.repo.Delete(quiz.ID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz deleted")
	return nil
}

func (s *quizService) ListAll(ctx context.Context) ([]Quiz, error) {
	return s.repo.FindAll()
}

func (s *quizService) ListCatalog(ctx context.Context) ([]CatalogItem, error) {
	return s.repo.ListCatalog()
}

// GetQuizForTaking hands back the quiz metadata and question projections
// without the answer key. Only the attempt recorder ever reads correct_option.
func (s *quizService) GetQuizForTaking(ctx context.Context, quizID string) (*QuizTakingView, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrInvalidID
	}

	item, err := s.repo.CatalogItemByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if item == nil {
		return nil, ErrQuizNotFound
	}

	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListQuestionsByQuiz(id)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, toQuestionView(&questions[i]))
	}

	return &QuizTakingView{
		Quiz:      *item,
		Remarks:   quiz.Remarks,
		Questions: views,
	}, nil
}

func (s *quizService) AddQuestion(ctx context.Context, quizID string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}

	question := &Question{
		ID:                uuid.New(),
		QuizID:            quiz.ID,
		QuestionTitle:     dto.QuestionTitle,
		QuestionStatement: dto.QuestionStatement,
		Option1:           dto.Option1,
		Option2:           dto.Option2,
		Option3:           dto.Option3,
		Option4:           dto.Option4,
		CorrectOption:     dto.CorrectOption,
	}

	if question.OptionValue(question.CorrectOption) == "" {
		return nil, ErrInvalidCorrectOption
	}

	if err := s.repo.AddQuestion(question); err != nil {
		log.WithError(err).Error("Failed to add question")
		return nil, err
	}

	log.WithField("question_id", question.ID).Info("Question added")
	return question, nil
}

func (s *quizService) UpdateQuestion(ctx context.Context, questionID string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(questionID)
	if err != nil {
		return nil, ErrInvalidID
	}

	question, err := s.repo.GetQuestionByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	question.QuestionTitle = dto.QuestionTitle
	question.QuestionStatement = dto.QuestionStatement
	question.Option1 = dto.Option1
	question.Option2 = dto.Option2
	question.Option3 = dto.Option3
	question.Option4 = dto.Option4
	question.CorrectOption = dto.CorrectOption

	if question.OptionValue(question.CorrectOption) == "" {
		return nil, ErrInvalidCorrectOption
	}

	if err := s.repo.UpdateQuestion(question); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}
	return question, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, questionID string) error {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(questionID)
	if err != nil {
		return ErrInvalidID
	}

	question, err := s.repo.GetQuestionByID(id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.DeleteQuestion(id); err != nil {
		log.WithError(err).Error("Failed to remove question")
		return err
	}

	log.WithField("question_id", questionID).Info("Question removed")
	return nil
}

// ListQuestions is the admin view and includes the answer key; its route
// sits behind the admin gate.
func (s *quizService) ListQuestions(ctx context.Context, quizID string) ([]Question, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListQuestionsByQuiz(quiz.ID)
}

func (s *quizService) getQuiz(quizID string) (*Quiz, error) {
	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrInvalidID
	}

	quiz, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}
