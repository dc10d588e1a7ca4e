package quiz

import (
	"github.com/saulo-duarte/quiz-master/internal/chapter"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, chapterService chapter.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, chapterService)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
