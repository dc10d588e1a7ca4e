package chapter

import (
	"github.com/saulo-duarte/quiz-master/internal/subject"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, subjectService subject.Service) *Container {
	repo := NewRepository(db)
	service := NewService(repo, subjectService)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
