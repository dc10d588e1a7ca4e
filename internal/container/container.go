package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/quiz-master/internal/attempt"
	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/chapter"
	"github.com/saulo-duarte/quiz-master/internal/config"
	"github.com/saulo-duarte/quiz-master/internal/quiz"
	"github.com/saulo-duarte/quiz-master/internal/stats"
	"github.com/saulo-duarte/quiz-master/internal/subject"
	"github.com/saulo-duarte/quiz-master/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	SubjectContainer *subject.Container
	ChapterContainer *chapter.Container
	QuizContainer    *quiz.QuizContainer
	AttemptContainer *attempt.AttemptContainer
	StatsContainer   *stats.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&subject.Subject{},
		&chapter.Chapter{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Score{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	subjectContainer := subject.NewContainer(config.DB)
	chapterContainer := chapter.NewContainer(config.DB, subjectContainer.Service)
	quizContainer := quiz.NewQuizContainer(config.DB, chapterContainer.Service)
	attemptContainer := attempt.NewAttemptContainer(config.DB)
	statsContainer := stats.NewContainer(config.DB)

	if err := user.SeedAdmin(userContainer.Repo); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	return &Container{
		UserContainer:    userContainer,
		SubjectContainer: subjectContainer,
		ChapterContainer: chapterContainer,
		QuizContainer:    quizContainer,
		AttemptContainer: attemptContainer,
		StatsContainer:   statsContainer,
	}
}
