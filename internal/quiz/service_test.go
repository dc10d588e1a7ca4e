package quiz_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/quiz-master/internal/attempt"
	"github.com/saulo-duarte/quiz-master/internal/chapter"
	"github.com/saulo-duarte/quiz-master/internal/quiz"
	"github.com/saulo-duarte/quiz-master/internal/subject"
	"github.com/saulo-duarte/quiz-master/internal/user"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&subject.Subject{},
		&chapter.Chapter{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Score{},
	))
	return db
}

func newServices(db *gorm.DB) (subject.Service, chapter.Service, quiz.QuizService) {
	subjectService := subject.NewService(subject.NewRepository(db))
	chapterService := chapter.NewService(chapter.NewRepository(db), subjectService)
	quizService := quiz.NewService(quiz.NewRepository(db), chapterService)
	return subjectService, chapterService, quizService
}

func createQuiz(t *testing.T, db *gorm.DB) (uuid.UUID, quiz.QuizService) {
	t.Helper()
	ctx := context.Background()

	subjectService, chapterService, quizService := newServices(db)

	sub, err := subjectService.Create(ctx, subject.CreateSubjectDTO{Name: "Math"})
	require.NoError(t, err)

	ch, err := chapterService.Create(ctx, chapter.CreateChapterDTO{
		SubjectID: sub.ID.String(),
		Name:      "Algebra",
	})
	require.NoError(t, err)

	qz, err := quizService.CreateQuiz(ctx, quiz.CreateQuizDTO{
		ChapterID:    ch.ID.String(),
		DateOfQuiz:   "2024-06-01",
		TimeDuration: "00:30",
		Remarks:      "chapter test",
	})
	require.NoError(t, err)

	return qz.ID, quizService
}

func TestAddQuestion(t *testing.T) {
	t.Run("CorrectOptionMustPointAtFilledSlot", func(t *testing.T) {
		db := setupDB(t)
		quizID, quizService := createQuiz(t, db)

		_, err := quizService.AddQuestion(context.Background(), quizID.String(), quiz.QuestionDTO{
			QuestionTitle:     "Q1",
			QuestionStatement: "1+1?",
			Option1:           "2",
			Option2:           "3",
			CorrectOption:     "option3",
		})
		require.ErrorIs(t, err, quiz.ErrInvalidCorrectOption)
	})

	t.Run("TwoOptionQuestion", func(t *testing.T) {
		db := setupDB(t)
		quizID, quizService := createQuiz(t, db)

		q, err := quizService.AddQuestion(context.Background(), quizID.String(), quiz.QuestionDTO{
			QuestionTitle:     "Q1",
			QuestionStatement: "1+1?",
			Option1:           "2",
			Option2:           "3",
			CorrectOption:     "option1",
		})
		require.NoError(t, err)
		require.Equal(t, "option1", q.CorrectOption)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		db := setupDB(t)
		_, quizService := createQuiz(t, db)

		_, err := quizService.AddQuestion(context.Background(), uuid.NewString(), quiz.QuestionDTO{
			QuestionTitle:     "Q1",
			QuestionStatement: "1+1?",
			Option1:           "2",
			Option2:           "3",
			CorrectOption:     "option1",
		})
		require.ErrorIs(t, err, quiz.ErrQuizNotFound)
	})
}

func TestGetQuizForTaking(t *testing.T) {
	db := setupDB(t)
	quizID, quizService := createQuiz(t, db)
	ctx := context.Background()

	_, err := quizService.AddQuestion(ctx, quizID.String(), quiz.QuestionDTO{
		QuestionTitle:     "Q1",
		QuestionStatement: "1+1?",
		Option1:           "2",
		Option2:           "3",
		CorrectOption:     "option1",
	})
	require.NoError(t, err)

	view, err := quizService.GetQuizForTaking(ctx, quizID.String())
	require.NoError(t, err)
	require.Equal(t, "Math", view.Quiz.SubjectName)
	require.Equal(t, "Algebra", view.Quiz.ChapterName)
	require.Equal(t, 1, view.Quiz.QuestionCount)
	require.Len(t, view.Questions, 1)

	// The answer key must never serialize out of the taking view.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	require.NotContains(t, string(payload), "correct_option")
}

func TestListCatalog(t *testing.T) {
	db := setupDB(t)
	quizID, quizService := createQuiz(t, db)
	ctx := context.Background()

	for _, dto := range []quiz.QuestionDTO{
		{QuestionTitle: "Q1", QuestionStatement: "1+1?", Option1: "2", Option2: "3", CorrectOption: "option1"},
		{QuestionTitle: "Q2", QuestionStatement: "2+2?", Option1: "3", Option2: "4", CorrectOption: "option2"},
	} {
		_, err := quizService.AddQuestion(ctx, quizID.String(), dto)
		require.NoError(t, err)
	}

	items, err := quizService.ListCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, quizID, items[0].QuizID)
	require.Equal(t, 2, items[0].QuestionCount)
	require.Equal(t, "00:30", items[0].TimeDuration)
}

func TestDeleteQuiz(t *testing.T) {
	t.Run("RefusedWhileScoresExist", func(t *testing.T) {
		db := setupDB(t)
		quizID, quizService := createQuiz(t, db)

		u := user.User{
			ID: uuid.New(), Email: "student@example.com", Password: "hashed",
			FullName: "Student", DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			Qualification: "BSc",
		}
		require.NoError(t, db.Create(&u).Error)
		require.NoError(t, db.Create(&attempt.Score{
			ID: uuid.New(), QuizID: quizID, UserID: u.ID,
			TimeStampOfAttempt: time.Now().UTC(), TotalScored: 1,
		}).Error)

		err := quizService.DeleteQuiz(context.Background(), quizID.String())
		require.ErrorIs(t, err, quiz.ErrQuizHasScores)
	})

	t.Run("RemovesQuizAndQuestions", func(t *testing.T) {
		db := setupDB(t)
		quizID, quizService := createQuiz(t, db)
		ctx := context.Background()

		_, err := quizService.AddQuestion(ctx, quizID.String(), quiz.QuestionDTO{
			QuestionTitle: "Q1", QuestionStatement: "1+1?",
			Option1: "2", Option2: "3", CorrectOption: "option1",
		})
		require.NoError(t, err)

		require.NoError(t, quizService.DeleteQuiz(ctx, quizID.String()))

		var questions int64
		require.NoError(t, db.Model(&quiz.Question{}).Where("quiz_id = ?", quizID).Count(&questions).Error)
		require.EqualValues(t, 0, questions)
	})
}
