package attempt_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/quiz-master/internal/attempt"
	"github.com/saulo-duarte/quiz-master/internal/auth"
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

type fixture struct {
	db        *gorm.DB
	userID    uuid.UUID
	quizID    uuid.UUID
	questions []quiz.Question
}

// seedQuiz creates one subject/chapter/quiz with three questions whose
// correct options are option1, option2 and option3.
func seedQuiz(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	u := user.User{
		ID:            uuid.New(),
		Email:         "student@example.com",
		Password:      "hashed",
		FullName:      "Student",
		DateOfBirth:   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Qualification: "BSc",
	}
	require.NoError(t, db.Create(&u).Error)

	sub := subject.Subject{ID: uuid.New(), Name: "Math"}
	require.NoError(t, db.Create(&sub).Error)

	ch := chapter.Chapter{ID: uuid.New(), SubjectID: sub.ID, Name: "Algebra"}
	require.NoError(t, db.Create(&ch).Error)

	qz := quiz.Quiz{
		ID:           uuid.New(),
		ChapterID:    ch.ID,
		DateOfQuiz:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeDuration: "00:30",
	}
	require.NoError(t, db.Create(&qz).Error)

	questions := []quiz.Question{
		{ID: uuid.New(), QuizID: qz.ID, QuestionTitle: "Q1", QuestionStatement: "1+1?", Option1: "2", Option2: "3", CorrectOption: "option1"},
		{ID: uuid.New(), QuizID: qz.ID, QuestionTitle: "Q2", QuestionStatement: "2+2?", Option1: "3", Option2: "4", Option3: "5", Option4: "6", CorrectOption: "option2"},
		{ID: uuid.New(), QuizID: qz.ID, QuestionTitle: "Q3", QuestionStatement: "3+3?", Option1: "5", Option2: "7", Option3: "6", CorrectOption: "option3"},
	}
	for i := range questions {
		require.NoError(t, db.Create(&questions[i]).Error)
	}

	return fixture{db: db, userID: u.ID, quizID: qz.ID, questions: questions}
}

func userContext(userID uuid.UUID) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{
		UserID: userID.String(),
		Role:   auth.RoleUser,
	})
}

func TestSubmitAttempt(t *testing.T) {
	db := setupDB(t)
	fx := seedQuiz(t, db)
	service := attempt.NewService(db, attempt.NewRepository(db))

	t.Run("AllCorrect", func(t *testing.T) {
		answers := map[string]string{
			fx.questions[0].ID.String(): "option1",
			fx.questions[1].ID.String(): "option2",
			fx.questions[2].ID.String(): "option3",
		}

		result, err := service.SubmitAttempt(userContext(fx.userID), fx.quizID.String(), answers)
		require.NoError(t, err)
		require.Equal(t, 3, result.Score)
		require.Equal(t, 3, result.TotalQuestions)

		var count int64
		require.NoError(t, db.Model(&attempt.Score{}).Where("quiz_id = ?", fx.quizID).Count(&count).Error)
		require.EqualValues(t, 1, count)
	})

	t.Run("PartialSubmissionScoresUnansweredAsIncorrect", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		// question 2 wrong, question 3 unanswered
		answers := map[string]string{
			fx.questions[0].ID.String(): "option1",
			fx.questions[1].ID.String(): "option4",
		}

		result, err := service.SubmitAttempt(userContext(fx.userID), fx.quizID.String(), answers)
		require.NoError(t, err)
		require.Equal(t, 1, result.Score)
		require.Equal(t, 3, result.TotalQuestions)
	})

	t.Run("UnknownQuestionIDsIgnored", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		answers := map[string]string{
			fx.questions[0].ID.String(): "option1",
			uuid.NewString():            "option1",
			"not-a-uuid":                "option1",
		}

		result, err := service.SubmitAttempt(userContext(fx.userID), fx.quizID.String(), answers)
		require.NoError(t, err)
		require.Equal(t, 1, result.Score)
	})

	t.Run("EmptySubmissionScoresZero", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		result, err := service.SubmitAttempt(userContext(fx.userID), fx.quizID.String(), map[string]string{})
		require.NoError(t, err)
		require.Equal(t, 0, result.Score)

		var count int64
		require.NoError(t, db.Model(&attempt.Score{}).Count(&count).Error)
		require.EqualValues(t, 1, count, "a zero score still records an attempt")
	})

	t.Run("QuizWithoutQuestionsNotFound", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		_, err := service.SubmitAttempt(userContext(fx.userID), uuid.NewString(), map[string]string{})
		require.ErrorIs(t, err, attempt.ErrQuizNotFound)

		var count int64
		require.NoError(t, db.Model(&attempt.Score{}).Count(&count).Error)
		require.EqualValues(t, 0, count, "no Score row may exist for a refused submission")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		_, err := service.SubmitAttempt(context.Background(), fx.quizID.String(), map[string]string{})
		require.ErrorIs(t, err, attempt.ErrUnauthorized)
	})

	t.Run("RetakesAppendIndependentRows", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))
		ctx := userContext(fx.userID)

		first := map[string]string{
			fx.questions[0].ID.String(): "option1",
			fx.questions[1].ID.String(): "option2",
		}
		second := map[string]string{
			fx.questions[0].ID.String(): "option1",
		}

		r1, err := service.SubmitAttempt(ctx, fx.quizID.String(), first)
		require.NoError(t, err)
		require.Equal(t, 2, r1.Score)

		r2, err := service.SubmitAttempt(ctx, fx.quizID.String(), second)
		require.NoError(t, err)
		require.Equal(t, 1, r2.Score)

		var rows []attempt.Score
		require.NoError(t, db.Where("quiz_id = ? AND user_id = ?", fx.quizID, fx.userID).Find(&rows).Error)
		require.Len(t, rows, 2, "retakes must append, never update")
	})
}

func TestUserHistory(t *testing.T) {
	t.Run("EmptyForNewUser", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		history, err := service.UserHistory(userContext(fx.userID))
		require.NoError(t, err)
		require.NotNil(t, history)
		require.Empty(t, history)
	})

	t.Run("MostRecentFirst", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		older := attempt.Score{
			ID: uuid.New(), QuizID: fx.quizID, UserID: fx.userID,
			TimeStampOfAttempt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			TotalScored:        2,
		}
		newer := attempt.Score{
			ID: uuid.New(), QuizID: fx.quizID, UserID: fx.userID,
			TimeStampOfAttempt: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			TotalScored:        3,
		}
		require.NoError(t, db.Create(&older).Error)
		require.NoError(t, db.Create(&newer).Error)

		history, err := service.UserHistory(userContext(fx.userID))
		require.NoError(t, err)
		require.Len(t, history, 2)

		require.Equal(t, 3, history[0].TotalScored)
		require.Equal(t, 2, history[1].TotalScored)
		require.True(t, history[0].AttemptedAt.After(history[1].AttemptedAt))
		require.Equal(t, "Algebra", history[0].ChapterName)
		require.Equal(t, 3, history[0].TotalQuestions)
	})

	t.Run("OnlyOwnAttempts", func(t *testing.T) {
		db := setupDB(t)
		fx := seedQuiz(t, db)
		service := attempt.NewService(db, attempt.NewRepository(db))

		other := user.User{
			ID: uuid.New(), Email: "other@example.com", Password: "hashed",
			FullName: "Other", DateOfBirth: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			Qualification: "BSc",
		}
		require.NoError(t, db.Create(&other).Error)
		require.NoError(t, db.Create(&attempt.Score{
			ID: uuid.New(), QuizID: fx.quizID, UserID: other.ID,
			TimeStampOfAttempt: time.Now().UTC(), TotalScored: 1,
		}).Error)

		history, err := service.UserHistory(userContext(fx.userID))
		require.NoError(t, err)
		require.Empty(t, history)
	})
}
