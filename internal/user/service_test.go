package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/user"
)

func setupService(t *testing.T) user.UserService {
	t.Helper()

	os.Setenv("JWT_SECRET", "a-long-and-secure-secret-key-for-tests")
	auth.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}))
	return user.NewService(user.NewRepository(db))
}

func registerDTO() user.RegisterDTO {
	return user.RegisterDTO{
		Email:         "student@example.com",
		Password:      "secret123",
		FullName:      "Student Example",
		DateOfBirth:   "2000-05-20",
		Qualification: "BSc",
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := setupService(t)

		response, err := service.Register(context.Background(), registerDTO())
		require.NoError(t, err)
		require.Equal(t, "student@example.com", response.Email)
		require.False(t, response.IsAdmin)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Register(context.Background(), registerDTO())
		require.NoError(t, err)

		_, err = service.Register(context.Background(), registerDTO())
		require.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("BadDateOfBirth", func(t *testing.T) {
		service := setupService(t)

		dto := registerDTO()
		dto.DateOfBirth = "20-05-2000"
		_, err := service.Register(context.Background(), dto)
		require.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Register(context.Background(), registerDTO())
		require.NoError(t, err)

		token, response, err := service.Login(context.Background(), user.LoginDTO{
			Email:    "student@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := auth.ValidateJWT(token)
		require.NoError(t, err)
		require.Equal(t, response.ID.String(), claims.UserID)
		require.Equal(t, auth.RoleUser, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Register(context.Background(), registerDTO())
		require.NoError(t, err)

		_, _, err = service.Login(context.Background(), user.LoginDTO{
			Email:    "student@example.com",
			Password: "wrong-password",
		})
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		service := setupService(t)

		_, _, err := service.Login(context.Background(), user.LoginDTO{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
