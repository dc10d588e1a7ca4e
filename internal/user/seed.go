package user

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-master/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap administrator when none exists yet, the
// same way the catalog would otherwise be unreachable on a fresh database.
// Controlled by ADMIN_EMAIL and ADMIN_PASSWORD; a no-op without them.
func SeedAdmin(repo UserRepository) error {
	log := config.Logger()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	existing, err := repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		ID:            uuid.New(),
		Email:         email,
		Password:      string(hashed),
		IsAdmin:       true,
		FullName:      "Admin User",
		DateOfBirth:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Qualification: "Administrator",
	}
	if err := repo.Create(admin); err != nil {
		return err
	}

	log.WithField("email", email).Info("Admin user created")
	return nil
}
