package testhelpers

import (
	"fmt"
	"testing"

	"github.com/mfrench730/career-cracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	openSQLite    = func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), &gorm.Config{}) }
	migrateSchema = func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.User{},
			&models.Question{},
			&models.Interview{},
			&models.InterviewAnswer{},
			&models.QuestionRating{},
			&models.InterviewFeedback{},
		)
	}
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := openSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := migrateSchema(db); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}

// SeedQuestions inserts n catalogue questions for a job title.
func SeedQuestions(t *testing.T, db *gorm.DB, jobTitle string, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			QuestionText: fmt.Sprintf("How would you approach task %d as a %s?", i+1, jobTitle),
			JobTitle:     jobTitle,
			Category:     models.CategoryNone,
			Difficulty:   1,
		}
		if err := db.Create(&q).Error; err != nil {
			panic(fmt.Sprintf("failed to seed question: %v", err))
		}
		questions = append(questions, q)
	}
	return questions
}

// SeedUser inserts a user row and returns it.
func SeedUser(t *testing.T, db *gorm.DB, username, targetJobTitle string) *models.User {
	t.Helper()

	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		PasswordHash:   "not-a-real-hash",
		TargetJobTitle: targetJobTitle,
	}
	if err := db.Create(user).Error; err != nil {
		panic(fmt.Sprintf("failed to seed user: %v", err))
	}
	return user
}
