// Seeds the question catalogue with the starter set so a fresh database can
// serve interviews immediately. Safe to re-run; existing rows are skipped.
package main

import (
	"flag"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/config"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/seed"
	"github.com/mfrench730/career-cracker/internal/utils"
)

func main() {
	jobTitle := flag.String("job-title", "software engineer", "job title to file the starter questions under")
	flag.Parse()

	utils.InitLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		logger.Fatal("Failed to migrate questions table", zap.Error(err))
	}

	if _, _, err := seed.Load(&repositories.QuestionRepository{DB: db}, *jobTitle, logger); err != nil {
		logger.Fatal("Failed to load starter questions", zap.Error(err))
	}
}
