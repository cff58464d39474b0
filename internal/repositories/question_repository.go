package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/models"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	DB *gorm.DB
}

func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.DB.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByJobTitle returns catalogue questions whose job title matches the
// given title case-insensitively. limit <= 0 means no limit.
func (r *QuestionRepository) GetByJobTitle(jobTitle string, limit int) ([]models.Question, error) {
	questions := []models.Question{}
	query := r.DB.Where("LOWER(job_title) = LOWER(?)", jobTitle)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountByJobTitle(jobTitle string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Question{}).
		Where("LOWER(job_title) = LOWER(?)", jobTitle).
		Count(&count).Error
	return count, err
}

// CreateIfAbsent persists the question unless one with the same text and
// job title already exists. Uniqueness on (text, job_title) is best-effort:
// concurrent backfills may still insert duplicates, which is accepted.
// Returns true when a new row was created; q is populated either way.
func (r *QuestionRepository) CreateIfAbsent(q *models.Question) (bool, error) {
	var existing models.Question
	err := r.DB.
		Where("question_text = ? AND LOWER(job_title) = LOWER(?)", q.QuestionText, q.JobTitle).
		First(&existing).Error
	if err == nil {
		*q = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.DB.Create(q).Error; err != nil {
		return false, err
	}
	return true, nil
}
