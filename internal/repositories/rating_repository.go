package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/models"
)

type RatingRepository struct {
	DB *gorm.DB
}

// Upsert creates the rating or, when a row already exists for the same
// (user, question, interview), overwrites its value. created_at keeps the
// first-write timestamp. Returns true when a new row was created.
func (r *RatingRepository) Upsert(rating *models.QuestionRating) (bool, error) {
	var existing models.QuestionRating
	err := r.DB.
		Where("user_id = ? AND question_id = ? AND interview_id = ?",
			rating.UserID, rating.QuestionID, rating.InterviewID).
		First(&existing).Error

	if err == nil {
		if updateErr := r.DB.Model(&existing).Update("value", rating.Value).Error; updateErr != nil {
			return false, updateErr
		}
		existing.Value = rating.Value
		*rating = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.DB.Create(rating).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the rating for the key, or nil (no error) when absent.
func (r *RatingRepository) Get(userID, interviewID, questionID uint) (*models.QuestionRating, error) {
	var rating models.QuestionRating
	err := r.DB.
		Where("user_id = ? AND question_id = ? AND interview_id = ?",
			userID, questionID, interviewID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// UpsertFeedback creates or replaces the one feedback row per interview.
// Returns true when a new row was created.
func (r *RatingRepository) UpsertFeedback(feedback *models.InterviewFeedback) (bool, error) {
	var existing models.InterviewFeedback
	err := r.DB.First(&existing, "interview_id = ?", feedback.InterviewID).Error

	if err == nil {
		updates := map[string]interface{}{
			"content":        feedback.Content,
			"overall_rating": feedback.OverallRating,
		}
		if updateErr := r.DB.Model(&existing).Updates(updates).Error; updateErr != nil {
			return false, updateErr
		}
		existing.Content = feedback.Content
		existing.OverallRating = feedback.OverallRating
		*feedback = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.DB.Create(feedback).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *RatingRepository) GetFeedback(interviewID uint) (*models.InterviewFeedback, error) {
	var feedback models.InterviewFeedback
	err := r.DB.First(&feedback, "interview_id = ?", interviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// RatingsSince retrieves question ratings created since a specific time.
func (r *RatingRepository) RatingsSince(since time.Time, limit int) ([]models.QuestionRating, error) {
	ratings := []models.QuestionRating{}
	query := r.DB.Where("created_at >= ?", since).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&ratings).Error
	return ratings, err
}

// FeedbackSince retrieves interview feedback created since a specific time.
func (r *RatingRepository) FeedbackSince(since time.Time, limit int) ([]models.InterviewFeedback, error) {
	feedback := []models.InterviewFeedback{}
	query := r.DB.Where("created_at >= ?", since).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&feedback).Error
	return feedback, err
}
