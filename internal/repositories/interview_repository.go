package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/models"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository struct {
	DB *gorm.DB
}

// Create persists the interview together with its question associations.
// The per-user interview number is assigned inside the transaction as
// max(existing)+1, or 1 for the user's first interview.
func (r *InterviewRepository) Create(interview *models.Interview, questions []models.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var lastNumber int
		err := tx.Model(&models.Interview{}).
			Where("user_id = ?", interview.UserID).
			Select("COALESCE(MAX(interview_number), 0)").
			Scan(&lastNumber).Error
		if err != nil {
			return err
		}
		interview.InterviewNumber = lastNumber + 1

		if err := tx.Create(interview).Error; err != nil {
			return err
		}
		return tx.Model(interview).Association("Questions").Append(questions)
	})
}

func (r *InterviewRepository) GetByIDForUser(id, userID uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.First(&interview, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// GetWithQuestions loads an interview owned by the user with its assigned
// question set preloaded.
func (r *InterviewRepository) GetWithQuestions(id, userID uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.Preload("Questions").
		First(&interview, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// CurrentInProgress returns the user's most recently started IN_PROGRESS
// interview with questions preloaded.
func (r *InterviewRepository) CurrentInProgress(userID uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.Preload("Questions").
		Where("user_id = ? AND status = ?", userID, models.InterviewInProgress).
		Order("start_time DESC").
		First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) HasInProgress(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Interview{}).
		Where("user_id = ? AND status = ?", userID, models.InterviewInProgress).
		Count(&count).Error
	return count > 0, err
}

func (r *InterviewRepository) Save(interview *models.Interview) error {
	return r.DB.Save(interview).Error
}

// ListByUser returns the user's interviews (both statuses) ordered by start
// time descending, with questions, answers and feedback preloaded.
func (r *InterviewRepository) ListByUser(userID uint, page, limit int) ([]models.Interview, int64, error) {
	interviews := []models.Interview{}

	var count int64
	if err := r.DB.Model(&models.Interview{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.
		Preload("Questions").
		Preload("Answers.Question").
		Preload("Feedback").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&interviews).Error
	if err != nil {
		return nil, 0, err
	}
	return interviews, count, nil
}

// AnsweredQuestionIDs returns the distinct question ids that already have
// at least one answer row for the interview.
func (r *InterviewRepository) AnsweredQuestionIDs(interviewID uint) ([]uint, error) {
	ids := []uint{}
	err := r.DB.Model(&models.InterviewAnswer{}).
		Where("interview_id = ?", interviewID).
		Distinct().
		Pluck("question_id", &ids).Error
	return ids, err
}

func (r *InterviewRepository) CreateAnswer(answer *models.InterviewAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *InterviewRepository) CountAnswers(interviewID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.InterviewAnswer{}).
		Where("interview_id = ?", interviewID).
		Count(&count).Error
	return count, err
}
