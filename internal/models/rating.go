package models

import (
	"gorm.io/gorm"
)

// RatingValue is user sentiment on a single question.
type RatingValue string

const (
	RatingLike    RatingValue = "LIKE"
	RatingDislike RatingValue = "DISLIKE"
)

// QuestionRating stores one user's verdict on a question within an
// interview. Unique per (user, question, interview); repeated submissions
// overwrite the value but keep the first-seen timestamp.
type QuestionRating struct {
	gorm.Model
	UserID      uint        `gorm:"not null;uniqueIndex:idx_rating_key" json:"user_id"`
	QuestionID  uint        `gorm:"not null;uniqueIndex:idx_rating_key" json:"question_id"`
	InterviewID uint        `gorm:"not null;uniqueIndex:idx_rating_key" json:"interview_id"`
	Value       RatingValue `gorm:"size:10;not null" json:"value"`
}

// InterviewFeedback is the user's overall verdict on a completed interview.
// One row per interview, upserted.
type InterviewFeedback struct {
	gorm.Model
	InterviewID   uint   `gorm:"not null;uniqueIndex" json:"interview_id"`
	Content       string `gorm:"type:text;not null" json:"content"`
	OverallRating int    `gorm:"not null;default:0" json:"overall_rating"` // 0-5
}
