package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewInProgress = "IN_PROGRESS"
	InterviewCompleted  = "COMPLETED"
)

// Interview is one practice run of five assigned questions, tracked from
// IN_PROGRESS to COMPLETED. (user_id, interview_number) is unique; the
// number is assigned at creation as max(existing)+1 for the user.
type Interview struct {
	gorm.Model
	UserID          uint       `gorm:"not null;index;uniqueIndex:idx_user_interview_number" json:"user_id"`
	JobTitle        string     `json:"job_title"`
	InterviewNumber int        `gorm:"not null;uniqueIndex:idx_user_interview_number" json:"interview_number"`
	Status          string     `gorm:"size:20;not null;default:IN_PROGRESS" json:"status"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`

	Questions []Question         `gorm:"many2many:interview_questions;" json:"questions,omitempty"`
	Answers   []InterviewAnswer  `gorm:"constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	Feedback  *InterviewFeedback `gorm:"constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

// InterviewAnswer records one submitted response and the AI feedback it
// received. A question is considered answered once it has at least one row.
type InterviewAnswer struct {
	gorm.Model
	InterviewID  uint     `gorm:"not null;index" json:"interview_id"`
	QuestionID   uint     `gorm:"not null;index" json:"question_id"`
	Question     Question `json:"question"`
	UserResponse string   `gorm:"type:text;not null" json:"user_response"`
	AIFeedback   string   `gorm:"type:text" json:"ai_feedback"`
}
