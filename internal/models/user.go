package models

import (
	"gorm.io/gorm"
)

// User represents a registered user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Profile fields collected at signup.
	FullName               string `json:"full_name"`
	Major                  string `json:"major"`
	EducationLevel         string `json:"education_level"`
	ExperienceLevel        string `json:"experience_level"`
	PreferredInterviewType string `json:"preferred_interview_type"`
	PreferredLanguage      string `json:"preferred_language"`
	ResumeURL              string `json:"resume_url,omitempty"`
	TargetJobTitle         string `json:"target_job_title,omitempty"`
}
