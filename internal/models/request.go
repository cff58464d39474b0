package models

import (
	"strings"
)

type StartInterviewRequest struct {
	JobTitle string `json:"job_title"`
}

// Job title may be omitted; the manager falls back to the user's stored
// target job title.
func (r *StartInterviewRequest) Validate() error {
	return nil
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	Response   string `json:"response"`
}

// implements the Validator interface
func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionID == 0 {
		return &ErrorResponse{
			Code:    "missing_question_id",
			Message: "question_id field is required",
		}
	}
	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{
			Code:    "missing_response",
			Message: "response field is required",
		}
	}
	return nil
}

type RateQuestionRequest struct {
	InterviewID uint   `json:"interview_id"`
	QuestionID  uint   `json:"question_id"`
	Value       string `json:"value"`
}

func (r *RateQuestionRequest) Validate() error {
	if r.InterviewID == 0 {
		return &ErrorResponse{Code: "missing_interview_id", Message: "interview_id field is required"}
	}
	if r.QuestionID == 0 {
		return &ErrorResponse{Code: "missing_question_id", Message: "question_id field is required"}
	}
	value := RatingValue(strings.ToUpper(strings.TrimSpace(r.Value)))
	if value != RatingLike && value != RatingDislike {
		return &ErrorResponse{
			Code:    "invalid_rating_value",
			Message: "value must be one of: LIKE, DISLIKE",
		}
	}
	r.Value = string(value)
	return nil
}

type InterviewFeedbackRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (r *InterviewFeedbackRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{Code: "missing_content", Message: "content field is required"}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return &ErrorResponse{Code: "invalid_rating", Message: "rating must be between 0 and 5"}
	}
	return nil
}

type SignupRequest struct {
	Username               string `json:"username"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	FullName               string `json:"full_name"`
	Major                  string `json:"major"`
	EducationLevel         string `json:"education_level"`
	ExperienceLevel        string `json:"experience_level"`
	PreferredInterviewType string `json:"preferred_interview_type"`
	PreferredLanguage      string `json:"preferred_language"`
	ResumeURL              string `json:"resume_url"`
	TargetJobTitle         string `json:"target_job_title"`
}

func (r *SignupRequest) Validate() error {
	if r.Username == "" {
		return &ErrorResponse{Code: "missing_username", Message: "username field is required"}
	}
	if r.Email == "" {
		return &ErrorResponse{Code: "missing_email", Message: "email field is required"}
	}
	if len(r.Password) < 8 {
		return &ErrorResponse{Code: "invalid_password", Message: "password must be at least 8 characters"}
	}
	return nil
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *SigninRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return &ErrorResponse{Code: "missing_credentials", Message: "username and password are required"}
	}
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	return nil
}
