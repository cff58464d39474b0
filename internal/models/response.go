package models

import "time"

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

type QuestionResponse struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	JobTitle     string   `json:"job_title,omitempty"`
	Category     Category `json:"category"`
	Difficulty   int      `json:"difficulty"`
}

func NewQuestionResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		JobTitle:     q.JobTitle,
		Category:     q.Category,
		Difficulty:   q.Difficulty,
	}
}

type StartInterviewResponse struct {
	InterviewID     uint               `json:"interview_id"`
	InterviewNumber int                `json:"interview_number"`
	JobTitle        string             `json:"job_title"`
	Questions       []QuestionResponse `json:"questions"`
}

// NextQuestionResponse carries either the next unanswered question or the
// "no more questions" signal once every assigned question has an answer.
type NextQuestionResponse struct {
	Done     bool              `json:"done"`
	Question *QuestionResponse `json:"question,omitempty"`
	Message  string            `json:"message,omitempty"`
}

type SubmitAnswerResponse struct {
	AnswerID       uint   `json:"answer_id"`
	Feedback       string `json:"feedback"`
	QuestionNumber int    `json:"question_number"` // 1-based count of answers so far
}

type AnswerResponse struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	UserResponse string    `json:"user_response"`
	AIFeedback   string    `json:"ai_feedback"`
	CreatedAt    time.Time `json:"created_at"`
}

type FeedbackResponse struct {
	InterviewID   uint      `json:"interview_id"`
	Content       string    `json:"content"`
	OverallRating int       `json:"overall_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

type InterviewResponse struct {
	ID              uint               `json:"id"`
	InterviewNumber int                `json:"interview_number"`
	JobTitle        string             `json:"job_title"`
	Status          string             `json:"status"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         *time.Time         `json:"end_time,omitempty"`
	Questions       []QuestionResponse `json:"questions"`
	Answers         []AnswerResponse   `json:"answers"`
	Feedback        *FeedbackResponse  `json:"feedback,omitempty"`
}

func NewInterviewResponse(iv *Interview) InterviewResponse {
	resp := InterviewResponse{
		ID:              iv.ID,
		InterviewNumber: iv.InterviewNumber,
		JobTitle:        iv.JobTitle,
		Status:          iv.Status,
		StartTime:       iv.StartTime,
		EndTime:         iv.EndTime,
		Questions:       make([]QuestionResponse, 0, len(iv.Questions)),
		Answers:         make([]AnswerResponse, 0, len(iv.Answers)),
	}
	for i := range iv.Questions {
		resp.Questions = append(resp.Questions, NewQuestionResponse(&iv.Questions[i]))
	}
	for i := range iv.Answers {
		a := &iv.Answers[i]
		resp.Answers = append(resp.Answers, AnswerResponse{
			ID:           a.ID,
			QuestionText: a.Question.QuestionText,
			UserResponse: a.UserResponse,
			AIFeedback:   a.AIFeedback,
			CreatedAt:    a.CreatedAt,
		})
	}
	if iv.Feedback != nil {
		resp.Feedback = &FeedbackResponse{
			InterviewID:   iv.Feedback.InterviewID,
			Content:       iv.Feedback.Content,
			OverallRating: iv.Feedback.OverallRating,
			CreatedAt:     iv.Feedback.CreatedAt,
		}
	}
	return resp
}

type HistoryResponse struct {
	Results    []InterviewResponse `json:"results"`
	Count      int64               `json:"count"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
}

type RatingResponse struct {
	ID          uint        `json:"id"`
	QuestionID  uint        `json:"question_id"`
	InterviewID uint        `json:"interview_id"`
	Value       RatingValue `json:"value"`
	CreatedAt   time.Time   `json:"created_at"`
}

func NewRatingResponse(r *QuestionRating) RatingResponse {
	return RatingResponse{
		ID:          r.ID,
		QuestionID:  r.QuestionID,
		InterviewID: r.InterviewID,
		Value:       r.Value,
		CreatedAt:   r.CreatedAt,
	}
}
