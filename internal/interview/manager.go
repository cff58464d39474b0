package interview

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/events"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/utils"
)

const (
	// QuestionsPerInterview is the fixed size of an interview's question set.
	QuestionsPerInterview = 5

	// maxBackfillAttempts bounds catalogue backfill per interview start.
	maxBackfillAttempts = 5
)

// Generator is the catalogue backfill collaborator.
type Generator interface {
	Generate(ctx context.Context, jobTitle string) (*models.Question, error)
}

// Publisher broadcasts lifecycle events; nil disables publishing.
type Publisher interface {
	PublishInterviewCompleted(ctx context.Context, event events.InterviewCompletedEvent) error
}

// Manager owns the interview lifecycle: start, question selection,
// completion and history.
type Manager struct {
	interviews *repositories.InterviewRepository
	questions  *repositories.QuestionRepository
	users      *repositories.UserRepository
	ratings    *repositories.RatingRepository
	generator  Generator
	publisher  Publisher
	logger     *zap.Logger
}

func NewManager(
	interviews *repositories.InterviewRepository,
	questions *repositories.QuestionRepository,
	users *repositories.UserRepository,
	ratings *repositories.RatingRepository,
	gen Generator,
	publisher Publisher,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		interviews: interviews,
		questions:  questions,
		users:      users,
		ratings:    ratings,
		generator:  gen,
		publisher:  publisher,
		logger:     logger,
	}
}

// Start creates an IN_PROGRESS interview with exactly five distinct
// questions for the resolved job title, backfilling the catalogue through
// the generator when it is under-populated. At most one IN_PROGRESS
// interview per user is allowed.
func (m *Manager) Start(ctx context.Context, userID uint, jobTitle string) (*models.Interview, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		user, err := m.users.GetUserByID(userID)
		if err != nil {
			return nil, notFoundError("user not found")
		}
		jobTitle = strings.TrimSpace(user.TargetJobTitle)
	}
	if jobTitle == "" {
		return nil, validationError("job_title is required: provide one or set a target job title on your profile")
	}
	jobTitle = utils.NormalizeJobTitle(jobTitle)

	inProgress, err := m.interviews.HasInProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active interviews: %w", err)
	}
	if inProgress {
		return nil, invalidStateError("an interview is already in progress")
	}

	candidates, err := m.questions.GetByJobTitle(jobTitle, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query question catalogue: %w", err)
	}

	if len(candidates) < QuestionsPerInterview {
		var lastGenErr error
		missing := QuestionsPerInterview - len(candidates)
		generated := 0
		// a failed attempt still counts against the bound, but does not
		// abandon the remaining slots
		for attempt := 0; attempt < maxBackfillAttempts && generated < missing; attempt++ {
			if _, genErr := m.generator.Generate(ctx, jobTitle); genErr != nil {
				lastGenErr = genErr
				m.logger.Warn("Question backfill attempt failed",
					zap.String("job_title", jobTitle),
					zap.Int("attempt", attempt+1),
					zap.Error(genErr))
				continue
			}
			generated++
		}

		candidates, err = m.questions.GetByJobTitle(jobTitle, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to re-query question catalogue: %w", err)
		}
		if len(candidates) < QuestionsPerInterview {
			if lastGenErr != nil {
				return nil, upstreamError("question generation failed while backfilling the catalogue", lastGenErr)
			}
			return nil, insufficientDataError(
				fmt.Sprintf("not enough questions available for %q", jobTitle))
		}
	}

	selected := sampleQuestions(candidates, QuestionsPerInterview)

	interview := &models.Interview{
		UserID:    userID,
		JobTitle:  jobTitle,
		Status:    models.InterviewInProgress,
		StartTime: time.Now(),
	}
	if err := m.interviews.Create(interview, selected); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	interview.Questions = selected

	m.logger.Info("Interview started",
		zap.Uint("user_id", userID),
		zap.Uint("interview_id", interview.ID),
		zap.Int("interview_number", interview.InterviewNumber),
		zap.String("job_title", jobTitle))

	return interview, nil
}

// NextQuestion returns one uniformly-random unanswered question from the
// interview's assigned set, or done=true once every question has an answer.
// interviewID 0 selects the user's most recent IN_PROGRESS interview.
func (m *Manager) NextQuestion(ctx context.Context, userID, interviewID uint) (*models.Question, bool, error) {
	var iv *models.Interview
	var err error

	if interviewID != 0 {
		iv, err = m.interviews.GetWithQuestions(interviewID, userID)
		if err != nil {
			return nil, false, notFoundError("interview not found")
		}
		if iv.Status != models.InterviewInProgress {
			return nil, false, invalidStateError("interview is not in progress")
		}
	} else {
		iv, err = m.interviews.CurrentInProgress(userID)
		if err != nil {
			return nil, false, notFoundError("no interview in progress")
		}
	}

	answeredIDs, err := m.interviews.AnsweredQuestionIDs(iv.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load answered questions: %w", err)
	}
	answered := make(map[uint]bool, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = true
	}

	remaining := make([]models.Question, 0, len(iv.Questions))
	for _, q := range iv.Questions {
		if !answered[q.ID] {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return nil, true, nil
	}

	question := remaining[rand.Intn(len(remaining))]
	return &question, false, nil
}

// Complete transitions the interview to COMPLETED. The transition is
// idempotent: re-completing overwrites end_time with the current timestamp.
func (m *Manager) Complete(ctx context.Context, userID, interviewID uint) (*models.Interview, error) {
	iv, err := m.interviews.GetByIDForUser(interviewID, userID)
	if err != nil {
		return nil, notFoundError("interview not found")
	}

	now := time.Now()
	iv.Status = models.InterviewCompleted
	iv.EndTime = &now
	if err := m.interviews.Save(iv); err != nil {
		return nil, fmt.Errorf("failed to complete interview: %w", err)
	}

	if m.publisher != nil {
		event := events.InterviewCompletedEvent{
			InterviewID:     iv.ID,
			UserID:          iv.UserID,
			InterviewNumber: iv.InterviewNumber,
			JobTitle:        iv.JobTitle,
			CompletedAt:     now.Format(time.RFC3339),
		}
		if pubErr := m.publisher.PublishInterviewCompleted(ctx, event); pubErr != nil {
			m.logger.Warn("Failed to publish interview_completed event",
				zap.Uint("interview_id", iv.ID), zap.Error(pubErr))
		}
	}

	m.logger.Info("Interview completed",
		zap.Uint("user_id", userID),
		zap.Uint("interview_id", iv.ID))

	return iv, nil
}

// History returns the user's interviews (both statuses), newest first,
// with questions, answers and feedback projected in.
func (m *Manager) History(ctx context.Context, userID uint, page, limit int) (*models.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	interviews, count, err := m.interviews.ListByUser(userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	results := make([]models.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		results = append(results, models.NewInterviewResponse(&interviews[i]))
	}

	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &models.HistoryResponse{
		Results:    results,
		Count:      count,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// RateQuestion upserts the user's verdict on a question within an
// interview. Returns created=true when a new rating row was written.
func (m *Manager) RateQuestion(ctx context.Context, userID, interviewID, questionID uint, value models.RatingValue) (*models.QuestionRating, bool, error) {
	if _, err := m.interviews.GetByIDForUser(interviewID, userID); err != nil {
		return nil, false, notFoundError("interview not found")
	}
	if _, err := m.questions.GetByID(questionID); err != nil {
		return nil, false, notFoundError("question not found")
	}

	rating := &models.QuestionRating{
		UserID:      userID,
		QuestionID:  questionID,
		InterviewID: interviewID,
		Value:       value,
	}
	created, err := m.ratings.Upsert(rating)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save rating: %w", err)
	}
	return rating, created, nil
}

// GetRating returns the user's rating for the key, or nil when absent.
func (m *Manager) GetRating(ctx context.Context, userID, interviewID, questionID uint) (*models.QuestionRating, error) {
	rating, err := m.ratings.Get(userID, interviewID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating: %w", err)
	}
	return rating, nil
}

// SubmitFeedback upserts the single feedback row for a COMPLETED interview.
func (m *Manager) SubmitFeedback(ctx context.Context, userID, interviewID uint, content string, overallRating int) (*models.InterviewFeedback, bool, error) {
	iv, err := m.interviews.GetByIDForUser(interviewID, userID)
	if err != nil {
		return nil, false, notFoundError("interview not found")
	}
	if iv.Status != models.InterviewCompleted {
		return nil, false, invalidStateError("feedback is only allowed on completed interviews")
	}

	feedback := &models.InterviewFeedback{
		InterviewID:   iv.ID,
		Content:       content,
		OverallRating: overallRating,
	}
	created, err := m.ratings.UpsertFeedback(feedback)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save feedback: %w", err)
	}
	return feedback, created, nil
}

// sampleQuestions picks n distinct questions uniformly at random.
func sampleQuestions(pool []models.Question, n int) []models.Question {
	shuffled := make([]models.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
