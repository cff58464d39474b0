package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/llm"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/prompts"
	"github.com/mfrench730/career-cracker/internal/repositories"
)

const (
	feedbackMaxTokens   = 150
	feedbackTemperature = 0.7
)

// AnswerProcessor records answers and obtains AI feedback for them.
// The answer row is only written after feedback generation succeeds.
type AnswerProcessor struct {
	interviews *repositories.InterviewRepository
	provider   llm.Provider
	prompts    prompts.PromptProvider
	logger     *zap.Logger
}

func NewAnswerProcessor(interviews *repositories.InterviewRepository, provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *AnswerProcessor {
	return &AnswerProcessor{
		interviews: interviews,
		provider:   provider,
		prompts:    promptManager,
		logger:     logger,
	}
}

// Submit records the response to one of the interview's assigned questions
// and returns the persisted answer plus the 1-based question number (the
// count of answers for this interview including the new one). The question
// must be a member of the interview's assigned set, not merely exist.
func (p *AnswerProcessor) Submit(ctx context.Context, userID, interviewID, questionID uint, response string) (*models.InterviewAnswer, int, error) {
	iv, err := p.interviews.GetWithQuestions(interviewID, userID)
	if err != nil {
		return nil, 0, notFoundError("interview not found")
	}

	var question *models.Question
	for i := range iv.Questions {
		if iv.Questions[i].ID == questionID {
			question = &iv.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, 0, notFoundError("question is not part of this interview")
	}

	prompt, err := p.prompts.BuildPrompt("feedback", map[string]string{
		"Question": question.QuestionText,
		"Response": response,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build feedback prompt: %w", err)
	}

	completion, err := p.provider.Complete(ctx, llm.CompletionRequest{
		System:      prompt.System,
		Prompt:      prompt.User,
		MaxTokens:   feedbackMaxTokens,
		Temperature: feedbackTemperature,
		RequestID:   uuid.New().String(),
	})
	if err != nil {
		return nil, 0, upstreamError("failed to generate answer feedback", err)
	}

	answer := &models.InterviewAnswer{
		InterviewID:  iv.ID,
		QuestionID:   question.ID,
		Question:     *question,
		UserResponse: response,
		AIFeedback:   completion.Text,
	}
	if err := p.interviews.CreateAnswer(answer); err != nil {
		return nil, 0, fmt.Errorf("failed to save answer: %w", err)
	}

	count, err := p.interviews.CountAnswers(iv.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count answers: %w", err)
	}

	p.logger.Info("Answer submitted",
		zap.Uint("user_id", userID),
		zap.Uint("interview_id", iv.ID),
		zap.Uint("question_id", question.ID),
		zap.Int("question_number", int(count)),
		zap.Int("feedback_ms", completion.ProcessingTimeMs))

	return answer, int(count), nil
}
