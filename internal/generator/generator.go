package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/llm"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/occupation"
	"github.com/mfrench730/career-cracker/internal/prompts"
	"github.com/mfrench730/career-cracker/internal/utils"
)

const (
	generationMaxTokens   = 150
	generationTemperature = 0.7
)

// ErrNoOccupationMatch is returned when the occupation-data collaborator
// has no occupation for the requested job title.
var ErrNoOccupationMatch = errors.New("no occupation match for job title")

// OccupationLookup is the subset of the occupation client the generator needs.
type OccupationLookup interface {
	SearchCode(ctx context.Context, keyword string) (string, error)
	CareerInfo(ctx context.Context, code string) (*occupation.CareerInfo, error)
}

// QuestionStore persists generated questions with a best-effort uniqueness
// check on (text, job title).
type QuestionStore interface {
	CreateIfAbsent(q *models.Question) (bool, error)
}

// Generator backfills the question catalogue by synthesizing one question
// at a time from occupation data and the LLM collaborator.
type Generator struct {
	provider    llm.Provider
	occupations OccupationLookup
	questions   QuestionStore
	prompts     prompts.PromptProvider
	logger      *zap.Logger
}

func New(provider llm.Provider, occupations OccupationLookup, questions QuestionStore, promptManager prompts.PromptProvider, logger *zap.Logger) *Generator {
	return &Generator{
		provider:    provider,
		occupations: occupations,
		questions:   questions,
		prompts:     promptManager,
		logger:      logger,
	}
}

// Generate synthesizes one open-ended technical question for the job title
// and persists it with category NONE and difficulty 1. Duplicate text for
// the same job title resolves to the existing catalogue row.
func (g *Generator) Generate(ctx context.Context, jobTitle string) (*models.Question, error) {
	jobTitle = utils.NormalizeJobTitle(jobTitle)

	code, err := g.occupations.SearchCode(ctx, jobTitle)
	if err != nil {
		if errors.Is(err, occupation.ErrNoMatch) {
			return nil, fmt.Errorf("%w: %q", ErrNoOccupationMatch, jobTitle)
		}
		return nil, fmt.Errorf("occupation search failed: %w", err)
	}

	info, err := g.occupations.CareerInfo(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("career lookup failed: %w", err)
	}

	prompt, err := g.prompts.BuildPrompt("question", map[string]string{
		"Description": info.Description,
		"Tasks":       strings.Join(info.Tasks, "; "),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build question prompt: %w", err)
	}

	completion, err := g.provider.Complete(ctx, llm.CompletionRequest{
		System:      prompt.System,
		Prompt:      prompt.User,
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
		RequestID:   uuid.New().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	question := &models.Question{
		QuestionText: completion.Text,
		JobTitle:     jobTitle,
		Category:     models.CategoryNone,
		Difficulty:   1,
	}

	created, err := g.questions.CreateIfAbsent(question)
	if err != nil {
		return nil, fmt.Errorf("failed to persist generated question: %w", err)
	}

	g.logger.Info("Generated interview question",
		zap.String("job_title", jobTitle),
		zap.String("occupation_code", code),
		zap.Bool("created", created),
		zap.Uint("question_id", question.ID))

	return question, nil
}
