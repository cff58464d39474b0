package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/interview"
	"github.com/mfrench730/career-cracker/internal/llm"
	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/prompts"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/testhelpers"
)

type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Completion{Text: p.text, Provider: "stub", Model: "stub-model"}, nil
}

func (p *stubProvider) GetProviderName() string { return "stub" }

type stubPrompts struct{}

func (stubPrompts) BuildPrompt(mode string, data map[string]string) (prompts.Prompt, error) {
	return prompts.Prompt{System: "interviewer", User: "prompt"}, nil
}

func (stubPrompts) GetTemplates() []string { return []string{"feedback", "question"} }

// stubGenerator never adds catalogue rows; fixtures seed enough questions.
type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, jobTitle string) (*models.Question, error) {
	return nil, nil
}

type handlerFixture struct {
	db        *gorm.DB
	manager   *interview.Manager
	answers   *interview.AnswerProcessor
	provider  *stubProvider
	interview *InterviewHandler
	rating    *RatingHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	provider := &stubProvider{text: "Good answer."}

	interviews := &repositories.InterviewRepository{DB: db}
	manager := interview.NewManager(
		interviews,
		&repositories.QuestionRepository{DB: db},
		&repositories.UserRepository{DB: db},
		&repositories.RatingRepository{DB: db},
		stubGenerator{},
		nil,
		zap.NewNop(),
	)
	answers := interview.NewAnswerProcessor(interviews, provider, stubPrompts{}, zap.NewNop())

	return &handlerFixture{
		db:        db,
		manager:   manager,
		answers:   answers,
		provider:  provider,
		interview: NewInterviewHandler(manager, answers, zap.NewNop()),
		rating:    NewRatingHandler(manager, zap.NewNop()),
	}
}

// newRequest builds an authenticated JSON request with optional {id} route
// param and a validated DTO already in context, mirroring the route stack.
func newRequest(t *testing.T, method, target string, body interface{}, userID uint) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}
