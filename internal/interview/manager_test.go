package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mfrench730/career-cracker/internal/events"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/testhelpers"
)

// fakeGenerator writes one new catalogue row per call, or fails.
type fakeGenerator struct {
	db        *gorm.DB
	calls     int
	err       error
	failFirst int  // fail this many calls before succeeding
	noop      bool // succeed without adding catalogue rows
}

func (g *fakeGenerator) Generate(ctx context.Context, jobTitle string) (*models.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if g.calls <= g.failFirst {
		return nil, fmt.Errorf("transient failure on call %d", g.calls)
	}
	q := &models.Question{
		QuestionText: fmt.Sprintf("generated question %d for %s", g.calls, jobTitle),
		JobTitle:     jobTitle,
		Category:     models.CategoryNone,
		Difficulty:   1,
	}
	if g.noop {
		return q, nil
	}
	if err := g.db.Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

type fakePublisher struct {
	events []events.InterviewCompletedEvent
	err    error
}

func (p *fakePublisher) PublishInterviewCompleted(ctx context.Context, event events.InterviewCompletedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type managerFixture struct {
	db         *gorm.DB
	manager    *Manager
	generator  *fakeGenerator
	publisher  *fakePublisher
	interviews *repositories.InterviewRepository
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	gen := &fakeGenerator{db: db}
	pub := &fakePublisher{}
	interviews := &repositories.InterviewRepository{DB: db}
	manager := NewManager(
		interviews,
		&repositories.QuestionRepository{DB: db},
		&repositories.UserRepository{DB: db},
		&repositories.RatingRepository{DB: db},
		gen,
		pub,
		zap.NewNop(),
	)
	return &managerFixture{db: db, manager: manager, generator: gen, publisher: pub, interviews: interviews}
}

func expectKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}

func TestStartAssignsFiveDistinctQuestions(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 8)

	iv, err := f.manager.Start(context.Background(), user.ID, "Software Engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if len(iv.Questions) != QuestionsPerInterview {
		t.Fatalf("expected %d questions, got %d", QuestionsPerInterview, len(iv.Questions))
	}
	seen := make(map[uint]bool)
	for _, q := range iv.Questions {
		if seen[q.ID] {
			t.Fatalf("question %d assigned twice", q.ID)
		}
		seen[q.ID] = true
	}
	if iv.Status != models.InterviewInProgress {
		t.Fatalf("expected status %s, got %s", models.InterviewInProgress, iv.Status)
	}
	if iv.InterviewNumber != 1 {
		t.Fatalf("expected interview number 1, got %d", iv.InterviewNumber)
	}
	if iv.JobTitle != "software engineer" {
		t.Fatalf("expected normalized job title, got %q", iv.JobTitle)
	}
	if f.generator.calls != 0 {
		t.Fatalf("expected no backfill with a full catalogue, got %d calls", f.generator.calls)
	}
}

func TestStartBackfillsUnderPopulatedCatalogue(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "data analyst", 3)

	iv, err := f.manager.Start(context.Background(), user.ID, "data analyst")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if f.generator.calls != 2 {
		t.Fatalf("expected 2 backfill calls, got %d", f.generator.calls)
	}
	if len(iv.Questions) != QuestionsPerInterview {
		t.Fatalf("expected %d questions after backfill, got %d", QuestionsPerInterview, len(iv.Questions))
	}
}

func TestStartBackfillRetriesAfterTransientFailure(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "data analyst", 3)
	f.generator.failFirst = 1

	iv, err := f.manager.Start(context.Background(), user.ID, "data analyst")
	if err != nil {
		t.Fatalf("Start returned error despite retry budget: %v", err)
	}

	if f.generator.calls != 3 {
		t.Fatalf("expected 3 backfill calls (1 failed, 2 succeeded), got %d", f.generator.calls)
	}
	if len(iv.Questions) != QuestionsPerInterview {
		t.Fatalf("expected %d questions after backfill, got %d", QuestionsPerInterview, len(iv.Questions))
	}
}

func TestStartGeneratorFailureIsUpstream(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	f.generator.err = errors.New("model unavailable")

	_, err := f.manager.Start(context.Background(), user.ID, "niche role")
	expectKind(t, err, KindUpstream)
}

func TestStartInsufficientDataWhenBackfillAddsNothing(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "archivist", 3)
	f.generator.noop = true

	_, err := f.manager.Start(context.Background(), user.ID, "archivist")
	expectKind(t, err, KindInsufficientData)
}

func TestStartRejectsSecondActiveInterview(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 6)

	if _, err := f.manager.Start(context.Background(), user.ID, "software engineer"); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}
	_, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	expectKind(t, err, KindInvalidState)
}

func TestStartFallsBackToTargetJobTitle(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "Product Manager")
	testhelpers.SeedQuestions(t, f.db, "product manager", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if iv.JobTitle != "product manager" {
		t.Fatalf("expected target job title to be used, got %q", iv.JobTitle)
	}
}

func TestStartWithoutAnyJobTitle(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")

	_, err := f.manager.Start(context.Background(), user.ID, "   ")
	expectKind(t, err, KindValidation)
}

func TestInterviewNumbersIncrementPerUser(t *testing.T) {
	f := newManagerFixture(t)
	alice := testhelpers.SeedUser(t, f.db, "alice", "")
	bob := testhelpers.SeedUser(t, f.db, "bob", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 6)

	first, err := f.manager.Start(context.Background(), alice.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := f.manager.Complete(context.Background(), alice.ID, first.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	second, err := f.manager.Start(context.Background(), alice.ID, "software engineer")
	if err != nil {
		t.Fatalf("second Start returned error: %v", err)
	}
	if second.InterviewNumber != 2 {
		t.Fatalf("expected interview number 2, got %d", second.InterviewNumber)
	}

	bobs, err := f.manager.Start(context.Background(), bob.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start for second user returned error: %v", err)
	}
	if bobs.InterviewNumber != 1 {
		t.Fatalf("expected separate numbering per user, got %d", bobs.InterviewNumber)
	}
}

func TestNextQuestionNeverRepeatsAndSignalsDone(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	served := make(map[uint]bool)
	for i := 0; i < QuestionsPerInterview; i++ {
		q, done, err := f.manager.NextQuestion(context.Background(), user.ID, 0)
		if err != nil {
			t.Fatalf("NextQuestion returned error: %v", err)
		}
		if done {
			t.Fatalf("done signalled after %d answers", i)
		}
		if served[q.ID] {
			t.Fatalf("question %d served twice", q.ID)
		}
		served[q.ID] = true

		answer := &models.InterviewAnswer{InterviewID: iv.ID, QuestionID: q.ID, UserResponse: "answered"}
		if err := f.interviews.CreateAnswer(answer); err != nil {
			t.Fatalf("failed to record answer: %v", err)
		}
	}

	_, done, err := f.manager.NextQuestion(context.Background(), user.ID, 0)
	if err != nil {
		t.Fatalf("NextQuestion returned error: %v", err)
	}
	if !done {
		t.Fatal("expected done after all questions answered")
	}
}

func TestNextQuestionWithoutActiveInterview(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")

	_, _, err := f.manager.NextQuestion(context.Background(), user.ID, 0)
	expectKind(t, err, KindNotFound)
}

func TestNextQuestionOnCompletedInterview(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := f.manager.Complete(context.Background(), user.ID, iv.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	_, _, err = f.manager.NextQuestion(context.Background(), user.ID, iv.ID)
	expectKind(t, err, KindInvalidState)
}

func TestCompleteIsIdempotentAndPublishes(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	first, err := f.manager.Complete(context.Background(), user.ID, iv.ID)
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if first.Status != models.InterviewCompleted || first.EndTime == nil {
		t.Fatalf("expected completed interview with end time, got %+v", first)
	}

	time.Sleep(10 * time.Millisecond)
	second, err := f.manager.Complete(context.Background(), user.ID, iv.ID)
	if err != nil {
		t.Fatalf("re-Complete returned error: %v", err)
	}
	if !second.EndTime.After(*first.EndTime) {
		t.Fatal("expected end time to be overwritten on re-completion")
	}

	if len(f.publisher.events) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(f.publisher.events))
	}
	event := f.publisher.events[0]
	if event.InterviewID != iv.ID || event.UserID != user.ID {
		t.Fatalf("unexpected event payload: %+v", event)
	}
}

func TestCompleteSurvivesPublisherFailure(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)
	f.publisher.err = errors.New("broker down")

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := f.manager.Complete(context.Background(), user.ID, iv.ID); err != nil {
		t.Fatalf("Complete should not fail on publish errors, got: %v", err)
	}
}

func TestCompleteOtherUsersInterview(t *testing.T) {
	f := newManagerFixture(t)
	alice := testhelpers.SeedUser(t, f.db, "alice", "")
	mallory := testhelpers.SeedUser(t, f.db, "mallory", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), alice.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	_, err = f.manager.Complete(context.Background(), mallory.ID, iv.ID)
	expectKind(t, err, KindNotFound)
}

func TestRateQuestionUpsert(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	questionID := iv.Questions[0].ID

	rating, created, err := f.manager.RateQuestion(context.Background(), user.ID, iv.ID, questionID, models.RatingLike)
	if err != nil {
		t.Fatalf("RateQuestion returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first rating to be created")
	}
	if rating.Value != models.RatingLike {
		t.Fatalf("expected LIKE, got %s", rating.Value)
	}

	rating, created, err = f.manager.RateQuestion(context.Background(), user.ID, iv.ID, questionID, models.RatingDislike)
	if err != nil {
		t.Fatalf("re-RateQuestion returned error: %v", err)
	}
	if created {
		t.Fatal("expected second rating to update, not create")
	}
	if rating.Value != models.RatingDislike {
		t.Fatalf("expected DISLIKE after overwrite, got %s", rating.Value)
	}

	var count int64
	if err := f.db.Model(&models.QuestionRating{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single rating row, got %d", count)
	}
}

func TestRateQuestionUnknownTargets(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	_, _, err = f.manager.RateQuestion(context.Background(), user.ID, 9999, iv.Questions[0].ID, models.RatingLike)
	expectKind(t, err, KindNotFound)

	_, _, err = f.manager.RateQuestion(context.Background(), user.ID, iv.ID, 9999, models.RatingLike)
	expectKind(t, err, KindNotFound)
}

func TestGetRatingAbsentIsNil(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")

	rating, err := f.manager.GetRating(context.Background(), user.ID, 1, 1)
	if err != nil {
		t.Fatalf("GetRating returned error: %v", err)
	}
	if rating != nil {
		t.Fatalf("expected nil rating, got %+v", rating)
	}
}

func TestSubmitFeedbackRequiresCompletedInterview(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	_, _, err = f.manager.SubmitFeedback(context.Background(), user.ID, iv.ID, "too easy", 3)
	expectKind(t, err, KindInvalidState)

	if _, err := f.manager.Complete(context.Background(), user.ID, iv.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	feedback, created, err := f.manager.SubmitFeedback(context.Background(), user.ID, iv.ID, "too easy", 3)
	if err != nil {
		t.Fatalf("SubmitFeedback returned error: %v", err)
	}
	if !created {
		t.Fatal("expected feedback to be created")
	}
	if feedback.OverallRating != 3 {
		t.Fatalf("expected rating 3, got %d", feedback.OverallRating)
	}

	feedback, created, err = f.manager.SubmitFeedback(context.Background(), user.ID, iv.ID, "on reflection, fair", 4)
	if err != nil {
		t.Fatalf("re-SubmitFeedback returned error: %v", err)
	}
	if created {
		t.Fatal("expected feedback to update, not create")
	}
	if feedback.Content != "on reflection, fair" || feedback.OverallRating != 4 {
		t.Fatalf("expected overwritten feedback, got %+v", feedback)
	}
}

func TestHistoryPagination(t *testing.T) {
	f := newManagerFixture(t)
	user := testhelpers.SeedUser(t, f.db, "alice", "")
	testhelpers.SeedQuestions(t, f.db, "software engineer", 5)

	for i := 0; i < 3; i++ {
		iv, err := f.manager.Start(context.Background(), user.ID, "software engineer")
		if err != nil {
			t.Fatalf("Start %d returned error: %v", i+1, err)
		}
		if _, err := f.manager.Complete(context.Background(), user.ID, iv.ID); err != nil {
			t.Fatalf("Complete %d returned error: %v", i+1, err)
		}
	}

	history, err := f.manager.History(context.Background(), user.ID, 1, 2)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if history.Count != 3 {
		t.Fatalf("expected count 3, got %d", history.Count)
	}
	if len(history.Results) != 2 {
		t.Fatalf("expected 2 results on page 1, got %d", len(history.Results))
	}
	if history.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", history.TotalPages)
	}

	page2, err := f.manager.History(context.Background(), user.ID, 2, 2)
	if err != nil {
		t.Fatalf("History page 2 returned error: %v", err)
	}
	if len(page2.Results) != 1 {
		t.Fatalf("expected 1 result on page 2, got %d", len(page2.Results))
	}
}
