package repositories

import (
	"testing"
	"time"

	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/testhelpers"
)

func TestUpsertCreatesThenOverwrites(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &RatingRepository{DB: db}

	rating := &models.QuestionRating{UserID: 1, QuestionID: 2, InterviewID: 3, Value: models.RatingLike}
	created, err := repo.Upsert(rating)
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first upsert to create")
	}
	firstCreatedAt := rating.CreatedAt

	overwrite := &models.QuestionRating{UserID: 1, QuestionID: 2, InterviewID: 3, Value: models.RatingDislike}
	created, err = repo.Upsert(overwrite)
	if err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}
	if created {
		t.Fatal("expected second upsert to update")
	}
	if overwrite.Value != models.RatingDislike {
		t.Fatalf("expected DISLIKE, got %s", overwrite.Value)
	}
	if !overwrite.CreatedAt.Equal(firstCreatedAt) {
		t.Fatal("expected created_at to keep the first-write timestamp")
	}

	var count int64
	if err := db.Model(&models.QuestionRating{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one rating row, got %d", count)
	}
}

func TestGetAbsentRatingReturnsNil(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &RatingRepository{DB: db}

	rating, err := repo.Get(1, 2, 3)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rating != nil {
		t.Fatalf("expected nil for absent rating, got %+v", rating)
	}
}

func TestUpsertFeedbackSingleRowPerInterview(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &RatingRepository{DB: db}

	feedback := &models.InterviewFeedback{InterviewID: 7, Content: "good practice", OverallRating: 4}
	created, err := repo.UpsertFeedback(feedback)
	if err != nil || !created {
		t.Fatalf("expected feedback to be created, got %v %v", created, err)
	}

	replacement := &models.InterviewFeedback{InterviewID: 7, Content: "great practice", OverallRating: 5}
	created, err = repo.UpsertFeedback(replacement)
	if err != nil {
		t.Fatalf("UpsertFeedback returned error: %v", err)
	}
	if created {
		t.Fatal("expected feedback to update")
	}

	stored, err := repo.GetFeedback(7)
	if err != nil {
		t.Fatalf("GetFeedback returned error: %v", err)
	}
	if stored.Content != "great practice" || stored.OverallRating != 5 {
		t.Fatalf("expected overwritten feedback, got %+v", stored)
	}
}

func TestSinceQueriesFilterByTime(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &RatingRepository{DB: db}

	old := &models.QuestionRating{UserID: 1, QuestionID: 1, InterviewID: 1, Value: models.RatingLike}
	if _, err := repo.Upsert(old); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := db.Model(old).Update("created_at", past).Error; err != nil {
		t.Fatalf("failed to backdate rating: %v", err)
	}

	recent := &models.QuestionRating{UserID: 1, QuestionID: 2, InterviewID: 1, Value: models.RatingDislike}
	if _, err := repo.Upsert(recent); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	ratings, err := repo.RatingsSince(time.Now().Add(-24*time.Hour), 0)
	if err != nil {
		t.Fatalf("RatingsSince returned error: %v", err)
	}
	if len(ratings) != 1 || ratings[0].QuestionID != 2 {
		t.Fatalf("expected only the recent rating, got %+v", ratings)
	}

	if _, err := repo.UpsertFeedback(&models.InterviewFeedback{InterviewID: 1, Content: "x", OverallRating: 3}); err != nil {
		t.Fatalf("UpsertFeedback returned error: %v", err)
	}
	feedback, err := repo.FeedbackSince(time.Now().Add(-24*time.Hour), 0)
	if err != nil {
		t.Fatalf("FeedbackSince returned error: %v", err)
	}
	if len(feedback) != 1 {
		t.Fatalf("expected one recent feedback row, got %d", len(feedback))
	}
}
