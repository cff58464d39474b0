package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/repositories"
)

// RatingExporterJob periodically exports question ratings and interview
// feedback to JSONL files for offline analysis and model tuning.
type RatingExporterJob struct {
	ratings *repositories.RatingRepository
	config  *ExporterConfig
	cron    *cron.Cron
	logger  *zap.Logger
}

// ExporterConfig contains configuration for the exporter job
type ExporterConfig struct {
	Schedule     string // Cron schedule (e.g., "0 2 * * *" for 2 AM daily)
	ExportDir    string // Directory to store exported files
	Enabled      bool   // Whether to run exports
	LookbackDays int    // How far back each export reaches
}

func NewRatingExporterJob(ratings *repositories.RatingRepository, config *ExporterConfig, logger *zap.Logger) *RatingExporterJob {
	return &RatingExporterJob{
		ratings: ratings,
		config:  config,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start begins the scheduled export job
func (j *RatingExporterJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("Rating export is disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunExport(); err != nil {
			j.logger.Error("Rating export job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Rating exporter started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop stops the scheduled export job
func (j *RatingExporterJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

type ratingExportRow struct {
	Kind        string `json:"kind"` // "question_rating" | "interview_feedback"
	UserID      uint   `json:"user_id,omitempty"`
	QuestionID  uint   `json:"question_id,omitempty"`
	InterviewID uint   `json:"interview_id"`
	Value       string `json:"value,omitempty"`
	Content     string `json:"content,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// RunExport writes one JSONL file containing the lookback window's ratings
// and feedback.
func (j *RatingExporterJob) RunExport() error {
	since := time.Now().AddDate(0, 0, -j.config.LookbackDays)

	ratings, err := j.ratings.RatingsSince(since, 0)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}
	feedback, err := j.ratings.FeedbackSince(since, 0)
	if err != nil {
		return fmt.Errorf("failed to load feedback: %w", err)
	}
	if len(ratings) == 0 && len(feedback) == 0 {
		j.logger.Info("No ratings or feedback to export")
		return nil
	}

	if err := os.MkdirAll(j.config.ExportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := filepath.Join(j.config.ExportDir,
		fmt.Sprintf("ratings_%s.jsonl", time.Now().Format("2006-01-02_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, r := range ratings {
		row := ratingExportRow{
			Kind:        "question_rating",
			UserID:      r.UserID,
			QuestionID:  r.QuestionID,
			InterviewID: r.InterviewID,
			Value:       string(r.Value),
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		}
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to write rating row: %w", err)
		}
	}
	for _, f := range feedback {
		row := ratingExportRow{
			Kind:        "interview_feedback",
			InterviewID: f.InterviewID,
			Content:     f.Content,
			Rating:      f.OverallRating,
			CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		}
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to write feedback row: %w", err)
		}
	}

	j.logger.Info("Exported ratings and feedback",
		zap.String("file", filename),
		zap.Int("ratings", len(ratings)),
		zap.Int("feedback", len(feedback)))
	return nil
}
