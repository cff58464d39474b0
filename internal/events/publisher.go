package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ChannelInterviewCompleted is the pub/sub channel for completion events.
const ChannelInterviewCompleted = "interview_completed"

// InterviewCompletedEvent is published when a user completes an interview.
type InterviewCompletedEvent struct {
	InterviewID     uint   `json:"interview_id"`
	UserID          uint   `json:"user_id"`
	InterviewNumber int    `json:"interview_number"`
	JobTitle        string `json:"job_title"`
	CompletedAt     string `json:"completed_at"` // RFC3339
}

// Publisher broadcasts interview lifecycle events over Redis pub/sub.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(redisAddr string) *Publisher {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	return &Publisher{rdb: rdb}
}

func (p *Publisher) PublishInterviewCompleted(ctx context.Context, event InterviewCompletedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal interview_completed event: %w", err)
	}
	if err := p.rdb.Publish(ctx, ChannelInterviewCompleted, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish interview_completed event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.rdb.Close()
}
