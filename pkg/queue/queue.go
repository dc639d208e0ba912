// Package queue provides font fetch job queue operations using goqite.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"maragu.dev/goqite"
)

// DefaultMaxAttempts bounds the attempts of a job without its own limit.
const DefaultMaxAttempts = 3

// FetchJob asks the fetch engine to download one font into the bundle.
type FetchJob struct {
	ID          string    `json:"id"`
	FontID      string    `json:"font_id"`
	MaxAttempts int       `json:"max_attempts"`
	CreatedAt   time.Time `json:"created_at"`
}

// Queue manages fetch jobs using goqite, tracking their status in font_fetch_jobs.
type Queue struct {
	queue  *goqite.Queue
	jobs   model.FontFetchJobsModel
	Events *EventRecorder
}

// NewQueue creates a fetch queue named name on db. conn must wrap the same database.
func NewQueue(db *sql.DB, conn sqlx.SqlConn, name string) (*Queue, error) {
	if err := setup(db); err != nil {
		return nil, err
	}

	q := goqite.New(goqite.NewOpts{
		DB:         db,
		Name:       name,
		MaxReceive: 100,
	})

	events, err := NewEventRecorder(conn)
	if err != nil {
		return nil, fmt.Errorf("create event recorder: %w", err)
	}

	return &Queue{
		queue:  q,
		jobs:   model.NewFontFetchJobsModel(conn),
		Events: events,
	}, nil
}

// Enqueue adds a fetch job to the queue and returns its id.
func (q *Queue) Enqueue(ctx context.Context, job FetchJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.MaxAttempts == 0 {
		job.MaxAttempts = DefaultMaxAttempts
	}
	job.CreatedAt = time.Now()

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	// Track first so the worker always finds the row.
	if _, err := q.jobs.Insert(ctx, &model.FontFetchJobs{
		Id:          job.ID,
		FontId:      job.FontID,
		Status:      model.JobStatusPending,
		MaxAttempts: int64(job.MaxAttempts),
	}); err != nil {
		return "", fmt.Errorf("store job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{Body: body}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	q.recordEvent(job.ID, "queued", job.FontID)
	return job.ID, nil
}

// Receive gets the next job from the queue. It returns nil, nil, nil when the queue is empty.
func (q *Queue) Receive(ctx context.Context) (*FetchJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job FetchJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Extend hides a message for d, delaying its next delivery.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a message from the queue (job finished).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}

// Get returns the tracked state of a job.
func (q *Queue) Get(ctx context.Context, id string) (*model.FontFetchJobs, error) {
	return q.jobs.FindOne(ctx, id)
}

// List returns tracked jobs with an optional status filter.
func (q *Queue) List(ctx context.Context, status string, limit int) ([]*model.FontFetchJobs, error) {
	return q.jobs.ListByStatus(ctx, status, limit)
}

// Stats returns job counts by status.
func (q *Queue) Stats(ctx context.Context) (map[string]int, error) {
	return q.jobs.Stats(ctx)
}

// MarkDone records a successful fetch.
func (q *Queue) MarkDone(ctx context.Context, id string, rules int) error {
	q.recordEvent(id, "done", fmt.Sprintf("%d rules", rules))
	return q.jobs.MarkDone(ctx, id, rules)
}

// MarkRetry records a failed attempt that will be retried after backoff.
func (q *Queue) MarkRetry(ctx context.Context, id string, backoff time.Duration, err error) error {
	q.recordEvent(id, "retry", fmt.Sprintf("backoff %s: %v", backoff, err))
	return q.jobs.MarkRetry(ctx, id, err.Error())
}

// MarkFailed records a permanent failure.
func (q *Queue) MarkFailed(ctx context.Context, id string, err error) error {
	q.recordEvent(id, "failed", err.Error())
	return q.jobs.MarkFailed(ctx, id, err.Error())
}

func (q *Queue) recordEvent(jobID, eventType, details string) {
	if q.Events != nil {
		q.Events.RecordEvent(jobID, eventType, details)
	}
}

// setup creates the goqite schema unless a previous run already did.
func setup(db *sql.DB) error {
	var n int
	err := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'goqite'`).Scan(&n)
	if err != nil {
		return fmt.Errorf("check goqite schema: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := goqite.Setup(context.Background(), db); err != nil {
		return fmt.Errorf("setup goqite: %w", err)
	}
	return nil
}
