package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

// TypeSendReminder is the task type for appointment reminders.
const TypeSendReminder = "reminder:send"

// ReminderEnqueuer schedules an appointment reminder for a booking.
type ReminderEnqueuer interface {
	EnqueueReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// NewReminderTask builds the asynq task carrying a reminder payload,
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderEnqueuer enqueues reminder tasks on the Redis-backed queue.
type AsynqReminderEnqueuer struct {
	client *asynq.Client
}

// NewAsynqReminderEnqueuer creates an enqueuer backed by the configured
// Redis reminder queue.
func NewAsynqReminderEnqueuer() *AsynqReminderEnqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderEnqueuer{client: client}
}

// EnqueueReminder schedules a reminder task.
func (e *AsynqReminderEnqueuer) EnqueueReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := e.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (e *AsynqReminderEnqueuer) Close() error {
	return e.client.Close()
}
