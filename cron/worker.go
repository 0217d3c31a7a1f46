package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Printf("[ReminderWorker] Max retry attempts reached; reminders disabled.")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] Invalid payload: %v", err)
		return err
	}

	// Delivery channel (email/push) is owned by the front-end stack; the
	// server records that the reminder fired.
	utils.GetLogger().Info("Appointment reminder due",
		zap.String("bookingId", p.BookingID),
		zap.String("email", p.Email),
		zap.String("date", p.AppointmentDate),
		zap.String("treatment", p.TreatmentName),
		zap.String("slot", p.SelectedSlot),
	)
	return nil
}
