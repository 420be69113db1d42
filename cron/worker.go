package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"superlaw/config"
	"superlaw/models"
	"superlaw/utils"

	"github.com/hibiken/asynq"
)

const TypeConsultationReminder = "consultation:reminder"

// Reminders fire this long before the consultation starts.
const reminderLead = 24 * time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues consultation reminders onto the Redis-backed
// task queue, delayed so they fire a day before the meeting.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder task for the consultation. Meetings
// starting inside the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(consultation *models.Consultation) error {
	start, err := time.Parse(models.DateLayout, consultation.Date)
	if err != nil {
		return fmt.Errorf("invalid consultation date %q: %w", consultation.Date, err)
	}
	start = start.Add(time.Duration(consultation.From) * time.Minute)

	fireAt := start.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		ConsultationID: consultation.ID,
		ProfileID:      consultation.ProfileID,
		UserID:         consultation.UserID,
		Date:           consultation.Date,
		From:           consultation.From.String(),
		ClientName:     consultation.ClientName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeConsultationReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeConsultationReminder, handleReminderTask)

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
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

	log.Printf("[ReminderHandler] Reminder for consultation %s on %s at %s", p.ConsultationID, p.Date, p.From)

	body := fmt.Sprintf("Reminder: consultation with %s on %s at %s.", p.ClientName, p.Date, p.From)
	if err := utils.SendEmail(p.UserID, "Consultation reminder", body); err != nil {
		log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
		return err
	}
	return nil
}
