package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"aster/config"
	calendarRepo "aster/database/repository/calendar"
	"aster/models"
	"aster/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload identifies the event a reminder task belongs to.
type ReminderPayload struct {
	EventID string `json:"eventId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Scheduler enqueues reminder tasks for confirmed events.
type Scheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewScheduler builds a Scheduler using the configured reminder lead time.
func NewScheduler() *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(redisOpts()),
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleEventReminder enqueues a reminder to fire ahead of the event start.
// Events starting within the lead window get no reminder.
func (s *Scheduler) ScheduleEventReminder(ctx context.Context, event models.Event) error {
	fireAt := event.Start.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{EventID: event.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo calendarRepo.CalendarRepository) {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo))

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

func handleReminderTask(repo calendarRepo.CalendarRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		event, err := repo.GetEventByID(ctx, p.EventID)
		if err != nil {
			logger.Error("failed to load event for reminder",
				zap.String("eventId", p.EventID), zap.Error(err))
			return err
		}
		if event == nil {
			// Event deleted since confirmation; nothing to remind about.
			logger.Warn("reminder for unknown event", zap.String("eventId", p.EventID))
			return nil
		}

		logger.Info("upcoming event reminder",
			zap.String("eventId", event.ID),
			zap.String("title", event.Title),
			zap.Time("start", event.Start),
			zap.Strings("attendees", event.Attendees))
		return nil
	}
}
