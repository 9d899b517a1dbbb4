package cron

import (
	"context"
	"encoding/json"
	"time"

	"bookwise/config"
	"bookwise/models"
	"bookwise/services/tasks"
	"bookwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background. It
// consumes the tasks scheduled by the asynq reminder backend and performs
// the actual delivery, which is currently a structured-log stub — the
// integration point for a real email/SMS provider.
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
	mux.HandleFunc(tasks.TypeEmailReminder, handleReminderTask)
	mux.HandleFunc(tasks.TypeSMSReminder, handleReminderTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("reminder task has invalid payload", zap.Error(err))
		return err
	}
	if p.Recipient == "" {
		// Nothing to deliver to; treat as done rather than retrying.
		return nil
	}

	startsAt := p.StartUTC
	if t, err := time.Parse(time.RFC3339, p.StartUTC); err == nil {
		startsAt = utils.FormatInTimezone(t, p.Timezone)
	}

	logger.Info("delivering reminder",
		zap.String("channel", string(p.Channel)),
		zap.String("reservationId", p.ReservationID),
		zap.String("recipient", p.Recipient),
		zap.String("startsAt", startsAt),
	)
	return nil
}
