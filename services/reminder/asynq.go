package reminder

import (
	"context"
	"time"

	"bookwise/models"
	"bookwise/services/tasks"
	"bookwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqReminderService schedules reminder tasks on a Redis-backed asynq
// queue, firing LeadTime ahead of the reservation start. Reservations that
// start sooner than LeadTime get their reminder enqueued immediately.
type AsynqReminderService struct {
	Client   *asynq.Client
	LeadTime time.Duration
}

func NewAsynqReminderService(redisOpt asynq.RedisClientOpt, leadTime time.Duration) *AsynqReminderService {
	return &AsynqReminderService{
		Client:   asynq.NewClient(redisOpt),
		LeadTime: leadTime,
	}
}

func (s *AsynqReminderService) SendEmailReminder(ctx context.Context, reservation models.Reservation) error {
	payload := models.ReminderPayload{
		ReservationID: reservation.ID,
		Channel:       models.ReminderChannelEmail,
		Recipient:     reservation.Email,
		StartUTC:      reservation.StartUTC.Format(time.RFC3339),
		Timezone:      reservation.Timezone,
		Name:          reservation.Name,
	}
	return s.enqueue(ctx, payload, reservation.StartUTC)
}

func (s *AsynqReminderService) SendSMSReminder(ctx context.Context, reservation models.Reservation) error {
	if reservation.Phone == "" {
		return nil
	}
	payload := models.ReminderPayload{
		ReservationID: reservation.ID,
		Channel:       models.ReminderChannelSMS,
		Recipient:     reservation.Phone,
		StartUTC:      reservation.StartUTC.Format(time.RFC3339),
		Timezone:      reservation.Timezone,
		Name:          reservation.Name,
	}
	return s.enqueue(ctx, payload, reservation.StartUTC)
}

func (s *AsynqReminderService) enqueue(ctx context.Context, payload models.ReminderPayload, startUTC time.Time) error {
	fireAt := startUTC.Add(-s.LeadTime)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}

	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}

	utils.GetLogger().Info("reminder task scheduled",
		zap.String("taskId", info.ID),
		zap.String("channel", string(payload.Channel)),
		zap.String("reservationId", payload.ReservationID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqReminderService) Close() error {
	return s.Client.Close()
}
