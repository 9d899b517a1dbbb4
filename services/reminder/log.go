package reminder

import (
	"context"

	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

// LogReminderService is the default dispatcher: it only writes structured
// log entries. Integration point for a real provider (SendGrid, SES, Twilio,
// Vonage, etc).
type LogReminderService struct{}

func NewLogReminderService() *LogReminderService {
	return &LogReminderService{}
}

func (s *LogReminderService) SendEmailReminder(ctx context.Context, reservation models.Reservation) error {
	logger := utils.GetLogger()
	logger.Info("email reminder queued",
		zap.String("reservationId", reservation.ID),
		zap.String("email", reservation.Email),
		zap.String("startsAt", utils.FormatInTimezone(reservation.StartUTC, reservation.Timezone)),
	)
	return nil
}

func (s *LogReminderService) SendSMSReminder(ctx context.Context, reservation models.Reservation) error {
	if reservation.Phone == "" {
		return nil
	}
	logger := utils.GetLogger()
	logger.Info("sms reminder queued",
		zap.String("reservationId", reservation.ID),
		zap.String("phone", reservation.Phone),
		zap.String("startsAt", utils.FormatInTimezone(reservation.StartUTC, reservation.Timezone)),
	)
	return nil
}
