package reminder

import (
	"context"

	"bookwise/models"
)

// ReminderService dispatches best-effort booking reminders. Implementations
// must tolerate missing contact info (SMS without a phone number is a no-op)
// and must never block or fail a booking: callers ignore errors beyond
// logging them.
type ReminderService interface {
	SendEmailReminder(ctx context.Context, reservation models.Reservation) error
	SendSMSReminder(ctx context.Context, reservation models.Reservation) error
}
