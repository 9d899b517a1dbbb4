package booking

import (
	"bookwise/models"
	"bookwise/services/reminder"
)

// BookingService defines the transport-agnostic booking operations exposed
// to any request layer.
type BookingService interface {
	AvailableSlots(date, timezone string, slotMinutes int) ([]models.Slot, error)
	ListReservations(email string) []models.Reservation
	CreateReservation(req models.ReservationRequest) (*models.Reservation, error)
	CancelReservation(id string) (*models.Reservation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Registry  ReservationRegistry
	Reminders reminder.ReminderService

	// Business-hour window for slot generation, local hours [start, end).
	StartHour int
	EndHour   int
}
