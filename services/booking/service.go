package booking

import (
	"context"
	"sync"

	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

const (
	minSlotMinutes = 1
	maxSlotMinutes = 120
)

// AvailableSlots generates the candidate UTC ranges for the given civil date
// and annotates each with a live conflict check against the registry.
// Repeating the query without intervening writes yields an identical list.
func (s *DefaultBookingService) AvailableSlots(date, timezone string, slotMinutes int) ([]models.Slot, error) {
	if slotMinutes < minSlotMinutes || slotMinutes > maxSlotMinutes {
		return nil, NewValidationError("slotMinutes must be a number between 1 and 120.")
	}

	candidates, err := GenerateUTCSlots(date, utils.SafeTimezone(timezone), slotMinutes, s.StartHour, s.EndHour)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, len(candidates))
	for _, c := range candidates {
		status := models.SlotAvailable
		if s.Registry.HasConflict(c.StartUTC, c.EndUTC) {
			status = models.SlotBooked
		}
		slots = append(slots, models.Slot{
			StartUTC: c.StartUTC,
			EndUTC:   c.EndUTC,
			Status:   status,
		})
	}
	return slots, nil
}

// ListReservations returns active reservations, optionally filtered by a
// case-insensitive email match.
func (s *DefaultBookingService) ListReservations(email string) []models.Reservation {
	return s.Registry.ListForEmail(email)
}

// CreateReservation commits a reservation and then dispatches the email and
// SMS reminders fire-and-forget: both run concurrently, neither failure
// propagates to the caller nor rolls back the reservation.
func (s *DefaultBookingService) CreateReservation(req models.ReservationRequest) (*models.Reservation, error) {
	req.Timezone = utils.SafeTimezone(req.Timezone)

	reservation, err := s.Registry.Create(req)
	if err != nil {
		return nil, err
	}

	s.dispatchReminders(*reservation)
	return reservation, nil
}

// CancelReservation flips the reservation to cancelled, freeing its range
// for future bookings.
func (s *DefaultBookingService) CancelReservation(id string) (*models.Reservation, error) {
	return s.Registry.Cancel(id)
}

func (s *DefaultBookingService) dispatchReminders(reservation models.Reservation) {
	if s.Reminders == nil {
		return
	}

	go func() {
		logger := utils.GetLogger()
		ctx := context.Background()

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			if err := s.Reminders.SendEmailReminder(ctx, reservation); err != nil {
				logger.Warn("email reminder dispatch failed",
					zap.String("reservationId", reservation.ID), zap.Error(err))
			}
		}()
		go func() {
			defer wg.Done()
			if err := s.Reminders.SendSMSReminder(ctx, reservation); err != nil {
				logger.Warn("sms reminder dispatch failed",
					zap.String("reservationId", reservation.ID), zap.Error(err))
			}
		}()

		wg.Wait()
	}()
}
