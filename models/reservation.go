package models

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation represents a confirmed (or later cancelled) booking record.
// Instants are stored in UTC; Timezone is the label the client booked in,
// kept for display purposes only.
type Reservation struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Timezone  string            `json:"timezone"`
	Notes     string            `json:"notes,omitempty"`
	StartUTC  time.Time         `json:"startUtc"`
	EndUTC    time.Time         `json:"endUtc"`
	CreatedAt time.Time         `json:"createdAtUtc"`
	Status    ReservationStatus `json:"status"`
}

// ReservationRequest is the transient input for creating a reservation.
// StartUTC is an RFC3339 timestamp; DurationMinutes defaults to 30 when nil
// and must lie in (0, 240].
type ReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	Notes           string `json:"notes,omitempty"`
	StartUTC        string `json:"startUtc"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}
