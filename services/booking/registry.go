package booking

import (
	"strings"
	"sync"
	"time"

	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
)

const (
	defaultDurationMinutes = 30
	maxDurationMinutes     = 240
)

// ReservationRegistry is the sole source of truth for booked time. Cancelled
// reservations stay in history but are excluded from listings and conflict
// checks.
type ReservationRegistry interface {
	ListActive() []models.Reservation
	ListForEmail(email string) []models.Reservation
	HasConflict(start, end time.Time) bool
	Create(req models.ReservationRequest) (*models.Reservation, error)
	Cancel(id string) (*models.Reservation, error)
}

// InMemoryRegistry implements ReservationRegistry with a mutex-guarded slice.
// Create holds the lock across the conflict check and the append, so
// check-then-act is atomic under parallel handlers. The registry is
// constructed once at startup and shared by reference; state does not
// survive a restart.
type InMemoryRegistry struct {
	mu           sync.RWMutex
	reservations []*models.Reservation
}

func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{}
}

// ListActive returns all confirmed reservations in insertion order.
func (r *InMemoryRegistry) ListActive() []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeLocked()
}

func (r *InMemoryRegistry) activeLocked() []models.Reservation {
	active := make([]models.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		if res.Status == models.ReservationConfirmed {
			active = append(active, *res)
		}
	}
	return active
}

// ListForEmail filters active reservations by case-insensitive email match.
// An empty email returns all active reservations (administrative view).
func (r *InMemoryRegistry) ListForEmail(email string) []models.Reservation {
	if email == "" {
		return r.ListActive()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Reservation
	for _, res := range r.reservations {
		if res.Status != models.ReservationConfirmed {
			continue
		}
		if strings.EqualFold(res.Email, email) {
			matched = append(matched, *res)
		}
	}
	return matched
}

// HasConflict reports whether any active reservation overlaps [start, end).
// A reservation ending exactly when another begins does not conflict.
func (r *InMemoryRegistry) HasConflict(start, end time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasConflictLocked(start, end)
}

func (r *InMemoryRegistry) hasConflictLocked(start, end time.Time) bool {
	for _, res := range r.reservations {
		if res.Status != models.ReservationConfirmed {
			continue
		}
		if utils.RangesOverlap(start, end, res.StartUTC, res.EndUTC) {
			return true
		}
	}
	return false
}

// Create validates the request, rejects overlapping ranges and appends a
// fresh confirmed reservation.
func (r *InMemoryRegistry) Create(req models.ReservationRequest) (*models.Reservation, error) {
	duration := defaultDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration <= 0 || duration > maxDurationMinutes {
		return nil, NewValidationError("Duration must be between 1 and 240 minutes.")
	}

	start, err := time.Parse(time.RFC3339, req.StartUTC)
	if err != nil {
		return nil, NewValidationError("Invalid startUtc timestamp.")
	}
	start = start.UTC()
	end := start.Add(time.Duration(duration) * time.Minute)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasConflictLocked(start, end) {
		return nil, NewConflictError("Selected slot is no longer available.")
	}

	reservation := &models.Reservation{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Timezone:  req.Timezone,
		Notes:     req.Notes,
		StartUTC:  start,
		EndUTC:    end,
		CreatedAt: time.Now().UTC(),
		Status:    models.ReservationConfirmed,
	}
	r.reservations = append(r.reservations, reservation)

	stored := *reservation
	return &stored, nil
}

// Cancel flips a reservation to cancelled in place. Unknown ids and
// already-cancelled reservations both fail with a not-found error; the
// status transition is monotonic and never reverts.
func (r *InMemoryRegistry) Cancel(id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.ID != id {
			continue
		}
		if res.Status == models.ReservationCancelled {
			return nil, NewNotFoundError("Reservation not found.")
		}
		res.Status = models.ReservationCancelled
		updated := *res
		return &updated, nil
	}
	return nil, NewNotFoundError("Reservation not found.")
}
