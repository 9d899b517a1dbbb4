package models

import "time"

// SlotStatus marks a candidate slot as bookable or taken.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// SlotRange is a raw bookable UTC time range produced by the slot generator,
// before any availability annotation.
type SlotRange struct {
	StartUTC time.Time `json:"startUtc"`
	EndUTC   time.Time `json:"endUtc"`
}

// Slot is a transient, computed view returned to clients: a candidate range
// plus its live availability against the reservation registry. Slots are
// never persisted; they are recomputed on every query.
type Slot struct {
	StartUTC time.Time  `json:"startUtc"`
	EndUTC   time.Time  `json:"endUtc"`
	Status   SlotStatus `json:"status"`
}
