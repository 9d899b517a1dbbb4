package models

// ReminderChannel selects the delivery channel for a scheduled reminder.
type ReminderChannel string

const (
	ReminderChannelEmail ReminderChannel = "email"
	ReminderChannelSMS   ReminderChannel = "sms"
)

// ReminderPayload is the serialized body of a queued reminder task.
type ReminderPayload struct {
	ReservationID string          `json:"reservationId"`
	Channel       ReminderChannel `json:"channel"`
	Recipient     string          `json:"recipient"`
	StartUTC      string          `json:"startUtc"`
	Timezone      string          `json:"timezone"`
	Name          string          `json:"name"`
}
