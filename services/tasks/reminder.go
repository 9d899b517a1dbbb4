package tasks

import (
	"encoding/json"
	"time"

	"bookwise/models"

	"github.com/hibiken/asynq"
)

const (
	TypeEmailReminder = "reminder:email"
	TypeSMSReminder   = "reminder:sms"
)

// NewReminderTask builds an asynq task for the payload's channel, scheduled
// to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}

	taskType := TypeEmailReminder
	if payload.Channel == models.ReminderChannelSMS {
		taskType = TypeSMSReminder
	}

	task := asynq.NewTask(taskType, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
