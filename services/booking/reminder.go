package booking

import "superlaw/models"

// ReminderScheduler enqueues a reminder to be delivered ahead of a booked
// consultation. Implementations live next to the worker consuming them.
type ReminderScheduler interface {
	ScheduleReminder(consultation *models.Consultation) error
}
