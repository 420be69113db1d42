package models

import "time"

// Consultation is a booked meeting between a client and a lawyer, recorded
// when a slot reservation succeeds.
type Consultation struct {
	ID         string    `bson:"id" json:"id"`
	ProfileID  string    `bson:"profileId" json:"profileId"`
	UserID     string    `bson:"userId" json:"userId"`
	ClientName string    `bson:"clientName" json:"clientName"`
	Date       string    `bson:"date" json:"date"`
	SlotID     int64     `bson:"slotId" json:"slotId"`
	From       Clock     `bson:"from" json:"from"`
	To         Clock     `bson:"to" json:"to"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task body for consultation reminders.
type ReminderPayload struct {
	ConsultationID string `json:"consultationId"`
	ProfileID      string `json:"profileId"`
	UserID         string `json:"userId"`
	Date           string `json:"date"`
	From           string `json:"from"`
	ClientName     string `json:"clientName"`
}
