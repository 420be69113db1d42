package models

// TimeSlot is a single bookable interval within a day. ID stays 0 until the
// slot is persisted; the repository assigns ids on save. Once a consultation
// is booked into a slot it becomes immutable.
type TimeSlot struct {
	ID           int64 `bson:"id" json:"id"`
	TimeInterval `bson:",inline"`
	HasMeeting   bool   `bson:"hasMeeting" json:"hasMeeting"`
	ClientName   string `bson:"clientName,omitempty" json:"clientName,omitempty"`
}

// NewTimeSlot creates an unsaved, unbooked slot for the given interval.
func NewTimeSlot(iv TimeInterval) TimeSlot {
	return TimeSlot{ID: 0, TimeInterval: iv}
}

// Interval returns the slot's time range.
func (ts TimeSlot) Interval() TimeInterval {
	return ts.TimeInterval
}

// Mutable reports whether the slot may still be edited or removed.
func (ts TimeSlot) Mutable() bool {
	return !ts.HasMeeting
}

// MarkBooked returns a booked copy of the slot bound to the given client.
// Booking is a one-way transition; booking an already-booked slot fails with
// AlreadyBookedError and leaves the original client binding intact.
func (ts TimeSlot) MarkBooked(clientName string) (TimeSlot, error) {
	if ts.HasMeeting {
		return ts, AlreadyBookedError{SlotID: ts.ID, ClientName: ts.ClientName}
	}
	booked := ts
	booked.HasMeeting = true
	booked.ClientName = clientName
	return booked, nil
}
