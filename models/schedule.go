package models

import (
	"fmt"
	"sort"
)

// DateLayout is the calendar-date format used for schedule day keys,
// e.g. "2025-09-14".
const DateLayout = "2006-01-02"

// ScheduleDay holds the bookable time slots for one calendar date. Slots keep
// insertion order, not time order; display code may re-sort.
type ScheduleDay struct {
	Date      string     `bson:"date" json:"date"`
	TimeSlots []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// NewScheduleDay returns an empty day for the given date.
func NewScheduleDay(date string) ScheduleDay {
	return ScheduleDay{Date: date}
}

func (d ScheduleDay) IsEmpty() bool {
	return len(d.TimeSlots) == 0
}

// AddSlot returns a new day with a fresh slot for the interval appended.
// The interval is checked against every existing slot, booked ones included;
// an intersection fails with OverlapError and leaves the day unchanged.
func (d ScheduleDay) AddSlot(iv TimeInterval) (ScheduleDay, error) {
	for _, ts := range d.TimeSlots {
		if iv.Overlaps(ts.Interval()) {
			return d, OverlapError{Proposed: iv, Existing: ts.Interval()}
		}
	}
	next := d
	next.TimeSlots = make([]TimeSlot, len(d.TimeSlots), len(d.TimeSlots)+1)
	copy(next.TimeSlots, d.TimeSlots)
	next.TimeSlots = append(next.TimeSlots, NewTimeSlot(iv))
	return next, nil
}

// RemoveSlot returns a new day with the slot at index removed; later slots
// shift down by one. Removing a booked slot fails with SlotLockedError.
func (d ScheduleDay) RemoveSlot(index int) (ScheduleDay, error) {
	if index < 0 || index >= len(d.TimeSlots) {
		return d, fmt.Errorf("slot index %d out of range", index)
	}
	if !d.TimeSlots[index].Mutable() {
		return d, SlotLockedError{SlotID: d.TimeSlots[index].ID}
	}
	next := d
	next.TimeSlots = make([]TimeSlot, 0, len(d.TimeSlots)-1)
	next.TimeSlots = append(next.TimeSlots, d.TimeSlots[:index]...)
	next.TimeSlots = append(next.TimeSlots, d.TimeSlots[index+1:]...)
	return next, nil
}

// SlotByID returns the slot with the given id, if present.
func (d ScheduleDay) SlotByID(id int64) (TimeSlot, bool) {
	for _, ts := range d.TimeSlots {
		if ts.ID == id {
			return ts, true
		}
	}
	return TimeSlot{}, false
}

// AvailabilityCalendar is the full set of schedule days for one lawyer
// profile, keyed by date. It is a value type: every mutation returns a new
// calendar and the receiver is never changed.
type AvailabilityCalendar struct {
	ProfileID string
	days      map[string]ScheduleDay
}

// NewAvailabilityCalendar builds a calendar from stored days. A later entry
// for the same date wins over an earlier one.
func NewAvailabilityCalendar(profileID string, days []ScheduleDay) AvailabilityCalendar {
	m := make(map[string]ScheduleDay, len(days))
	for _, d := range days {
		if d.IsEmpty() {
			continue
		}
		m[d.Date] = d
	}
	return AvailabilityCalendar{ProfileID: profileID, days: m}
}

// SelectDay returns the stored day for the date, or a fresh empty day if the
// date has no slots yet. The calendar itself is not touched.
func (c AvailabilityCalendar) SelectDay(date string) ScheduleDay {
	if d, ok := c.days[date]; ok {
		return d
	}
	return NewScheduleDay(date)
}

// HasDay reports whether the calendar stores any slots for the date.
func (c AvailabilityCalendar) HasDay(date string) bool {
	_, ok := c.days[date]
	return ok
}

// MergeDay writes the day back into the calendar, replacing any prior entry
// for the same date (last writer wins). Merging an empty day clears the
// date's availability entirely; the calendar never retains empty days.
func (c AvailabilityCalendar) MergeDay(day ScheduleDay) AvailabilityCalendar {
	next := make(map[string]ScheduleDay, len(c.days)+1)
	for k, v := range c.days {
		next[k] = v
	}
	if day.IsEmpty() {
		delete(next, day.Date)
	} else {
		next[day.Date] = day
	}
	return AvailabilityCalendar{ProfileID: c.ProfileID, days: next}
}

// ListDays returns all stored days ordered by date ascending.
func (c AvailabilityCalendar) ListDays() []ScheduleDay {
	out := make([]ScheduleDay, 0, len(c.days))
	for _, d := range c.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
