package schedule

import (
	"fmt"
	"time"

	"superlaw/models"
)

// Validator is the stateless rule set checked before any availability
// mutation. The current time is injected so window checks stay deterministic
// in tests.
type Validator struct {
	Now          func() time.Time
	WindowMonths int
}

// NewValidator builds a validator with the given editing horizon in months.
func NewValidator(windowMonths int) *Validator {
	return &Validator{Now: time.Now, WindowMonths: windowMonths}
}

// Window returns the currently editable date range [today, today+N months],
// both truncated to midnight.
func (v *Validator) Window() (min, max time.Time) {
	now := v.Now()
	min = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	max = min.AddDate(0, v.WindowMonths, 0)
	return min, max
}

// ValidateDate checks that the date parses and falls within the editable
// booking window at the moment of editing.
func (v *Validator) ValidateDate(date string) error {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	min, max := v.Window()
	if day.Before(min) || day.After(max) {
		return models.OutOfWindowError{
			Date: date,
			Min:  min.Format(models.DateLayout),
			Max:  max.Format(models.DateLayout),
		}
	}
	return nil
}

// ValidateInterval checks that both times are well formed and from is
// strictly before to.
func (v *Validator) ValidateInterval(from, to models.Clock) (models.TimeInterval, error) {
	return models.NewTimeInterval(from, to)
}

// ValidateProposal checks a slot proposed into a day: the interval must be
// well-formed and must not intersect any existing slot, booked ones included.
func (v *Validator) ValidateProposal(day models.ScheduleDay, from, to models.Clock) (models.TimeInterval, error) {
	iv, err := models.NewTimeInterval(from, to)
	if err != nil {
		return models.TimeInterval{}, err
	}
	for _, ts := range day.TimeSlots {
		if iv.Overlaps(ts.Interval()) {
			return models.TimeInterval{}, models.OverlapError{Proposed: iv, Existing: ts.Interval()}
		}
	}
	return iv, nil
}

// ValidateDay checks a full edited day against the stored one before it is
// merged into the calendar: the date must be inside the window, every slot
// well-formed and non-overlapping, and every booked slot of the stored day
// must reappear with its interval untouched. Booked slots can neither be
// removed nor edited.
func (v *Validator) ValidateDay(stored, submitted models.ScheduleDay) error {
	if err := v.ValidateDate(submitted.Date); err != nil {
		return err
	}

	for i, ts := range submitted.TimeSlots {
		if _, err := models.NewTimeInterval(ts.From, ts.To); err != nil {
			return err
		}
		for _, prev := range submitted.TimeSlots[:i] {
			if ts.Interval().Overlaps(prev.Interval()) {
				return models.OverlapError{Proposed: ts.Interval(), Existing: prev.Interval()}
			}
		}
	}

	for _, booked := range stored.TimeSlots {
		if booked.Mutable() {
			continue
		}
		kept, ok := submitted.SlotByID(booked.ID)
		if !ok || kept.Interval() != booked.Interval() {
			return models.SlotLockedError{SlotID: booked.ID}
		}
	}
	return nil
}
