package models

import (
	"errors"
	"fmt"
)

// InvalidRangeError signals a malformed or non-positive-duration interval.
type InvalidRangeError struct {
	From Clock
	To   Clock
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: %s must be before %s", e.From, e.To)
}

// OverlapError signals that a proposed interval intersects an existing slot.
type OverlapError struct {
	Proposed TimeInterval
	Existing TimeInterval
}

func (e OverlapError) Error() string {
	return fmt.Sprintf("time slot %s overlaps existing slot %s", e.Proposed, e.Existing)
}

// OutOfWindowError signals a date outside the editable booking horizon.
type OutOfWindowError struct {
	Date string
	Min  string
	Max  string
}

func (e OutOfWindowError) Error() string {
	return fmt.Sprintf("date %s is outside the booking window [%s, %s]", e.Date, e.Min, e.Max)
}

// SlotLockedError signals an attempt to mutate or remove a booked slot.
type SlotLockedError struct {
	SlotID int64
}

func (e SlotLockedError) Error() string {
	return fmt.Sprintf("time slot %d has a booked meeting and cannot be changed", e.SlotID)
}

// AlreadyBookedError signals a booking attempt against a slot that already
// has a meeting. The original client binding is preserved.
type AlreadyBookedError struct {
	SlotID     int64
	ClientName string
}

func (e AlreadyBookedError) Error() string {
	return fmt.Sprintf("time slot %d is already booked", e.SlotID)
}

// IsScheduleError reports whether err is one of the scheduling error kinds.
func IsScheduleError(err error) bool {
	var (
		invalidRange  InvalidRangeError
		overlap       OverlapError
		outOfWindow   OutOfWindowError
		slotLocked    SlotLockedError
		alreadyBooked AlreadyBookedError
	)
	return errors.As(err, &invalidRange) ||
		errors.As(err, &overlap) ||
		errors.As(err, &outOfWindow) ||
		errors.As(err, &slotLocked) ||
		errors.As(err, &alreadyBooked)
}
