package schedule

import (
	"errors"
	"testing"
	"time"

	"superlaw/models"
)

func pinnedValidator() *Validator {
	v := NewValidator(2)
	v.Now = func() time.Time {
		return time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)
	}
	return v
}

func TestValidateDate_Window(t *testing.T) {
	v := pinnedValidator()

	cases := []struct {
		date string
		ok   bool
	}{
		{"2026-09-10", true},  // today, even though the clock is past midnight
		{"2026-11-10", true},  // last day of the window
		{"2026-09-09", false}, // yesterday
		{"2026-11-11", false}, // one past the window
		{"not-a-date", false},
	}

	for _, tc := range cases {
		err := v.ValidateDate(tc.date)
		if tc.ok && err != nil {
			t.Errorf("ValidateDate(%q): unexpected error: %v", tc.date, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ValidateDate(%q): expected error", tc.date)
		}
	}

	var outOfWindow models.OutOfWindowError
	if err := v.ValidateDate("2026-09-09"); !errors.As(err, &outOfWindow) {
		t.Errorf("expected OutOfWindowError for past date, got %v", err)
	}
}

func TestValidateProposal(t *testing.T) {
	v := pinnedValidator()
	day := models.NewScheduleDay("2026-09-15")
	iv, _ := models.NewTimeInterval(540, 600)
	day, _ = day.AddSlot(iv)

	if _, err := v.ValidateProposal(day, 600, 660); err != nil {
		t.Errorf("adjacent slot rejected: %v", err)
	}

	_, err := v.ValidateProposal(day, 570, 630)
	var overlap models.OverlapError
	if !errors.As(err, &overlap) {
		t.Errorf("expected OverlapError, got %v", err)
	}

	_, err = v.ValidateProposal(day, 660, 660)
	var invalid models.InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidRangeError, got %v", err)
	}
}

func TestValidateDay_BookedSlotsMustSurvive(t *testing.T) {
	v := pinnedValidator()

	stored := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{ID: 1, TimeInterval: models.TimeInterval{From: 540, To: 600}, HasMeeting: true, ClientName: "Ivan Petrov"},
			{ID: 2, TimeInterval: models.TimeInterval{From: 600, To: 660}},
		},
	}

	// Dropping the free slot is fine.
	ok := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{ID: 1, TimeInterval: models.TimeInterval{From: 540, To: 600}, HasMeeting: true, ClientName: "Ivan Petrov"},
		},
	}
	if err := v.ValidateDay(stored, ok); err != nil {
		t.Errorf("dropping a free slot rejected: %v", err)
	}

	// Dropping the booked slot is not.
	dropped := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{ID: 2, TimeInterval: models.TimeInterval{From: 600, To: 660}},
		},
	}
	var locked models.SlotLockedError
	if err := v.ValidateDay(stored, dropped); !errors.As(err, &locked) {
		t.Errorf("expected SlotLockedError for dropped booked slot, got %v", err)
	}

	// Shifting the booked slot's interval is not either.
	shifted := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{ID: 1, TimeInterval: models.TimeInterval{From: 570, To: 630}, HasMeeting: true, ClientName: "Ivan Petrov"},
		},
	}
	if err := v.ValidateDay(stored, shifted); !errors.As(err, &locked) {
		t.Errorf("expected SlotLockedError for edited booked slot, got %v", err)
	}
}

func TestValidateDay_RejectsOverlapsWithinSubmission(t *testing.T) {
	v := pinnedValidator()

	submitted := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{TimeInterval: models.TimeInterval{From: 540, To: 600}},
			{TimeInterval: models.TimeInterval{From: 570, To: 630}},
		},
	}
	var overlap models.OverlapError
	if err := v.ValidateDay(models.NewScheduleDay("2026-09-15"), submitted); !errors.As(err, &overlap) {
		t.Errorf("expected OverlapError, got %v", err)
	}
}
