package models

import (
	"errors"
	"testing"
)

func mustInterval(t *testing.T, from, to Clock) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(from, to)
	if err != nil {
		t.Fatalf("NewTimeInterval(%d, %d) failed: %v", from, to, err)
	}
	return iv
}

func TestNewTimeInterval_RejectsBadRanges(t *testing.T) {
	cases := []struct {
		from, to Clock
	}{
		{600, 600},  // zero duration
		{600, 540},  // inverted
		{-10, 600},  // negative
		{600, 1500}, // past midnight
	}
	for _, tc := range cases {
		_, err := NewTimeInterval(tc.from, tc.to)
		var invalid InvalidRangeError
		if !errors.As(err, &invalid) {
			t.Errorf("NewTimeInterval(%d, %d): expected InvalidRangeError, got %v", tc.from, tc.to, err)
		}
	}
}

func TestOverlaps(t *testing.T) {
	base := TimeInterval{From: 600, To: 660} // 10:00-11:00
	cases := []struct {
		other TimeInterval
		want  bool
	}{
		{TimeInterval{From: 540, To: 600}, false}, // touches left boundary
		{TimeInterval{From: 660, To: 720}, false}, // touches right boundary
		{TimeInterval{From: 540, To: 601}, true},  // one-minute intrusion
		{TimeInterval{From: 659, To: 720}, true},
		{TimeInterval{From: 610, To: 650}, true},  // contained
		{TimeInterval{From: 500, To: 800}, true},  // containing
		{TimeInterval{From: 600, To: 660}, true},  // identical
		{TimeInterval{From: 100, To: 200}, false}, // disjoint
	}
	for _, tc := range cases {
		if got := base.Overlaps(tc.other); got != tc.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", base, tc.other, got, tc.want)
		}
		// Overlap is symmetric.
		if got := tc.other.Overlaps(base); got != tc.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", tc.other, base, got, tc.want)
		}
	}
}

func TestAddSlot_RejectsOverlap(t *testing.T) {
	day := NewScheduleDay("2026-09-10")
	day, err := day.AddSlot(mustInterval(t, 540, 600))
	if err != nil {
		t.Fatalf("first AddSlot failed: %v", err)
	}

	_, err = day.AddSlot(mustInterval(t, 570, 630))
	var overlap OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected OverlapError, got %v", err)
	}

	// A slot touching the boundary is fine.
	day, err = day.AddSlot(mustInterval(t, 600, 660))
	if err != nil {
		t.Fatalf("adjacent AddSlot failed: %v", err)
	}
	if len(day.TimeSlots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(day.TimeSlots))
	}
}

func TestAddSlot_DoesNotMutateReceiver(t *testing.T) {
	day := NewScheduleDay("2026-09-10")
	withSlot, err := day.AddSlot(mustInterval(t, 540, 600))
	if err != nil {
		t.Fatalf("AddSlot failed: %v", err)
	}
	if len(day.TimeSlots) != 0 {
		t.Error("AddSlot mutated the original day")
	}
	if len(withSlot.TimeSlots) != 1 {
		t.Error("AddSlot did not add to the returned day")
	}
}

func TestRemoveSlot(t *testing.T) {
	day := NewScheduleDay("2026-09-10")
	day, _ = day.AddSlot(mustInterval(t, 540, 600))
	day, _ = day.AddSlot(mustInterval(t, 600, 660))

	removed, err := day.RemoveSlot(0)
	if err != nil {
		t.Fatalf("RemoveSlot failed: %v", err)
	}
	if len(removed.TimeSlots) != 1 || removed.TimeSlots[0].From != 600 {
		t.Errorf("unexpected slots after remove: %+v", removed.TimeSlots)
	}

	if _, err := day.RemoveSlot(5); err == nil {
		t.Error("expected error for out-of-range index")
	}

	// Removing then re-adding the same interval restores the day.
	restored, err := removed.AddSlot(mustInterval(t, 540, 600))
	if err != nil {
		t.Fatalf("re-adding removed interval failed: %v", err)
	}
	if len(restored.TimeSlots) != 2 {
		t.Errorf("expected 2 slots after restore, got %d", len(restored.TimeSlots))
	}
}

func TestRemoveSlot_BookedSlotIsLocked(t *testing.T) {
	day := NewScheduleDay("2026-09-10")
	day, _ = day.AddSlot(mustInterval(t, 540, 600))
	day.TimeSlots[0].ID = 7
	booked, err := day.TimeSlots[0].MarkBooked("Ivan Petrov")
	if err != nil {
		t.Fatalf("MarkBooked failed: %v", err)
	}
	day.TimeSlots[0] = booked

	_, err = day.RemoveSlot(0)
	var locked SlotLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("expected SlotLockedError, got %v", err)
	}
	if locked.SlotID != 7 {
		t.Errorf("SlotLockedError.SlotID = %d, want 7", locked.SlotID)
	}
}

func TestMarkBooked_PreservesOriginalClient(t *testing.T) {
	slot := NewTimeSlot(mustInterval(t, 540, 600))
	slot.ID = 3

	booked, err := slot.MarkBooked("Ivan Petrov")
	if err != nil {
		t.Fatalf("MarkBooked failed: %v", err)
	}

	again, err := booked.MarkBooked("Maria Georgieva")
	var already AlreadyBookedError
	if !errors.As(err, &already) {
		t.Fatalf("expected AlreadyBookedError, got %v", err)
	}
	if already.ClientName != "Ivan Petrov" {
		t.Errorf("error carries client %q, want the original", already.ClientName)
	}
	if again.ClientName != "Ivan Petrov" {
		t.Errorf("booking again changed client to %q", again.ClientName)
	}
}

func TestCalendarMergeDay(t *testing.T) {
	day1, _ := NewScheduleDay("2026-09-10").AddSlot(mustInterval(t, 540, 600))
	day2, _ := NewScheduleDay("2026-09-11").AddSlot(mustInterval(t, 600, 660))
	cal := NewAvailabilityCalendar("p1", []ScheduleDay{day1, day2})

	// Last writer wins for the same date.
	replacement, _ := NewScheduleDay("2026-09-10").AddSlot(mustInterval(t, 720, 780))
	merged := cal.MergeDay(replacement)
	got := merged.SelectDay("2026-09-10")
	if len(got.TimeSlots) != 1 || got.TimeSlots[0].From != 720 {
		t.Errorf("merge did not replace the day: %+v", got.TimeSlots)
	}

	// The original calendar is untouched.
	if cal.SelectDay("2026-09-10").TimeSlots[0].From != 540 {
		t.Error("MergeDay mutated the original calendar")
	}

	// Merging the same day twice is idempotent.
	twice := merged.MergeDay(replacement)
	if len(twice.ListDays()) != len(merged.ListDays()) {
		t.Error("repeated merge changed the calendar")
	}
}

func TestCalendarMergeEmptyDayRemovesEntry(t *testing.T) {
	day, _ := NewScheduleDay("2026-09-10").AddSlot(mustInterval(t, 540, 600))
	cal := NewAvailabilityCalendar("p1", []ScheduleDay{day})

	cleared := cal.MergeDay(NewScheduleDay("2026-09-10"))
	if cleared.HasDay("2026-09-10") {
		t.Error("merging an empty day should remove the date entirely")
	}
	if len(cleared.ListDays()) != 0 {
		t.Errorf("expected empty calendar, got %d days", len(cleared.ListDays()))
	}
}

func TestCalendarSelectDayDefaultsEmpty(t *testing.T) {
	cal := NewAvailabilityCalendar("p1", nil)
	day := cal.SelectDay("2026-09-10")
	if day.Date != "2026-09-10" || !day.IsEmpty() {
		t.Errorf("expected fresh empty day, got %+v", day)
	}
	if cal.HasDay("2026-09-10") {
		t.Error("SelectDay must not create calendar entries")
	}
}

func TestCalendarListDaysSorted(t *testing.T) {
	d1, _ := NewScheduleDay("2026-09-12").AddSlot(mustInterval(t, 540, 600))
	d2, _ := NewScheduleDay("2026-09-10").AddSlot(mustInterval(t, 540, 600))
	d3, _ := NewScheduleDay("2026-09-11").AddSlot(mustInterval(t, 540, 600))
	cal := NewAvailabilityCalendar("p1", []ScheduleDay{d1, d2, d3})

	days := cal.ListDays()
	want := []string{"2026-09-10", "2026-09-11", "2026-09-12"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, d := range days {
		if d.Date != want[i] {
			t.Errorf("days[%d].Date = %s, want %s", i, d.Date, want[i])
		}
	}
}
