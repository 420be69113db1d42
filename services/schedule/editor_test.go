package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	profileRepo "superlaw/database/repository/profile"
	"superlaw/models"
)

// fakeProfileRepo is an in-memory ProfileRepository for editor tests.
type fakeProfileRepo struct {
	mu     sync.Mutex
	days   map[string][]models.ScheduleDay // profileID -> days
	nextID int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{days: make(map[string][]models.ScheduleDay)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *models.LawyerProfile) error { return nil }
func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.LawyerProfile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Update(ctx context.Context, p *models.LawyerProfile) error { return nil }
func (f *fakeProfileRepo) Search(ctx context.Context, c profileRepo.SearchCriteria) ([]models.LawyerProfileView, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetSchedule(ctx context.Context, profileID string) ([]models.ScheduleDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ScheduleDay, len(f.days[profileID]))
	copy(out, f.days[profileID])
	return out, nil
}

func (f *fakeProfileRepo) ReplaceScheduleDay(ctx context.Context, profileID string, day models.ScheduleDay) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.days[profileID][:0:0]
	for _, d := range f.days[profileID] {
		if d.Date != day.Date {
			kept = append(kept, d)
		}
	}
	if !day.IsEmpty() {
		kept = append(kept, day)
	}
	f.days[profileID] = kept
	return nil
}

func (f *fakeProfileRepo) NextSlotIDs(ctx context.Context, n int) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, n)
	for i := range ids {
		f.nextID++
		ids[i] = f.nextID
	}
	return ids, nil
}

func (f *fakeProfileRepo) BookSlot(ctx context.Context, profileID, date string, slotID int64, clientName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for di, d := range f.days[profileID] {
		if d.Date != date {
			continue
		}
		for si, ts := range d.TimeSlots {
			if ts.ID == slotID && !ts.HasMeeting {
				f.days[profileID][di].TimeSlots[si].HasMeeting = true
				f.days[profileID][di].TimeSlots[si].ClientName = clientName
				return true, nil
			}
		}
	}
	return false, nil
}

func newTestEditor(repo *fakeProfileRepo) *DefaultEditorService {
	v := NewValidator(2)
	v.Now = func() time.Time {
		return time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	}
	return &DefaultEditorService{Repo: repo, Validator: v, Locks: NewProfileLocks()}
}

func TestSaveDay_AssignsIDsToNewSlots(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := newTestEditor(repo)

	day := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{TimeInterval: models.TimeInterval{From: 540, To: 600}},
			{TimeInterval: models.TimeInterval{From: 600, To: 660}},
		},
	}
	saved, err := editor.SaveDay(context.Background(), "p1", day)
	if err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}
	for i, ts := range saved.TimeSlots {
		if ts.ID == 0 {
			t.Errorf("slot %d still has id 0 after save", i)
		}
	}
	if saved.TimeSlots[0].ID == saved.TimeSlots[1].ID {
		t.Error("slots share an id")
	}
}

func TestSaveDay_ReplacesStoredDay(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := newTestEditor(repo)
	ctx := context.Background()

	first := models.ScheduleDay{
		Date:      "2026-09-15",
		TimeSlots: []models.TimeSlot{{TimeInterval: models.TimeInterval{From: 540, To: 600}}},
	}
	if _, err := editor.SaveDay(ctx, "p1", first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := models.ScheduleDay{
		Date:      "2026-09-15",
		TimeSlots: []models.TimeSlot{{TimeInterval: models.TimeInterval{From: 720, To: 780}}},
	}
	if _, err := editor.SaveDay(ctx, "p1", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := editor.GetDay(ctx, "p1", "2026-09-15")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(got.TimeSlots) != 1 || got.TimeSlots[0].From != 720 {
		t.Errorf("stored day was not replaced: %+v", got.TimeSlots)
	}
}

func TestSaveDay_EmptyDayClearsDate(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := newTestEditor(repo)
	ctx := context.Background()

	day := models.ScheduleDay{
		Date:      "2026-09-15",
		TimeSlots: []models.TimeSlot{{TimeInterval: models.TimeInterval{From: 540, To: 600}}},
	}
	if _, err := editor.SaveDay(ctx, "p1", day); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := editor.SaveDay(ctx, "p1", models.NewScheduleDay("2026-09-15")); err != nil {
		t.Fatalf("clearing save failed: %v", err)
	}

	days, err := editor.ListDays(ctx, "p1")
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no stored days, got %+v", days)
	}
}

func TestSaveDay_CannotForgeBookingState(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := newTestEditor(repo)
	ctx := context.Background()

	saved, err := editor.SaveDay(ctx, "p1", models.ScheduleDay{
		Date:      "2026-09-15",
		TimeSlots: []models.TimeSlot{{TimeInterval: models.TimeInterval{From: 540, To: 600}}},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Resubmit the same slot pretending it is booked.
	forged := saved
	forged.TimeSlots = []models.TimeSlot{{
		ID:           saved.TimeSlots[0].ID,
		TimeInterval: saved.TimeSlots[0].TimeInterval,
		HasMeeting:   true,
		ClientName:   "Fake Client",
	}}
	got, err := editor.SaveDay(ctx, "p1", forged)
	if err != nil {
		t.Fatalf("resave failed: %v", err)
	}
	if got.TimeSlots[0].HasMeeting || got.TimeSlots[0].ClientName != "" {
		t.Errorf("editor accepted forged booking state: %+v", got.TimeSlots[0])
	}
}

func TestSaveDay_BookedSlotSurvivesResave(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := newTestEditor(repo)
	ctx := context.Background()

	saved, err := editor.SaveDay(ctx, "p1", models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{TimeInterval: models.TimeInterval{From: 540, To: 600}},
			{TimeInterval: models.TimeInterval{From: 600, To: 660}},
		},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	bookedID := saved.TimeSlots[0].ID
	if ok, err := repo.BookSlot(ctx, "p1", "2026-09-15", bookedID, "Ivan Petrov"); err != nil || !ok {
		t.Fatalf("booking setup failed: ok=%v err=%v", ok, err)
	}

	// Removing the booked slot must fail.
	withoutBooked := models.ScheduleDay{
		Date:      "2026-09-15",
		TimeSlots: []models.TimeSlot{saved.TimeSlots[1]},
	}
	var locked models.SlotLockedError
	if _, err := editor.SaveDay(ctx, "p1", withoutBooked); !errors.As(err, &locked) {
		t.Fatalf("expected SlotLockedError, got %v", err)
	}

	// Keeping it while editing the free slot succeeds and the booking survives.
	resub := models.ScheduleDay{
		Date: "2026-09-15",
		TimeSlots: []models.TimeSlot{
			{ID: bookedID, TimeInterval: saved.TimeSlots[0].TimeInterval},
			{TimeInterval: models.TimeInterval{From: 720, To: 780}},
		},
	}
	got, err := editor.SaveDay(ctx, "p1", resub)
	if err != nil {
		t.Fatalf("resave failed: %v", err)
	}
	kept, ok := got.SlotByID(bookedID)
	if !ok {
		t.Fatal("booked slot missing after resave")
	}
	if !kept.HasMeeting || kept.ClientName != "Ivan Petrov" {
		t.Errorf("booking state lost on resave: %+v", kept)
	}
}

func TestGetDay_OutsideWindow(t *testing.T) {
	editor := newTestEditor(newFakeProfileRepo())
	var outOfWindow models.OutOfWindowError
	if _, err := editor.GetDay(context.Background(), "p1", "2027-01-01"); !errors.As(err, &outOfWindow) {
		t.Errorf("expected OutOfWindowError, got %v", err)
	}
}
