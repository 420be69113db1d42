package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	consultationRepo "superlaw/database/repository/consultation"
	profileRepo "superlaw/database/repository/profile"
	"superlaw/models"
	"superlaw/services/schedule"
	"superlaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService reserves consultation slots.
type BookingService interface {
	// ReserveSlot books the slot for the client. Exactly one caller wins a
	// contested slot; losers get AlreadyBookedError.
	ReserveSlot(ctx context.Context, userID, clientName string, req models.ReserveSlotRequest) (*models.Consultation, error)
	// ListOwn returns the caller's booked consultations.
	ListOwn(ctx context.Context, userID string) ([]models.Consultation, error)
	// ListForProfile returns all consultations booked into a profile.
	ListForProfile(ctx context.Context, profileID string) ([]models.Consultation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Profiles      profileRepo.ProfileRepository
	Consultations consultationRepo.ConsultationRepository
	Validator     *schedule.Validator
	Locks         *schedule.ProfileLocks
	Reminders     ReminderScheduler
}

// ReserveSlot books a slot. The slot state flips with a single compare-and-set
// write in the database, so a lost race surfaces as AlreadyBookedError rather
// than a double booking.
func (s *DefaultBookingService) ReserveSlot(ctx context.Context, userID, clientName string, req models.ReserveSlotRequest) (*models.Consultation, error) {
	if err := s.Validator.ValidateDate(req.Date); err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(req.ProfileID)
	defer unlock()

	days, err := s.Profiles.GetSchedule(ctx, req.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	day := models.NewAvailabilityCalendar(req.ProfileID, days).SelectDay(req.Date)

	slot, ok := day.SlotByID(req.SlotID)
	if !ok {
		return nil, errors.New("slot not found")
	}
	if _, err := slot.MarkBooked(clientName); err != nil {
		return nil, err
	}

	booked, err := s.Profiles.BookSlot(ctx, req.ProfileID, req.Date, req.SlotID, clientName)
	if err != nil {
		return nil, fmt.Errorf("failed to book slot: %w", err)
	}
	if !booked {
		return nil, models.AlreadyBookedError{SlotID: req.SlotID, ClientName: slot.ClientName}
	}

	consultation := &models.Consultation{
		ID:         uuid.New().String(),
		ProfileID:  req.ProfileID,
		UserID:     userID,
		ClientName: clientName,
		Date:       req.Date,
		SlotID:     req.SlotID,
		From:       slot.From,
		To:         slot.To,
		CreatedAt:  time.Now(),
	}
	if err := s.Consultations.Insert(ctx, consultation); err != nil {
		return nil, fmt.Errorf("failed to record consultation: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(consultation); err != nil {
			utils.GetLogger().Warn("Failed to schedule consultation reminder",
				zap.String("consultationId", consultation.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("Slot booked",
		zap.String("profileId", req.ProfileID),
		zap.String("date", req.Date),
		zap.Int64("slotId", req.SlotID))
	return consultation, nil
}

func (s *DefaultBookingService) ListOwn(ctx context.Context, userID string) ([]models.Consultation, error) {
	return s.Consultations.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListForProfile(ctx context.Context, profileID string) ([]models.Consultation, error) {
	return s.Consultations.ListByProfile(ctx, profileID)
}
