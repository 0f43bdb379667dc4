package usecase

import (
	"context"
	"time"

	"vetclinic-backend/internal/availability"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	AvailableSlots(ctx context.Context, veterinaryID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	location        *time.Location
	scheduleRepo    repository.WeeklyScheduleRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	location *time.Location,
	scheduleRepo repository.WeeklyScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		location:        location,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
	}
}

// AvailableSlots computes the bookable start times for one veterinary on one
// calendar date, in the clinic's local timezone. A date without a schedule
// entry, or with the day switched off, yields an empty slot list rather than
// an error.
func (u *availabilityUsecase) AvailableSlots(ctx context.Context, veterinaryID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, u.location)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	response := &dto.AvailableSlotsResponse{
		VeterinaryID: veterinaryID,
		Date:         date,
		Weekday:      entity.WeekdayName(day.Weekday()),
		Slots:        []string{},
	}

	schedule, err := u.scheduleRepo.FindByVeterinaryAndWeekday(db, veterinaryID, day.Weekday())
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil || !schedule.Available {
		return response, nil
	}

	// Stored clock values are validated on write; a malformed one can only
	// come from a hand-edited row
	dayStart, err := entity.At(day, schedule.StartTime, u.location)
	if err != nil {
		u.log.Warnf("Malformed start time %q on schedule %d: %+v", schedule.StartTime, schedule.ID, err)
		return nil, err
	}
	dayEnd, err := entity.At(day, schedule.EndTime, u.location)
	if err != nil {
		u.log.Warnf("Malformed end time %q on schedule %d: %+v", schedule.EndTime, schedule.ID, err)
		return nil, err
	}

	// Existing appointments for the whole calendar day; only occupying
	// statuses block slots
	appointments, err := u.appointmentRepo.FindByVeterinaryAndDateBetween(db, veterinaryID, day, day.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	busy := make([]availability.Interval, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.Status.Occupies() {
			continue
		}
		start := appointment.AppointmentDate.In(u.location)
		busy = append(busy, availability.Interval{
			Start: start,
			End:   start.Add(schedule.SlotDuration()),
		})
	}

	for _, slot := range availability.Slots(dayStart, dayEnd, schedule.SlotDuration(), schedule.Step(), busy) {
		response.Slots = append(response.Slots, slot.Format("15:04"))
	}

	return response, nil
}
