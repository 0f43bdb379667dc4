package usecase

import (
	"context"
	"errors"
	"time"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound     = errors.New("no schedule defined for this day")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrInvalidSlotDuration  = errors.New("slot duration must be positive")
	ErrInvalidBreakDuration = errors.New("break duration must not be negative")
	ErrDuplicateWeekday     = errors.New("the same weekday appears more than once")
)

type ScheduleUsecase interface {
	GetWeek(ctx context.Context, veterinaryID uuid.UUID) (*dto.WeekScheduleResponse, error)
	GetDay(ctx context.Context, veterinaryID uuid.UUID, weekday string) (*dto.DayScheduleResponse, error)
	SetDay(ctx context.Context, veterinaryID uuid.UUID, req *dto.SetDayScheduleRequest) (*dto.DayScheduleResponse, error)
	ReplaceWeek(ctx context.Context, veterinaryID uuid.UUID, req *dto.ReplaceWeekScheduleRequest) (*dto.WeekScheduleResponse, error)
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.WeeklyScheduleRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.WeeklyScheduleRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *scheduleUsecase) GetWeek(ctx context.Context, veterinaryID uuid.UUID) (*dto.WeekScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindByVeterinaryID(u.db.WithContext(ctx), veterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return converter.WeekScheduleToResponse(veterinaryID, schedules), nil
}

func (u *scheduleUsecase) GetDay(ctx context.Context, veterinaryID uuid.UUID, weekday string) (*dto.DayScheduleResponse, error) {
	day, err := entity.ParseWeekday(weekday)
	if err != nil {
		return nil, err
	}

	schedule, err := u.scheduleRepo.FindByVeterinaryAndWeekday(u.db.WithContext(ctx), veterinaryID, day)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.DayScheduleToResponse(schedule), nil
}

// SetDay inserts or replaces the working-hours definition for one weekday.
// An existing definition for the same (veterinary, weekday) pair is overwritten.
func (u *scheduleUsecase) SetDay(ctx context.Context, veterinaryID uuid.UUID, req *dto.SetDayScheduleRequest) (*dto.DayScheduleResponse, error) {
	schedule, err := buildSchedule(veterinaryID, req)
	if err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Upsert(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to upsert schedule: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &veterinaryID, entity.AuditActionScheduleSetDay, "weekly_schedule", req.Weekday, entity.JSON{
		"start_time": req.StartTime,
		"end_time":   req.EndTime,
	})

	return converter.DayScheduleToResponse(schedule), nil
}

// ReplaceWeek atomically replaces the veterinary's entire weekly plan: days
// absent from the request end up with no definition at all.
func (u *scheduleUsecase) ReplaceWeek(ctx context.Context, veterinaryID uuid.UUID, req *dto.ReplaceWeekScheduleRequest) (*dto.WeekScheduleResponse, error) {
	schedules := make([]*entity.WeeklySchedule, 0, len(req.Days))
	seen := make(map[time.Weekday]bool, len(req.Days))
	for i := range req.Days {
		schedule, err := buildSchedule(veterinaryID, &req.Days[i])
		if err != nil {
			return nil, err
		}
		if seen[schedule.Weekday] {
			return nil, ErrDuplicateWeekday
		}
		seen[schedule.Weekday] = true
		schedules = append(schedules, schedule)
	}

	if err := u.scheduleRepo.ReplaceForVeterinary(u.db.WithContext(ctx), veterinaryID, schedules); err != nil {
		u.log.Warnf("Failed to replace schedules: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &veterinaryID, entity.AuditActionScheduleReplace, "weekly_schedule", veterinaryID.String(), entity.JSON{
		"days": len(schedules),
	})

	return u.GetWeek(ctx, veterinaryID)
}

// buildSchedule validates one day definition and converts it into an entity.
func buildSchedule(veterinaryID uuid.UUID, req *dto.SetDayScheduleRequest) (*entity.WeeklySchedule, error) {
	day, err := entity.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}

	startH, startM, err := entity.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	endH, endM, err := entity.ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if startH*60+startM >= endH*60+endM {
		return nil, ErrInvalidTimeRange
	}

	if req.SlotDurationMin <= 0 {
		return nil, ErrInvalidSlotDuration
	}
	if req.BreakDurationMin < 0 {
		return nil, ErrInvalidBreakDuration
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	return &entity.WeeklySchedule{
		VeterinaryID:     veterinaryID,
		Weekday:          day,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		SlotDurationMin:  req.SlotDurationMin,
		BreakDurationMin: req.BreakDurationMin,
		Available:        available,
	}, nil
}
