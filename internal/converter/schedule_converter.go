package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// DayScheduleToResponse converts a WeeklySchedule entity to DayScheduleResponse DTO
func DayScheduleToResponse(schedule *entity.WeeklySchedule) *dto.DayScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.DayScheduleResponse{
		ID:               schedule.ID,
		Weekday:          entity.WeekdayName(schedule.Weekday),
		StartTime:        schedule.StartTime,
		EndTime:          schedule.EndTime,
		SlotDurationMin:  schedule.SlotDurationMin,
		BreakDurationMin: schedule.BreakDurationMin,
		Available:        schedule.Available,
	}
}

// WeekScheduleToResponse converts a veterinary's schedule entries to a
// WeekScheduleResponse DTO, preserving the given order.
func WeekScheduleToResponse(veterinaryID uuid.UUID, schedules []entity.WeeklySchedule) *dto.WeekScheduleResponse {
	days := make([]dto.DayScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		resp := DayScheduleToResponse(&schedule)
		if resp != nil {
			days[i] = *resp
		}
	}

	return &dto.WeekScheduleResponse{
		VeterinaryID: veterinaryID,
		Days:         days,
	}
}
