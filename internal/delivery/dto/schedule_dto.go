package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SetDayScheduleRequest struct {
	Weekday          string `json:"weekday" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime        string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime          string `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDurationMin  int    `json:"slot_duration_min" validate:"required,min=1"`
	BreakDurationMin int    `json:"break_duration_min" validate:"gte=0"`
	Available        *bool  `json:"available" validate:"omitempty"`
}

type ReplaceWeekScheduleRequest struct {
	Days []SetDayScheduleRequest `json:"days" validate:"required,min=1,max=7,dive"`
}

// Response DTOs

type DayScheduleResponse struct {
	ID               int    `json:"id"`
	Weekday          string `json:"weekday"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	SlotDurationMin  int    `json:"slot_duration_min"`
	BreakDurationMin int    `json:"break_duration_min"`
	Available        bool   `json:"available"`
}

type WeekScheduleResponse struct {
	VeterinaryID uuid.UUID             `json:"veterinary_id"`
	Days         []DayScheduleResponse `json:"days"`
}

type AvailableSlotsResponse struct {
	VeterinaryID uuid.UUID `json:"veterinary_id"`
	Date         string    `json:"date"`
	Weekday      string    `json:"weekday"`
	Slots        []string  `json:"slots"` // Format: HH:MM, clinic local time
}
