package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday name")
	ErrInvalidClock   = errors.New("invalid clock value, use HH:MM")
)

// WeeklySchedule is the working-hours definition for one veterinary on one
// day of the week. At most one row exists per (veterinary, weekday); a write
// for the same pair replaces the previous definition. A missing row means
// "no schedule defined", which is distinct from Available=false.
type WeeklySchedule struct {
	ID               int          `gorm:"primaryKey;autoIncrement" json:"id"`
	VeterinaryID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_vet_weekday" json:"veterinary_id"`
	Weekday          time.Weekday `gorm:"not null;uniqueIndex:uq_vet_weekday" json:"weekday"`
	StartTime        string       `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime          string       `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	SlotDurationMin  int          `gorm:"not null" json:"slot_duration_min"`
	BreakDurationMin int          `gorm:"not null;default:0" json:"break_duration_min"`
	Available        bool         `gorm:"not null;default:true" json:"available"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Veterinary VeterinaryProfile `gorm:"foreignKey:VeterinaryID" json:"veterinary,omitempty"`
}

func (WeeklySchedule) TableName() string {
	return "weekly_schedules"
}

var weekdayNames = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// ParseWeekday converts a weekday token such as "MONDAY" to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrInvalidWeekday
	}
	return day, nil
}

// WeekdayName returns the uppercase token for a weekday.
func WeekdayName(day time.Weekday) string {
	return strings.ToUpper(day.String())
}

// ParseClock parses an HH:MM string into hour and minute components.
func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	return t.Hour(), t.Minute(), nil
}

// At anchors an HH:MM clock value on the given calendar date in loc.
func At(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// SlotDuration returns the bookable slot length.
func (s *WeeklySchedule) SlotDuration() time.Duration {
	return time.Duration(s.SlotDurationMin) * time.Minute
}

// Step returns the distance between consecutive slot starts.
func (s *WeeklySchedule) Step() time.Duration {
	return time.Duration(s.SlotDurationMin+s.BreakDurationMin) * time.Minute
}
