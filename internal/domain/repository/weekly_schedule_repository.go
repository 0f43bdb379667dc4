package repository

import (
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyScheduleRepository interface {
	// FindByVeterinaryID returns the veterinary's entries ordered Monday first.
	FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.WeeklySchedule, error)
	// FindByVeterinaryAndWeekday returns nil when no entry is defined for the day.
	FindByVeterinaryAndWeekday(db *gorm.DB, veterinaryID uuid.UUID, weekday time.Weekday) (*entity.WeeklySchedule, error)
	// Upsert inserts or replaces the entry for (veterinary, weekday).
	Upsert(db *gorm.DB, schedule *entity.WeeklySchedule) error
	// ReplaceForVeterinary atomically swaps the veterinary's entire weekly
	// plan for the given set; weekdays absent from it end up undefined.
	ReplaceForVeterinary(db *gorm.DB, veterinaryID uuid.UUID, schedules []*entity.WeeklySchedule) error
}
