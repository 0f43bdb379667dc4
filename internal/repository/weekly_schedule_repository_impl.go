package repository

import (
	"errors"
	"time"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type weeklyScheduleRepository struct{}

func NewWeeklyScheduleRepository() domainRepo.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{}
}

func (r *weeklyScheduleRepository) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var schedules []entity.WeeklySchedule
	// weekday is stored Sunday=0; shift so the week reads Monday first
	err := db.Where("veterinary_id = ?", veterinaryID).
		Order("((weekday + 6) % 7) ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *weeklyScheduleRepository) FindByVeterinaryAndWeekday(db *gorm.DB, veterinaryID uuid.UUID, weekday time.Weekday) (*entity.WeeklySchedule, error) {
	var schedule entity.WeeklySchedule
	err := db.Where("veterinary_id = ? AND weekday = ?", veterinaryID, weekday).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *weeklyScheduleRepository) Upsert(db *gorm.DB, schedule *entity.WeeklySchedule) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "veterinary_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "slot_duration_min", "break_duration_min", "available", "updated_at",
		}),
	}).Create(schedule).Error
}

func (r *weeklyScheduleRepository) ReplaceForVeterinary(db *gorm.DB, veterinaryID uuid.UUID, schedules []*entity.WeeklySchedule) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("veterinary_id = ?", veterinaryID).Delete(&entity.WeeklySchedule{}).Error; err != nil {
			return err
		}
		for _, schedule := range schedules {
			if err := tx.Create(schedule).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
