package usecase

import (
	"context"
	"sync"
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB returns a detached gorm handle. The fakes below never touch the
// connection, they only need WithContext to work.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type noopAudit struct{}

func (noopAudit) Log(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details entity.JSON) {
}

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment.ID = uuid.New()
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindByVeterinaryAndDateBetween(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.VeterinaryID != veterinaryID {
			continue
		}
		if appointment.AppointmentDate.Before(start) || !appointment.AppointmentDate.Before(end) {
			continue
		}
		result = append(result, *appointment)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByVeterinaryAndDateWithin(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.VeterinaryID != veterinaryID {
			continue
		}
		if appointment.AppointmentDate.Before(start) || appointment.AppointmentDate.After(end) {
			continue
		}
		result = append(result, *appointment)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.CustomerID == customerID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.VeterinaryID == veterinaryID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByVeterinaryAndStatus(db *gorm.DB, veterinaryID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.VeterinaryID == veterinaryID && appointment.Status == status {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindUpcomingByCustomer(db *gorm.DB, customerID uuid.UUID, after time.Time) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.CustomerID == customerID && appointment.AppointmentDate.After(after) && appointment.Status.Occupies() {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) Confirm(db *gorm.DB, id uuid.UUID, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok || appointment.Status != entity.StatusRequested {
		return 0, nil
	}
	appointment.Status = entity.StatusConfirmed
	appointment.UpdatedAt = now
	return 1, nil
}

func (r *fakeAppointmentRepo) Cancel(db *gorm.DB, id uuid.UUID, reason string, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok || (appointment.Status != entity.StatusRequested && appointment.Status != entity.StatusConfirmed) {
		return 0, nil
	}
	appointment.Status = entity.StatusCancelled
	appointment.CancellationReason = reason
	appointment.CancelledAt = &now
	appointment.UpdatedAt = now
	return 1, nil
}

func (r *fakeAppointmentRepo) Complete(db *gorm.DB, id uuid.UUID, outcome entity.CompletionOutcome, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok || appointment.Status != entity.StatusConfirmed {
		return 0, nil
	}
	appointment.Status = entity.StatusCompleted
	appointment.VeterinaryNotes = outcome.VeterinaryNotes
	appointment.Diagnosis = outcome.Diagnosis
	appointment.Treatment = outcome.Treatment
	appointment.Medications = outcome.Medications
	appointment.CompletedAt = &now
	appointment.UpdatedAt = now
	return 1, nil
}

// fakeCustomerProfileRepo is an in-memory CustomerProfileRepository.
type fakeCustomerProfileRepo struct {
	profiles map[uuid.UUID]*entity.CustomerProfile
}

func newFakeCustomerProfileRepo() *fakeCustomerProfileRepo {
	return &fakeCustomerProfileRepo{profiles: make(map[uuid.UUID]*entity.CustomerProfile)}
}

func (r *fakeCustomerProfileRepo) Create(db *gorm.DB, profile *entity.CustomerProfile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeCustomerProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CustomerProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeCustomerProfileRepo) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.CustomerProfile, error) {
	var result []entity.CustomerProfile
	for _, profile := range r.profiles {
		if profile.VeterinaryID != nil && *profile.VeterinaryID == veterinaryID {
			result = append(result, *profile)
		}
	}
	return result, nil
}

func (r *fakeCustomerProfileRepo) BindVeterinary(db *gorm.DB, userID, veterinaryID uuid.UUID) (int64, error) {
	profile, ok := r.profiles[userID]
	if !ok || profile.VeterinaryID != nil {
		return 0, nil
	}
	now := time.Now()
	profile.VeterinaryID = &veterinaryID
	profile.JoinedAt = &now
	return 1, nil
}

// fakePetRepo is an in-memory PetRepository.
type fakePetRepo struct {
	pets map[uuid.UUID]*entity.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[uuid.UUID]*entity.Pet)}
}

func (r *fakePetRepo) Create(db *gorm.DB, pet *entity.Pet) error {
	pet.ID = uuid.New()
	stored := *pet
	r.pets[pet.ID] = &stored
	return nil
}

func (r *fakePetRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	pet, ok := r.pets[id]
	if !ok {
		return nil, nil
	}
	copied := *pet
	return &copied, nil
}

func (r *fakePetRepo) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	var result []entity.Pet
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			result = append(result, *pet)
		}
	}
	return result, nil
}

func (r *fakePetRepo) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Pet, error) {
	return nil, nil
}

func (r *fakePetRepo) Update(db *gorm.DB, pet *entity.Pet) error {
	stored := *pet
	r.pets[pet.ID] = &stored
	return nil
}

func (r *fakePetRepo) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	pet, ok := r.pets[id]
	if !ok || !pet.IsActive {
		return 0, nil
	}
	pet.IsActive = false
	return 1, nil
}

// fakeScheduleRepo is an in-memory WeeklyScheduleRepository.
type fakeScheduleRepo struct {
	schedules map[uuid.UUID]map[time.Weekday]*entity.WeeklySchedule
	nextID    int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[uuid.UUID]map[time.Weekday]*entity.WeeklySchedule)}
}

func (r *fakeScheduleRepo) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var result []entity.WeeklySchedule
	for _, schedule := range r.schedules[veterinaryID] {
		result = append(result, *schedule)
	}
	return result, nil
}

func (r *fakeScheduleRepo) FindByVeterinaryAndWeekday(db *gorm.DB, veterinaryID uuid.UUID, weekday time.Weekday) (*entity.WeeklySchedule, error) {
	schedule, ok := r.schedules[veterinaryID][weekday]
	if !ok {
		return nil, nil
	}
	copied := *schedule
	return &copied, nil
}

func (r *fakeScheduleRepo) Upsert(db *gorm.DB, schedule *entity.WeeklySchedule) error {
	if r.schedules[schedule.VeterinaryID] == nil {
		r.schedules[schedule.VeterinaryID] = make(map[time.Weekday]*entity.WeeklySchedule)
	}
	r.nextID++
	schedule.ID = r.nextID
	stored := *schedule
	r.schedules[schedule.VeterinaryID][schedule.Weekday] = &stored
	return nil
}

func (r *fakeScheduleRepo) ReplaceForVeterinary(db *gorm.DB, veterinaryID uuid.UUID, schedules []*entity.WeeklySchedule) error {
	delete(r.schedules, veterinaryID)
	for _, schedule := range schedules {
		if err := r.Upsert(db, schedule); err != nil {
			return err
		}
	}
	return nil
}
