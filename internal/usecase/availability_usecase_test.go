package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// 2026-09-07 is a Monday.
const testDate = "2026-09-07"

type availabilityFixture struct {
	usecase         AvailabilityUsecase
	scheduleRepo    *fakeScheduleRepo
	appointmentRepo *fakeAppointmentRepo
	vetID           uuid.UUID
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	scheduleRepo := newFakeScheduleRepo()
	appointmentRepo := newFakeAppointmentRepo()

	return &availabilityFixture{
		usecase:         NewAvailabilityUsecase(testDB(), testLogger(), time.UTC, scheduleRepo, appointmentRepo),
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		vetID:           uuid.New(),
	}
}

func (f *availabilityFixture) setMonday(t *testing.T, start, end string, slotMin, breakMin int, available bool) {
	t.Helper()
	err := f.scheduleRepo.Upsert(nil, &entity.WeeklySchedule{
		VeterinaryID:     f.vetID,
		Weekday:          time.Monday,
		StartTime:        start,
		EndTime:          end,
		SlotDurationMin:  slotMin,
		BreakDurationMin: breakMin,
		Available:        available,
	})
	if err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
}

func (f *availabilityFixture) book(t *testing.T, clock string, status entity.AppointmentStatus) {
	t.Helper()
	when, err := time.ParseInLocation("2006-01-02 15:04", testDate+" "+clock, time.UTC)
	if err != nil {
		t.Fatalf("parse booking time: %v", err)
	}
	err = f.appointmentRepo.Create(nil, &entity.Appointment{
		VeterinaryID:    f.vetID,
		CustomerID:      uuid.New(),
		PetID:           uuid.New(),
		AppointmentDate: when,
		Status:          status,
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
}

func TestAvailableSlots(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.setMonday(t, "09:00", "12:00", 30, 10, true)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	// 40-minute step; the next rung at 11:40 would run past 12:00
	want := []string{"09:00", "09:40", "10:20", "11:00"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got.Slots)
	}
	if got.Weekday != "MONDAY" {
		t.Fatalf("expected weekday MONDAY, got %s", got.Weekday)
	}
}

func TestAvailableSlots_BookedSlotRemoved(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.setMonday(t, "09:00", "12:00", 30, 10, true)
	f.book(t, "10:20", entity.StatusConfirmed)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	want := []string{"09:00", "09:40", "11:00"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got.Slots)
	}
}

func TestAvailableSlots_OffGridBookingBlocksOverlap(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.setMonday(t, "09:00", "12:00", 30, 10, true)

	// 10:00 is not a grid start but its 30-minute span overlaps the 09:40
	// and 10:20 slots
	f.book(t, "10:00", entity.StatusRequested)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got.Slots)
	}
}

func TestAvailableSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.setMonday(t, "09:00", "12:00", 30, 10, true)

	// A cancelled booking frees its slot; a completed one keeps it occupied
	f.book(t, "09:40", entity.StatusCancelled)
	f.book(t, "11:00", entity.StatusCompleted)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	want := []string{"09:00", "09:40", "10:20"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got.Slots)
	}
}

func TestAvailableSlots_NoScheduleForDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots, got %v", got.Slots)
	}
	if got.Slots == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if got.Weekday != "MONDAY" {
		t.Fatalf("expected weekday MONDAY, got %s", got.Weekday)
	}
}

func TestAvailableSlots_DaySwitchedOff(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.setMonday(t, "09:00", "12:00", 30, 10, false)

	got, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots for an unavailable day, got %v", got.Slots)
	}
}

func TestAvailableSlots_MalformedStoredClock(t *testing.T) {
	f := newAvailabilityFixture(t)

	// A row like this cannot be written through the API; it simulates a
	// hand-edited record
	f.setMonday(t, "9am", "12:00", 30, 10, true)

	_, err := f.usecase.AvailableSlots(context.Background(), f.vetID, testDate)
	if !errors.Is(err, entity.ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
}

func TestAvailableSlots_BadDate(t *testing.T) {
	f := newAvailabilityFixture(t)

	if _, err := f.usecase.AvailableSlots(context.Background(), f.vetID, "07-09-2026"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}
