package usecase

import (
	"context"
	"errors"
	"testing"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func dayRequest(weekday string) *dto.SetDayScheduleRequest {
	return &dto.SetDayScheduleRequest{
		Weekday:         weekday,
		StartTime:       "09:00",
		EndTime:         "17:00",
		SlotDurationMin: 30,
	}
}

func TestSetDay(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})
	vetID := uuid.New()

	day, err := uc.SetDay(context.Background(), vetID, dayRequest("MONDAY"))
	if err != nil {
		t.Fatalf("SetDay: %v", err)
	}
	if day.Weekday != "MONDAY" {
		t.Fatalf("expected weekday MONDAY, got %s", day.Weekday)
	}
	if !day.Available {
		t.Fatal("expected day to default to available")
	}

	// A second write for the same weekday replaces the first
	req := dayRequest("MONDAY")
	req.StartTime = "10:00"
	if _, err := uc.SetDay(context.Background(), vetID, req); err != nil {
		t.Fatalf("SetDay replace: %v", err)
	}

	got, err := uc.GetDay(context.Background(), vetID, "monday")
	if err != nil {
		t.Fatalf("GetDay: %v", err)
	}
	if got.StartTime != "10:00" {
		t.Fatalf("expected replaced start time 10:00, got %s", got.StartTime)
	}
}

func TestSetDay_MarkUnavailable(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})
	vetID := uuid.New()

	unavailable := false
	req := dayRequest("SUNDAY")
	req.Available = &unavailable

	day, err := uc.SetDay(context.Background(), vetID, req)
	if err != nil {
		t.Fatalf("SetDay: %v", err)
	}
	if day.Available {
		t.Fatal("expected day to be unavailable")
	}
}

func TestSetDay_Validation(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})
	vetID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*dto.SetDayScheduleRequest)
		wantErr error
	}{
		{
			name:    "unknown weekday",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.Weekday = "FUNDAY" },
			wantErr: entity.ErrInvalidWeekday,
		},
		{
			name:    "malformed start time",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.StartTime = "9am" },
			wantErr: entity.ErrInvalidClock,
		},
		{
			name:    "malformed end time",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.EndTime = "25:00" },
			wantErr: entity.ErrInvalidClock,
		},
		{
			name:    "start after end",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.StartTime = "18:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start equals end",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.StartTime = "17:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "zero slot duration",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.SlotDurationMin = 0 },
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name:    "negative break duration",
			mutate:  func(r *dto.SetDayScheduleRequest) { r.BreakDurationMin = -5 },
			wantErr: ErrInvalidBreakDuration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := dayRequest("TUESDAY")
			tc.mutate(req)

			if _, err := uc.SetDay(context.Background(), vetID, req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestGetDay_NotDefined(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})

	if _, err := uc.GetDay(context.Background(), uuid.New(), "WEDNESDAY"); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestGetWeek_Empty(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})

	week, err := uc.GetWeek(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetWeek: %v", err)
	}
	if len(week.Days) != 0 {
		t.Fatalf("expected no days, got %d", len(week.Days))
	}
}

func TestReplaceWeek(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})
	vetID := uuid.New()

	for _, weekday := range []string{"MONDAY", "TUESDAY"} {
		if _, err := uc.SetDay(context.Background(), vetID, dayRequest(weekday)); err != nil {
			t.Fatalf("seed %s: %v", weekday, err)
		}
	}

	week, err := uc.ReplaceWeek(context.Background(), vetID, &dto.ReplaceWeekScheduleRequest{
		Days: []dto.SetDayScheduleRequest{
			*dayRequest("WEDNESDAY"),
			*dayRequest("FRIDAY"),
		},
	})
	if err != nil {
		t.Fatalf("ReplaceWeek: %v", err)
	}
	if len(week.Days) != 2 {
		t.Fatalf("expected 2 days after the replace, got %d", len(week.Days))
	}

	// Days absent from the new plan are gone entirely
	for _, weekday := range []string{"MONDAY", "TUESDAY"} {
		if _, err := uc.GetDay(context.Background(), vetID, weekday); !errors.Is(err, ErrScheduleNotFound) {
			t.Fatalf("%s should be undefined after the replace, got %v", weekday, err)
		}
	}
	for _, weekday := range []string{"WEDNESDAY", "FRIDAY"} {
		if _, err := uc.GetDay(context.Background(), vetID, weekday); err != nil {
			t.Fatalf("%s should be defined after the replace: %v", weekday, err)
		}
	}
}

func TestReplaceWeek_RejectsBeforeWriting(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewScheduleUsecase(testDB(), testLogger(), repo, noopAudit{})
	vetID := uuid.New()

	if _, err := uc.SetDay(context.Background(), vetID, dayRequest("MONDAY")); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	tests := []struct {
		name    string
		req     *dto.ReplaceWeekScheduleRequest
		wantErr error
	}{
		{
			name: "duplicate weekday",
			req: &dto.ReplaceWeekScheduleRequest{Days: []dto.SetDayScheduleRequest{
				*dayRequest("FRIDAY"),
				*dayRequest("FRIDAY"),
			}},
			wantErr: ErrDuplicateWeekday,
		},
		{
			name: "invalid day in the batch",
			req: &dto.ReplaceWeekScheduleRequest{Days: []dto.SetDayScheduleRequest{
				*dayRequest("FRIDAY"),
				{Weekday: "SATURDAY", StartTime: "12:00", EndTime: "09:00", SlotDurationMin: 30},
			}},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.ReplaceWeek(context.Background(), vetID, tc.req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			// The rejected batch must not have touched the existing plan
			if _, err := uc.GetDay(context.Background(), vetID, "MONDAY"); err != nil {
				t.Fatalf("existing schedule lost after rejected batch: %v", err)
			}
		})
	}
}
