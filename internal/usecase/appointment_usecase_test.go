package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type appointmentFixture struct {
	usecase    AppointmentUsecase
	repo       *fakeAppointmentRepo
	vetID      uuid.UUID
	customerID uuid.UUID
	petID      uuid.UUID
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	vetID := uuid.New()
	customerID := uuid.New()

	custRepo := newFakeCustomerProfileRepo()
	if err := custRepo.Create(nil, &entity.CustomerProfile{UserID: customerID, VeterinaryID: &vetID}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	petRepo := newFakePetRepo()
	pet := &entity.Pet{OwnerID: customerID, Name: "Rex", Species: "dog", IsActive: true}
	if err := petRepo.Create(nil, pet); err != nil {
		t.Fatalf("seed pet: %v", err)
	}

	repo := newFakeAppointmentRepo()
	uc := NewAppointmentUsecase(testDB(), testLogger(), time.UTC, repo, custRepo, petRepo, noopAudit{})

	return &appointmentFixture{
		usecase:    uc,
		repo:       repo,
		vetID:      vetID,
		customerID: customerID,
		petID:      pet.ID,
	}
}

func (f *appointmentFixture) createRequest(when time.Time) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		VeterinaryID:    f.vetID,
		PetID:           f.petID,
		AppointmentDate: when.Format(time.RFC3339),
		Reason:          "annual checkup",
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	appointment, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if appointment.Status != string(entity.StatusRequested) {
		t.Fatalf("expected status REQUESTED, got %s", appointment.Status)
	}
	if appointment.ID == uuid.Nil {
		t.Fatal("expected an assigned appointment ID")
	}
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(-time.Hour)

	_, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if !errors.Is(err, ErrPastAppointmentDate) {
		t.Fatalf("expected ErrPastAppointmentDate, got %v", err)
	}
}

func TestCreateAppointment_UnboundVeterinaryRejected(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour)

	req := f.createRequest(when)
	req.VeterinaryID = uuid.New() // not the customer's clinic

	_, err := f.usecase.CreateAppointment(context.Background(), f.customerID, req)
	if !errors.Is(err, ErrNotBoundToVeterinary) {
		t.Fatalf("expected ErrNotBoundToVeterinary, got %v", err)
	}
}

func TestCreateAppointment_ConflictWindow(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	if _, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// 20 minutes later falls inside the 30-minute window on either side
	_, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when.Add(20*time.Minute)))
	var conflictErr *SlotConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected SlotConflictError, got %v", err)
	}
	if conflictErr.ConflictingID == uuid.Nil {
		t.Fatal("expected the conflicting appointment ID to be reported")
	}

	// 40 minutes later is clear of the window
	if _, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when.Add(40*time.Minute))); err != nil {
		t.Fatalf("booking outside the window: %v", err)
	}
}

func TestCreateAppointment_ConflictWindowInclusiveBothEnds(t *testing.T) {
	tests := []struct {
		name     string
		offset   time.Duration
		conflict bool
	}{
		{"exactly 30 minutes before", -30 * time.Minute, true},
		{"exactly 30 minutes after", 30 * time.Minute, true},
		{"31 minutes before", -31 * time.Minute, false},
		{"31 minutes after", 31 * time.Minute, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newAppointmentFixture(t)
			existing := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

			if _, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(existing)); err != nil {
				t.Fatalf("existing booking: %v", err)
			}

			_, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(existing.Add(tc.offset)))

			var conflictErr *SlotConflictError
			if tc.conflict {
				if !errors.As(err, &conflictErr) {
					t.Fatalf("expected SlotConflictError, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("expected the booking to be admitted, got %v", err)
			}
		})
	}
}

func TestCreateAppointment_CancelledSlotReusable(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	first, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if _, err := f.usecase.CancelAppointment(context.Background(), f.customerID, first.ID, &dto.CancelAppointmentRequest{Reason: "changed plans"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The cancelled appointment no longer blocks the slot
	if _, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when)); err != nil {
		t.Fatalf("rebooking the freed slot: %v", err)
	}
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	const attempts = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))

			mu.Lock()
			defer mu.Unlock()
			var conflictErr *SlotConflictError
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &conflictErr):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful booking, got %d", succeeded)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestApproveAppointment(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	created, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	approved, err := f.usecase.ApproveAppointment(context.Background(), f.vetID, created.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != string(entity.StatusConfirmed) {
		t.Fatalf("expected status CONFIRMED, got %s", approved.Status)
	}

	// A second approval finds the appointment already CONFIRMED
	if _, err := f.usecase.ApproveAppointment(context.Background(), f.vetID, created.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApproveAppointment_WrongVeterinary(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	created, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.usecase.ApproveAppointment(context.Background(), uuid.New(), created.ID); !errors.Is(err, entity.ErrNotAppointmentVet) {
		t.Fatalf("expected ErrNotAppointmentVet, got %v", err)
	}
}

func TestCompleteAppointment_RequiresConfirmed(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	created, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := &dto.CompleteAppointmentRequest{Diagnosis: "healthy"}

	// Completing straight from REQUESTED is illegal
	if _, err := f.usecase.CompleteAppointment(context.Background(), f.vetID, created.ID, req); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := f.usecase.ApproveAppointment(context.Background(), f.vetID, created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	completed, err := f.usecase.CompleteAppointment(context.Background(), f.vetID, created.ID, req)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != string(entity.StatusCompleted) {
		t.Fatalf("expected status COMPLETED, got %s", completed.Status)
	}
	if completed.Diagnosis != "healthy" {
		t.Fatalf("expected diagnosis to be recorded, got %q", completed.Diagnosis)
	}
}

func TestCancelAppointment_TerminalStateSticks(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	created, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.usecase.CancelAppointment(context.Background(), f.customerID, created.ID, &dto.CancelAppointmentRequest{Reason: "sick"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Cancelled is terminal; nothing moves it again
	if _, err := f.usecase.CancelAppointment(context.Background(), f.customerID, created.ID, &dto.CancelAppointmentRequest{}); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second cancel, got %v", err)
	}
	if _, err := f.usecase.ApproveAppointment(context.Background(), f.vetID, created.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on approve after cancel, got %v", err)
	}
}

func TestCancelAppointment_StrangerRejected(t *testing.T) {
	f := newAppointmentFixture(t)
	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	created, err := f.usecase.CreateAppointment(context.Background(), f.customerID, f.createRequest(when))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.usecase.CancelAppointment(context.Background(), uuid.New(), created.ID, &dto.CancelAppointmentRequest{}); !errors.Is(err, entity.ErrNotAppointmentParty) {
		t.Fatalf("expected ErrNotAppointmentParty, got %v", err)
	}
}
