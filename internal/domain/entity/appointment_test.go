package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestAppointment(status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:           uuid.New(),
		VeterinaryID: uuid.New(),
		CustomerID:   uuid.New(),
		PetID:        uuid.New(),
		Status:       status,
	}
}

func TestConfirm(t *testing.T) {
	now := time.Now()

	t.Run("requested by own veterinary", func(t *testing.T) {
		a := newTestAppointment(StatusRequested)
		if err := a.Confirm(a.VeterinaryID, now); err != nil {
			t.Fatalf("Confirm: %v", err)
		}
		if a.Status != StatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", a.Status)
		}
	})

	t.Run("wrong veterinary", func(t *testing.T) {
		a := newTestAppointment(StatusRequested)
		if err := a.Confirm(uuid.New(), now); !errors.Is(err, ErrNotAppointmentVet) {
			t.Fatalf("expected ErrNotAppointmentVet, got %v", err)
		}
		if a.Status != StatusRequested {
			t.Fatalf("status must not change on a rejected confirm, got %s", a.Status)
		}
	})

	for _, status := range []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		t.Run("from "+string(status), func(t *testing.T) {
			a := newTestAppointment(status)
			if err := a.Confirm(a.VeterinaryID, now); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	t.Run("requested by customer", func(t *testing.T) {
		a := newTestAppointment(StatusRequested)
		if err := a.Cancel(a.CustomerID, "schedule change", now); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if a.Status != StatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", a.Status)
		}
		if a.CancellationReason != "schedule change" {
			t.Fatalf("expected reason to be recorded, got %q", a.CancellationReason)
		}
		if a.CancelledAt == nil || !a.CancelledAt.Equal(now) {
			t.Fatalf("expected CancelledAt %v, got %v", now, a.CancelledAt)
		}
	})

	t.Run("confirmed by veterinary", func(t *testing.T) {
		a := newTestAppointment(StatusConfirmed)
		if err := a.Cancel(a.VeterinaryID, "emergency surgery", now); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if a.Status != StatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", a.Status)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		a := newTestAppointment(StatusRequested)
		if err := a.Cancel(uuid.New(), "", now); !errors.Is(err, ErrNotAppointmentParty) {
			t.Fatalf("expected ErrNotAppointmentParty, got %v", err)
		}
	})

	t.Run("cancellation fields written once", func(t *testing.T) {
		a := newTestAppointment(StatusRequested)
		if err := a.Cancel(a.CustomerID, "first", now); err != nil {
			t.Fatalf("Cancel: %v", err)
		}

		later := now.Add(time.Hour)
		if err := a.Cancel(a.CustomerID, "second", later); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if a.CancellationReason != "first" || !a.CancelledAt.Equal(now) {
			t.Fatal("second cancel attempt must not overwrite the first record")
		}
	})

	for _, status := range []AppointmentStatus{StatusCompleted, StatusNoShow} {
		t.Run("from "+string(status), func(t *testing.T) {
			a := newTestAppointment(status)
			if err := a.Cancel(a.CustomerID, "", now); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()
	outcome := CompletionOutcome{
		VeterinaryNotes: "calm during the exam",
		Diagnosis:       "otitis externa",
		Treatment:       "ear cleaning",
		Medications:     "topical antibiotic drops",
	}

	t.Run("confirmed by own veterinary", func(t *testing.T) {
		a := newTestAppointment(StatusConfirmed)
		if err := a.Complete(a.VeterinaryID, outcome, now); err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if a.Status != StatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", a.Status)
		}
		if a.Diagnosis != outcome.Diagnosis || a.Treatment != outcome.Treatment {
			t.Fatal("expected the clinical outcome to be recorded")
		}
		if a.CompletedAt == nil || !a.CompletedAt.Equal(now) {
			t.Fatalf("expected CompletedAt %v, got %v", now, a.CompletedAt)
		}
	})

	t.Run("wrong veterinary", func(t *testing.T) {
		a := newTestAppointment(StatusConfirmed)
		if err := a.Complete(uuid.New(), outcome, now); !errors.Is(err, ErrNotAppointmentVet) {
			t.Fatalf("expected ErrNotAppointmentVet, got %v", err)
		}
	})

	t.Run("customer cannot complete", func(t *testing.T) {
		a := newTestAppointment(StatusConfirmed)
		if err := a.Complete(a.CustomerID, outcome, now); !errors.Is(err, ErrNotAppointmentVet) {
			t.Fatalf("expected ErrNotAppointmentVet, got %v", err)
		}
	})

	for _, status := range []AppointmentStatus{StatusRequested, StatusCompleted, StatusCancelled, StatusNoShow} {
		t.Run("from "+string(status), func(t *testing.T) {
			a := newTestAppointment(status)
			if err := a.Complete(a.VeterinaryID, outcome, now); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[AppointmentStatus]bool{
		StatusRequested:  false,
		StatusConfirmed:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
		StatusNoShow:     true,
	}
	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusOccupies(t *testing.T) {
	occupies := map[AppointmentStatus]bool{
		StatusRequested:  true,
		StatusConfirmed:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusCancelled:  false,
		StatusNoShow:     false,
	}
	for status, want := range occupies {
		if got := status.Occupies(); got != want {
			t.Errorf("%s.Occupies() = %v, want %v", status, got, want)
		}
	}
}
