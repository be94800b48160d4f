package entities

import (
	"errors"
	"testing"
)

func TestParseWorkOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "quality_check", "completed", "picked_up"} {
		if _, err := ParseWorkOrderStatus(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseWorkOrderStatus("done"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestWorkOrder_TransitionStatus(t *testing.T) {
	t.Run("forward walk through the sequence", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		for _, next := range []WorkOrderStatus{
			WorkOrderStatusInProgress,
			WorkOrderStatusQualityCheck,
			WorkOrderStatusCompleted,
			WorkOrderStatusPickedUp,
		} {
			if err := w.TransitionStatus(next, false); err != nil {
				t.Fatalf("unexpected error moving to %s: %v", next, err)
			}
			if w.Status != next {
				t.Fatalf("expected %s, got %s", next, w.Status)
			}
		}
	})

	t.Run("forward skip is allowed", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		if err := w.TransitionStatus(WorkOrderStatusCompleted, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("backward without override rejected", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		_ = w.TransitionStatus(WorkOrderStatusQualityCheck, false)
		if err := w.TransitionStatus(WorkOrderStatusInProgress, false); !errors.Is(err, ErrBackwardStatus) {
			t.Fatalf("expected ErrBackwardStatus, got %v", err)
		}
		if w.Status != WorkOrderStatusQualityCheck {
			t.Fatalf("status must be unchanged after rejected transition")
		}
	})

	t.Run("backward with override allowed", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		_ = w.TransitionStatus(WorkOrderStatusQualityCheck, false)
		if err := w.TransitionStatus(WorkOrderStatusInProgress, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != WorkOrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", w.Status)
		}
	})

	t.Run("picked_up is terminal even with override", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		_ = w.TransitionStatus(WorkOrderStatusPickedUp, false)
		for _, next := range []WorkOrderStatus{
			WorkOrderStatusPending,
			WorkOrderStatusInProgress,
			WorkOrderStatusQualityCheck,
			WorkOrderStatusCompleted,
		} {
			if err := w.TransitionStatus(next, false); !errors.Is(err, ErrWorkOrderArchived) {
				t.Fatalf("expected ErrWorkOrderArchived moving to %s, got %v", next, err)
			}
			if err := w.TransitionStatus(next, true); !errors.Is(err, ErrWorkOrderArchived) {
				t.Fatalf("expected ErrWorkOrderArchived with override moving to %s, got %v", next, err)
			}
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		if err := w.TransitionStatus("shipped", false); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		w := NewWorkOrder("c", "v", DefaultTaxRate)
		if err := w.TransitionStatus(WorkOrderStatusPending, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrder_CompletedStampIsIdempotent(t *testing.T) {
	w := NewWorkOrder("c", "v", DefaultTaxRate)
	if w.CompletedAt != nil {
		t.Fatalf("expected no completion stamp on creation")
	}

	if err := w.TransitionStatus(WorkOrderStatusCompleted, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.CompletedAt == nil {
		t.Fatalf("expected completion stamp")
	}
	first := *w.CompletedAt

	// Reopen and complete again: the stamp must not move.
	if err := w.TransitionStatus(WorkOrderStatusInProgress, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.TransitionStatus(WorkOrderStatusCompleted, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.CompletedAt.Equal(first) {
		t.Fatalf("completion stamp changed on re-completion")
	}
}

func TestWorkOrder_SetPriority(t *testing.T) {
	w := NewWorkOrder("c", "v", DefaultTaxRate)

	if err := w.SetPriority(WorkOrderPriorityUrgent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Priority != WorkOrderPriorityUrgent {
		t.Fatalf("expected urgent, got %s", w.Priority)
	}

	if err := w.SetPriority("asap"); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}

	// Priority is orthogonal to status until archive.
	_ = w.TransitionStatus(WorkOrderStatusCompleted, false)
	if err := w.SetPriority(WorkOrderPriorityLow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = w.TransitionStatus(WorkOrderStatusPickedUp, false)
	if err := w.SetPriority(WorkOrderPriorityHigh); !errors.Is(err, ErrWorkOrderArchived) {
		t.Fatalf("expected ErrWorkOrderArchived, got %v", err)
	}
}
