package entities

import (
	"errors"
	"time"
)

// WorkOrderStatus tracks a work order from intake to pickup.
//
// Domain notes:
//   - Statuses form a fixed forward sequence; picked_up is terminal and the
//     work order is archived (kept, never deleted) once reached.
//   - Priority is an orthogonal attribute, not a workflow dimension.

type WorkOrderStatus string

const (
	WorkOrderStatusPending      WorkOrderStatus = "pending"
	WorkOrderStatusInProgress   WorkOrderStatus = "in_progress"
	WorkOrderStatusQualityCheck WorkOrderStatus = "quality_check"
	WorkOrderStatusCompleted    WorkOrderStatus = "completed"
	WorkOrderStatusPickedUp     WorkOrderStatus = "picked_up"
)

type WorkOrderPriority string

const (
	WorkOrderPriorityLow    WorkOrderPriority = "low"
	WorkOrderPriorityNormal WorkOrderPriority = "normal"
	WorkOrderPriorityHigh   WorkOrderPriority = "high"
	WorkOrderPriorityUrgent WorkOrderPriority = "urgent"
)

var (
	ErrInvalidStatus     = errors.New("invalid work order status")
	ErrInvalidPriority   = errors.New("invalid work order priority")
	ErrWorkOrderArchived = errors.New("work order is archived")
	ErrBackwardStatus    = errors.New("status may only move forward")
)

var statusRank = map[WorkOrderStatus]int{
	WorkOrderStatusPending:      0,
	WorkOrderStatusInProgress:   1,
	WorkOrderStatusQualityCheck: 2,
	WorkOrderStatusCompleted:    3,
	WorkOrderStatusPickedUp:     4,
}

func ParseWorkOrderStatus(s string) (WorkOrderStatus, error) {
	if _, ok := statusRank[WorkOrderStatus(s)]; !ok {
		return "", ErrInvalidStatus
	}
	return WorkOrderStatus(s), nil
}

func ParseWorkOrderPriority(s string) (WorkOrderPriority, error) {
	switch WorkOrderPriority(s) {
	case WorkOrderPriorityLow, WorkOrderPriorityNormal, WorkOrderPriorityHigh, WorkOrderPriorityUrgent:
		return WorkOrderPriority(s), nil
	}
	return "", ErrInvalidPriority
}

// IsArchived reports whether the work order reached its terminal status.
func (w *WorkOrder) IsArchived() bool {
	return w.Status == WorkOrderStatusPickedUp
}

// TransitionStatus applies a status change under the workflow rules:
//
//   - picked_up is terminal; any transition out of it fails, override included
//   - without override the status may only move forward in the sequence
//     (skipping intermediate steps is allowed)
//   - override permits moving back between non-terminal statuses, a
//     supervisor action for reopening work
//   - reaching completed stamps CompletedAt at most once
//
// Transitioning to the current status is a no-op.
func (w *WorkOrder) TransitionStatus(next WorkOrderStatus, override bool) error {
	nextRank, ok := statusRank[next]
	if !ok {
		return ErrInvalidStatus
	}
	if w.IsArchived() {
		return ErrWorkOrderArchived
	}
	if next == w.Status {
		return nil
	}
	if !override && nextRank < statusRank[w.Status] {
		return ErrBackwardStatus
	}

	w.Status = next
	if next == WorkOrderStatusCompleted && w.CompletedAt == nil {
		now := time.Now().UTC()
		w.CompletedAt = &now
	}
	return nil
}

// SetPriority changes the priority independently of the status workflow.
func (w *WorkOrder) SetPriority(p WorkOrderPriority) error {
	if _, err := ParseWorkOrderPriority(string(p)); err != nil {
		return err
	}
	if w.IsArchived() {
		return ErrWorkOrderArchived
	}
	w.Priority = p
	return nil
}
